package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/bilemo-api/pkg/logger"
)

// HTTPMetrics métricas RED de la API por método, ruta y código.
type HTTPMetrics struct {
	reqs *prometheus.CounterVec
	durs *prometheus.HistogramVec
}

// NewHTTPMetrics crea las métricas y las registra en reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	const (
		namespace = "bilemo"
		subsystem = "http"
	)
	m := &HTTPMetrics{
		reqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas",
		}, []string{"method", "route", "code"}),
		durs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP",
			Buckets:   prometheus.ExponentialBuckets(1e-3, 4, 8),
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.reqs, m.durs)
	return m
}

// Middleware registra cada petición. La ruta es el patrón de Fiber (/api/phones/:id), no la URL.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		// Los valores de etiqueta quedan retenidos en el registro: no pueden apuntar al buffer de fasthttp.
		method := utils.CopyString(c.Method())
		route := utils.CopyString(c.Route().Path)
		m.reqs.WithLabelValues(method, route, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.durs.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expone gatherer en formato Prometheus.
func MetricsHandler(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// RequestLogger escribe una línea por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición")
		return err
	}
}
