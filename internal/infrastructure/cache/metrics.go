package cache

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/bilemo-api/internal/application/ports"
)

var _ ports.TagAwareCache = (*InstrumentedCache)(nil)

// Resultados de lectura.
const (
	LabelHit  = "hit"
	LabelMiss = "miss"
)

// Metrics contadores de uso de la caché, por espacio de nombres.
type Metrics struct {
	Requests      *prometheus.CounterVec
	Invalidations *prometheus.CounterVec
}

// NewMetrics crea los contadores y los registra en reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	const (
		namespace = "bilemo"
		subsystem = "cache"
	)
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Lecturas de caché por espacio de nombres y resultado",
		}, []string{"namespace", "result"}),
		Invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "invalidations_total",
			Help:      "Etiquetas invalidadas por espacio de nombres",
		}, []string{"namespace"}),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Invalidations)
	}
	return m
}

// InstrumentedCache decora un ports.TagAwareCache con métricas de aciertos, fallos e invalidaciones.
type InstrumentedCache struct {
	next    ports.TagAwareCache
	metrics *Metrics
}

// NewInstrumentedCache envuelve next.
func NewInstrumentedCache(next ports.TagAwareCache, metrics *Metrics) *InstrumentedCache {
	return &InstrumentedCache{next: next, metrics: metrics}
}

// GetOrCompute implementa ports.TagAwareCache; un miss es toda llamada que invoca compute.
func (c *InstrumentedCache) GetOrCompute(ctx context.Context, key string, tags []string, compute ports.ComputeFunc) (any, error) {
	miss := false
	v, err := c.next.GetOrCompute(ctx, key, tags, func(ctx context.Context) (any, error) {
		miss = true
		return compute(ctx)
	})
	result := LabelHit
	if miss {
		result = LabelMiss
	}
	c.metrics.Requests.WithLabelValues(namespaceOf(key), result).Inc()
	return v, err
}

// Set implementa ports.TagAwareCache.
func (c *InstrumentedCache) Set(ctx context.Context, key string, tags []string, value any) error {
	return c.next.Set(ctx, key, tags, value)
}

// Invalidate implementa ports.TagAwareCache.
func (c *InstrumentedCache) Invalidate(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		c.metrics.Invalidations.WithLabelValues(namespaceOf(tag)).Inc()
	}
	return c.next.Invalidate(ctx, tags...)
}

// namespaceOf prefijo de la clave hasta el primer guion (getAllUsers, getPhoneDetails...).
func namespaceOf(key string) string {
	ns, _, _ := strings.Cut(key, "-")
	return ns
}
