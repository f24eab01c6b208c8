package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpRouter "github.com/jhoicas/bilemo-api/internal/interfaces/http"
)

func TestHTTPMetrics_EtiquetasEstablesEntrePeticiones(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := fiber.New()
	app.Use(httpRouter.NewHTTPMetrics(reg).Middleware())
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/x", ok)
	app.Put("/x", ok)

	send := func(method string) {
		resp, err := app.Test(httptest.NewRequest(method, "/x", nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	send(fiber.MethodGet)
	for i := 0; i < 20; i++ {
		send(fiber.MethodPut)
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "bilemo_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "method" {
					counts[l.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, map[string]float64{"GET": 1, "PUT": 20}, counts)
}

func TestMetricsHandler_ExposicionConVariosMetodos(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := fiber.New()
	app.Use(httpRouter.NewHTTPMetrics(reg).Middleware())
	app.Get("/metrics", httpRouter.MetricsHandler(reg))
	app.Delete("/y", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for _, method := range []string{fiber.MethodDelete, fiber.MethodGet, fiber.MethodDelete} {
		path := "/y"
		if method == fiber.MethodGet {
			path = "/metrics"
		}
		_, err := app.Test(httptest.NewRequest(method, path, nil), -1)
		require.NoError(t, err)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
