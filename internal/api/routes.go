package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports a dependency's state; nil means healthy.
type HealthCheck func() error

// RegisterRoutes registers all HTTP routes on the Fiber app. Middleware in
// limit, typically the rate limiter, applies to /api/v1 only.
func RegisterRoutes(app *fiber.App, handler *Handler, checks map[string]HealthCheck, limit ...fiber.Handler) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/health", func(c *fiber.Ctx) error {
		results := make(map[string]string, len(checks))
		status := "ok"
		code := fiber.StatusOK

		for name, check := range checks {
			if err := check(); err != nil {
				results[name] = err.Error()
				status = "degraded"
				code = fiber.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"checks": results,
		})
	})

	v1 := app.Group("/api/v1")
	for _, mw := range limit {
		v1.Use(mw)
	}
	v1.Get("/venues", handler.Venues)
	v1.Post("/normalize", handler.Normalize)
	v1.Post("/denormalize", handler.Denormalize)
	v1.Post("/parse", handler.Parse)
	v1.Post("/expired", handler.Expired)
}
