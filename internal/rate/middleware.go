package rate

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Checker-Finance/normify/internal/metrics"
)

// Middleware answers 429 once the caller's bucket is empty. Callers are keyed
// by c.IP().
func Middleware(m *Manager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.IP()
		if m.Allow(key) {
			return c.Next()
		}
		metrics.IncRateLimited()
		logger.Debug("normify.rate.limited",
			zap.String("client", key),
			zap.String("path", c.Path()))
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
	}
}
