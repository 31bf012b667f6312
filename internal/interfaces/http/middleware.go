package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/pkg/logger"
	"github.com/jhoicas/container-sales-api/pkg/metrics"
)

// RequestLogger registra cada petición con método, ruta, estado, duración y request id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("petición HTTP")
		return err
	}
}

// Metrics registra conteo y duración por ruta registrada (no por path crudo).
func Metrics(m *metrics.HTTPMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		m.ObserveRequest(c.Method(), c.Route().Path, c.Response().StatusCode(), time.Since(start))
		return err
	}
}

// MethodNotAllowed responde 405 con el header Allow. Se registra con All()
// después de la ruta del verbo permitido.
func MethodNotAllowed(allowed ...string) fiber.Handler {
	allow := strings.Join(allowed, ", ")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, allow)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "Method " + c.Method() + " not allowed",
		})
	}
}
