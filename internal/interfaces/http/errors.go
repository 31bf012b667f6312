package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/internal/domain"
	"github.com/jhoicas/container-sales-api/pkg/logger"
	"github.com/jhoicas/container-sales-api/pkg/validate"
)

// respondError registra el error y lo traduce a la respuesta HTTP.
// invalidMsg es el mensaje para errores de validación.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, invalidMsg string) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		log.Warn().Err(err).Str("path", c.Path()).Msg("petición rechazada")
		body := dto.ErrorResponse{Code: "VALIDATION", Message: invalidMsg, Error: err.Error()}
		var fe *validate.FieldsError
		if errors.As(err, &fe) {
			body.Fields = fe.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("error atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "Internal server error", Error: err.Error(),
	})
}

func invalidBody(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Warn().Err(err).Str("path", c.Path()).Msg("cuerpo inválido")
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido", Error: err.Error()})
}
