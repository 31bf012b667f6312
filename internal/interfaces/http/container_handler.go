package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/container-sales-api/internal/application/container"
	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/pkg/logger"
)

// ContainerHandler maneja el alta de contenedores.
type ContainerHandler struct {
	uc  *container.CreateContainerUseCase
	log *logger.Logger
}

// NewContainerHandler construye el handler.
func NewContainerHandler(uc *container.CreateContainerUseCase, log *logger.Logger) *ContainerHandler {
	return &ContainerHandler{uc: uc, log: log.Component("container_handler")}
}

// Create godoc
// @Summary      Registrar contenedor
// @Description  Inserta el contenedor, escribe la bitácora y notifica al dashboard.
// @Tags         container
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContainerRequest  true  "Datos del contenedor"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      405   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/Container/CreateContainer [post]
func (h *ContainerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContainerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, h.log, err)
	}
	if in.UserName == "" {
		in.UserName = GetIdentity(c).UserName
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err, "Missing required fields")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
