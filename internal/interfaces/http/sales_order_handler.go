package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/internal/application/salesorder"
	"github.com/jhoicas/container-sales-api/pkg/logger"
)

// SalesOrderHandler maneja la edición manual de órdenes (pendientes).
type SalesOrderHandler struct {
	uc  *salesorder.EditSalesOrderUseCase
	log *logger.Logger
}

// NewSalesOrderHandler construye el handler.
func NewSalesOrderHandler(uc *salesorder.EditSalesOrderUseCase, log *logger.Logger) *SalesOrderHandler {
	return &SalesOrderHandler{uc: uc, log: log.Component("sales_order_handler")}
}

// Edit godoc
// @Summary      Editar orden de venta
// @Description  Sobrescribe los campos de la orden con el id indicado. Un id inexistente no es error.
// @Tags         sales-order
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EditSalesOrderRequest  true  "Orden con id"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      405   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/PedienteManual/EditPediente [put]
func (h *SalesOrderHandler) Edit(c *fiber.Ctx) error {
	var in dto.EditSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, h.log, err)
	}
	if err := h.uc.Edit(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err, "Invalid sales order")
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Data updated successfully"})
}
