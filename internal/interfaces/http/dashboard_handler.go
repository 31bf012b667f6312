package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/container-sales-api/internal/application/dashboard"
	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/pkg/logger"
)

// DashboardHandler maneja los endpoints de cifras del dashboard.
type DashboardHandler struct {
	sales  *dashboard.SalesUseCase
	report *dashboard.ReportUseCase
	log    *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(sales *dashboard.SalesUseCase, report *dashboard.ReportUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{sales: sales, report: report, log: log.Component("dashboard_handler")}
}

func (h *DashboardHandler) parseQuery(c *fiber.Ctx) (dto.SalesQuery, error) {
	var q dto.SalesQuery
	err := c.QueryParser(&q)
	return q, err
}

// FetchSalesToday godoc
// @Summary      Ventas en efectivo del período
// @Description  Sin mes ni año: ventas de hoy (zona del negocio). Cero si nada coincide.
// @Tags         dashboard
// @Produce      json
// @Param        location  query  string  false  "Sucursal, Philippines o All"
// @Param        role      query  string  false  "Rol del usuario"
// @Param        month     query  string  false  "Mes 1-12 o All"
// @Param        year      query  string  false  "Año o All"
// @Success      200  {object}  dto.SalesTodayResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Dashboard/FetchSalesToday [get]
func (h *DashboardHandler) FetchSalesToday(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return invalidBody(c, h.log, err)
	}
	out, err := h.sales.SalesToday(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err, "Invalid query")
	}
	return c.JSON(out)
}

// FetchBeginningBalance godoc
// @Summary      Saldo inicial (pendientes)
// @Description  Suma BalanceAmount de las órdenes anteriores al inicio del período.
// @Tags         dashboard
// @Produce      json
// @Param        location  query  string  false  "Sucursal, Philippines o All"
// @Param        role      query  string  false  "Rol del usuario"
// @Param        month     query  string  false  "Mes 1-12 o All"
// @Param        year      query  string  false  "Año o All"
// @Success      200  {object}  dto.BeginningBalanceResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Dashboard/FetchPediente [get]
func (h *DashboardHandler) FetchBeginningBalance(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return invalidBody(c, h.log, err)
	}
	out, err := h.sales.BeginningBalance(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err, "Invalid query")
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Reporte PDF de ventas
// @Tags         dashboard
// @Produce      application/pdf
// @Param        location  query  string  false  "Sucursal, Philippines o All"
// @Param        role      query  string  false  "Rol del usuario"
// @Param        month     query  string  false  "Mes 1-12 o All"
// @Param        year      query  string  false  "Año o All"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/Dashboard/SalesReport [get]
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return invalidBody(c, h.log, err)
	}
	pdf, filename, err := h.report.SalesReportPDF(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err, "Invalid query")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
