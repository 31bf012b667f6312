package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/container-sales-api/internal/application/container"
	"github.com/jhoicas/container-sales-api/internal/application/dashboard"
	"github.com/jhoicas/container-sales-api/internal/application/salesorder"
	"github.com/jhoicas/container-sales-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateContainer *container.CreateContainerUseCase
	EditSalesOrder  *salesorder.EditSalesOrderUseCase
	Sales           *dashboard.SalesUseCase
	Report          *dashboard.ReportUseCase
	Log             *logger.Logger
	JWTSecret       string // vacío = rutas públicas
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	// Autenticación por ruta; los fallbacks 405 quedan fuera.
	var guards []fiber.Handler
	if deps.JWTSecret != "" {
		guards = append(guards, AuthMiddleware(deps.JWTSecret))
	}
	guarded := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, guards...), h)
	}
	api := app.Group("/api")

	// Container
	containerHandler := NewContainerHandler(deps.CreateContainer, log)
	api.Post("/Container/CreateContainer", guarded(containerHandler.Create)...)
	api.All("/Container/CreateContainer", MethodNotAllowed(fiber.MethodPost))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Sales, deps.Report, log)
	api.Get("/Dashboard/FetchSalesToday", guarded(dashboardHandler.FetchSalesToday)...)
	api.All("/Dashboard/FetchSalesToday", MethodNotAllowed(fiber.MethodGet))
	api.Get("/Dashboard/FetchPediente", guarded(dashboardHandler.FetchBeginningBalance)...)
	api.All("/Dashboard/FetchPediente", MethodNotAllowed(fiber.MethodGet))
	api.Get("/Dashboard/SalesReport", guarded(dashboardHandler.SalesReport)...)
	api.All("/Dashboard/SalesReport", MethodNotAllowed(fiber.MethodGet))

	// Pendientes (edición manual de órdenes)
	salesOrderHandler := NewSalesOrderHandler(deps.EditSalesOrder, log)
	api.Put("/PedienteManual/EditPediente", guarded(salesOrderHandler.Edit)...)
	api.All("/PedienteManual/EditPediente", MethodNotAllowed(fiber.MethodPut))
}
