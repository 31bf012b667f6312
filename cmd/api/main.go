package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/container-sales-api/internal/application/container"
	"github.com/jhoicas/container-sales-api/internal/application/dashboard"
	"github.com/jhoicas/container-sales-api/internal/application/ports"
	"github.com/jhoicas/container-sales-api/internal/application/salesorder"
	"github.com/jhoicas/container-sales-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/container-sales-api/internal/infrastructure/pdf"
	"github.com/jhoicas/container-sales-api/internal/infrastructure/realtime"
	httpRouter "github.com/jhoicas/container-sales-api/internal/interfaces/http"
	"github.com/jhoicas/container-sales-api/pkg/config"
	"github.com/jhoicas/container-sales-api/pkg/logger"
	"github.com/jhoicas/container-sales-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Location().String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()
	db := client.Database(cfg.Mongo.Database)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.NewHTTPMetrics(reg)

	// Publicador en vivo: opcional. Sin Redis el alta de contenedores funciona igual.
	var publisher ports.EventPublisher
	if cfg.Redis.Enabled() {
		redisPub, err := realtime.NewRedisPublisher(ctx, cfg.Redis, httpMetrics)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, actualizaciones en vivo desactivadas")
		} else {
			defer redisPub.Close()
			publisher = redisPub
			log.Info().Str("channel", redisPub.Channel()).Msg("publicador de eventos listo")
		}
	}

	containerRepo := mongodb.NewContainerRepository(db)
	activityRepo := mongodb.NewActivityLogRepository(db)
	orderRepo := mongodb.NewContainerOrderRepository(db)
	salesRepo := mongodb.NewSalesRepository(db)

	createContainerUC := container.NewCreateContainerUseCase(containerRepo, activityRepo, publisher, log)
	editSalesOrderUC := salesorder.NewEditSalesOrderUseCase(orderRepo, log)
	salesUC := dashboard.NewSalesUseCase(salesRepo, cfg.App.Location())
	reportUC := dashboard.NewReportUseCase(salesUC, infrapdf.NewSalesReportGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(httpRouter.Metrics(httpMetrics))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Container Sales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateContainer: createContainerUC,
		EditSalesOrder:  editSalesOrderUC,
		Sales:           salesUC,
		Report:          reportUC,
		Log:             log,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
