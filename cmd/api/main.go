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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/invoice-dashboard/docs"
	"github.com/jhoicas/invoice-dashboard/internal/application/auth"
	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/application/dashboard"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/invoice-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/invoice-dashboard/internal/interfaces/http"
	"github.com/jhoicas/invoice-dashboard/pkg/config"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

// @title        Invoice Dashboard API
// @version      1.0
// @description  Facturas, clientes y resumen de ingresos.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("locale", cfg.App.Locale).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Strs("migrations", applied).Msg("esquema al día")

	views, err := cache.Open(cache.Config{TTL: cfg.Cache.TTL(), Logger: log.Zerolog()})
	if err != nil {
		log.Fatal().Err(err).Msg("abrir cache de vistas")
	}
	defer views.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	invoiceActions := billing.NewInvoiceActions(invoiceRepo, views, log.Zerolog())
	invoiceQueries := billing.NewInvoiceQueries(invoiceRepo, customerRepo, cfg.App.Locale)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	dashboardUC := dashboard.NewUseCase(dashboardRepo, invoiceRepo, cfg.App.Locale)

	// PDF: comprobante de una factura con QR hacia su edición
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, cfg.App.Locale)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.Auth.Secret,
		ExpMinutes: cfg.Auth.Expiration,
		Issuer:     cfg.Auth.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		InvoiceActions: invoiceActions,
		InvoiceQueries: invoiceQueries,
		InvoicePDF:     invoicePDFUC,
		CustomerUC:     customerUC,
		DashboardUC:    dashboardUC,
		Views:          views,
		JWTSecret:      cfg.Auth.Secret,
		SessionTTL:     time.Duration(cfg.Auth.Expiration) * time.Minute,
		SecureCookie:   cfg.App.Env == "production",
		Log:            log.Zerolog(),
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
