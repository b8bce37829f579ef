package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/panel-comercial/internal/application/billing"
	"github.com/tu-usuario/panel-comercial/internal/application/report"
	"github.com/tu-usuario/panel-comercial/internal/infrastructure/backend"
	infrapdf "github.com/tu-usuario/panel-comercial/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/panel-comercial/internal/interfaces/http"
	"github.com/tu-usuario/panel-comercial/pkg/config"
	"github.com/tu-usuario/panel-comercial/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	backendClient := backend.New(cfg.Backend, log)
	reportUC := report.NewUseCase(backendClient, cfg.Backend.FetchLimit)

	// PDF: representación gráfica de la factura
	pdfRenderer := infrapdf.NewMarotoInvoiceRenderer()
	invoiceDocUC := billing.NewDocumentUseCase(backendClient, pdfRenderer, cfg.Company)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	proxyHandler := httpRouter.NewProxyHandler(backendClient, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		Proxy:      proxyHandler,
		Reports:    httpRouter.NewReportHandler(reportUC, log),
		Dashboard:  httpRouter.NewDashboardHandler(proxyHandler),
		InvoicePDF: httpRouter.NewInvoiceHandler(invoiceDocUC, log),
		JWTSecret:  cfg.Auth.JWTSecret,
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
