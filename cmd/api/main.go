package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/bootstrap"
	"github.com/sangkips/booth-pos/internal/config"
	"github.com/sangkips/booth-pos/internal/presentation/http/handler"
	"github.com/sangkips/booth-pos/internal/presentation/http/routes"
	"github.com/sangkips/booth-pos/pkg/logger"
	"github.com/spf13/afero"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	services, err := bootstrap.Build(cfg, afero.NewOsFs())
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer services.Close()

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:  handler.NewProductHandler(services.Products),
		Order:    handler.NewOrderHandler(services.Orders),
		Bill:     handler.NewBillHandler(services.Bills),
		QR:       handler.NewQRHandler(services.QR, services.Settings),
		Settings: handler.NewSettingsHandler(services.Settings),
		Printer:  handler.NewPrinterHandler(services.Printer),
	}

	// Setup routes
	router, rateLimiter := routes.Setup(handlers, &routes.Deps{Cfg: cfg, Logger: log})
	defer rateLimiter.Close()

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting %s server on port %s (env %s)", cfg.App.Name, port, cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
