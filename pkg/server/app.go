package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"MLService/internal/handler/api"
	"MLService/internal/service/catalog"
	"MLService/pkg/config"
	xhttp "MLService/pkg/http"
	applogger "MLService/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	env        *xhttp.EnvelopeWriter
	catalog    *catalog.Catalog
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	env *xhttp.EnvelopeWriter,
	cat *catalog.Catalog,
) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		env:     env,
		catalog: cat,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.handler, a.env, a.logger,
		xhttp.WithHost(a.cfg.Server.Host),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithCORSOrigins(a.cfg.CORS.AllowOrigins),
		xhttp.WithMetrics(a.cfg.Metrics.Enabled, a.cfg.Metrics.Path),
		xhttp.WithAvailableEndpoints(api.AvailableEndpoints),
	)

	a.logger.Info("starting ML service",
		applogger.String("addr", fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)),
		applogger.String("environment", a.cfg.Environment),
	)
	a.logger.Info("available models", applogger.Strings("models", a.catalog.Names()))

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
