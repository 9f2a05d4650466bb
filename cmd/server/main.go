package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/app"
	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/scheduler"
	"github.com/1005Studio/1005ManagmentV02/internal/server/handlers"
	"github.com/1005Studio/1005ManagmentV02/internal/server/router"
	commandsvc "github.com/1005Studio/1005ManagmentV02/internal/service/commands"
	whatsappsvc "github.com/1005Studio/1005ManagmentV02/internal/service/whatsapp"
	whatsappclient "github.com/1005Studio/1005ManagmentV02/pkg/clients/whatsapp"
	"github.com/1005Studio/1005ManagmentV02/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level, cfg.Log.Format))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	application, err := app.New(context.Background(), cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to initialize application", zap.Error(err))
	}
	defer func() {
		if err := application.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close storage", zap.Error(err))
		}
	}()

	commandDispatcher := commandsvc.NewService(application.Reporting, application.Periods, application.Location, logger.Named(baseLogger, "svc.commands"))

	var whatsClient whatsappclient.Client
	if cfg.WhatsApp.Enabled() {
		whatsClient = whatsappclient.NewClient(cfg.WhatsApp)
		baseLogger.Info("whatsapp client enabled")
	} else {
		baseLogger.Warn("whatsapp credentials missing, chat commands and digests disabled")
	}
	messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, commandDispatcher, logger.Named(baseLogger, "svc.whatsapp"))

	// Keep the interface nil when export is disabled.
	var exporter handlers.InvoiceExporter
	if application.Exporter != nil {
		exporter = application.Exporter
	}

	engine := router.New(router.Handlers{
		Chat:        handlers.NewChatHandler(messagingSvc, logger.Named(baseLogger, "handlers.whatsapp")),
		Dashboard:   handlers.NewDashboardHandler(application.Reporting, application.Periods, exporter, application.Location, logger.Named(baseLogger, "handlers.dashboard")),
		Productions: handlers.NewProductionHandler(application.Productions, logger.Named(baseLogger, "handlers.productions")),
		Catalog:     handlers.NewCatalogHandler(application.Catalog, logger.Named(baseLogger, "handlers.catalog")),
		Period:      handlers.NewPeriodHandler(application.Periods, logger.Named(baseLogger, "handlers.period")),
	}, cfg.Server, logger.Named(baseLogger, "router"))

	var messenger scheduler.Messenger
	if cfg.WhatsApp.Enabled() {
		messenger = messagingSvc
	}
	var digestExporter scheduler.InvoiceExporter
	if application.Exporter != nil {
		digestExporter = application.Exporter
	}

	sched, err := scheduler.NewScheduler(cfg.Reporting, application.Reporting, messenger, digestExporter, logger.Named(baseLogger, "scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to create scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
