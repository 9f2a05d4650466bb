// Package app assembles the storage backends and services shared by the server and the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/cache"
	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
	"github.com/1005Studio/1005ManagmentV02/internal/repository/memory"
	"github.com/1005Studio/1005ManagmentV02/internal/repository/mongodb"
	"github.com/1005Studio/1005ManagmentV02/internal/repository/sheets"
	"github.com/1005Studio/1005ManagmentV02/internal/service/catalog"
	"github.com/1005Studio/1005ManagmentV02/internal/service/production"
	"github.com/1005Studio/1005ManagmentV02/internal/service/reporting"
	"github.com/1005Studio/1005ManagmentV02/pkg/logger"
)

const connectTimeout = 15 * time.Second

// App holds the wired services. Exporter is nil when the invoice sheet is not configured.
type App struct {
	Config      *config.Config
	Location    *time.Location
	Store       repository.Store
	Reporting   *reporting.Service
	Productions *production.Service
	Catalog     *catalog.Service
	Periods     *catalog.PeriodService
	Exporter    *sheets.InvoiceExporter

	closers []func(context.Context) error
	logger  *zap.Logger
}

// New connects the configured backends and builds every service.
func New(ctx context.Context, cfg *config.Config, base *zap.Logger) (*App, error) {
	if base == nil {
		base = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	a := &App{Config: cfg, Location: loc, logger: base}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		base.Warn("using in-memory storage, data is lost on restart")
		a.Store = memory.NewStore()
	default:
		client, err := mongodb.Connect(connectCtx, cfg.MongoDB, logger.Named(base, "repo.mongodb"))
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		if err := client.EnsureIndexes(connectCtx); err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("ensure mongodb indexes: %w", err)
		}
		a.Store = client.Store()
	}

	dashboardCache, err := cache.NewDashboardCache(connectCtx, cfg.Cache, logger.Named(base, "cache"))
	if err != nil {
		// The dashboard is always computable from storage.
		base.Warn("dashboard cache unavailable, continuing without it", zap.Error(err))
		dashboardCache = cache.NewNoopDashboardCache()
	}
	a.closers = append(a.closers, func(context.Context) error { return dashboardCache.Close() })

	a.Reporting = reporting.NewService(a.Store.Productions, a.Store.Subscriptions, dashboardCache, logger.Named(base, "svc.reporting"))
	a.Productions = production.NewService(a.Store.Productions, a.Reporting, logger.Named(base, "svc.production"))
	a.Catalog = catalog.NewService(a.Store, a.Reporting, logger.Named(base, "svc.catalog"))
	a.Periods = catalog.NewPeriodService(a.Store.Settings, loc, logger.Named(base, "svc.period"))

	if cfg.Sheets.Enabled() {
		sheetRepo, err := sheets.NewGoogleSheetRepository(connectCtx, cfg.Sheets, logger.Named(base, "repo.sheets"))
		if err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("init sheets repository: %w", err)
		}
		a.Exporter = sheets.NewInvoiceExporter(sheetRepo, cfg.Sheets.InvoiceRange, logger.Named(base, "exporter.sheets"))
	} else {
		base.Info("google sheets credentials missing, invoice export disabled")
	}

	return a, nil
}

// Close releases the storage and cache connections. Calling it again is a no-op.
func (a *App) Close(ctx context.Context) error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
