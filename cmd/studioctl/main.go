package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/app"
	"github.com/1005Studio/1005ManagmentV02/internal/cli"
	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/scheduler"
	whatsappsvc "github.com/1005Studio/1005ManagmentV02/internal/service/whatsapp"
	whatsappclient "github.com/1005Studio/1005ManagmentV02/pkg/clients/whatsapp"
	"github.com/1005Studio/1005ManagmentV02/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("STUDIOCTL_ENV_FILE"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Operators read command output; logs stay off unless asked for.
	baseLogger := zap.NewNop()
	if os.Getenv("STUDIOCTL_VERBOSE") != "" {
		if baseLogger, err = logger.New(cfg.Log.Level, logger.FormatConsole); err != nil {
			return err
		}
	}
	defer func() { _ = baseLogger.Sync() }()

	ctx := context.Background()
	application, err := app.New(ctx, cfg, baseLogger)
	if err != nil {
		return err
	}
	defer func() { _ = application.Close(ctx) }()

	cliApp := &cli.App{
		Reporting: application.Reporting,
		Periods:   application.Periods,
		Location:  application.Location,
	}
	if application.Exporter != nil {
		cliApp.Exporter = application.Exporter
	}

	if cfg.WhatsApp.Enabled() && cfg.Reporting.DigestRecipient != "" {
		messaging := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsappclient.NewClient(cfg.WhatsApp), nil, logger.Named(baseLogger, "svc.whatsapp"))
		sched, err := scheduler.NewScheduler(cfg.Reporting, application.Reporting, messaging, nil, logger.Named(baseLogger, "scheduler"))
		if err != nil {
			return err
		}
		cliApp.SendDigest = sched.RunWeeklyDigest
	}

	return cli.NewRootCmd(cliApp).ExecuteContext(ctx)
}
