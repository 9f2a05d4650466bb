package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/service/reporting"
)

const jobTimeout = 2 * time.Minute

// WeekReporter builds the views the weekly job needs.
type WeekReporter interface {
	Week(ctx context.Context, date time.Time) (models.WeeklyGroup, error)
	WeekInvoice(ctx context.Context, date time.Time) (models.WeekInvoice, error)
}

// Messenger delivers outbound chat messages.
type Messenger interface {
	SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error
}

// InvoiceExporter archives a weekly invoice.
type InvoiceExporter interface {
	Export(ctx context.Context, invoice models.WeekInvoice) error
}

// Scheduler runs the weekly digest job.
type Scheduler struct {
	cron      *cron.Cron
	cfg       config.ReportingConfig
	location  *time.Location
	reporter  WeekReporter
	messenger Messenger
	exporter  InvoiceExporter
	now       func() time.Time
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. messenger and exporter are optional.
func NewScheduler(cfg config.ReportingConfig, reporter WeekReporter, messenger Messenger, exporter InvoiceExporter, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		cfg:       cfg,
		location:  loc,
		reporter:  reporter,
		messenger: messenger,
		exporter:  exporter,
		now:       time.Now,
		logger:    logger,
	}, nil
}

// Start registers the weekly job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runWeeklyDigest); err != nil {
		return fmt.Errorf("schedule weekly digest %q: %w", s.cfg.CronSchedule, err)
	}

	s.logger.Info("starting scheduler",
		zap.String("schedule", s.cfg.CronSchedule),
		zap.String("timezone", s.location.String()))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runWeeklyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.RunWeeklyDigest(ctx); err != nil {
		s.logger.Error("weekly digest failed", zap.Error(err))
	}
}

// RunWeeklyDigest sends the current week's digest and exports its invoice.
// Both steps are attempted; their errors are joined.
func (s *Scheduler) RunWeeklyDigest(ctx context.Context) error {
	today := models.NormalizeDate(s.now().In(s.location))
	s.logger.Info("generating weekly digest", zap.Time("week_of", today))

	var errs []error

	if s.messenger != nil && s.cfg.DigestRecipient != "" {
		if err := s.sendDigest(ctx, today); err != nil {
			errs = append(errs, err)
		}
	}

	if s.exporter != nil {
		invoice, err := s.reporter.WeekInvoice(ctx, today)
		if err != nil {
			errs = append(errs, fmt.Errorf("build week invoice: %w", err))
		} else if err := s.exporter.Export(ctx, invoice); err != nil {
			errs = append(errs, fmt.Errorf("export week invoice: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *Scheduler) sendDigest(ctx context.Context, today time.Time) error {
	group, err := s.reporter.Week(ctx, today)
	if err != nil {
		return fmt.Errorf("build week digest: %w", err)
	}
	req := models.OutboundMessageRequest{To: s.cfg.DigestRecipient, Message: reporting.WeekDigest(group)}
	if err := s.messenger.SendOutbound(ctx, req); err != nil {
		return fmt.Errorf("send week digest: %w", err)
	}
	s.logger.Info("weekly digest sent", zap.String("week", group.Label), zap.Int("items", len(group.Items)))
	return nil
}
