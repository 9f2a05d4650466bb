package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/service/reporting"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates the requested command does not exist.
var ErrUnsupportedCommand = errors.New("unsupported command")

const argDateFormat = "2006-01-02"

// ReportingAdapter defines the reporting functions required by the dispatcher.
type ReportingAdapter interface {
	Dashboard(ctx context.Context, filter models.FilterSpec) (*models.Dashboard, error)
	Week(ctx context.Context, date time.Time) (models.WeeklyGroup, error)
	WeekMissing(ctx context.Context, date time.Time) (models.MissingProducts, error)
}

// PeriodProvider returns the period the studio is currently working in.
type PeriodProvider interface {
	ActivePeriod(ctx context.Context) (models.Period, error)
}

// Dispatcher executes parsed chat commands.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command, sender string) (models.ChatReply, error)
}

// Service implements the Dispatcher interface.
type Service struct {
	reporting ReportingAdapter
	periods   PeriodProvider
	location  *time.Location
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a command dispatcher. location decides what "today" means.
func NewService(reportingSvc ReportingAdapter, periods PeriodProvider, location *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		reporting: reportingSvc,
		periods:   periods,
		location:  location,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleCommand answers a studio command with a chat reply.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command, sender string) (models.ChatReply, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.String("sender", sender), zap.Strings("args", cmd.Args))

	switch cmd.Type {
	case models.CommandReport:
		return s.periodReport(ctx)
	case models.CommandWeek:
		day, err := s.dateArg(cmd)
		if err != nil {
			return models.ChatReply{}, err
		}
		group, err := s.reporting.Week(ctx, day)
		if err != nil {
			return models.ChatReply{}, fmt.Errorf("load week: %w", err)
		}
		return models.ChatReply{Message: reporting.WeekDigest(group)}, nil
	case models.CommandMissing:
		day, err := s.dateArg(cmd)
		if err != nil {
			return models.ChatReply{}, err
		}
		missing, err := s.reporting.WeekMissing(ctx, day)
		if err != nil {
			return models.ChatReply{}, fmt.Errorf("load missing products: %w", err)
		}
		return models.ChatReply{Message: reporting.MissingDigest(missing)}, nil
	case models.CommandInvoice:
		return s.invoiceStatus(ctx)
	case models.CommandHelp:
		return HelpReply(), nil
	default:
		return models.ChatReply{}, ErrUnsupportedCommand
	}
}

// HelpReply lists the supported commands.
func HelpReply() models.ChatReply {
	return models.ChatReply{
		Title: "1005 Studio komutları",
		Message: strings.Join([]string{
			"rapor: aktif dönem özeti",
			"hafta [YYYY-AA-GG]: haftanın iş listesi",
			"eksik [YYYY-AA-GG]: haftanın eksik ürünleri",
			"fatura: fatura bekleyen işler ve ciro",
		}, "\n"),
	}
}

func (s *Service) periodReport(ctx context.Context) (models.ChatReply, error) {
	period, dashboard, err := s.activeDashboard(ctx)
	if err != nil {
		return models.ChatReply{}, err
	}
	return models.ChatReply{Message: reporting.Digest(strings.ToUpper(period.Label()), dashboard)}, nil
}

func (s *Service) invoiceStatus(ctx context.Context) (models.ChatReply, error) {
	period, dashboard, err := s.activeDashboard(ctx)
	if err != nil {
		return models.ChatReply{}, err
	}
	return models.ChatReply{
		Title: "Fatura durumu: " + period.Label(),
		Message: fmt.Sprintf("Fatura bekleyen: %d\nFaturalanan: %s",
			dashboard.Stats.PendingInvoiceCount,
			reporting.FormatAmount(dashboard.Totals.TotalInvoiceAmount),
		),
	}, nil
}

func (s *Service) activeDashboard(ctx context.Context) (models.Period, *models.Dashboard, error) {
	period, err := s.periods.ActivePeriod(ctx)
	if err != nil {
		return models.Period{}, nil, fmt.Errorf("load active period: %w", err)
	}
	dashboard, err := s.reporting.Dashboard(ctx, period.Filter())
	if err != nil {
		return models.Period{}, nil, fmt.Errorf("load dashboard: %w", err)
	}
	return period, dashboard, nil
}

// dateArg reads an optional YYYY-MM-DD argument, defaulting to today in the studio's timezone.
func (s *Service) dateArg(cmd models.Command) (time.Time, error) {
	if len(cmd.Args) == 0 {
		return models.NormalizeDate(s.now().In(s.location)), nil
	}
	day, err := time.Parse(argDateFormat, cmd.Args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected date as %s", ErrInvalidArguments, argDateFormat)
	}
	return day, nil
}
