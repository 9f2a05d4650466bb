package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
)

// ErrWholeYearPeriod is returned when a month operation is attempted on a whole-year view.
var ErrWholeYearPeriod = errors.New("a whole-year period cannot be completed")

// PeriodService persists the period the dashboard is looking at.
type PeriodService struct {
	settings repository.SettingsRepository
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewPeriodService constructs a PeriodService. location decides what "this month" means.
func NewPeriodService(settings repository.SettingsRepository, location *time.Location, logger *zap.Logger) *PeriodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &PeriodService{settings: settings, location: location, now: time.Now, logger: logger}
}

// ActivePeriod returns the stored period, or the current month when none was stored.
func (p *PeriodService) ActivePeriod(ctx context.Context) (models.Period, error) {
	period, err := p.settings.ActivePeriod(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return models.PeriodOf(p.now().In(p.location)), nil
	}
	if err != nil {
		return models.Period{}, fmt.Errorf("load active period: %w", err)
	}
	return period, nil
}

// SetActivePeriod stores period after validating it.
func (p *PeriodService) SetActivePeriod(ctx context.Context, period models.Period) (models.Period, error) {
	if err := period.Validate(); err != nil {
		return models.Period{}, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	if err := p.settings.SetActivePeriod(ctx, period); err != nil {
		return models.Period{}, fmt.Errorf("store active period: %w", err)
	}
	p.logger.Info("active period changed", zap.Int("year", period.Year), zap.Int("month", period.Month))
	return period, nil
}

// ShiftMonth moves the active period by delta months, wrapping the year.
func (p *PeriodService) ShiftMonth(ctx context.Context, delta int) (models.Period, error) {
	current, err := p.ActivePeriod(ctx)
	if err != nil {
		return models.Period{}, err
	}
	return p.SetActivePeriod(ctx, current.Shift(delta))
}

// ShiftYear moves the active period by delta years, keeping the month selection.
func (p *PeriodService) ShiftYear(ctx context.Context, delta int) (models.Period, error) {
	current, err := p.ActivePeriod(ctx)
	if err != nil {
		return models.Period{}, err
	}
	current.Year += delta
	return p.SetActivePeriod(ctx, current)
}

// CompleteMonth closes the active month and advances to the next one.
func (p *PeriodService) CompleteMonth(ctx context.Context) (models.Period, error) {
	current, err := p.ActivePeriod(ctx)
	if err != nil {
		return models.Period{}, err
	}
	if current.IsWholeYear() {
		return models.Period{}, ErrWholeYearPeriod
	}

	next, err := p.SetActivePeriod(ctx, current.Shift(1))
	if err != nil {
		return models.Period{}, err
	}
	p.logger.Info("month completed", zap.String("closed", current.Label()), zap.String("active", next.Label()))
	return next, nil
}
