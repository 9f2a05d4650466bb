package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/1005Studio/1005ManagmentV02/internal/cache"
	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// Lister loads every document of a collection.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Service loads snapshots from storage and serves the derived views.
type Service struct {
	records       Lister[models.ProductionRecord]
	subscriptions Lister[models.Subscription]
	cache         cache.DashboardCache
	now           func() time.Time
	logger        *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(
	records Lister[models.ProductionRecord],
	subscriptions Lister[models.Subscription],
	dashboardCache cache.DashboardCache,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dashboardCache == nil {
		dashboardCache = cache.NewNoopDashboardCache()
	}
	return &Service{
		records:       records,
		subscriptions: subscriptions,
		cache:         dashboardCache,
		now:           time.Now,
		logger:        logger,
	}
}

// Snapshot reads records and subscriptions together so that every view is derived
// from the same state.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.records.List(gctx)
		if err != nil {
			return fmt.Errorf("load production records: %w", err)
		}
		snap.Records = records
		return nil
	})
	g.Go(func() error {
		subs, err := s.subscriptions.List(gctx)
		if err != nil {
			return fmt.Errorf("load subscriptions: %w", err)
		}
		snap.Subscriptions = subs
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Dashboard returns the dashboard for filter, from cache when possible.
// The cache generation is read before storage, so a result computed across a concurrent
// write is stored under the generation that write retired.
func (s *Service) Dashboard(ctx context.Context, filter models.FilterSpec) (*models.Dashboard, error) {
	if filter.Arrival == "" {
		filter.Arrival = models.ArrivalAll
	}

	gen, err := s.cache.Generation(ctx)
	cacheable := err == nil
	if err != nil {
		s.logger.Warn("dashboard cache generation unavailable", zap.Error(err))
	}

	if cacheable {
		cached, ok, err := s.cache.Get(ctx, gen, filter)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		if ok {
			return cached, nil
		}
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := Compute(snap, filter)
	dashboard.GeneratedAt = s.now().UTC()

	if cacheable {
		if err := s.cache.Set(ctx, gen, filter, &dashboard); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}

	s.logger.Debug("dashboard computed",
		zap.Int("year", filter.Year),
		zap.Int("month", filter.Month),
		zap.Int("records", len(dashboard.Records)),
		zap.Int("weeks", len(dashboard.Weeks)),
	)
	return &dashboard, nil
}

// Week returns the group of every record in the Monday to Sunday week containing date.
// The active period does not narrow it, so a week spanning two months is reported whole.
func (s *Service) Week(ctx context.Context, date time.Time) (models.WeeklyGroup, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return models.WeeklyGroup{}, err
	}
	return weekGroup(snap.Records, date), nil
}

// WeekInvoice returns the billing breakdown of the week containing date.
func (s *Service) WeekInvoice(ctx context.Context, date time.Time) (models.WeekInvoice, error) {
	group, err := s.Week(ctx, date)
	if err != nil {
		return models.WeekInvoice{}, err
	}
	return WeekInvoice(group.Label, group.Items), nil
}

// WeekMissing returns the missing-products list of the week containing date.
func (s *Service) WeekMissing(ctx context.Context, date time.Time) (models.MissingProducts, error) {
	group, err := s.Week(ctx, date)
	if err != nil {
		return models.MissingProducts{}, err
	}
	return WeekMissingProducts(group.Label, group.Items), nil
}

// Calendar returns the month grid of year/month.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) (models.CalendarMonth, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return models.CalendarMonth{}, err
	}
	return CalendarMonth(snap.Records, year, month), nil
}

// Invalidate drops every cached dashboard.
func (s *Service) Invalidate(ctx context.Context) error {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("invalidate dashboard cache: %w", err)
	}
	return nil
}

func weekGroup(records []models.ProductionRecord, date time.Time) models.WeeklyGroup {
	items := RecordsInWeek(records, date)
	if len(items) > 0 {
		return newWeeklyGroup(WeekLabel(date), items)
	}
	return models.WeeklyGroup{
		Label:      WeekLabel(date),
		Start:      WeekStart(date),
		End:        WeekEnd(date),
		Items:      items,
		TypeTotals: make([]models.TypeTotal, 0),
	}
}
