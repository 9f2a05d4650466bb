package reporting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository/memory"
)

type cacheKey struct {
	gen    int64
	filter models.FilterSpec
}

// countingCache is an in-process DashboardCache with the same generation semantics as Redis.
type countingCache struct {
	mu          sync.Mutex
	gen         int64
	entries     map[cacheKey]*models.Dashboard
	gets, sets  int
	invalidated int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: make(map[cacheKey]*models.Dashboard)}
}

func (c *countingCache) Generation(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen, nil
}

func (c *countingCache) Get(_ context.Context, gen int64, f models.FilterSpec) (*models.Dashboard, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	d, ok := c.entries[cacheKey{gen, f}]
	return d, ok, nil
}

func (c *countingCache) Set(_ context.Context, gen int64, f models.FilterSpec, d *models.Dashboard) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[cacheKey{gen, f}] = d
	return nil
}

func (c *countingCache) InvalidateAll(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	c.gen++
	return nil
}

func (c *countingCache) Close() error { return nil }

// writingLister runs onList once, after copying its records, to simulate a write
// landing while a dashboard is being computed.
type writingLister struct {
	mu      sync.Mutex
	records []models.ProductionRecord
	onList  func()
}

func (l *writingLister) List(context.Context) ([]models.ProductionRecord, error) {
	l.mu.Lock()
	out := append([]models.ProductionRecord(nil), l.records...)
	hook := l.onList
	l.onList = nil
	l.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (l *writingLister) add(r models.ProductionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
}

type failingLister[T any] struct{}

func (failingLister[T]) List(context.Context) ([]T, error) {
	return nil, errors.New("connection reset")
}

func seededService(t *testing.T, c *countingCache) *Service {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	for _, r := range []models.ProductionRecord{
		record("", "2024-06-03", models.TypeVideo, 2, completed(), invoiced()),
		record("", "2024-06-04", models.TypeAnimation, 1, notArrived()),
		record("", "2024-06-12", models.TypeLowerThird, 1, invoiced()),
	} {
		_, err := store.Productions.Insert(ctx, r)
		require.NoError(t, err)
	}
	_, err := store.Subscriptions.Insert(ctx, models.Subscription{
		Name: "Adobe", Price: decimal.NewFromInt(20), Currency: models.CurrencyUSD, Cycle: models.CycleMonthly,
	})
	require.NoError(t, err)

	svc := NewService(store.Productions, store.Subscriptions, c, nil)
	svc.now = func() time.Time { return time.Date(2024, 6, 14, 20, 0, 0, 0, time.UTC) }
	return svc
}

func TestServiceDashboard(t *testing.T) {
	c := newCountingCache()
	svc := seededService(t, c)
	ctx := context.Background()

	dash, err := svc.Dashboard(ctx, models.FilterSpec{Year: 2024, Month: 6})
	require.NoError(t, err)

	assert.Equal(t, models.ArrivalAll, dash.Filter.Arrival)
	assert.Len(t, dash.Records, 3)
	assert.Len(t, dash.Weeks, 2)
	assert.True(t, decimal.NewFromInt(80000).Equal(dash.Totals.TotalInvoiceAmount))
	assert.True(t, decimal.NewFromInt(680).Equal(dash.Totals.MonthlySubscriptionCost))
	assert.True(t, decimal.NewFromInt(79320).Equal(dash.Totals.NetProfit))
	assert.Equal(t, time.Date(2024, 6, 14, 20, 0, 0, 0, time.UTC), dash.GeneratedAt)

	again, err := svc.Dashboard(ctx, models.FilterSpec{Year: 2024, Month: 6, Arrival: models.ArrivalAll})
	require.NoError(t, err)
	assert.Same(t, dash, again)
	assert.Equal(t, 1, c.sets)

	require.NoError(t, svc.Invalidate(ctx))
	assert.Equal(t, 1, c.invalidated)
	_, err = svc.Dashboard(ctx, models.FilterSpec{Year: 2024, Month: 6})
	require.NoError(t, err)
	assert.Equal(t, 2, c.sets)
}

func TestServiceWeekViews(t *testing.T) {
	svc := seededService(t, newCountingCache())
	ctx := context.Background()

	week, err := svc.Week(ctx, day("2024-06-05"))
	require.NoError(t, err)
	assert.Equal(t, "3 HAZIRAN - 9 HAZIRAN HAFTASI", week.Label)
	assert.Len(t, week.Items, 2)

	invoice, err := svc.WeekInvoice(ctx, day("2024-06-05"))
	require.NoError(t, err)
	assert.Len(t, invoice.Lines, 1)
	assert.True(t, decimal.NewFromInt(60000).Equal(invoice.TotalAmount))

	missing, err := svc.WeekMissing(ctx, day("2024-06-05"))
	require.NoError(t, err)
	assert.Len(t, missing.Items, 1)

	empty, err := svc.Week(ctx, day("2024-07-01"))
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, "1 TEMMUZ - 7 TEMMUZ HAFTASI", empty.Label)

	cal, err := svc.Calendar(ctx, 2024, time.June)
	require.NoError(t, err)
	assert.Len(t, cal.Days[2].Items, 1)
}

func TestServiceSnapshotError(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(failingLister[models.ProductionRecord]{}, store.Subscriptions, nil, nil)

	_, err := svc.Dashboard(context.Background(), models.FilterSpec{Year: 2024, Month: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load production records")
}

func TestServiceDashboardWriteDuringCompute(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	records := &writingLister{records: []models.ProductionRecord{
		record("a", "2024-06-03", models.TypeVideo, 1, invoiced()),
	}}
	svc := NewService(records, store.Subscriptions, newCountingCache(), nil)
	records.onList = func() {
		records.add(record("b", "2024-06-04", models.TypeVideo, 1, invoiced()))
		assert.NoError(t, svc.Invalidate(ctx))
	}

	filter := models.FilterSpec{Year: 2024, Month: 6}
	first, err := svc.Dashboard(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Stats.ActiveTotal)

	second, err := svc.Dashboard(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Stats.ActiveTotal)
	assert.Len(t, second.Records, 2)
}

type brokenGenerationCache struct{ *countingCache }

func (*brokenGenerationCache) Generation(context.Context) (int64, error) {
	return 0, errors.New("redis: connection refused")
}

func TestServiceDashboardWithoutGeneration(t *testing.T) {
	c := &brokenGenerationCache{countingCache: newCountingCache()}
	svc := seededService(t, newCountingCache())
	svc.cache = c

	dash, err := svc.Dashboard(context.Background(), models.FilterSpec{Year: 2024, Month: 6})
	require.NoError(t, err)
	assert.Len(t, dash.Records, 3)
	assert.Zero(t, c.gets)
	assert.Zero(t, c.sets)
}

func TestServiceWeekSpansMonthBoundary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for _, r := range []models.ProductionRecord{
		record("", "2024-05-30", models.TypeVideo, 1, invoiced()),
		record("", "2024-06-01", models.TypeVideo, 2, invoiced()),
		record("", "2024-06-03", models.TypeVideo, 1, invoiced()),
	} {
		_, err := store.Productions.Insert(ctx, r)
		require.NoError(t, err)
	}
	svc := NewService(store.Productions, store.Subscriptions, nil, nil)

	week, err := svc.Week(ctx, day("2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, "27 MAYIS - 2 HAZIRAN HAFTASI", week.Label)
	assert.Len(t, week.Items, 2)

	invoice, err := svc.WeekInvoice(ctx, day("2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, 3, invoice.TotalQuantity)
}
