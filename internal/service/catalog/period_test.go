package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository/memory"
)

func newPeriodService(now time.Time) *PeriodService {
	svc := NewPeriodService(&memory.Settings{}, time.UTC, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestActivePeriodDefaultsToCurrentMonth(t *testing.T) {
	svc := newPeriodService(time.Date(2024, 11, 20, 12, 0, 0, 0, time.UTC))

	period, err := svc.ActivePeriod(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Period{Year: 2024, Month: 11}, period)
}

func TestActivePeriodUsesLocation(t *testing.T) {
	istanbul := time.FixedZone("TRT", 3*60*60)
	svc := NewPeriodService(&memory.Settings{}, istanbul, nil)
	svc.now = func() time.Time { return time.Date(2024, 12, 31, 22, 30, 0, 0, time.UTC) }

	period, err := svc.ActivePeriod(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Period{Year: 2025, Month: 1}, period)
}

func TestShiftMonthWrapsYear(t *testing.T) {
	svc := newPeriodService(time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	next, err := svc.ShiftMonth(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Period{Year: 2025, Month: 1}, next)

	back, err := svc.ShiftMonth(ctx, -2)
	require.NoError(t, err)
	assert.Equal(t, models.Period{Year: 2024, Month: 11}, back)

	stored, err := svc.ActivePeriod(ctx)
	require.NoError(t, err)
	assert.Equal(t, back, stored)
}

func TestShiftYear(t *testing.T) {
	svc := newPeriodService(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := svc.SetActivePeriod(ctx, models.Period{Year: 2024, Month: models.AllMonths})
	require.NoError(t, err)

	prev, err := svc.ShiftYear(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, models.Period{Year: 2023, Month: models.AllMonths}, prev)
}

func TestCompleteMonth(t *testing.T) {
	svc := newPeriodService(time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	next, err := svc.CompleteMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Period{Year: 2025, Month: 1}, next)

	_, err = svc.SetActivePeriod(ctx, models.Period{Year: 2025, Month: models.AllMonths})
	require.NoError(t, err)

	_, err = svc.CompleteMonth(ctx)
	assert.ErrorIs(t, err, ErrWholeYearPeriod)

	stored, err := svc.ActivePeriod(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Period{Year: 2025, Month: models.AllMonths}, stored)
}

func TestSetActivePeriodValidation(t *testing.T) {
	svc := newPeriodService(time.Now())

	_, err := svc.SetActivePeriod(context.Background(), models.Period{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidItem)
}
