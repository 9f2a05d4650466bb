package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

func TestDashboardKey(t *testing.T) {
	base := models.FilterSpec{Year: 2024, Month: 6, Arrival: models.ArrivalAll}

	key := DashboardKey(3, base)
	assert.True(t, strings.HasPrefix(key, dashboardKeyPrefix+":"))

	t.Run("stable", func(t *testing.T) {
		assert.Equal(t, key, DashboardKey(3, base))
	})

	t.Run("empty arrival equals ALL", func(t *testing.T) {
		f := base
		f.Arrival = ""
		assert.Equal(t, key, DashboardKey(3, f))
	})

	t.Run("search folded", func(t *testing.T) {
		upper, lower := base, base
		upper.Search = "LANSMAN"
		lower.Search = "lansman"
		assert.Equal(t, DashboardKey(3, lower), DashboardKey(3, upper))
	})

	t.Run("distinct filters", func(t *testing.T) {
		other := base
		other.Month = models.AllMonths
		assert.NotEqual(t, key, DashboardKey(3, other))

		typed := base
		typed.Type = models.TypeVideo
		assert.NotEqual(t, key, DashboardKey(3, typed))
	})

	t.Run("generation scoped", func(t *testing.T) {
		assert.NotEqual(t, key, DashboardKey(4, base))
		assert.True(t, strings.HasPrefix(DashboardKey(4, base), dashboardKeyPrefix+":4:"))
	})
}

func TestNewDashboardCacheDisabled(t *testing.T) {
	c, err := NewDashboardCache(context.Background(), config.CacheConfig{}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	filter := models.FilterSpec{Year: 2024, Month: 6}
	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, gen, filter, &models.Dashboard{}))

	got, ok, err := c.Get(ctx, gen, filter)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, c.InvalidateAll(ctx))
	assert.NoError(t, c.Close())
}
