// Package cache stores computed dashboards keyed by their filter.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

const (
	dashboardKeyPrefix = "studio:dashboard"
	generationKey      = "studio:dashboard-generation"
	defaultTTL         = 5 * time.Minute
)

// DashboardCache memoises dashboards per filter and generation. InvalidateAll starts a new
// generation, so entries written for an older one are never read again and expire on their TTL.
type DashboardCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, generation int64, filter models.FilterSpec) (*models.Dashboard, bool, error)
	Set(ctx context.Context, generation int64, filter models.FilterSpec, dashboard *models.Dashboard) error
	InvalidateAll(ctx context.Context) error
	Close() error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

type noopDashboardCache struct{}

// NewDashboardCache connects to Redis when configured and falls back to a no-op cache otherwise.
func NewDashboardCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (DashboardCache, error) {
	if !cfg.Enabled() {
		return NewNoopDashboardCache(), nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	logger.Info("dashboard cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", ttl))
	return &redisDashboardCache{client: client, ttl: ttl, logger: logger}, nil
}

// NewNoopDashboardCache returns a cache that never hits.
func NewNoopDashboardCache() DashboardCache {
	return noopDashboardCache{}
}

func (c *redisDashboardCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation failed: %w", err)
	}
	return gen, nil
}

func (c *redisDashboardCache) Get(ctx context.Context, generation int64, filter models.FilterSpec) (*models.Dashboard, bool, error) {
	payload, err := c.client.Get(ctx, DashboardKey(generation, filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var dashboard models.Dashboard
	if err := json.Unmarshal(payload, &dashboard); err != nil {
		return nil, false, fmt.Errorf("decode dashboard cache: %w", err)
	}
	return &dashboard, true, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, generation int64, filter models.FilterSpec, dashboard *models.Dashboard) error {
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("encode dashboard cache: %w", err)
	}
	if err := c.client.Set(ctx, DashboardKey(generation, filter), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisDashboardCache) InvalidateAll(ctx context.Context) error {
	gen, err := c.client.Incr(ctx, generationKey).Result()
	if err != nil {
		return fmt.Errorf("redis incr generation failed: %w", err)
	}
	c.logger.Debug("dashboard cache invalidated", zap.Int64("generation", gen))
	return nil
}

func (c *redisDashboardCache) Close() error {
	return c.client.Close()
}

func (noopDashboardCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (noopDashboardCache) Get(context.Context, int64, models.FilterSpec) (*models.Dashboard, bool, error) {
	return nil, false, nil
}

func (noopDashboardCache) Set(context.Context, int64, models.FilterSpec, *models.Dashboard) error {
	return nil
}

func (noopDashboardCache) InvalidateAll(context.Context) error {
	return nil
}

func (noopDashboardCache) Close() error {
	return nil
}

// DashboardKey derives the cache key of a filter within a generation. Search text is compared
// case-insensitively, so it is folded before hashing.
func DashboardKey(generation int64, filter models.FilterSpec) string {
	arrival := filter.Arrival
	if arrival == "" {
		arrival = models.ArrivalAll
	}
	raw := strings.Join([]string{
		"year=" + strconv.Itoa(filter.Year),
		"month=" + strconv.Itoa(filter.Month),
		"type=" + string(filter.Type),
		"arrival=" + string(arrival),
		"search=" + strings.ToLower(filter.Search),
	}, "|")
	hash := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%d:%s", dashboardKeyPrefix, generation, hex.EncodeToString(hash[:]))
}
