package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/numeral"
	"github.com/aretw0/numeral/internal/config"
	"github.com/aretw0/numeral/pkg/adapters/memory"
	"github.com/aretw0/numeral/pkg/adapters/redis"
	"github.com/aretw0/numeral/pkg/observability"
	"github.com/aretw0/numeral/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Closer releases resources acquired by the factory (e.g. the Redis client).
type Closer func() error

func noopCloser() error { return nil }

// createCache builds the result cache selected by cfg. A nil cache means caching is off.
func createCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ports.ResultCache, Closer, error) {
	switch cfg.Backend {
	case "", config.CacheNone:
		return nil, noopCloser, nil
	case config.CacheMemory:
		logger.Debug("Using in-memory result cache", "capacity", cfg.Capacity)
		return memory.NewCache(cfg.Capacity), noopCloser, nil
	case config.CacheRedis:
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			_ = cache.Close()
			return nil, noopCloser, fmt.Errorf("redis cache unavailable at %s: %w", cfg.Redis.Addr, err)
		}
		logger.Debug("Using redis result cache", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
		return cache, cache.Close, nil
	}
	return nil, noopCloser, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}

// createCalculator initializes a Calculator with standard CLI conventions.
// A non-nil reg enables Prometheus metrics.
func createCalculator(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*numeral.Calculator, Closer, error) {
	cache, closer, err := createCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, noopCloser, fmt.Errorf("error initializing calculator: %w", err)
	}

	opts := []numeral.Option{
		numeral.WithLogger(logger),
		numeral.WithLifecycleHooks(observability.LoggingHooks(logger)),
	}
	if cache != nil {
		opts = append(opts, numeral.WithCache(cache))
	}
	if reg != nil {
		opts = append(opts, numeral.WithLifecycleHooks(observability.NewMetrics(reg).Hooks()))
	}

	return numeral.New(opts...), closer, nil
}
