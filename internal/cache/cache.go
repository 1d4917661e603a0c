// Package cache provides the redis-backed verdict cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chawalitkim/veritas-lens-project/internal/config"
	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
)

// ErrMiss is returned when no cached verdict exists for the key.
var ErrMiss = errors.New("cache miss")

const (
	keyPrefix         = "verdict:"
	connectionTimeout = 5 * time.Second
	defaultTTL        = 6 * time.Hour
)

type VerdictCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis and verifies the connection. Callers treat a nil
// cache as disabled.
func New(cfg config.CacheConfig) (*VerdictCache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := defaultTTL
	if cfg.TTLMinutes > 0 {
		ttl = time.Duration(cfg.TTLMinutes) * time.Minute
	}

	return &VerdictCache{client: client, ttl: ttl}, nil
}

// Key digests the normalized claim together with everything that changes
// the verdict: provider, model and evidence mode. Same claim, different
// model, different entry.
func Key(normalizedClaim, provider, model, mode string) string {
	sum := sha256.Sum256([]byte(normalizedClaim + "|" + provider + "|" + model + "|" + mode))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func (c *VerdictCache) Get(ctx context.Context, key string) (*model.Result, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var result model.Result
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached verdict: %w", err)
	}
	return &result, nil
}

func (c *VerdictCache) Set(ctx context.Context, key string, result *model.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode verdict: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Ping reports cache health for the readiness endpoint.
func (c *VerdictCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *VerdictCache) Close() error {
	return c.client.Close()
}
