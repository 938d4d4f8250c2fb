package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/AfriTokeni/afritokeni-core/internal/logger"
)

// RateCacheRepository caches asset prices in Redis so a flapping rate
// service does not stall every conversion. Rates are stored as decimal
// strings to avoid float drift.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewRateCacheRepository creates a new repository instance with the given TTL
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRate fetches a cached rate between an asset and a currency
func (r *RateCacheRepository) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	key := fmt.Sprintf("rate:%s:%s", from, to)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return decimal.Zero, fmt.Errorf("rate not found in cache for %s->%s", from, to)
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return decimal.Zero, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"error", nil,
	)

	return rate, nil
}

// SetRate caches a rate in Redis with expiration
func (r *RateCacheRepository) SetRate(ctx context.Context, from, to string, rate decimal.Decimal) error {
	key := fmt.Sprintf("rate:%s:%s", from, to)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate.String(),
		"result", "ok",
		"error", err,
	)

	return err
}
