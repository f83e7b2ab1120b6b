package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	itemNamesCacheKey = "products:item_names"
	keyPrefix         = "products"
	metricsService    = "marketplace-service"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

func (r *RedisCache) SetItemNames(ctx context.Context, names []entity.ItemName) error {
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to marshal item names: %w", err)
	}

	timer := metrics.NewRedisTimer(metricsService, metrics.RedisOpSet)
	defer timer.ObserveDuration()

	if err := r.client.Set(ctx, itemNamesCacheKey, data, r.ttl).Err(); err != nil {
		metrics.RecordRedisError(metricsService, metrics.RedisOpSet)
		return fmt.Errorf("failed to set item names in cache: %w", err)
	}

	return nil
}

func (r *RedisCache) GetItemNames(ctx context.Context) ([]entity.ItemName, error) {
	timer := metrics.NewRedisTimer(metricsService, metrics.RedisOpGet)
	defer timer.ObserveDuration()

	data, err := r.client.Get(ctx, itemNamesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheMiss(metricsService, keyPrefix)
			return nil, nil
		}
		metrics.RecordRedisError(metricsService, metrics.RedisOpGet)
		return nil, fmt.Errorf("failed to get item names from cache: %w", err)
	}

	var names []entity.ItemName
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item names: %w", err)
	}

	metrics.RecordCacheHit(metricsService, keyPrefix)
	return names, nil
}

func (r *RedisCache) InvalidateItemNames(ctx context.Context) error {
	timer := metrics.NewRedisTimer(metricsService, metrics.RedisOpDel)
	defer timer.ObserveDuration()

	if err := r.client.Del(ctx, itemNamesCacheKey).Err(); err != nil {
		metrics.RecordRedisError(metricsService, metrics.RedisOpDel)
		return fmt.Errorf("failed to delete item names from cache: %w", err)
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// NoopCache используется, когда REDIS_ADDR не задан: всегда промах
type NoopCache struct{}

func (NoopCache) GetItemNames(context.Context) ([]entity.ItemName, error) { return nil, nil }
func (NoopCache) SetItemNames(context.Context, []entity.ItemName) error { return nil }
func (NoopCache) InvalidateItemNames(context.Context) error { return nil }
func (NoopCache) Close() error { return nil }
