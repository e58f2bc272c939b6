package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "webhook:"

type client interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

type redisDeduper struct {
	client client
	ttl    time.Duration
}

// NewRedisClient connects to redis and checks the connection.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// NewRedis remembers reconciled webhook deliveries for ttl.
func NewRedis(c client, ttl time.Duration) *redisDeduper {
	return &redisDeduper{client: c, ttl: ttl}
}

func (d *redisDeduper) Seen(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check webhook key: %w", err)
	}
	return n > 0, nil
}

func (d *redisDeduper) Mark(ctx context.Context, key string) error {
	if err := d.client.SetNX(ctx, keyPrefix+key, 1, d.ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark webhook key: %w", err)
	}
	return nil
}

type noop struct{}

// NewNoop never reports a delivery as seen.
func NewNoop() noop {
	return noop{}
}

func (noop) Seen(context.Context, string) (bool, error) { return false, nil }
func (noop) Mark(context.Context, string) error         { return nil }
