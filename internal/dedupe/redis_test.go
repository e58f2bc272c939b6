package dedupe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	keys map[string]time.Duration
	err  error
}

func (c *fakeClient) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if c.err != nil {
		cmd.SetErr(c.err)
		return cmd
	}
	var n int64
	for _, k := range keys {
		if _, ok := c.keys[k]; ok {
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func (c *fakeClient) SetNX(ctx context.Context, key string, _ any, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	if c.err != nil {
		cmd.SetErr(c.err)
		return cmd
	}
	_, exists := c.keys[key]
	if !exists {
		c.keys[key] = expiration
	}
	cmd.SetVal(!exists)
	return cmd
}

func TestRedisDeduper(t *testing.T) {
	ctx := context.Background()
	c := &fakeClient{keys: make(map[string]time.Duration)}
	d := NewRedis(c, 10*time.Minute)

	seen, err := d.Seen(ctx, "cardpay:cs_1:complete")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, d.Mark(ctx, "cardpay:cs_1:complete"))
	// marking twice is harmless
	require.NoError(t, d.Mark(ctx, "cardpay:cs_1:complete"))
	assert.Equal(t, 10*time.Minute, c.keys["webhook:cardpay:cs_1:complete"])

	seen, err = d.Seen(ctx, "cardpay:cs_1:complete")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = d.Seen(ctx, "cardpay:cs_1:expired")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestRedisDeduper_Errors(t *testing.T) {
	ctx := context.Background()
	redisErr := errors.New("connection refused")
	d := NewRedis(&fakeClient{err: redisErr}, time.Minute)

	_, err := d.Seen(ctx, "k")
	assert.ErrorIs(t, err, redisErr)
	assert.ErrorIs(t, d.Mark(ctx, "k"), redisErr)
}

func TestNoop(t *testing.T) {
	d := NewNoop()
	seen, err := d.Seen(context.Background(), "k")
	assert.NoError(t, err)
	assert.False(t, seen)
	assert.NoError(t, d.Mark(context.Background(), "k"))
}
