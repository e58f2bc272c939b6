package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "memory storage does not need postgres credentials",
			env: map[string]string{
				"STORAGE":     "memory",
				"CRON_SECRET": "0123456789abcdef",
			},
		},
		{
			name: "postgres storage requires credentials",
			env: map[string]string{
				"STORAGE":     "postgres",
				"CRON_SECRET": "0123456789abcdef",
			},
			wantErr: true,
		},
		{
			name: "postgres storage with credentials",
			env: map[string]string{
				"STORAGE":           "postgres",
				"POSTGRES_USER":     "shop",
				"POSTGRES_PASSWORD": "secret",
				"CRON_SECRET":       "0123456789abcdef",
			},
		},
		{
			name: "short cron secret",
			env: map[string]string{
				"STORAGE":     "memory",
				"CRON_SECRET": "short",
			},
			wantErr: true,
		},
		{
			name: "zero sweep limit",
			env: map[string]string{
				"STORAGE":          "memory",
				"CRON_SECRET":      "0123456789abcdef",
				"CRON_SWEEP_LIMIT": "0",
			},
			wantErr: true,
		},
		{
			name: "unknown default gateway",
			env: map[string]string{
				"STORAGE":         "memory",
				"CRON_SECRET":     "0123456789abcdef",
				"GATEWAY_DEFAULT": "cash",
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_SweepLimitFromEnv(t *testing.T) {
	t.Setenv("CRON_SWEEP_LIMIT", "25")

	assert.Equal(t, 25, New().Cron.SweepLimit)
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("CRON_PENDING_TIMEOUT", "not-a-duration")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	conf := New()

	require.Len(t, conf.Kafka.Brokers, 2)
	assert.Equal(t, 24*time.Hour, conf.Cron.PendingTimeout)
	assert.Equal(t, 500, conf.Cron.SweepLimit)
	assert.Equal(t, int64(50000), conf.Checkout.ShippingThreshold)
	assert.Equal(t, "cardpay", conf.Gateways.Default)
}
