package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage string `validate:"required,oneof=postgres memory"`

	// Postgres is validated only when it is the selected storage.
	Postgres Postgres `validate:"-"`

	Redis Redis

	Kafka Kafka

	Cache Cache

	Checkout Checkout `validate:"required"`

	Gateways Gateways `validate:"required"`

	Cron Cron `validate:"required"`

	Admin Admin

	RateLimit RateLimit
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// Redis backs webhook delivery dedupe. Empty Addr disables it.
type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int           `validate:"gte=0"`
	DedupTTL time.Duration `validate:"gte=0"`
}

// Kafka carries order status events to the notification service.
// No brokers means events are only logged.
type Kafka struct {
	Brokers      []string      `validate:"omitempty,dive,hostname_port"`
	StatusTopic  string        `validate:"required"`
	BatchTimeout time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Checkout struct {
	Currency          string `validate:"required,len=3"`
	ShippingThreshold int64  `validate:"gte=0"`
	ShippingFee       int64  `validate:"gte=0"`
	MaxItemQuantity   int    `validate:"gte=1"`
	PriceTolerance    int64  `validate:"gte=0"`
	ReturnURL         string `validate:"omitempty,url"`
}

type Gateways struct {
	Default string  `validate:"required,oneof=cardpay momo"`
	CardPay Gateway `validate:"required"`
	Momo    Gateway `validate:"required"`

	Timeout          time.Duration `validate:"gt=0"`
	BreakerFailures  int           `validate:"gte=1"`
	BreakerResetTime time.Duration `validate:"gt=0"`
}

// Gateway credentials may be empty: the adapter reports a config error on use.
type Gateway struct {
	BaseURL string `validate:"required,url"`
	APIKey  string
}

type Cron struct {
	Secret         string        `validate:"required,min=16"`
	PendingTimeout time.Duration `validate:"gt=0"`
	// SweepLimit caps how many stale orders one sweep cancels.
	SweepLimit int `validate:"gte=1"`
}

type Admin struct {
	Token string `validate:"omitempty,min=16"`
}

type RateLimit struct {
	RPS   float64 `validate:"gte=0"`
	Burst int     `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Storage: env("STORAGE", "postgres"),

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
			DedupTTL: envDuration("REDIS_DEDUP_TTL", 10*time.Minute),
		},

		Kafka: Kafka{
			Brokers:      envList("KAFKA_BROKERS"),
			StatusTopic:  env("KAFKA_STATUS_TOPIC", "order-status"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Checkout: Checkout{
			Currency:          env("CHECKOUT_CURRENCY", "XAF"),
			ShippingThreshold: envInt64("CHECKOUT_FREE_SHIPPING_THRESHOLD", 50000),
			ShippingFee:       envInt64("CHECKOUT_SHIPPING_FEE", 2000),
			MaxItemQuantity:   envInt("CHECKOUT_MAX_ITEM_QUANTITY", 100),
			PriceTolerance:    envInt64("CHECKOUT_PRICE_TOLERANCE", 1),
			ReturnURL:         env("CHECKOUT_RETURN_URL", "http://localhost:3000/checkout/complete"),
		},

		Gateways: Gateways{
			Default: env("GATEWAY_DEFAULT", "cardpay"),
			CardPay: Gateway{
				BaseURL: env("CARDPAY_BASE_URL", "https://api.cardpay.example"),
				APIKey:  env("CARDPAY_API_KEY", ""),
			},
			Momo: Gateway{
				BaseURL: env("MOMO_BASE_URL", "https://api.momo.example"),
				APIKey:  env("MOMO_API_KEY", ""),
			},
			Timeout:          envDuration("GATEWAY_TIMEOUT", 15*time.Second),
			BreakerFailures:  envInt("GATEWAY_BREAKER_FAILURES", 5),
			BreakerResetTime: envDuration("GATEWAY_BREAKER_RESET", 30*time.Second),
		},

		Cron: Cron{
			Secret:         env("CRON_SECRET", ""),
			PendingTimeout: envDuration("CRON_PENDING_TIMEOUT", 24*time.Hour),
			SweepLimit:     envInt("CRON_SWEEP_LIMIT", 500),
		},

		Admin: Admin{
			Token: env("ADMIN_TOKEN", ""),
		},

		RateLimit: RateLimit{
			RPS:   envFloat("RATE_LIMIT_RPS", 5),
			Burst: envInt("RATE_LIMIT_BURST", 20),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Storage == "postgres" {
		return validate.Struct(c.Postgres)
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
