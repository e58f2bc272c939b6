package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	_ "github.com/SergeyBogomolovv/checkout-service/docs"
	"github.com/SergeyBogomolovv/checkout-service/internal/app"
	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/dedupe"
	"github.com/SergeyBogomolovv/checkout-service/internal/gateway"
	"github.com/SergeyBogomolovv/checkout-service/internal/gateway/cardpay"
	"github.com/SergeyBogomolovv/checkout-service/internal/gateway/momo"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/SergeyBogomolovv/checkout-service/internal/notify"
	"github.com/SergeyBogomolovv/checkout-service/internal/postgres"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
)

type storage interface {
	service.OrderRepo
	service.CatalogRepo
	service.StockRepo
}

// @title           Checkout Service API
// @version         1.0
// @description     Multi-vendor storefront checkout, payments and flash sales
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var closers []io.Closer

	var store storage
	var txManager trm.Manager
	switch conf.Storage {
	case "postgres":
		db, err := postgres.New(ctx, conf.Postgres)
		panicIfErr("failed to connect to db", err)
		closers = append(closers, db)
		logger.Info("postgres connected")

		store = repo.NewPostgresRepo(db)
		txManager = trm.NewManager(db)
	default:
		logger.Warn("using in-memory storage, data is lost on restart")
		store = repo.NewMemoryRepo()
		txManager = trm.NewNoopManager()
	}

	var deduper service.Deduper = dedupe.NewNoop()
	if conf.Redis.Addr != "" {
		rdb, err := dedupe.NewRedisClient(ctx, conf.Redis)
		panicIfErr("failed to connect to redis", err)
		closers = append(closers, rdb)
		logger.Info("redis connected")
		deduper = dedupe.NewRedis(rdb, conf.Redis.DedupTTL)
	}

	var notifier interface {
		service.Notifier
		io.Closer
	} = notify.NewLogNotifier(logger)
	if len(conf.Kafka.Brokers) > 0 {
		notifier = notify.NewKafkaNotifier(logger, conf.Kafka)
	}
	closers = append(closers, notifier)

	gateways, err := gateway.NewRegistry(conf.Gateways.Default,
		cardpay.New(cardpay.Config{
			APIKey: conf.Gateways.CardPay.APIKey,
			Client: clientConfig(conf.Gateways, conf.Gateways.CardPay),
		}),
		momo.New(momo.Config{
			APIKey: conf.Gateways.Momo.APIKey,
			Client: clientConfig(conf.Gateways, conf.Gateways.Momo),
		}),
	)
	panicIfErr("failed to register gateways", err)

	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	cart := service.NewCartValidator(logger, store, service.CartConfig{
		ShippingThreshold: conf.Checkout.ShippingThreshold,
		ShippingFee:       conf.Checkout.ShippingFee,
		MaxItemQuantity:   conf.Checkout.MaxItemQuantity,
		PriceTolerance:    conf.Checkout.PriceTolerance,
	})
	flashSales := service.NewFlashSaleService(logger, txManager, store, store)
	transitions := service.NewTransitioner(logger, txManager, store, flashSales, cache, notifier)
	orderService := service.NewOrderService(logger, txManager, store, cart, flashSales, gateways, cache, transitions, service.OrderConfig{
		Currency:       conf.Checkout.Currency,
		ReturnURL:      conf.Checkout.ReturnURL,
		PendingTimeout: conf.Cron.PendingTimeout,
		SweepLimit:     conf.Cron.SweepLimit,
	})
	reconciler := service.NewReconciler(logger, store, gateways, deduper, transitions)

	handlerCfg := handler.Config{
		CronSecret: conf.Cron.Secret,
		AdminToken: conf.Admin.Token,
	}

	app := app.New(logger, conf)

	if conf.RateLimit.RPS > 0 {
		limiter := middleware.NewRateLimiter(conf.RateLimit.RPS, conf.RateLimit.Burst)
		handlerCfg.RateLimit = limiter.Middleware
		app.SetStarters(limiter)
	}

	httpHandler := handler.NewHTTPHandler(logger, orderService, reconciler, flashSales, handlerCfg)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(cache)
	slices.Reverse(closers)
	app.SetClosers(closers...)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func clientConfig(gw config.Gateways, provider config.Gateway) gateway.ClientConfig {
	return gateway.ClientConfig{
		BaseURL:          provider.BaseURL,
		Timeout:          gw.Timeout,
		BreakerFailures:  gw.BreakerFailures,
		BreakerResetTime: gw.BreakerResetTime,
	}
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
