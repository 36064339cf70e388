package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Henry881-hack/corries-shop/api/routes"
	"github.com/Henry881-hack/corries-shop/internal/cart"
	"github.com/Henry881-hack/corries-shop/internal/catalog"
	"github.com/Henry881-hack/corries-shop/internal/checkout"
	"github.com/Henry881-hack/corries-shop/internal/session"
	"github.com/Henry881-hack/corries-shop/internal/users"
	"github.com/Henry881-hack/corries-shop/pkg/config"
	"github.com/Henry881-hack/corries-shop/pkg/kv"
	"github.com/Henry881-hack/corries-shop/pkg/logger"
	"github.com/Henry881-hack/corries-shop/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, closeStore, err := newStore(context.Background(), cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap store", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logg.Error(context.Background(), "error closing store", err)
		}
	}()

	registry := prometheus.NewRegistry()
	shopMetrics := metrics.NewShopMetrics(registry)

	userService, err := users.NewService(users.ServiceParams{
		Repo:           users.NewRepository(store),
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	if err := userService.EnsureSeed(context.Background(), cfg.Seed); err != nil {
		logg.Error(context.Background(), "failed to seed admin account", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(store, userService)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	productCatalog := catalog.Default()

	cartService, err := cart.NewService(cart.ServiceParams{
		Repo:    cart.NewRepository(store),
		Catalog: productCatalog,
		Session: sessionManager,
		Metrics: shopMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Config:  cfg.Checkout,
		Metrics: shopMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Store.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			registry,
			productCatalog,
			userService,
			sessionManager,
			cartService,
			checkoutService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func newStore(ctx context.Context, cfg *config.Config) (kv.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		return kv.NewMemory(), noop, nil
	case config.StoreBackendRedis:
		client, err := kv.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	default:
		file, err := kv.NewFile(cfg.Store.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return file, noop, nil
	}
}
