package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"storesearch/internal/catalog"
	"storesearch/internal/config"
	"storesearch/internal/db"
	"storesearch/internal/handlers/api"
	"storesearch/internal/jobs"
	"storesearch/internal/metrics"
	"storesearch/internal/middleware"
	"storesearch/internal/recent"
	"storesearch/internal/search"
	"storesearch/internal/server"
	"storesearch/internal/storage/bolt"
	"storesearch/internal/validation"
)

func main() {
	cfg := config.Load()

	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	}
	slog.SetDefault(slog.New(handler))

	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", cfg.ConfigFile, err)
	}

	if valid, msg := validation.ValidateURL(cfg.CatalogURL); !valid {
		log.Fatalf("Invalid CATALOG_URL: %s", msg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// Recent searches, sessions and rate limits share Redis when configured.
	// Without Redis, recent searches live in a local bbolt file.
	var (
		recentStorage recent.Storage
		sharedStorage fiber.Storage
	)
	if cfg.RedisURL != "" {
		rs := redis.New(redis.Config{URL: cfg.RedisURL})
		defer rs.Close()
		recentStorage = rs
		sharedStorage = rs
		slog.Info("using redis for recent searches and sessions")
	} else {
		bs, err := bolt.NewStore(cfg.BoltPath)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", cfg.BoltPath, err)
		}
		defer bs.Close()
		recentStorage = bs

		purger := jobs.NewExpiryPurger(bs, time.Hour)
		g.Go(func() error {
			purger.Start(gctx)
			return nil
		})
		slog.Info("using bbolt for recent searches", "path", cfg.BoltPath)
	}

	// Statistics database (optional)
	var (
		lookupStore metrics.LookupStore
		statsStore  api.TopCategoriesStore
		database    *db.DB
	)
	if cfg.StatsEnabled() {
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		slog.Info("migrations completed successfully")
		lookupStore = database
		statsStore = database
	} else {
		slog.Info("strategy statistics disabled, set DATABASE_URL to enable")
	}

	recorder, err := metrics.New(lookupStore, yamlCfg.Stats.Workers, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}
	defer recorder.Close()

	catalogClient := catalog.New(ctx, catalog.Config{
		BaseURL:      cfg.CatalogURL,
		Timeout:      cfg.CatalogTimeout,
		ClientID:     cfg.CatalogClientID,
		ClientSecret: cfg.CatalogClientSecret,
		TokenURL:     cfg.CatalogTokenURL,
	})
	executor := search.NewExecutor(catalogClient, recorder, cfg.MaxCategoryAttempts)

	catalogHealth := jobs.NewCatalogHealth(catalogClient, cfg.CatalogHealthInterval)
	g.Go(func() error {
		catalogHealth.Start(gctx)
		return nil
	})

	// Shopper identity from bearer ID tokens (optional)
	var verifier middleware.TokenVerifier
	if cfg.OIDCEnabled() {
		v, err := middleware.NewOIDCVerifier(ctx, cfg.OIDCIssuer, cfg.OIDCClientID)
		if err != nil {
			slog.Warn("OIDC discovery failed, shoppers will be anonymous visitors", "issuer", cfg.OIDCIssuer, "error", err)
		} else {
			verifier = v
		}
	}

	srv := server.New(cfg, sharedStorage)
	deps := server.Deps{
		Executor:      executor,
		Recent:        recent.NewStore(recentStorage, yamlCfg.Recent.Max, cfg.RecentTTL),
		Popular:       yamlCfg.PopularSearches,
		SuggestLimit:  yamlCfg.Suggestions.Limit,
		Stats:         statsStore,
		CatalogHealth: catalogHealth,
		Verifier:      verifier,
		Gatherer:      prometheus.DefaultGatherer,
	}
	if database != nil {
		deps.Database = database
	}
	srv.RegisterRoutes(deps)

	g.Go(func() error {
		slog.Info("server started", "addr", cfg.ServerAddr)
		return srv.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Server error: %v", err)
	}
	slog.Info("server exited")
}
