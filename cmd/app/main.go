package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mt2web/mt2web/internal/auth"
	"github.com/mt2web/mt2web/internal/bootstrap"
	"github.com/mt2web/mt2web/internal/character"
	"github.com/mt2web/mt2web/internal/combat"
	"github.com/mt2web/mt2web/internal/concurrency"
	"github.com/mt2web/mt2web/internal/config"
	"github.com/mt2web/mt2web/internal/database"
	"github.com/mt2web/mt2web/internal/feed"
	"github.com/mt2web/mt2web/internal/report"
	"github.com/mt2web/mt2web/internal/server"
	"github.com/mt2web/mt2web/internal/work"
	"github.com/mt2web/mt2web/internal/worker"
)

// @title mt2web API
// @version 1.0
// @description Character progression, work queue and battle report API.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	warnings, err := cfg.Validate()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		ApplicationName: cfg.ServiceName,
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		LockTimeout:     cfg.DBLockTimeout,
	})
	if err != nil {
		return err
	}
	defer dbPool.Close()

	applied, err := database.Migrate(ctx, dbPool)
	if err != nil {
		return err
	}
	slog.Info("Database migrated", "applied", applied)

	mobs, err := bootstrap.LoadMobCatalog(cfg.MobCatalogPath)
	if err != nil {
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	hub := feed.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: eventBus,
		FeedHub:  hub,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	repos := bootstrap.InitializeRepositories(dbPool)
	// One lock manager so character and work operations serialize per character
	locks := concurrency.NewLockManager()

	characterService := character.NewService(repos.Characters, repos.Works, locks, character.CacheConfig{
		Size: cfg.CharacterCacheSize,
		TTL:  cfg.CharacterCacheTTL,
	})
	workService := work.NewService(
		repos.Works,
		repos.Characters,
		mobs,
		combat.NewResolver(nil),
		locks,
		pool,
		publisher,
		work.Config{TravelSpeed: cfg.TravelSpeed, MaxTravelTime: cfg.MaxTravelTime},
	)
	reportService := report.NewService(repos.Reports, publisher)

	verifier, err := auth.NewVerifier(auth.Config{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
	})
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RateLimit:      cfg.RateLimit,
	}, server.Dependencies{
		DB:             dbPool,
		Characters:     characterService,
		Works:          workService,
		Reports:        reportService,
		Mobs:           mobs,
		CatalogVersion: mobs.Version(),
		FeedHub:        hub,
		FeedWebSocket:  feed.NewWebSocket(hub, cfg.WSAllowedOrigins),
		Tokens:         verifier,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		WorkerPool:         pool,
		FeedHub:            hub,
		ResilientPublisher: publisher,
	})

	return runErr
}
