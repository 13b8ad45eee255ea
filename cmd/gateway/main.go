package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/palette/auction-gateway/internal/api"
	"github.com/palette/auction-gateway/internal/infrastructure/backend"
	filestore "github.com/palette/auction-gateway/internal/infrastructure/db/file"
	"github.com/palette/auction-gateway/internal/infrastructure/db/memory"
	mongostore "github.com/palette/auction-gateway/internal/infrastructure/db/mongo"
	redisstore "github.com/palette/auction-gateway/internal/infrastructure/db/redis"
	"github.com/palette/auction-gateway/internal/pkg/config"
	"github.com/palette/auction-gateway/pkg/logger"
)

// @title        Palette Auction Gateway API
// @version      1.0
// @description  Session, role-routing and marketplace gateway for the Palette art auction platform.
// @host         localhost:8080
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "auction-gateway",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := api.Dependencies{
		Backend: backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log),
		Logger:  log,
	}

	// Session snapshots survive restarts in Redis, or on disk when no
	// Redis is available.
	switch cfg.Snapshot.Driver {
	case "file":
		store, err := filestore.NewSnapshotStore(cfg.Snapshot.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Snapshot.Dir).Msg("snapshot dir unavailable")
		}
		deps.Snapshots = store
	default:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable")
		}
		defer rdb.Close()
		deps.Redis = rdb
		deps.Snapshots = redisstore.NewSnapshotStore(rdb, cfg.Session.TTL)
	}

	// Development runs on seeded in-memory marketplace data; anything else
	// expects MongoDB.
	if cfg.Env == "development" {
		deps.Bids = memory.NewBidRepository()
		deps.Applications = memory.NewApplicationRepository()
		deps.Profiles = memory.NewProfileRepository()
		deps.Dashboards = memory.NewDashboardRepository()
	} else {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Str("uri", cfg.Mongo.URI).Msg("mongodb unavailable")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}

		deps.Mongo = db
		deps.Bids = mongostore.NewBidRepository(db)
		deps.Applications = mongostore.NewApplicationRepository(db)
		deps.Profiles = mongostore.NewProfileRepository(db)
		// Dashboard aggregates are not computed in Mongo yet; both modes
		// read the snapshot fixtures.
		deps.Dashboards = memory.NewDashboardRepository()
	}

	e := api.NewRouter(api.RouterConfig{
		SessionSecret: cfg.Session.Secret,
		SessionTTL:    cfg.Session.TTL,
	}, deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
	log.Info().Msg("gateway stopped")
}
