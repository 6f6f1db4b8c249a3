package main

import (
	"context"
	"os"

	"github.com/famgift/exchange-system/internal/api"
	"github.com/famgift/exchange-system/internal/core/service"
	"github.com/famgift/exchange-system/internal/infrastructure/config"
	mongodb "github.com/famgift/exchange-system/internal/infrastructure/db/mongo"
	redisdb "github.com/famgift/exchange-system/internal/infrastructure/db/redis"
	"github.com/famgift/exchange-system/internal/infrastructure/queue"
	"github.com/famgift/exchange-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// Roster file is the source of truth for groups; absence is fatal.
	groupLoader := config.NewGroupLoader(cfg.GroupsPath, log)
	groups, err := groupLoader.Groups()
	if err != nil {
		log.Error().Err(err).Str("path", cfg.GroupsPath).Msg("failed to load group roster")
		os.Exit(1)
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to mongodb")
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to redis")
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	assignmentRepo := mongodb.NewAssignmentRepository(db)
	wishListRepo := mongodb.NewWishListRepository(db)
	if err := wishListRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure wishes indexes")
	}

	matcher := service.NewMatcher(cfg.MatchMaxAttempts)
	guard := redisdb.NewGenerationLock(rdb)
	exchange := service.NewExchangeService(assignmentRepo, matcher, guard, log)
	wishLists := service.NewWishListService(wishListRepo, log)
	auth := service.NewAuthService(groupLoader, cfg.JWTSecret, cfg.TokenTTL)

	// Reconcile persisted groups against configuration before serving:
	// retire removed groups, initialize the rest through the worker pool.
	dispatcher := queue.NewDispatcher(cfg.ReconcileWorkers, exchange, log)
	registry := service.NewRegistry(assignmentRepo, dispatcher, log)
	if err := registry.Reconcile(ctx, groups); err != nil {
		log.Error().Err(err).Msg("group reconciliation failed")
		os.Exit(1)
	}

	e := api.NewRouter(api.RouterConfig{
		DB:        db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Groups:    groupLoader,
		Exchange:  exchange,
		WishLists: wishLists,
		Auth:      auth,
		Logger:    log,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("gift exchange server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
