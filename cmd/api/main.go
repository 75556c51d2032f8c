package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campushub/campus-hub-api/internal/handler"
	"github.com/campushub/campus-hub-api/internal/repository"
	"github.com/campushub/campus-hub-api/internal/router"
	"github.com/campushub/campus-hub-api/internal/service"
	"github.com/campushub/campus-hub-api/pkg/cache"
	"github.com/campushub/campus-hub-api/pkg/config"
	"github.com/campushub/campus-hub-api/pkg/database"
	"github.com/campushub/campus-hub-api/pkg/logger"
	"github.com/campushub/campus-hub-api/pkg/storage"
)

// @title Campus Hub API
// @version 1.0.0
// @description Campus lost & found and events board
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repository.EnsureSchema(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to ensure schema", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
	} else {
		cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Cache.TTL, logr, false)
	}

	photoStore, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	validate := validator.New()

	studentRepo := repository.NewStudentRepository(db)
	itemRepo := repository.NewItemRepository(db)
	eventRepo := repository.NewEventRepository(db)

	authSvc := service.NewAuthService(studentRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	catalogSvc := service.NewCatalogService(itemRepo, photoStore, cacheSvc, validate, logr)
	eventsSvc := service.NewEventsService(eventRepo, cacheSvc, validate, logr)

	engine := router.New(router.Deps{
		Config:         cfg,
		Logger:         logr,
		Auth:           authSvc,
		Metrics:        metricsSvc,
		AuthHandler:    handler.NewAuthHandler(authSvc),
		ItemHandler:    handler.NewItemHandler(catalogSvc, cfg.Uploads.MaxFileSizeBytes),
		EventHandler:   handler.NewEventHandler(eventsSvc),
		ContactHandler: handler.NewContactHandler(logr),
		UploadsDir:     photoStore.Dir(),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := engine.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
