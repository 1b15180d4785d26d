package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/torislove/gomandap-server/internal/cache"
	"github.com/torislove/gomandap-server/internal/config"
	"github.com/torislove/gomandap-server/internal/database"
	"github.com/torislove/gomandap-server/internal/handlers"
	"github.com/torislove/gomandap-server/internal/logging"
	"github.com/torislove/gomandap-server/internal/repository"
	"github.com/torislove/gomandap-server/internal/routes"
	"github.com/torislove/gomandap-server/internal/search"
	"github.com/torislove/gomandap-server/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		l := logging.L()
		l.Info().Msg("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		l := logging.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init(logging.Config{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: "gomandap-server",
	})
	logger := logging.L()

	database.Connect(cfg.Mongo)
	database.InitRedis(cfg.Redis)

	vendorRepo := repository.NewMongoVendorRepository(database.GetDB())
	cityRepo := repository.NewMongoCityRepository(database.GetDB())
	redisCache := cache.NewRedisCache(database.Rdb, cfg.Cache.Prefix)

	searchSvc := search.NewService(vendorRepo, redisCache, cfg.Cache.TTL)
	vendorSvc := services.NewVendorService(vendorRepo)
	featuredSvc := services.NewFeaturedService(vendorRepo, cityRepo, redisCache)

	// Refresh featured-vendor lists hourly so landing pages read warm caches.
	c := cron.New()
	c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		featuredSvc.RefreshAll(ctx)
	})
	c.Start()

	h := handlers.New(searchSvc, vendorSvc, featuredSvc)

	r := gin.New()
	routes.SetupRoutes(r, h, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("gomandap-server starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
