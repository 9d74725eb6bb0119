package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"show-scheduler/cmd"
	"show-scheduler/internal/data/repository"
	"show-scheduler/internal/wire"
	"show-scheduler/pkg/cache"
	"show-scheduler/pkg/database"
	"show-scheduler/pkg/utils"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// The owner cache degrades to pass-through when redis is down; only
	// the cached fallback steps of owner resolution are lost.
	redisClient := cache.NewRedisClient(config.Redis)
	if redisClient == nil {
		logger.Warn("Redis unavailable, owner cache disabled")
	}
	ownerCache := cache.NewOwnerCache(redisClient, time.Duration(config.Redis.TTLHours)*time.Hour, logger)

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, ownerCache, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
