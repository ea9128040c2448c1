package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/OpenHoursHQ/openhours/internal/cache"
	"github.com/OpenHoursHQ/openhours/internal/config"
	"github.com/OpenHoursHQ/openhours/internal/db"
	"github.com/OpenHoursHQ/openhours/internal/events"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}

	// run pending migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	if cfg.RedisAddress != "" {
		cache.Init(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	}

	if err := events.Init(cfg.MQTTBrokerURL, "openhours-server"); err != nil {
		log.Fatal().Err(err).Msg("mqtt init failed")
	}

	store := db.NewStore()

	r := gin.Default()
	RegisterRoutes(r, cfg, store)

	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
