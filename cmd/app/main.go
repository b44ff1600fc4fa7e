package main

import (
	"pureheart/config"
	"pureheart/di"
	"pureheart/helper"
	"pureheart/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						Pureheart API
// @version					1.0
// @description				Restaurant floor plan and table reservation service.
// @BasePath					/
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	defer cleanup()

	http.Serve()
}
