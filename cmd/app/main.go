package main

import (
	"stay/config"
	"stay/di"
	"stay/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Maintenance.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start availability maintenance")
	}
	defer app.Maintenance.Stop()

	app.HTTP.Serve()
}
