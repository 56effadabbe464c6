package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BuraphaS/first-socket-backend/api"
	"github.com/BuraphaS/first-socket-backend/config"
	"github.com/BuraphaS/first-socket-backend/game"
	"github.com/BuraphaS/first-socket-backend/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	InitializeLogger(cfg)

	registry := game.NewRegistry()
	registry.StartSweeper(context.Background(), cfg.RoomTTL, cfg.SweepInterval)

	hub := websocket.NewHub()
	svc := game.NewService(registry, hub)
	handler := websocket.NewHandler(hub, registry, svc)

	log.Info().Msg("Starting App")
	if err := api.StartAPI(cfg, handler); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func InitializeLogger(cfg config.Config) {
	if !cfg.Logging {
		log.Logger = log.Output(os.Stdout)
	} else {
		runLogFile, err := os.OpenFile(
			cfg.LogFile,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0664,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open log file")
		}
		multi := zerolog.MultiLevelWriter(runLogFile, os.Stdout)
		log.Logger = zerolog.New(multi).With().Timestamp().Logger()
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
