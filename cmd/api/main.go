package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/harish176/placement-portal/internal/config"
	"github.com/harish176/placement-portal/internal/pkg/logger"
	"github.com/harish176/placement-portal/internal/server"
)

// @title Placement Portal API
// @version 1.0
// @description Training & placement cell API: students, faculty, companies and placement records

// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	srv, err := server.NewServer(config.GetEnv("CONFIG_PATH", "configs/config.yaml"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
