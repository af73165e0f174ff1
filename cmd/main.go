package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/lapirenov/backend/internal/app"
	"github.com/lapirenov/backend/internal/config"
	"github.com/lapirenov/backend/internal/db"
	"github.com/lapirenov/backend/internal/logger"
	"github.com/lapirenov/backend/internal/uploads"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.Initialize()

	cfg := config.Load()

	database, err := db.New(db.Options{
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		DBName:     cfg.DBName,
		SSLEnabled: cfg.SSLEnabled,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	uploadManager, err := uploads.NewManager(cfg.UploadDir)
	if err != nil {
		logger.Fatalf("Failed to prepare upload directory: %v", err)
	}

	server := app.NewApp(cfg, database, uploadManager)

	logger.Infof("Server running on port %d", cfg.Port)
	if err := server.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
