// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/lapirenov/backend/internal/config"
	"github.com/lapirenov/backend/internal/db"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// db.New runs AutoMigrate as part of opening the connection.
	_, err := db.New(db.Options{
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		DBName:     cfg.DBName,
		SSLEnabled: cfg.SSLEnabled,
	})
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed")
}
