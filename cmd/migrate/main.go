package main

import (
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer l.Sync()

	if err := database.RunMigrations(cfg.DB.DSN(), "database/migrations"); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations completed successfully")
}
