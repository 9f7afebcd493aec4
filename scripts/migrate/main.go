package main

import (
	"log"

	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/database"
	"github.com/Gagana-kumar/quick-mom/pkg/config"
)

// Applies pending SQL migrations from migrations/ against the configured
// database, regardless of the DB_AUTO_MIGRATE setting.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
}
