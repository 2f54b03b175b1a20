package main

import (
	"context"
	"flag"
	"os"

	"departure-board-service/internal/infrastructure/config"
	"departure-board-service/internal/infrastructure/persistence"
	"departure-board-service/internal/interface/repository"
	"departure-board-service/pkg/logger"
)

// Seeds m_destination_names with the built-in localization rows. Existing
// rows with the same canonical name are overwritten.
func main() {
	dsn := flag.String("dsn", os.Getenv("POSTGRES_DSN"), "postgres DSN")
	flag.Parse()

	log := logger.NewLogger(logger.Options{Level: "info"})
	defer log.Sync()

	if *dsn == "" {
		log.Fatal("POSTGRES_DSN or -dsn is required")
	}

	db, err := persistence.NewPostgresDB(*dsn, &repository.DestinationName{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	ctx := context.Background()
	repo := repository.NewGormDestinationRepository(db)

	destinations := config.DefaultDestinations()
	for i := range destinations {
		if err := repo.Upsert(ctx, &destinations[i]); err != nil {
			log.Fatal("Failed to seed destination", "name", destinations[i].CanonicalName, "error", err)
		}
	}

	log.Info("Seeded destinations", "count", len(destinations))
}
