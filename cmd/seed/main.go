// Package main provides the one-shot demo data seeder.
//
// Seeding is a full replace: any existing teams are removed and the fixed
// demo roster is inserted in a single transaction.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/nuitinfo/podium-live/internal/database/database"
	"github.com/nuitinfo/podium-live/internal/database/migrate"
	"github.com/nuitinfo/podium-live/internal/seed"
	"github.com/nuitinfo/podium-live/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	if err := seed.Run(context.Background(), db, zlog); err != nil {
		zlog.Fatalw("seeding failed", "error", err)
	}
}
