package main

import (
	"context"
	"log"

	"turftrack/migrations"
	"turftrack/pkg/config"
	"turftrack/pkg/database/postgresql"
	"turftrack/seeders"
)

func main() {
	cfg := config.New()
	log.Println("Using DSN:", cfg.Postgres.DSN)

	if err := postgresql.Migrate(cfg.Postgres.DSN, migrations.FS); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if err := seeders.Run(context.Background(), dbPool); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
