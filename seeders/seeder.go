package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@turftrack.local"
	demoPassword = "demo1234"
)

// Run populates a fresh database with a demo account, a small fleet and its
// service history. A database that already has equipment is left untouched.
func Run(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT count(*) FROM equipment").Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing equipment: %w", err)
	}
	if count > 0 {
		log.Println("Database already seeded. Skipping.")
		return nil
	}

	log.Println("Seeding database...")

	userID, err := seedDemoUser(ctx, db)
	if err != nil {
		return err
	}
	if err := seedFleet(ctx, db, userID); err != nil {
		return err
	}

	log.Println("Seeding complete!")
	return nil
}

func seedDemoUser(ctx context.Context, db *pgxpool.Pool) (uint64, error) {
	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", demoEmail).Scan(&userID)
	if err == nil {
		return userID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	log.Println("  - Creating demo user...")
	err = db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, first_name, last_name) VALUES ($1, $2, $3, $4) RETURNING id`,
		demoEmail, string(hash), "Demo", "Greenskeeper",
	).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to create demo user: %w", err)
	}
	return userID, nil
}

func seedFleet(ctx context.Context, db *pgxpool.Pool, userID uint64) error {
	equipmentIDs := make([]uint64, len(equipmentData))
	for i, item := range equipmentData {
		log.Printf("  - Creating equipment %q...", item.Name)
		err := db.QueryRow(ctx,
			`INSERT INTO equipment (user_id, name, make, model, year, serial_number, current_hours, status, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			userID, item.Name, item.Make, item.Model, item.Year, item.SerialNumber, item.CurrentHours, item.Status, item.Notes,
		).Scan(&equipmentIDs[i])
		if err != nil {
			return fmt.Errorf("failed to insert equipment %q: %w", item.Name, err)
		}
	}

	for _, entry := range maintenanceLogData {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			return fmt.Errorf("bad seed date %q: %w", entry.Date, err)
		}
		_, err = db.Exec(ctx,
			`INSERT INTO maintenance_logs (user_id, equipment_id, date, type, description, cost, hours_at_service, performed_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			userID, equipmentIDs[entry.EquipmentIndex], date, entry.Type, entry.Description, entry.Cost, entry.HoursAtService, entry.PerformedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert maintenance log: %w", err)
		}
	}
	return nil
}
