package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/hppyapp/hppy-backend/config"
	"github.com/hppyapp/hppy-backend/pkg/helpers"
)

// Seeds a demo account with coins, a hatched platypus, and a starter
// recommended-activities shortlist for local client development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	phone := "5550100000"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (phone, password_hash, has_hatched, coins)
		VALUES ($1, $2, TRUE, 500)
		ON CONFLICT (phone) DO UPDATE SET coins = EXCLUDED.coins
		RETURNING id
	`, phone, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d phone=%s password=%s\n", id, phone, password)

	if _, err := db.Exec(`
		INSERT INTO user_animals (user_id, animal)
		VALUES ($1, 'platypus')
		ON CONFLICT (user_id, animal) DO NOTHING
	`, id); err != nil {
		log.Fatalf("failed to seed animal: %v", err)
	}

	for _, name := range []string{"Running", "Reading", "Swimming"} {
		if _, err := db.Exec(`
			INSERT INTO recommended_activities (user_id, activity_name)
			VALUES ($1, $2)
			ON CONFLICT (user_id, activity_name) DO NOTHING
		`, id, name); err != nil {
			log.Fatalf("failed to seed recommended activity: %v", err)
		}
	}
	fmt.Println("seeded platypus and recommended activities")
}
