package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"wardrobe-api/config"
	"wardrobe-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@wardrobe.local"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	items := []struct {
		name, category, color, brand string
	}{
		{"Blue Jeans", "PANTS", "Blue", "Levi's"},
		{"White Tee", "SHIRT", "White", ""},
		{"Running Shoes", "SHOES", "Black", "Asics"},
	}
	for _, it := range items {
		var brand *string
		if it.brand != "" {
			brand = &it.brand
		}
		var itemID int64
		err := db.QueryRow(`
			INSERT INTO clothing_items (name, category, color, brand, owner_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, it.name, it.category, it.color, brand, id).Scan(&itemID)
		if err != nil {
			log.Fatalf("failed to seed item %q: %v", it.name, err)
		}
		fmt.Printf("seeded item: id=%d name=%s\n", itemID, it.name)
	}
}
