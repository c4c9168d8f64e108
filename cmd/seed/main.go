package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ecavus/taskboard/config"
	"github.com/ecavus/taskboard/pkg/helpers"
)

// Seeds the demo account advertised on the landing page together with a few
// sample categories and todos.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@gmail.com"
	password := "demo123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, helpers.DefaultAvatarURL(name)).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	for _, cat := range []string{"Groceries", "Work"} {
		if _, err := db.Exec(`
			INSERT INTO categories (name, user_id)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM categories WHERE name = $1 AND user_id = $2)
		`, cat, id); err != nil {
			log.Fatalf("failed to seed category %q: %v", cat, err)
		}
	}

	seedTodos := []struct {
		title    string
		category string
	}{
		{"Buy milk", "Groceries"},
		{"Prepare weekly report", "Work"},
		{"Take a walk", "General"},
	}
	for _, t := range seedTodos {
		if _, err := db.Exec(`
			INSERT INTO todos (title, category, user_id)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM todos WHERE title = $1 AND user_id = $3)
		`, t.title, t.category, id); err != nil {
			log.Fatalf("failed to seed todo %q: %v", t.title, err)
		}
	}
	fmt.Println("seeded sample categories and todos")
}
