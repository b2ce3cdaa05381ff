package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/veridoc/kyc-portal/config"
	"github.com/veridoc/kyc-portal/pkg/helpers"
)

// Seeds the bootstrap admin account. Safe to run repeatedly: an
// existing account with the same email is left untouched.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "admin123")
	name := envOr("ADMIN_NAME", "Admin User")

	var existing string
	err = db.QueryRow(`SELECT id FROM users WHERE lower(email) = lower($1)`, email).Scan(&existing)
	if err == nil {
		fmt.Printf("admin already exists: id=%s email=%s\n", existing, email)
		return
	}
	if err != sql.ErrNoRows {
		log.Fatalf("failed to check admin: %v", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, 'admin')
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("admin created: id=%s email=%s\n", id, email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
