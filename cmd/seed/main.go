package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"blogpost-api/config"
	"blogpost-api/pkg/helpers"
)

// Seeds two demo users and a handful of posts for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := []struct {
		username, email, fullName, bio string
	}{
		{"alice", "alice@example.com", "Alice Doe", "Writes about databases."},
		{"bob", "bob@example.com", "Bob Roe", "Occasional blogger."},
	}

	ids := make(map[string]int64, len(users))
	for _, u := range users {
		var id int64
		err := db.QueryRow(`
			INSERT INTO users (username, email, password_hash, full_name, bio)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
			RETURNING id
		`, u.username, u.email, hash, u.fullName, u.bio).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.username, err)
		}
		ids[u.username] = id
		fmt.Printf("seeded user: id=%d username=%s password=%s\n", id, u.username, password)
	}

	posts := []struct {
		username, fullName, title, content string
	}{
		{"alice", "Alice Doe", "Hello world", "This is the very first seeded post on this blog."},
		{"alice", "Alice Doe", "On indexes", "A short note about why composite indexes matter for feeds."},
		{"bob", "Bob Roe", "Introductions", "Bob here, writing the obligatory introduction post."},
	}

	for _, p := range posts {
		// Reruns must not duplicate posts; there is no unique key to upsert
		// on, so skip titles the user already has.
		var exists bool
		if err := db.QueryRow(`
			SELECT EXISTS (SELECT 1 FROM blog_posts WHERE user_id = $1 AND title = $2)
		`, ids[p.username], p.title).Scan(&exists); err != nil {
			log.Fatalf("failed to check post %q: %v", p.title, err)
		}
		if exists {
			fmt.Printf("post already seeded: title=%q author=%s\n", p.title, p.fullName)
			continue
		}

		var id int64
		err := db.QueryRow(`
			INSERT INTO blog_posts (title, content, author, user_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, p.title, p.content, p.fullName, ids[p.username]).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed post %q: %v", p.title, err)
		}
		fmt.Printf("seeded post: id=%d title=%q author=%s\n", id, p.title, p.fullName)
	}
}
