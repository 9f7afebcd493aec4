package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/database"
	"github.com/Gagana-kumar/quick-mom/pkg/config"
)

// Seeds the same directory of users the in-memory store ships with, so
// switching STORE_MODE between memory and postgres keeps assignee and
// attendee pickers populated. All users get the password "password123".
func main() {
	log.Println("🚀 Starting test users creation...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	testUsers := []struct {
		Username string
		Email    string
	}{
		{Username: "Alice Johnson", Email: "alice@example.com"},
		{Username: "Bob Williams", Email: "bob@example.com"},
		{Username: "Charlie Brown", Email: "charlie@example.com"},
		{Username: "Diana Miller", Email: "diana@example.com"},
		{Username: "Eve Davis", Email: "eve@example.com"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	log.Println("🗑️  Cleaning up existing test users...")
	db.Where("email LIKE ?", "%@example.com").Delete(&entities.User{})

	log.Println("🔑 Creating test users...")
	for _, tu := range testUsers {
		user := &entities.User{
			Username:     tu.Username,
			Email:        tu.Email,
			PasswordHash: string(hash),
		}
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", tu.Email, err)
		}
		log.Printf("   ✅ %s <%s>", tu.Username, tu.Email)
	}

	log.Println("✅ Done! Log in with any user and the password \"password123\".")
}
