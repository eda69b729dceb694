package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notebook/internal/auth"
	"notebook/internal/config"
	"notebook/internal/db"
	"notebook/internal/model"
	"notebook/internal/repository"
)

// Provisions or resets the administrator account without starting the API.
func main() {
	email := flag.String("email", "admin@localhost", "admin email address")
	name := flag.String("name", "System Administrator", "admin display name")
	password := flag.String("password", "", "admin password (required)")
	reset := flag.Bool("reset", false, "overwrite the password if the account already exists")
	flag.Parse()

	if *password == "" {
		log.Fatal("missing required -password flag")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher()
	ctx := context.Background()

	passwordHash, err := hasher.Hash(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	existing, err := users.FindByEmail(ctx, *email)
	switch {
	case err == nil:
		if !*reset {
			log.Fatalf("Account %s already exists (use -reset to overwrite its password)", *email)
		}
		existing.PasswordHash = passwordHash
		existing.Name = *name
		existing.Role = model.RoleAdmin
		if err := users.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin account: %v", err)
		}
		log.Printf("Admin account %s updated", *email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin := &model.User{
			ID:           uuid.New(),
			Email:        *email,
			PasswordHash: passwordHash,
			Name:         *name,
			Role:         model.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin account: %v", err)
		}
		log.Printf("Admin account %s created", *email)
	default:
		log.Fatalf("Failed to look up account: %v", err)
	}
}
