package main

import (
	"context"
	"errors"
	"log"
	"os"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// Seeds the initial admin account. The password is hashed at runtime, so this
// replaces a seed INSERT in the migrations.
func main() {
	cfg := config.Load()

	pool := db.Connect(cfg.DatabaseDSN())
	defer pool.Close()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	repo := repository.NewUserRepository(pool)
	auth := service.NewAuthService(repo)
	ctx := context.Background()

	user, err := auth.CreateUser(ctx, email, password)
	if err != nil {
		if !errors.Is(err, repository.ErrEmailTaken) {
			log.Fatalf("create user failed: %v", err)
		}
		user, err = repo.GetByEmail(ctx, email)
		if err != nil {
			log.Fatalf("get user failed: %v", err)
		}
		log.Printf("user already exists id=%d\n", user.ID)
	} else {
		log.Printf("user created id=%d email=%s\n", user.ID, user.Email)
	}

	// print a token so the account is immediately usable
	tokens := service.NewTokenManager(cfg.SecretKey, cfg.AccessTokenTTL)
	token, err := tokens.Generate(user.Email)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
