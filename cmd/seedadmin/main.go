package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"creditwatch/internal/config"
	"creditwatch/internal/domain"
	"creditwatch/internal/repository/postgres"
	"creditwatch/internal/service"
)

// seedadmin bootstraps the first admin account so someone can log in and
// register everyone else through the API.
func main() {
	username := flag.String("username", "admin", "username for the admin account")
	password := flag.String("password", "", "password for the admin account (required)")
	fullName := flag.String("full-name", "Administrator", "display name for the admin account")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	authSvc := service.NewAuthService(postgres.NewUserRepo(db), cfg.JWT)

	user, err := authSvc.Register(context.Background(), service.RegisterInput{
		Username: *username,
		Password: *password,
		FullName: *fullName,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			log.Fatalf("user %q already exists", *username)
		}
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin account %q created (id %s)", user.Username, user.ID)
}
