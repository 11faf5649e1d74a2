// Command seed_superadmin creates the first superadmin account directly
// against the database. Use it once, before the dashboard has any account
// that could create others.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	"github.com/masjid-bouraoui/masjid-api/internal/repository"
	"github.com/masjid-bouraoui/masjid-api/internal/service"
	"github.com/masjid-bouraoui/masjid-api/pkg/config"
	"github.com/masjid-bouraoui/masjid-api/pkg/database"
)

func main() {
	var (
		email    string
		password string
		timeout  time.Duration
	)

	flag.StringVar(&email, "email", "", "email of the superadmin account")
	flag.StringVar(&password, "password", "", "password of the superadmin account (min 6 chars)")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "database timeout")
	flag.Parse()

	if email == "" || password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	users := service.NewUserService(repository.NewUserRepository(db), nil, nil)
	info, err := users.CreateSuperAdmin(ctx, models.CreateUserRequest{Email: email, Password: password})
	if err != nil {
		log.Fatalf("failed to create superadmin: %v", err)
	}

	fmt.Printf("created superadmin %s (%s)\n", info.Email, info.ID)
}
