// Seeds the initial admin account. Run once against a migrated database:
//
//	ADMIN_EMAIL=ops@clicksalesmedia.com ADMIN_PASSWORD=... go run ./tests/seed
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/config"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/database"
	adminRepoPkg "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/admin"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
	adminSvc "github.com/clicksalesmedia/clicksalesmedia-sub003/services/admin"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	defer database.Close()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	hash, err := adminSvc.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := adminRepoPkg.NewPgAdminRepo(database.PgPool)
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		log.Printf("admin %s already exists, nothing to do", email)
		return
	}

	admin := &models.Admin{Email: email, PasswordHash: hash}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	log.Printf("created admin %s (%s)", admin.Email, admin.ID)
}
