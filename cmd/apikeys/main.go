// Command apikeys backfills API keys for accounts created before keys were
// issued at registration. It is idempotent: users that already hold a key are
// left untouched, so it can be re-run safely.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"servicehub/internal/config"
	"servicehub/internal/database"
	"servicehub/internal/pkg/apikey"
	"servicehub/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	missing, err := users.ListWithoutAPIKey(ctx)
	if err != nil {
		log.Fatalf("list users: %v", err)
	}
	if len(missing) == 0 {
		log.Println("All users already have API keys")
		return
	}

	issued := 0
	for _, u := range missing {
		key, err := apikey.Generate()
		if err != nil {
			log.Fatalf("generate key: %v", err)
		}
		if err := users.SetAPIKey(ctx, u.ID, key); err != nil {
			log.Fatalf("set key for user %d: %v", u.ID, err)
		}
		log.Printf("Issued API key to user %d (%s)", u.ID, u.Username)
		issued++
	}
	log.Printf("Done: issued %d API keys", issued)
}
