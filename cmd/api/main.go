package main

import (
	"log"

	"github.com/joho/godotenv"

	"servicehub/internal/app"
	"servicehub/internal/config"
	"servicehub/internal/database"
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
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	a := app.New(cfg, db)
	log.Printf("Listening on %s", cfg.HTTPAddr)
	if err := a.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
