package main

import (
	"context"
	"log"

	"lifeupdate/api/internal/config"
	"lifeupdate/api/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx := context.Background()
	database, err := db.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.InitSchema(ctx); err != nil {
		log.Fatal("Failed to create tables:", err)
	}

	engine := "sqlite"
	if database.Postgres() {
		engine = "postgres"
	}
	log.Printf("✅ Database setup complete (%s)", engine)
}
