package main

import (
	"context"
	"fmt"
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

	fmt.Println("📊 Database Statistics:")
	for _, table := range []string{"users", "contacts", "contact_interactions", "life_journal", "work_journal"} {
		var count int
		err := database.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
		if err != nil {
			log.Fatalf("Failed to count %s: %v", table, err)
		}
		fmt.Printf("   %-20s %d\n", table+":", count)
	}
}
