// Command import-vcf parses a vCard file and prints the records it finds,
// optionally importing them for a user. Useful for checking what a given
// export will look like before uploading it through the API.
//
// Usage:
//
//	go run ./cmd/import-vcf <file.vcf>            parse and print only
//	go run ./cmd/import-vcf -user 1 <file.vcf>    parse and import for user 1
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"lifeupdate/api/internal/config"
	"lifeupdate/api/internal/db"
	"lifeupdate/api/internal/repositories"
	"lifeupdate/api/internal/services"
	"lifeupdate/api/internal/vcard"
)

func main() {
	userID := flag.Int64("user", 0, "import parsed contacts for this user id")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: go run ./cmd/import-vcf [-user <id>] <file.vcf>")
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read vCard file: %v", err)
	}

	ctx := context.Background()
	contacts := vcard.Parse(string(content))
	log.Printf("📄 Parsed %d contact(s) from %s", len(contacts), flag.Arg(0))

	if *userID > 0 {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}
		database, err := db.Open(cfg.DatabaseURL, cfg.SQLitePath)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer database.Close()

		contactRepo := repositories.NewContactRepository(database)
		existing, err := contactRepo.PhoneFingerprints(ctx, *userID)
		if err != nil {
			log.Fatal("Failed to load existing fingerprints:", err)
		}
		vcard.FlagDuplicates(contacts, existing)

		importer := services.NewImportService(contactRepo)
		stats, err := importer.ImportSelected(ctx, *userID, contacts)
		if err != nil {
			log.Fatal("Import failed:", err)
		}
		log.Printf("✅ Imported %d, skipped %d, errors %d", stats.Imported, stats.Skipped, stats.Errors)
		return
	}

	for i, c := range contacts {
		fmt.Printf("--- Contact %d ---\n", i+1)
		c.Each(func(key, value string) {
			fmt.Printf("  %-20s %s\n", key+":", value)
		})
	}
}
