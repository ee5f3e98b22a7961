package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"lifeupdate/api/internal/repositories"
	"lifeupdate/api/internal/vcard"
)

// ImportStats summarizes one import run.
type ImportStats struct {
	Imported int
	Skipped  int
	Errors   int
	Total    int
}

// ImportService turns uploaded contact files into stored contacts. vCard
// uploads go through a parse-preview-import flow with duplicate flagging;
// CSV uploads replace the user's contacts wholesale.
type ImportService struct {
	contacts *repositories.ContactRepository
}

func NewImportService(contacts *repositories.ContactRepository) *ImportService {
	return &ImportService{contacts: contacts}
}

// ParseVCF parses raw vCard text and flags every record whose phone
// fingerprints match a contact the user already has. Nothing is stored.
func (s *ImportService) ParseVCF(ctx context.Context, userID int64, text string) ([]*vcard.Contact, error) {
	parsed := vcard.Parse(text)
	if len(parsed) == 0 {
		return nil, nil
	}

	existing, err := s.contacts.PhoneFingerprints(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing phone fingerprints: %w", err)
	}
	vcard.FlagDuplicates(parsed, existing)
	return parsed, nil
}

// ImportSelected appends the chosen records to the user's contacts without
// touching existing data. Records without a Name are skipped; individual
// insert failures are counted and logged, not fatal.
func (s *ImportService) ImportSelected(ctx context.Context, userID int64, contacts []*vcard.Contact) (*ImportStats, error) {
	stats := &ImportStats{}
	for _, c := range contacts {
		stats.Total++

		name := c.Name()
		if name == "" {
			stats.Skipped++
			continue
		}
		category, ok := c.Get("Category")
		if !ok || category == "" {
			category = repositories.DefaultCategory
		}

		extra := orderedmap.New[string, string]()
		c.Each(func(key, value string) {
			if key == "Name" || key == "Category" {
				return
			}
			extra.Set(key, value)
		})

		if _, err := s.contacts.Insert(ctx, userID, name, category, extra); err != nil {
			stats.Errors++
			log.Printf("Error importing contact %q: %v", name, err)
			continue
		}
		stats.Imported++
	}
	return stats, nil
}

// ImportCSV replaces the user's contacts with the rows of a CSV export.
// The header row names the columns; Name and Category are first-class and
// everything else becomes an extra field. A missing Category column
// defaults every row to Uncategorized.
func (s *ImportService) ImportCSV(ctx context.Context, userID int64, content string) (int, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 1 {
		return 0, fmt.Errorf("CSV file is empty")
	}

	header := records[0]
	nameCol, categoryCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Name":
			nameCol = i
		case "Category":
			categoryCol = i
		}
	}
	if nameCol == -1 {
		return 0, fmt.Errorf("CSV file has no Name column")
	}

	// Replace only this user's contacts with the new data.
	if err := s.contacts.ClearAll(ctx, userID); err != nil {
		return 0, err
	}

	count := 0
	for _, row := range records[1:] {
		name := cell(row, nameCol)
		category := repositories.DefaultCategory
		if categoryCol != -1 && cell(row, categoryCol) != "" {
			category = cell(row, categoryCol)
		}

		extra := orderedmap.New[string, string]()
		for i, col := range header {
			if i == nameCol || i == categoryCol {
				continue
			}
			if v := cell(row, i); v != "" {
				extra.Set(strings.TrimSpace(col), v)
			}
		}

		if _, err := s.contacts.Insert(ctx, userID, name, category, extra); err != nil {
			return count, fmt.Errorf("failed to insert contact %q: %w", name, err)
		}
		count++
	}
	return count, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
