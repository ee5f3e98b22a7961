package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifeupdate/api/internal/db"
	"lifeupdate/api/internal/models"
)

// ErrInvalidJournalType is returned for any journal type other than "life"
// or "work".
var ErrInvalidJournalType = errors.New("invalid journal type")

// journalTables whitelists the table per journal type. The table name is
// interpolated into SQL, so only values from this map may be used.
var journalTables = map[string]string{
	"life": "life_journal",
	"work": "work_journal",
}

type JournalRepository struct {
	db *db.DB
}

func NewJournalRepository(d *db.DB) *JournalRepository {
	return &JournalRepository{db: d}
}

func journalTable(journalType string) (string, error) {
	table, ok := journalTables[journalType]
	if !ok {
		return "", ErrInvalidJournalType
	}
	return table, nil
}

// Entries returns all of a user's entries for the journal type, newest
// first.
func (r *JournalRepository) Entries(ctx context.Context, userID int64, journalType string) ([]models.JournalEntry, error) {
	table, err := journalTable(journalType)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx,
		fmt.Sprintf("SELECT id, date, entry1, entry2, entry3 FROM %s WHERE user_id = ? ORDER BY id DESC", table),
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Entry1, &e.Entry2, &e.Entry3); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// EntryByDate returns the single entry for the user and date, or nil.
func (r *JournalRepository) EntryByDate(ctx context.Context, userID int64, journalType, date string) (*models.JournalEntry, error) {
	table, err := journalTable(journalType)
	if err != nil {
		return nil, err
	}
	var e models.JournalEntry
	err = r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT id, date, entry1, entry2, entry3 FROM %s WHERE user_id = ? AND date = ?", table),
		userID, date,
	).Scan(&e.ID, &e.Date, &e.Entry1, &e.Entry2, &e.Entry3)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entry: %w", err)
	}
	return &e, nil
}

// Save upserts the entry for the user and date: update when one exists,
// insert otherwise.
func (r *JournalRepository) Save(ctx context.Context, userID int64, journalType, date, entry1, entry2, entry3 string) error {
	table, err := journalTable(journalType)
	if err != nil {
		return err
	}

	var existingID int64
	err = r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE user_id = ? AND date = ?", table),
		userID, date,
	).Scan(&existingID)

	switch {
	case err == nil:
		_, err = r.db.Exec(ctx,
			fmt.Sprintf("UPDATE %s SET entry1 = ?, entry2 = ?, entry3 = ? WHERE id = ?", table),
			entry1, entry2, entry3, existingID,
		)
		if err != nil {
			return fmt.Errorf("failed to update journal entry: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		_, err = r.db.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (user_id, date, entry1, entry2, entry3) VALUES (?, ?, ?, ?, ?)", table),
			userID, date, entry1, entry2, entry3,
		)
		if err != nil {
			return fmt.Errorf("failed to insert journal entry: %w", err)
		}
	default:
		return fmt.Errorf("failed to check for existing entry: %w", err)
	}
	return nil
}
