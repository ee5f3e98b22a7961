package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"lifeupdate/api/internal/db"
	"lifeupdate/api/internal/models"
	"lifeupdate/api/internal/vcard"
)

// DefaultCategory is assigned when a contact arrives without one.
const DefaultCategory = "Uncategorized"

type ContactRepository struct {
	db *db.DB
}

func NewContactRepository(d *db.DB) *ContactRepository {
	return &ContactRepository{db: d}
}

// ListByUser returns every contact for the user in insertion order, with
// extra fields merged into the record.
func (r *ContactRepository) ListByUser(ctx context.Context, userID int64) ([]models.Contact, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, category, extra_fields FROM contacts WHERE user_id = ? ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

// PhoneFingerprints returns the digits-only fingerprints of every Phone*
// field across the user's stored contacts. This is the existing-contact set
// the vCard duplicate detector checks against.
func (r *ContactRepository) PhoneFingerprints(ctx context.Context, userID int64) (map[string]bool, error) {
	rows, err := r.db.Query(ctx,
		"SELECT extra_fields FROM contacts WHERE user_id = ?", userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query extra fields: %w", err)
	}
	defer rows.Close()

	phones := make(map[string]bool)
	for rows.Next() {
		var extraJSON sql.NullString
		if err := rows.Scan(&extraJSON); err != nil {
			return nil, fmt.Errorf("failed to scan extra fields: %w", err)
		}
		if !extraJSON.Valid || extraJSON.String == "" {
			continue
		}
		var extra map[string]string
		if err := json.Unmarshal([]byte(extraJSON.String), &extra); err != nil {
			continue // a bad row must not break fingerprinting
		}
		for key, val := range extra {
			if !strings.HasPrefix(key, "Phone") || val == "" {
				continue
			}
			if digits := vcard.Digits(val); digits != "" {
				phones[digits] = true
			}
		}
	}
	return phones, rows.Err()
}

// Categories returns the user's distinct category names, sorted.
func (r *ContactRepository) Categories(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT DISTINCT category FROM contacts WHERE user_id = ? AND category IS NOT NULL ORDER BY category",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Insert adds a contact and returns its id. extra may be nil.
func (r *ContactRepository) Insert(ctx context.Context, userID int64, name, category string, extra *orderedmap.OrderedMap[string, string]) (int64, error) {
	if category == "" {
		category = DefaultCategory
	}
	extraJSON, err := marshalExtra(extra)
	if err != nil {
		return 0, err
	}
	id, err := r.db.InsertID(ctx,
		"INSERT INTO contacts (user_id, name, category, extra_fields) VALUES (?, ?, ?, ?)",
		userID, name, category, extraJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert contact: %w", err)
	}
	return id, nil
}

// Update replaces a contact's name, category, and extra fields, scoped to
// the owning user.
func (r *ContactRepository) Update(ctx context.Context, id, userID int64, name, category string, extra *orderedmap.OrderedMap[string, string]) error {
	extraJSON, err := marshalExtra(extra)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		"UPDATE contacts SET name = ?, category = ?, extra_fields = ? WHERE id = ? AND user_id = ?",
		name, category, extraJSON, id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// UpdateCategory changes a contact's category by id.
func (r *ContactRepository) UpdateCategory(ctx context.Context, id int64, category string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE contacts SET category = ? WHERE id = ?", category, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// GetByID returns one contact, or nil when not found or owned by another
// user.
func (r *ContactRepository) GetByID(ctx context.Context, id, userID int64) (*models.Contact, error) {
	row := r.db.QueryRow(ctx,
		"SELECT id, name, category, extra_fields FROM contacts WHERE id = ? AND user_id = ?",
		id, userID,
	)
	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// Delete removes a contact, only if it belongs to the user.
func (r *ContactRepository) Delete(ctx context.Context, id, userID int64) error {
	_, err := r.db.Exec(ctx,
		"DELETE FROM contacts WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// ClearAll deletes every contact for the user.
func (r *ContactRepository) ClearAll(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM contacts WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*models.Contact, error) {
	var c models.Contact
	var extraJSON sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Category, &extraJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	if extraJSON.Valid && extraJSON.String != "" {
		extra := orderedmap.New[string, string]()
		if err := json.Unmarshal([]byte(extraJSON.String), extra); err != nil {
			return nil, fmt.Errorf("failed to decode extra fields: %w", err)
		}
		c.Extra = extra
	}
	return &c, nil
}

func marshalExtra(extra *orderedmap.OrderedMap[string, string]) (any, error) {
	if extra == nil || extra.Len() == 0 {
		return nil, nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extra fields: %w", err)
	}
	return string(data), nil
}
