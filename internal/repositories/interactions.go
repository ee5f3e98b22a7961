package repositories

import (
	"context"
	"fmt"

	"lifeupdate/api/internal/db"
	"lifeupdate/api/internal/models"
)

type InteractionRepository struct {
	db *db.DB
}

func NewInteractionRepository(d *db.DB) *InteractionRepository {
	return &InteractionRepository{db: d}
}

// ListByContact returns a contact's interactions, newest first.
func (r *InteractionRepository) ListByContact(ctx context.Context, contactID, userID int64) ([]models.Interaction, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, date, note FROM contact_interactions WHERE contact_id = ? AND user_id = ? ORDER BY date DESC, id DESC",
		contactID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	var interactions []models.Interaction
	for rows.Next() {
		var in models.Interaction
		if err := rows.Scan(&in.ID, &in.Date, &in.Note); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		interactions = append(interactions, in)
	}
	return interactions, rows.Err()
}

// Add records a new interaction note for a contact.
func (r *InteractionRepository) Add(ctx context.Context, contactID, userID int64, date, note string) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO contact_interactions (contact_id, user_id, date, note) VALUES (?, ?, ?, ?)",
		contactID, userID, date, note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert interaction: %w", err)
	}
	return nil
}

// Delete removes one interaction, only if it belongs to the user.
func (r *InteractionRepository) Delete(ctx context.Context, id, userID int64) error {
	_, err := r.db.Exec(ctx,
		"DELETE FROM contact_interactions WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete interaction: %w", err)
	}
	return nil
}
