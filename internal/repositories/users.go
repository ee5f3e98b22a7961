package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifeupdate/api/internal/auth"
	"lifeupdate/api/internal/db"
	"lifeupdate/api/internal/models"
)

// ErrEmailTaken is returned by Register when the email already has an
// account.
var ErrEmailTaken = errors.New("an account with this email already exists")

// ErrInvalidCredentials is returned by Authenticate on a bad email/password
// pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserRepository struct {
	db *db.DB
}

func NewUserRepository(d *db.DB) *UserRepository {
	return &UserRepository{db: d}
}

// Register creates a new account and returns its id.
func (r *UserRepository) Register(ctx context.Context, email, name, password string) (int64, error) {
	var existing int64
	err := r.db.QueryRow(ctx, "SELECT id FROM users WHERE email = ?", email).Scan(&existing)
	if err == nil {
		return 0, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := r.db.InsertID(ctx,
		"INSERT INTO users (email, name, password_hash) VALUES (?, ?, ?)",
		email, name, hash,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

// Authenticate verifies credentials and returns the user id, or
// ErrInvalidCredentials.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (int64, error) {
	var id int64
	var hash string
	err := r.db.QueryRow(ctx,
		"SELECT id, password_hash FROM users WHERE email = ?", email,
	).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInvalidCredentials
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up user: %w", err)
	}
	if !auth.CheckPassword(password, hash) {
		return 0, ErrInvalidCredentials
	}
	return id, nil
}

// GetByID returns the user, or nil when the id is unknown.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		"SELECT id, name, email FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}
