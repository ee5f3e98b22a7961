package services

import (
	"context"
	"path/filepath"
	"testing"

	"lifeupdate/api/internal/db"
	"lifeupdate/api/internal/repositories"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open("", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	if err := database.InitSchema(context.Background()); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}
	return database
}

func newTestUser(t *testing.T, d *db.DB) int64 {
	t.Helper()
	users := repositories.NewUserRepository(d)
	id, err := users.Register(context.Background(), "test@example.com", "Test User", "hunter22")
	if err != nil {
		t.Fatalf("Failed to register test user: %v", err)
	}
	return id
}
