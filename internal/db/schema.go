package db

import (
	"context"
	"fmt"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		email         TEXT   UNIQUE NOT NULL,
		name          TEXT   NOT NULL,
		password_hash TEXT   NOT NULL,
		username      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id           SERIAL PRIMARY KEY,
		user_id      INTEGER NOT NULL REFERENCES users(id),
		name         TEXT    NOT NULL,
		category     TEXT    DEFAULT 'Uncategorized',
		extra_fields TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contact_interactions (
		id         SERIAL PRIMARY KEY,
		contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		user_id    INTEGER NOT NULL REFERENCES users(id),
		date       TEXT    NOT NULL,
		note       TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS life_journal (
		id      SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		date    TEXT    NOT NULL,
		entry1  TEXT,
		entry2  TEXT,
		entry3  TEXT,
		UNIQUE(user_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS work_journal (
		id      SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		date    TEXT    NOT NULL,
		entry1  TEXT,
		entry2  TEXT,
		entry3  TEXT,
		UNIQUE(user_id, date)
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		email         TEXT    UNIQUE NOT NULL,
		name          TEXT    NOT NULL,
		password_hash TEXT    NOT NULL,
		username      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id      INTEGER NOT NULL,
		name         TEXT    NOT NULL,
		category     TEXT    DEFAULT 'Uncategorized',
		extra_fields TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS contact_interactions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		contact_id INTEGER NOT NULL,
		user_id    INTEGER NOT NULL,
		date       TEXT    NOT NULL,
		note       TEXT,
		FOREIGN KEY(contact_id) REFERENCES contacts(id) ON DELETE CASCADE,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS life_journal (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		date    TEXT    NOT NULL,
		entry1  TEXT,
		entry2  TEXT,
		entry3  TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS work_journal (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		date    TEXT    NOT NULL,
		entry1  TEXT,
		entry2  TEXT,
		entry3  TEXT,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)`,
}

// InitSchema creates the tables for the active engine if they don't exist.
// Safe to run on every startup.
func (d *DB) InitSchema(ctx context.Context) error {
	schema := sqliteSchema
	if d.postgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
