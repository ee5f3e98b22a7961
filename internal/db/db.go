// Package db opens the application database. Two engines are supported:
// PostgreSQL when DATABASE_URL is set to a postgres:// URL (production), and
// a local SQLite file otherwise (development). Queries are written with ?
// placeholders and rebound to $n for PostgreSQL.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath is the development database location.
const DefaultSQLitePath = "catchup.db"

// DB wraps the sql handle with the active engine so callers can stay
// engine-agnostic.
type DB struct {
	*sql.DB
	postgres bool
}

// Open connects to PostgreSQL when databaseURL starts with "postgres",
// otherwise to the SQLite file at sqlitePath (DefaultSQLitePath when empty).
func Open(databaseURL, sqlitePath string) (*DB, error) {
	if strings.HasPrefix(databaseURL, "postgres") {
		handle, err := sql.Open("pgx", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		return &DB{DB: handle, postgres: true}, nil
	}

	if sqlitePath == "" {
		sqlitePath = DefaultSQLitePath
	}
	handle, err := sql.Open("sqlite", sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// modernc sqlite is happiest with a single writer connection.
	handle.SetMaxOpenConns(1)
	if _, err := handle.Exec("PRAGMA journal_mode=WAL"); err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	if _, err := handle.Exec("PRAGMA busy_timeout=5000"); err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	return &DB{DB: handle}, nil
}

// Postgres reports whether the PostgreSQL engine is active.
func (d *DB) Postgres() bool {
	return d.postgres
}

// Rebind converts ? placeholders to $1, $2, ... when running on PostgreSQL.
// None of our queries carry ? inside string literals.
func (d *DB) Rebind(query string) string {
	if !d.postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Exec runs a statement with placeholder rebinding.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.DB.ExecContext(ctx, d.Rebind(query), args...)
}

// Query runs a query with placeholder rebinding.
func (d *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, d.Rebind(query), args...)
}

// QueryRow runs a single-row query with placeholder rebinding.
func (d *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return d.DB.QueryRowContext(ctx, d.Rebind(query), args...)
}

// InsertID executes an INSERT and returns the generated row id, using
// RETURNING on PostgreSQL and LastInsertId on SQLite.
func (d *DB) InsertID(ctx context.Context, query string, args ...any) (int64, error) {
	if d.postgres {
		var id int64
		err := d.DB.QueryRowContext(ctx, d.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
