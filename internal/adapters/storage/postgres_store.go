package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/guardshell/riskscan/internal/domain"
)

// PostgresStore implements ports.Store for PostgreSQL, for deployments that
// want scan history and settings to survive restarts.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens and pings a PostgreSQL connection.
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// InitSchema creates the tables if they don't exist. In production, use
// proper migration tooling.
func (s *PostgresStore) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scan_history (
		id UUID PRIMARY KEY,
		kind VARCHAR(10) NOT NULL CHECK (kind IN ('url', 'message', 'email')),
		input TEXT NOT NULL,
		score INTEGER NOT NULL CHECK (score >= 0 AND score <= 100),
		tier VARCHAR(10) NOT NULL,
		category VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_scan_history_created_at ON scan_history(created_at DESC);

	CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(100) PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Append stores one scan record.
func (s *PostgresStore) Append(ctx context.Context, record *domain.ScanRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_history (id, kind, input, score, tier, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.Kind, record.Input, record.Score, record.Tier, record.Category, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan record: %w", err)
	}
	return nil
}

// List returns up to limit records, newest first.
func (s *PostgresStore) List(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, input, score, tier, category, created_at
		FROM scan_history
		ORDER BY created_at DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan history: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ScanRecord, 0, limit)
	for rows.Next() {
		var r domain.ScanRecord
		if err := rows.Scan(&r.ID, &r.Kind, &r.Input, &r.Score, &r.Tier, &r.Category, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Clear deletes all history records.
func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scan_history`); err != nil {
		return fmt.Errorf("failed to clear scan history: %w", err)
	}
	return nil
}

// Get returns a settings value or ErrNotFound.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting: %w", err)
	}
	return value, nil
}

// Set upserts a settings value.
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write setting: %w", err)
	}
	return nil
}
