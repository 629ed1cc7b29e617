package repository

import (
	"context"
	"fmt"

	"github.com/sebasr/information-service/internal/database"
	"github.com/sebasr/information-service/internal/models"
)

var lookupSchema = []string{
	`CREATE TABLE IF NOT EXISTS information_lookups (
		id BIGSERIAL PRIMARY KEY,
		request_id TEXT NOT NULL,
		requested_name TEXT NOT NULL,
		resolved_name TEXT NOT NULL,
		matched_profile BOOLEAN NOT NULL DEFAULT FALSE,
		served_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_information_lookups_served_at
		ON information_lookups (served_at DESC)`,
}

// PostgresLookupRepository implements LookupRepository using PostgreSQL
type PostgresLookupRepository struct {
	db *database.DB
}

// NewPostgresLookupRepository creates a new PostgreSQL lookup repository
func NewPostgresLookupRepository(db *database.DB) *PostgresLookupRepository {
	return &PostgresLookupRepository{db: db}
}

// EnsureSchema creates the audit table when it does not exist yet
func (r *PostgresLookupRepository) EnsureSchema(ctx context.Context) error {
	for _, statement := range lookupSchema {
		if _, err := r.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to create lookup schema: %w", err)
		}
	}
	return nil
}

// Record stores a served lookup
func (r *PostgresLookupRepository) Record(ctx context.Context, record *models.LookupRecord) error {
	query := `
		INSERT INTO information_lookups (
			request_id, requested_name, resolved_name, matched_profile, served_at
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		record.RequestID, record.RequestedName, record.ResolvedName,
		record.MatchedProfile, record.ServedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to insert lookup: %w", err)
	}

	return nil
}

// Recent returns the most recent lookups, newest first
func (r *PostgresLookupRepository) Recent(ctx context.Context, limit int) ([]*models.LookupRecord, error) {
	query := `
		SELECT id, request_id, requested_name, resolved_name, matched_profile, served_at
		FROM information_lookups
		ORDER BY served_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var records []*models.LookupRecord
	for rows.Next() {
		record := &models.LookupRecord{}
		if err := rows.Scan(
			&record.ID, &record.RequestID, &record.RequestedName,
			&record.ResolvedName, &record.MatchedProfile, &record.ServedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lookups: %w", err)
	}

	return records, nil
}
