package repository

import (
	"context"
	"fmt"

	"countrymap/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS lookups (
		id BIGSERIAL PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		country_code VARCHAR(2) NOT NULL DEFAULT '',
		country_name VARCHAR(255) NOT NULL DEFAULT '',
		outcome VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS lookups_created_at_idx ON lookups (created_at DESC);
`

// Repository implements the lookup journal for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the lookups table if it does not exist
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// RecordLookup appends one click to the journal
func (r *Repository) RecordLookup(ctx context.Context, lookup models.Lookup) error {
	sql := `
		INSERT INTO lookups (latitude, longitude, country_code, country_name, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, sql,
		lookup.Latitude,
		lookup.Longitude,
		lookup.CountryCode,
		lookup.CountryName,
		string(lookup.Outcome),
		lookup.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert lookup: %w", err)
	}

	return nil
}

// ListRecentLookups returns up to limit journal rows, newest first
func (r *Repository) ListRecentLookups(ctx context.Context, limit int) ([]models.Lookup, error) {
	sql := `
		SELECT
			id,
			latitude,
			longitude,
			country_code,
			country_name,
			outcome,
			created_at
		FROM lookups
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute lookup query: %w", err)
	}
	defer rows.Close()

	lookups := []models.Lookup{}
	for rows.Next() {
		var lookup models.Lookup
		var outcome string
		err := rows.Scan(
			&lookup.ID,
			&lookup.Latitude,
			&lookup.Longitude,
			&lookup.CountryCode,
			&lookup.CountryName,
			&outcome,
			&lookup.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan lookup: %w", err)
		}
		lookup.Outcome = models.LookupOutcome(outcome)
		lookups = append(lookups, lookup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return lookups, nil
}

// CountLookups returns the number of journal rows
func (r *Repository) CountLookups(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM lookups").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count lookups: %w", err)
	}
	return count, nil
}
