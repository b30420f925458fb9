package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

type PgxSourceRepository struct {
	pool *pgxpool.Pool
}

// NewSourceRepository creates a new repository for zone data sources.
func NewSourceRepository(pool *pgxpool.Pool) ports.SourceRepository {
	return &PgxSourceRepository{pool: pool}
}

// SaveSource inserts or replaces the single source of a zone.
func (r *PgxSourceRepository) SaveSource(ctx context.Context, source models.Source) error {
	query := `
		INSERT INTO sources (zone_id, name, source_url, scraper_name, schedule, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (zone_id) DO UPDATE SET
			name = EXCLUDED.name,
			source_url = EXCLUDED.source_url,
			scraper_name = EXCLUDED.scraper_name,
			schedule = EXCLUDED.schedule;
	`
	_, err := r.pool.Exec(ctx, query,
		source.ZoneID, source.Name, source.SourceURL, source.ScraperName, source.Schedule, source.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save source for zone %s: %w", source.ZoneID, mapPgError(err))
	}
	return nil
}

// FindSourceByZoneID retrieves the source feeding a zone.
func (r *PgxSourceRepository) FindSourceByZoneID(ctx context.Context, zoneID string) (*models.Source, error) {
	query := `
		SELECT zone_id, name, source_url, scraper_name, schedule, created_at
		FROM sources
		WHERE zone_id = $1;
	`
	var source models.Source
	err := r.pool.QueryRow(ctx, query, zoneID).Scan(
		&source.ZoneID, &source.Name, &source.SourceURL, &source.ScraperName, &source.Schedule, &source.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find source for zone %s: %w", zoneID, err)
	}
	return &source, nil
}
