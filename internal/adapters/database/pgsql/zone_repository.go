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

type PgxZoneRepository struct {
	pool *pgxpool.Pool
}

// NewZoneRepository creates a new repository for monetary zones.
func NewZoneRepository(pool *pgxpool.Pool) ports.ZoneRepository {
	return &PgxZoneRepository{pool: pool}
}

// SaveZone inserts a new zone.
func (r *PgxZoneRepository) SaveZone(ctx context.Context, zone models.Zone) error {
	query := `
		INSERT INTO zones (zone_id, name, base_currency_code, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query,
		zone.ZoneID, zone.Name, zone.BaseCurrencyCode, zone.IsActive, zone.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save zone %s: %w", zone.Name, mapPgError(err))
	}
	return nil
}

// FindZoneByID retrieves a zone by its ID.
func (r *PgxZoneRepository) FindZoneByID(ctx context.Context, zoneID string) (*models.Zone, error) {
	query := `
		SELECT zone_id, name, base_currency_code, is_active, created_at
		FROM zones
		WHERE zone_id = $1;
	`
	var zone models.Zone
	err := r.pool.QueryRow(ctx, query, zoneID).Scan(
		&zone.ZoneID, &zone.Name, &zone.BaseCurrencyCode, &zone.IsActive, &zone.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find zone %s: %w", zoneID, err)
	}
	return &zone, nil
}

// ListZones retrieves all zones ordered by name.
func (r *PgxZoneRepository) ListZones(ctx context.Context) ([]models.Zone, error) {
	query := `
		SELECT zone_id, name, base_currency_code, is_active, created_at
		FROM zones
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	zones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Zone, error) {
		var zone models.Zone
		err := row.Scan(&zone.ZoneID, &zone.Name, &zone.BaseCurrencyCode, &zone.IsActive, &zone.CreatedAt)
		return zone, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan zones: %w", err)
	}
	return zones, nil
}

// UpdateZone updates a zone's mutable fields (name, base currency, active flag).
func (r *PgxZoneRepository) UpdateZone(ctx context.Context, zone models.Zone) error {
	query := `
		UPDATE zones
		SET name = $2, base_currency_code = $3, is_active = $4
		WHERE zone_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, zone.ZoneID, zone.Name, zone.BaseCurrencyCode, zone.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update zone %s: %w", zone.ZoneID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
