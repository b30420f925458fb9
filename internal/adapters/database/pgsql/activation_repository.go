package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

type PgxActivationRepository struct {
	pool *pgxpool.Pool
}

// NewActivationRepository creates a new repository for per-zone currency
// activations.
func NewActivationRepository(pool *pgxpool.Pool) ports.ActivationRepository {
	return &PgxActivationRepository{pool: pool}
}

// UpsertActivation inserts or updates the activation flag for one
// (zone, currency) pair.
func (r *PgxActivationRepository) UpsertActivation(ctx context.Context, activation models.Activation) error {
	query := `
		INSERT INTO activations (zone_id, currency_code, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (zone_id, currency_code) DO UPDATE SET
			is_active = EXCLUDED.is_active;
	`
	_, err := r.pool.Exec(ctx, query, activation.ZoneID, activation.CurrencyCode, activation.IsActive)
	if err != nil {
		return fmt.Errorf("failed to upsert activation %s/%s: %w", activation.ZoneID, activation.CurrencyCode, mapPgError(err))
	}
	return nil
}

// ListActivations retrieves all activation rows for a zone.
func (r *PgxActivationRepository) ListActivations(ctx context.Context, zoneID string) ([]models.Activation, error) {
	query := `
		SELECT zone_id, currency_code, is_active
		FROM activations
		WHERE zone_id = $1
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activations for zone %s: %w", zoneID, err)
	}
	defer rows.Close()

	activations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Activation, error) {
		var a models.Activation
		err := row.Scan(&a.ZoneID, &a.CurrencyCode, &a.IsActive)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan activations: %w", err)
	}
	return activations, nil
}

// ListActiveCurrencyCodes retrieves the codes currently activated for a zone.
func (r *PgxActivationRepository) ListActiveCurrencyCodes(ctx context.Context, zoneID string) ([]string, error) {
	query := `
		SELECT currency_code
		FROM activations
		WHERE zone_id = $1 AND is_active;
	`
	rows, err := r.pool.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active codes for zone %s: %w", zoneID, err)
	}
	defer rows.Close()

	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan active codes: %w", err)
	}
	return codes, nil
}
