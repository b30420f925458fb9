package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

type PgxAliasRepository struct {
	pool *pgxpool.Pool
}

// NewAliasRepository creates a new repository for the alias dictionary.
func NewAliasRepository(pool *pgxpool.Pool) ports.AliasRepository {
	return &PgxAliasRepository{pool: pool}
}

// SaveAlias inserts or repoints an alias. Callers are responsible for
// uppercasing; the table stores aliases exactly as given.
func (r *PgxAliasRepository) SaveAlias(ctx context.Context, alias models.Alias) error {
	query := `
		INSERT INTO aliases (alias, currency_code)
		VALUES ($1, $2)
		ON CONFLICT (alias) DO UPDATE SET
			currency_code = EXCLUDED.currency_code;
	`
	_, err := r.pool.Exec(ctx, query, alias.Alias, alias.CurrencyCode)
	if err != nil {
		return fmt.Errorf("failed to save alias %q: %w", alias.Alias, mapPgError(err))
	}
	return nil
}

// DeleteAlias removes an alias dictionary entry.
func (r *PgxAliasRepository) DeleteAlias(ctx context.Context, alias string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM aliases WHERE alias = $1;`, alias)
	if err != nil {
		return fmt.Errorf("failed to delete alias %q: %w", alias, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListAliases retrieves the whole alias dictionary. The pipeline loads it
// once per run into an in-memory map rather than querying per record.
func (r *PgxAliasRepository) ListAliases(ctx context.Context) ([]models.Alias, error) {
	rows, err := r.pool.Query(ctx, `SELECT alias, currency_code FROM aliases ORDER BY alias;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query aliases: %w", err)
	}
	defer rows.Close()

	aliases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Alias, error) {
		var alias models.Alias
		err := row.Scan(&alias.Alias, &alias.CurrencyCode)
		return alias, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan aliases: %w", err)
	}
	return aliases, nil
}
