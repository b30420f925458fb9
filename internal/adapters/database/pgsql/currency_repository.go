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

type PgxCurrencyRepository struct {
	pool *pgxpool.Pool
}

// NewCurrencyRepository creates a new repository for the currency catalog.
func NewCurrencyRepository(pool *pgxpool.Pool) ports.CurrencyRepository {
	return &PgxCurrencyRepository{pool: pool}
}

// SaveCurrency inserts a currency, updating the display name when the code
// already exists. Catalog entries are otherwise immutable.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency models.Currency) error {
	query := `
		INSERT INTO currencies (currency_code, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency_code) DO UPDATE SET
			name = EXCLUDED.name;
	`
	_, err := r.pool.Exec(ctx, query, currency.CurrencyCode, currency.Name, currency.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", currency.CurrencyCode, mapPgError(err))
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	query := `
		SELECT currency_code, name, created_at
		FROM currencies
		WHERE currency_code = $1;
	`
	var currency models.Currency
	err := r.pool.QueryRow(ctx, query, currencyCode).Scan(
		&currency.CurrencyCode,
		&currency.Name,
		&currency.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}
	return &currency, nil
}

// ListCurrencies retrieves the whole catalog ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	query := `
		SELECT currency_code, name, created_at
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(&currency.CurrencyCode, &currency.Name, &currency.CreatedAt)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return currencies, nil
}
