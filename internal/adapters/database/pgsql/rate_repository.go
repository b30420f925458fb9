package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// PgxRateRepository implements ports.RateRepository using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// NewRateRepository creates a new repository for normalized rates.
func NewRateRepository(pool *pgxpool.Pool) ports.RateRepository {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const rateColumns = `currency_code, zone_id, publication_date, raw_value, raw_multiplier, unit_rate, is_current, created_at`

// lockedRateRow is the locked view of one stored rate for a (currency, zone)
// pair during reconciliation.
type lockedRateRow struct {
	date       time.Time
	rawValue   decimal.Decimal
	multiplier int
	unitRate   decimal.Decimal
	isCurrent  bool
}

// upsertIsNoop reports whether the incoming rate is already stored
// identically for its publication date and is already the current one, in
// which case the reconciliation writes nothing. Any other state, including a
// stale row still flagged current, goes through the clear-then-set path.
func upsertIsNoop(locked []lockedRateRow, rate models.NormalizedRate) bool {
	for _, row := range locked {
		if !row.date.Equal(rate.PublicationDate) {
			continue
		}
		return row.isCurrent &&
			row.rawValue.Equal(rate.RawValue) &&
			row.multiplier == rate.RawMultiplier &&
			row.unitRate.Equal(rate.UnitRate)
	}
	return false
}

// UpsertCurrentRate reconciles the current-rate flag for one (currency, zone)
// pair inside a single transaction. The pair's rows are locked with
// FOR UPDATE first, so two runs racing the clear-then-set sequence serialize
// on the row lock and a concurrent reader never observes zero or two current
// rows. A partial unique index on (currency_code, zone_id) WHERE is_current
// backs the same invariant in the schema.
func (r *PgxRateRepository) UpsertCurrentRate(ctx context.Context, rate models.NormalizedRate) (ports.UpsertOutcome, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return ports.UpsertOutcomeInjected, err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `
		SELECT publication_date, raw_value, raw_multiplier, unit_rate, is_current
		FROM normalized_rates
		WHERE currency_code = $1 AND zone_id = $2
		FOR UPDATE;`,
		rate.CurrencyCode, rate.ZoneID,
	)
	if err != nil {
		return ports.UpsertOutcomeInjected, fmt.Errorf("failed to lock rate rows for %s/%s: %w", rate.CurrencyCode, rate.ZoneID, mapPgError(err))
	}

	locked, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (lockedRateRow, error) {
		var lr lockedRateRow
		err := row.Scan(&lr.date, &lr.rawValue, &lr.multiplier, &lr.unitRate, &lr.isCurrent)
		return lr, err
	})
	if err != nil {
		return ports.UpsertOutcomeInjected, fmt.Errorf("failed to scan locked rate rows: %w", err)
	}

	if upsertIsNoop(locked, rate) {
		// Nothing to write; committing releases the locks and the invariant
		// holds untouched.
		if err := r.Commit(ctx, tx); err != nil {
			return ports.UpsertOutcomeInjected, err
		}
		return ports.UpsertOutcomeSkippedIdentical, nil
	}

	_, err = tx.Exec(ctx, `
		UPDATE normalized_rates
		SET is_current = FALSE
		WHERE currency_code = $1 AND zone_id = $2 AND is_current;`,
		rate.CurrencyCode, rate.ZoneID,
	)
	if err != nil {
		return ports.UpsertOutcomeInjected, fmt.Errorf("failed to clear current flag for %s/%s: %w", rate.CurrencyCode, rate.ZoneID, mapPgError(err))
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO normalized_rates (
			currency_code, zone_id, publication_date, raw_value, raw_multiplier,
			unit_rate, is_current, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
		ON CONFLICT (currency_code, zone_id, publication_date) DO UPDATE SET
			raw_value = EXCLUDED.raw_value,
			raw_multiplier = EXCLUDED.raw_multiplier,
			unit_rate = EXCLUDED.unit_rate,
			is_current = TRUE;`,
		rate.CurrencyCode, rate.ZoneID, rate.PublicationDate, rate.RawValue,
		rate.RawMultiplier, rate.UnitRate, rate.CreatedAt,
	)
	if err != nil {
		return ports.UpsertOutcomeInjected, fmt.Errorf("failed to upsert rate for %s/%s: %w", rate.CurrencyCode, rate.ZoneID, mapPgError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return ports.UpsertOutcomeInjected, mapPgError(err)
	}
	return ports.UpsertOutcomeInjected, nil
}

// FindCurrentRate retrieves the current rate for a currency in a zone.
func (r *PgxRateRepository) FindCurrentRate(ctx context.Context, currencyCode, zoneID string) (*models.NormalizedRate, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM normalized_rates
		WHERE currency_code = $1 AND zone_id = $2 AND is_current;
	`
	return r.queryOne(ctx, query, currencyCode, zoneID)
}

// FindRateByDate retrieves the rate published on an exact date.
func (r *PgxRateRepository) FindRateByDate(ctx context.Context, currencyCode, zoneID string, date time.Time) (*models.NormalizedRate, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM normalized_rates
		WHERE currency_code = $1 AND zone_id = $2 AND publication_date = $3;
	`
	return r.queryOne(ctx, query, currencyCode, zoneID, date)
}

func (r *PgxRateRepository) queryOne(ctx context.Context, query string, args ...any) (*models.NormalizedRate, error) {
	var rate models.NormalizedRate
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&rate.CurrencyCode, &rate.ZoneID, &rate.PublicationDate, &rate.RawValue,
		&rate.RawMultiplier, &rate.UnitRate, &rate.IsCurrent, &rate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRateNotFound
		}
		return nil, fmt.Errorf("failed to find normalized rate: %w", err)
	}
	return &rate, nil
}

// ListRates retrieves rates for a zone with optional filters. Without a date
// bound the listing is restricted to current rates.
func (r *PgxRateRepository) ListRates(ctx context.Context, zoneID string, filter ports.RateFilter) ([]models.NormalizedRate, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM normalized_rates
		WHERE zone_id = $1`
	args := []any{zoneID}
	argNum := 2

	if len(filter.CurrencyCodes) > 0 {
		query += fmt.Sprintf(" AND currency_code = ANY($%d)", argNum)
		args = append(args, filter.CurrencyCodes)
		argNum++
	}
	if filter.StartDate == nil && filter.EndDate == nil {
		query += " AND is_current"
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND publication_date >= $%d", argNum)
		args = append(args, *filter.StartDate)
		argNum++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND publication_date <= $%d", argNum)
		args = append(args, *filter.EndDate)
		argNum++
	}
	query += " ORDER BY publication_date DESC, currency_code"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query normalized rates for zone %s: %w", zoneID, err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.NormalizedRate, error) {
		var rate models.NormalizedRate
		err := row.Scan(
			&rate.CurrencyCode, &rate.ZoneID, &rate.PublicationDate, &rate.RawValue,
			&rate.RawMultiplier, &rate.UnitRate, &rate.IsCurrent, &rate.CreatedAt,
		)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan normalized rates: %w", err)
	}
	return rates, nil
}

// ListRatedCurrencyCodes returns the codes that have a current rate in the
// zone, or a rate published on the given date when one is provided.
func (r *PgxRateRepository) ListRatedCurrencyCodes(ctx context.Context, zoneID string, date *time.Time) ([]string, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if date != nil {
		rows, err = r.Pool.Query(ctx, `
			SELECT DISTINCT currency_code
			FROM normalized_rates
			WHERE zone_id = $1 AND publication_date = $2;`,
			zoneID, *date,
		)
	} else {
		rows, err = r.Pool.Query(ctx, `
			SELECT DISTINCT currency_code
			FROM normalized_rates
			WHERE zone_id = $1 AND is_current;`,
			zoneID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rated currency codes for zone %s: %w", zoneID, err)
	}
	defer rows.Close()

	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan rated currency codes: %w", err)
	}
	return codes, nil
}
