package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
)

// BaseRepository provides transaction helpers shared by all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction, ignoring the already-closed case so it
// can be deferred unconditionally.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		// Nothing actionable for the caller; the transaction is gone either way.
		return
	}
}

// currentRateConstraint is the partial unique index guarding the single
// current rate per (currency, zone) pair.
const currentRateConstraint = "uq_normalized_rates_current"

// mapPgError translates driver errors to application sentinels where a
// mapping exists.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == currentRateConstraint {
				// Two first inserts for a new pair find no rows to lock, so
				// the loser surfaces here instead of waiting on FOR UPDATE.
				// Treat it as a retryable reconciliation race.
				return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
			}
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.ConstraintName)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.Code)
		}
	}
	return err
}
