package pgsql

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation maps to duplicate",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "currencies_pkey"},
			want: apperrors.ErrDuplicate,
		},
		{
			name: "unique violation on the current-rate index maps to conflict",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: currentRateConstraint},
			want: apperrors.ErrConflict,
		},
		{
			name: "foreign key violation maps to validation",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "normalized_rates_currency_code_fkey"},
			want: apperrors.ErrValidation,
		},
		{
			name: "serialization failure maps to conflict",
			err:  &pgconn.PgError{Code: "40001"},
			want: apperrors.ErrConflict,
		},
		{
			name: "deadlock maps to conflict",
			err:  &pgconn.PgError{Code: "40P01"},
			want: apperrors.ErrConflict,
		},
		{
			name: "wrapped driver errors are still mapped",
			err:  fmt.Errorf("failed to upsert: %w", &pgconn.PgError{Code: "23505", ConstraintName: currentRateConstraint}),
			want: apperrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapPgError(tt.err), tt.want)
		})
	}

	t.Run("unmapped errors pass through unchanged", func(t *testing.T) {
		err := fmt.Errorf("connection refused")
		assert.Equal(t, err, mapPgError(err))
	})
}
