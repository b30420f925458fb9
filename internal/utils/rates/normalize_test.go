package rates_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoneline/fx_rates_backend/internal/utils/rates"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		rawValue   string
		multiplier int
		want       string
	}{
		{"per hundred units", "271", 100, "2.71"},
		{"per one unit", "2.9056", 1, "2.9056"},
		{"zero multiplier treated as one", "5", 0, "5"},
		{"negative multiplier treated as one", "5", -3, "5"},
		{"repeating fraction rounded to nine digits", "1", 3, "0.333333333"},
		{"japanese style quote", "2.731", 100, "0.02731"},
		{"zero value", "0", 100, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := decimal.NewFromString(tt.rawValue)
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)

			got := rates.Normalize(raw, tt.multiplier)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestNormalizeIsExact(t *testing.T) {
	// 271/100 must be exactly 2.71, not a binary-float approximation.
	got := rates.Normalize(decimal.NewFromInt(271), 100)
	assert.Equal(t, "2.71", got.String())
}
