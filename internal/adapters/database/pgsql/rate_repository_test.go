package pgsql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zoneline/fx_rates_backend/internal/models"
)

func ratesDay(day int) time.Time {
	return time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)
}

func storedRate(day int, rawValue string, multiplier int, unitRate string, isCurrent bool) lockedRateRow {
	return lockedRateRow{
		date:       ratesDay(day),
		rawValue:   decimal.RequireFromString(rawValue),
		multiplier: multiplier,
		unitRate:   decimal.RequireFromString(unitRate),
		isCurrent:  isCurrent,
	}
}

func incomingRate(day int, rawValue string, multiplier int, unitRate string) models.NormalizedRate {
	return models.NormalizedRate{
		CurrencyCode:    "USD",
		ZoneID:          "zone-1",
		PublicationDate: ratesDay(day),
		RawValue:        decimal.RequireFromString(rawValue),
		RawMultiplier:   multiplier,
		UnitRate:        decimal.RequireFromString(unitRate),
		IsCurrent:       true,
	}
}

func TestUpsertIsNoop(t *testing.T) {
	tests := []struct {
		name   string
		locked []lockedRateRow
		rate   models.NormalizedRate
		want   bool
	}{
		{
			name:   "identical row already current",
			locked: []lockedRateRow{storedRate(7, "271", 100, "2.71", true)},
			rate:   incomingRate(7, "271", 100, "2.71"),
			want:   true,
		},
		{
			name:   "identical row but de-flagged must be re-flagged",
			locked: []lockedRateRow{storedRate(7, "271", 100, "2.71", false)},
			rate:   incomingRate(7, "271", 100, "2.71"),
			want:   false,
		},
		{
			name:   "changed raw value on same date",
			locked: []lockedRateRow{storedRate(7, "271", 100, "2.71", true)},
			rate:   incomingRate(7, "272", 100, "2.72"),
			want:   false,
		},
		{
			name:   "changed multiplier on same date",
			locked: []lockedRateRow{storedRate(7, "271", 100, "2.71", true)},
			rate:   incomingRate(7, "271", 1, "271"),
			want:   false,
		},
		{
			name: "newer date supersedes the current stale row",
			locked: []lockedRateRow{
				storedRate(6, "270", 100, "2.7", true),
			},
			rate: incomingRate(7, "271", 100, "2.71"),
			want: false,
		},
		{
			name: "same date identical among history rows",
			locked: []lockedRateRow{
				storedRate(5, "268", 100, "2.68", false),
				storedRate(6, "270", 100, "2.7", false),
				storedRate(7, "271", 100, "2.71", true),
			},
			rate: incomingRate(7, "271", 100, "2.71"),
			want: true,
		},
		{
			name:   "first rate for the pair",
			locked: nil,
			rate:   incomingRate(7, "271", 100, "2.71"),
			want:   false,
		},
		{
			name:   "equal decimals with different exponents still identical",
			locked: []lockedRateRow{storedRate(7, "2.710", 1, "2.710000000", true)},
			rate:   incomingRate(7, "2.71", 1, "2.71"),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, upsertIsNoop(tt.locked, tt.rate))
		})
	}
}
