// Package rates holds pure helpers for rate normalization.
package rates

import "github.com/shopspring/decimal"

// UnitRateScale is the number of fractional digits a normalized per-unit rate
// is kept at.
const UnitRateScale = 9

// Normalize computes the canonical per-one-unit rate from a source's raw
// value and multiplier. Sources quote rates against arbitrary unit counts
// (e.g. "100 JPY = 2.731 TND", multiplier 100); the result is always the rate
// for exactly one unit of the foreign currency, rounded to UnitRateScale
// fractional digits.
//
// A multiplier of zero or less is treated as 1, so division by zero cannot
// occur.
func Normalize(rawValue decimal.Decimal, rawMultiplier int) decimal.Decimal {
	if rawMultiplier < 1 {
		rawMultiplier = 1
	}
	return rawValue.DivRound(decimal.NewFromInt(int64(rawMultiplier)), UnitRateScale)
}
