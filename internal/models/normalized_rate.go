package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NormalizedRate is the clean, validated rate for one currency in one zone on
// one publication date. UnitRate is the per-one-unit rate computed from the
// source's raw value and multiplier, kept at 9 fractional digits.
//
// Invariant: for every (currency, zone) pair with at least one row, exactly
// one row has IsCurrent set, and it is the row with the most recent
// publication date that was successfully processed. IsCurrent is the only
// field ever flipped after creation, and only inside the upsert transaction.
type NormalizedRate struct {
	CurrencyCode    string          `json:"currencyCode"` // FK -> Currency
	ZoneID          string          `json:"zoneID"`       // FK -> Zone
	PublicationDate time.Time       `json:"publicationDate"`
	RawValue        decimal.Decimal `json:"rawValue"`      // Rate as quoted by the source
	RawMultiplier   int             `json:"rawMultiplier"` // Unit count the source quoted against
	UnitRate        decimal.Decimal `json:"unitRate"`      // RawValue / max(RawMultiplier, 1)
	IsCurrent       bool            `json:"isCurrent"`
	CreatedAt       time.Time       `json:"createdAt"`
}
