package models

import "time"

// Currency represents an official ISO-4217-like currency in the catalog.
// Reference data: created by migration or an admin, never mutated by the
// pipeline.
type Currency struct {
	CurrencyCode string    `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string    `json:"name"`         // e.g., "US Dollar"
	CreatedAt    time.Time `json:"createdAt"`
}
