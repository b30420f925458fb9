package models

import "time"

// Zone represents a monetary zone. Each zone owns at most one Source and its
// own activation configuration. BaseCurrencyCode is the zone-local base unit
// that normalized rates are quoted against; conversion treats it as rate 1.
type Zone struct {
	ZoneID           string    `json:"zoneID"` // Primary Key (UUID)
	Name             string    `json:"name"`   // Unique
	BaseCurrencyCode *string   `json:"baseCurrencyCode,omitempty"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}
