package models

// Activation is the per-zone gate on which official currencies are eligible
// for normalized output. Absence of a row means inactive.
type Activation struct {
	ZoneID       string `json:"zoneID"`       // FK -> Zone
	CurrencyCode string `json:"currencyCode"` // FK -> Currency
	IsActive     bool   `json:"isActive"`
}
