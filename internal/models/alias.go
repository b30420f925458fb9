package models

// Alias maps a raw label (always stored uppercased) to an official currency.
// Many aliases may point at the same currency, e.g. a currency's display name
// and its ISO code.
type Alias struct {
	Alias        string `json:"alias"`        // Primary Key, uppercased
	CurrencyCode string `json:"currencyCode"` // FK -> Currency
}
