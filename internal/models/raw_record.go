package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRecord stores one scraped line exactly as the scraper delivered it,
// before any alias resolution or normalization. Append-only: rows are only
// replaced wholesale when the same publication date is re-scraped.
type RawRecord struct {
	RawRecordID     string          `json:"rawRecordID"` // Primary Key (UUID)
	ZoneID          string          `json:"zoneID"`      // FK -> Source (zone ID is the source key)
	PublicationDate *time.Time      `json:"publicationDate,omitempty"`
	RawName         string          `json:"rawName"`
	RawCode         string          `json:"rawCode"`
	RawValue        decimal.Decimal `json:"rawValue"`
	RawMultiplier   int             `json:"rawMultiplier"`
	ScrapedAt       time.Time       `json:"scrapedAt"`
}
