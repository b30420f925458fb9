package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zoneline/fx_rates_backend/internal/models"
)

// RawRecordItem is one scraped line as delivered by the scraper collaborator.
// The publication date is optional: some sources occasionally publish tables
// without one, and such rows are stored but never picked up by the pipeline.
type RawRecordItem struct {
	PublicationDate *string         `json:"publicationDate" binding:"omitempty,datetime=2006-01-02"`
	RawName         string          `json:"rawName"`
	RawCode         string          `json:"rawCode"`
	RawValue        decimal.Decimal `json:"rawValue"`
	RawMultiplier   int             `json:"rawMultiplier"`
}

// IngestRawRecordsRequest is the batch payload written by a scraper after a
// successful scrape.
type IngestRawRecordsRequest struct {
	Records []RawRecordItem `json:"records" binding:"required,min=1,dive"`
}

// IngestRawRecordsResponse reports how many rows were stored.
type IngestRawRecordsResponse struct {
	Stored int `json:"stored"`
}

// RawRecordResponse represents a stored raw record in API responses.
type RawRecordResponse struct {
	RawRecordID     string          `json:"rawRecordID"`
	ZoneID          string          `json:"zoneID"`
	PublicationDate *string         `json:"publicationDate,omitempty"`
	RawName         string          `json:"rawName"`
	RawCode         string          `json:"rawCode"`
	RawValue        decimal.Decimal `json:"rawValue"`
	RawMultiplier   int             `json:"rawMultiplier"`
	ScrapedAt       time.Time       `json:"scrapedAt"`
}

// ToRawRecordResponse maps a raw record model to its response DTO.
func ToRawRecordResponse(r *models.RawRecord) RawRecordResponse {
	resp := RawRecordResponse{
		RawRecordID:   r.RawRecordID,
		ZoneID:        r.ZoneID,
		RawName:       r.RawName,
		RawCode:       r.RawCode,
		RawValue:      r.RawValue,
		RawMultiplier: r.RawMultiplier,
		ScrapedAt:     r.ScrapedAt,
	}
	if r.PublicationDate != nil {
		d := r.PublicationDate.Format("2006-01-02")
		resp.PublicationDate = &d
	}
	return resp
}
