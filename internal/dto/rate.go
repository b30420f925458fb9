package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zoneline/fx_rates_backend/internal/models"
)

// ListRatesQuery is the query surface of the rate listing endpoint. With no
// date bound only current rates are returned.
type ListRatesQuery struct {
	Currency  string `form:"currency"` // Comma-separated currency codes
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" binding:"omitempty,gt=0"`
}

// RateResponse represents one normalized rate in API responses.
type RateResponse struct {
	CurrencyCode    string          `json:"currencyCode"`
	ZoneID          string          `json:"zoneID"`
	PublicationDate string          `json:"publicationDate"`
	RawValue        decimal.Decimal `json:"rawValue"`
	RawMultiplier   int             `json:"rawMultiplier"`
	UnitRate        decimal.Decimal `json:"unitRate"`
	IsCurrent       bool            `json:"isCurrent"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToRateResponse maps a normalized rate model to its response DTO.
func ToRateResponse(r *models.NormalizedRate) RateResponse {
	return RateResponse{
		CurrencyCode:    r.CurrencyCode,
		ZoneID:          r.ZoneID,
		PublicationDate: r.PublicationDate.Format("2006-01-02"),
		RawValue:        r.RawValue,
		RawMultiplier:   r.RawMultiplier,
		UnitRate:        r.UnitRate,
		IsCurrent:       r.IsCurrent,
		CreatedAt:       r.CreatedAt,
	}
}
