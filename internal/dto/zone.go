package dto

import (
	"time"

	"github.com/zoneline/fx_rates_backend/internal/models"
)

// CreateZoneRequest is the payload for creating a monetary zone.
type CreateZoneRequest struct {
	Name             string  `json:"name" binding:"required"`
	BaseCurrencyCode *string `json:"baseCurrencyCode" binding:"omitempty,len=3,uppercase"`
}

// UpdateZoneRequest toggles a zone's active flag or changes its base
// currency. Nil fields are left untouched.
type UpdateZoneRequest struct {
	IsActive         *bool   `json:"isActive"`
	BaseCurrencyCode *string `json:"baseCurrencyCode" binding:"omitempty,len=3,uppercase"`
}

// ZoneResponse represents a zone in API responses.
type ZoneResponse struct {
	ZoneID           string    `json:"zoneID"`
	Name             string    `json:"name"`
	BaseCurrencyCode *string   `json:"baseCurrencyCode,omitempty"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToZoneResponse maps a zone model to its response DTO.
func ToZoneResponse(z *models.Zone) ZoneResponse {
	return ZoneResponse{
		ZoneID:           z.ZoneID,
		Name:             z.Name,
		BaseCurrencyCode: z.BaseCurrencyCode,
		IsActive:         z.IsActive,
		CreatedAt:        z.CreatedAt,
	}
}

// SetSourceRequest configures the single data source feeding a zone.
type SetSourceRequest struct {
	Name        string `json:"name" binding:"required"`
	SourceURL   string `json:"sourceURL" binding:"required,url"`
	ScraperName string `json:"scraperName" binding:"required"`
	Schedule    string `json:"schedule"`
}

// SourceResponse represents a zone's source in API responses.
type SourceResponse struct {
	ZoneID      string    `json:"zoneID"`
	Name        string    `json:"name"`
	SourceURL   string    `json:"sourceURL"`
	ScraperName string    `json:"scraperName"`
	Schedule    string    `json:"schedule,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToSourceResponse maps a source model to its response DTO.
func ToSourceResponse(s *models.Source) SourceResponse {
	return SourceResponse{
		ZoneID:      s.ZoneID,
		Name:        s.Name,
		SourceURL:   s.SourceURL,
		ScraperName: s.ScraperName,
		Schedule:    s.Schedule,
		CreatedAt:   s.CreatedAt,
	}
}

// SetActivationRequest toggles a currency's eligibility within a zone.
type SetActivationRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ActivationResponse represents a per-zone currency activation.
type ActivationResponse struct {
	ZoneID       string `json:"zoneID"`
	CurrencyCode string `json:"currencyCode"`
	IsActive     bool   `json:"isActive"`
}

// ToActivationResponse maps an activation model to its response DTO.
func ToActivationResponse(a *models.Activation) ActivationResponse {
	return ActivationResponse{
		ZoneID:       a.ZoneID,
		CurrencyCode: a.CurrencyCode,
		IsActive:     a.IsActive,
	}
}
