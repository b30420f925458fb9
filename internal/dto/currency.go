package dto

import (
	"time"

	"github.com/zoneline/fx_rates_backend/internal/models"
)

// CreateCurrencyRequest is the payload for adding a currency to the catalog.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
	Name         string `json:"name" binding:"required"`
}

// CurrencyResponse represents a catalog currency in API responses.
type CurrencyResponse struct {
	CurrencyCode string    `json:"currencyCode"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCurrencyResponse maps a currency model to its response DTO.
func ToCurrencyResponse(c *models.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Name:         c.Name,
		CreatedAt:    c.CreatedAt,
	}
}
