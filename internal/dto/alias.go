package dto

import "github.com/zoneline/fx_rates_backend/internal/models"

// SaveAliasRequest binds a raw label to an official currency. The alias
// itself comes from the URL path and is uppercased before storage.
type SaveAliasRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
}

// AliasResponse represents one alias dictionary entry.
type AliasResponse struct {
	Alias        string `json:"alias"`
	CurrencyCode string `json:"currencyCode"`
}

// ToAliasResponse maps an alias model to its response DTO.
func ToAliasResponse(a *models.Alias) AliasResponse {
	return AliasResponse{
		Alias:        a.Alias,
		CurrencyCode: a.CurrencyCode,
	}
}
