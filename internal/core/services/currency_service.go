package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// CurrencyService manages the official currency catalog.
type CurrencyService struct {
	currencyRepo ports.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo ports.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency adds a currency to the catalog.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*models.Currency, error) {
	currency := models.Currency{
		CurrencyCode: req.CurrencyCode,
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return &currency, nil
}

// GetCurrencyByCode retrieves a catalog currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

// ListCurrencies retrieves the full catalog.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []models.Currency{}
	}
	return currencies, nil
}
