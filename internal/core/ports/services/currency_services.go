package services

import (
	"context"

	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// CurrencyReaderSvc defines read operations on the currency catalog.
type CurrencyReaderSvc interface {
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error)
	ListCurrencies(ctx context.Context) ([]models.Currency, error)
}

// CurrencyWriterSvc defines write operations on the currency catalog.
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*models.Currency, error)
}

// CurrencySvcFacade combines all currency catalog service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
