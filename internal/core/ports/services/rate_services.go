package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// RateReaderSvc exposes the normalized rate table.
type RateReaderSvc interface {
	ListRates(ctx context.Context, zoneID string, query dto.ListRatesQuery) ([]dto.RateResponse, error)
	// ListZoneCurrencies returns the catalog currencies that have a usable
	// rate in the zone: the current rate when date is nil, or a rate
	// published on exactly that date.
	ListZoneCurrencies(ctx context.Context, zoneID string, date *time.Time) ([]models.Currency, error)
}

// ConverterSvc computes cross-currency conversions within a zone.
type ConverterSvc interface {
	Convert(ctx context.Context, zoneID, fromCode, toCode string, amount decimal.Decimal, asOf *time.Time) (*dto.ConvertResponse, error)
}

// RateSvcFacade combines rate reads and conversion.
type RateSvcFacade interface {
	RateReaderSvc
	ConverterSvc
}
