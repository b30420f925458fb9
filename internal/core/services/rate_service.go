package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
	"github.com/zoneline/fx_rates_backend/internal/utils/rates"
)

// RateService exposes the normalized rate table and the cross-currency
// conversion built on top of it. It only ever reads what the pipeline wrote.
type RateService struct {
	rateRepo       ports.RateRepository
	zoneRepo       ports.ZoneRepository
	currencyRepo   ports.CurrencyRepository
	activationRepo ports.ActivationRepository
}

// NewRateService creates a new RateService.
func NewRateService(
	rateRepo ports.RateRepository,
	zoneRepo ports.ZoneRepository,
	currencyRepo ports.CurrencyRepository,
	activationRepo ports.ActivationRepository,
) *RateService {
	return &RateService{
		rateRepo:       rateRepo,
		zoneRepo:       zoneRepo,
		currencyRepo:   currencyRepo,
		activationRepo: activationRepo,
	}
}

// ListRates returns normalized rates for a zone. Without a date bound only
// current rates are listed.
func (s *RateService) ListRates(ctx context.Context, zoneID string, query dto.ListRatesQuery) ([]dto.RateResponse, error) {
	if _, err := s.zoneRepo.FindZoneByID(ctx, zoneID); err != nil {
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}

	filter := ports.RateFilter{Limit: query.Limit}
	if query.Currency != "" {
		for _, code := range strings.Split(query.Currency, ",") {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code != "" {
				filter.CurrencyCodes = append(filter.CurrencyCodes, code)
			}
		}
	}
	if query.StartDate != "" {
		d, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startDate", apperrors.ErrValidation)
		}
		filter.StartDate = &d
	}
	if query.EndDate != "" {
		d, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endDate", apperrors.ErrValidation)
		}
		filter.EndDate = &d
	}

	found, err := s.rateRepo.ListRates(ctx, zoneID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for zone %s: %w", zoneID, err)
	}

	responses := make([]dto.RateResponse, len(found))
	for i := range found {
		responses[i] = dto.ToRateResponse(&found[i])
	}
	return responses, nil
}

// ListZoneCurrencies returns the catalog currencies that have a usable rate
// in the zone. With no date that means activated currencies with a current
// rate; with a date, any currency that had a rate published on that exact
// day, activation regardless (historic data stays visible even after an
// admin deactivates a currency).
func (s *RateService) ListZoneCurrencies(ctx context.Context, zoneID string, date *time.Time) ([]models.Currency, error) {
	if _, err := s.zoneRepo.FindZoneByID(ctx, zoneID); err != nil {
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}

	codes, err := s.rateRepo.ListRatedCurrencyCodes(ctx, zoneID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list rated currencies for zone %s: %w", zoneID, err)
	}

	eligible := make(map[string]bool, len(codes))
	for _, code := range codes {
		eligible[code] = true
	}

	if date == nil {
		active, err := s.activationRepo.ListActiveCurrencyCodes(ctx, zoneID)
		if err != nil {
			return nil, fmt.Errorf("failed to list activations for zone %s: %w", zoneID, err)
		}
		activeSet := make(map[string]bool, len(active))
		for _, code := range active {
			activeSet[code] = true
		}
		for code := range eligible {
			if !activeSet[code] {
				delete(eligible, code)
			}
		}
	}

	catalog, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	result := []models.Currency{}
	for _, currency := range catalog {
		if eligible[currency.CurrencyCode] {
			result = append(result, currency)
		}
	}
	return result, nil
}

// Convert computes a cross-currency conversion within a zone, using the
// zone's normalized rates as a common-denominator bridge. A leg equal to the
// zone's base currency is rate 1 by definition. The cross rate is
// rate(to)/rate(from), reported at 9 fractional digits; the converted amount
// is rounded to 2 for display. Everything stays in exact decimal arithmetic.
func (s *RateService) Convert(ctx context.Context, zoneID, fromCode, toCode string, amount decimal.Decimal, asOf *time.Time) (*dto.ConvertResponse, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	source := dto.ConvertSourceCurrent
	if asOf != nil {
		source = asOf.Format("2006-01-02")
	}

	// Identity conversion needs no rate lookup and must work even before any
	// rate exists for the currency.
	if fromCode == toCode {
		return &dto.ConvertResponse{
			FromCurrency:    fromCode,
			ToCurrency:      toCode,
			Amount:          amount,
			ConvertedAmount: amount.Round(2),
			RateUsed:        decimal.NewFromInt(1),
			Source:          source,
		}, nil
	}

	zone, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}

	fromRate, err := s.legRate(ctx, zone, fromCode, asOf)
	if err != nil {
		return nil, err
	}
	toRate, err := s.legRate(ctx, zone, toCode, asOf)
	if err != nil {
		return nil, err
	}

	if fromRate.IsZero() {
		return nil, fmt.Errorf("%w: stored rate for %s is zero", apperrors.ErrValidation, fromCode)
	}

	crossRate := toRate.Div(fromRate)
	return &dto.ConvertResponse{
		FromCurrency:    fromCode,
		ToCurrency:      toCode,
		Amount:          amount,
		ConvertedAmount: amount.Mul(crossRate).Round(2),
		RateUsed:        crossRate.Round(rates.UnitRateScale),
		Source:          source,
	}, nil
}

// legRate resolves one side of a conversion: 1 for the zone's base currency,
// otherwise the current or dated normalized rate.
func (s *RateService) legRate(ctx context.Context, zone *models.Zone, currencyCode string, asOf *time.Time) (decimal.Decimal, error) {
	if zone.BaseCurrencyCode != nil && currencyCode == *zone.BaseCurrencyCode {
		return decimal.NewFromInt(1), nil
	}

	var (
		rate *models.NormalizedRate
		err  error
	)
	if asOf != nil {
		rate, err = s.rateRepo.FindRateByDate(ctx, currencyCode, zone.ZoneID, *asOf)
	} else {
		rate, err = s.rateRepo.FindCurrentRate(ctx, currencyCode, zone.ZoneID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			return decimal.Decimal{}, fmt.Errorf("%w: no rate for %s in zone %s", apperrors.ErrRateNotFound, currencyCode, zone.ZoneID)
		}
		return decimal.Decimal{}, fmt.Errorf("failed to get rate for %s in zone %s: %w", currencyCode, zone.ZoneID, err)
	}
	return rate.UnitRate, nil
}
