package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency models.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}

// --- Mock ZoneRepository ---
type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) SaveZone(ctx context.Context, zone models.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockZoneRepository) FindZoneByID(ctx context.Context, zoneID string) (*models.Zone, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Zone), args.Error(1)
}

func (m *MockZoneRepository) ListZones(ctx context.Context) ([]models.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Zone), args.Error(1)
}

func (m *MockZoneRepository) UpdateZone(ctx context.Context, zone models.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

// --- Mock SourceRepository ---
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) SaveSource(ctx context.Context, source models.Source) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockSourceRepository) FindSourceByZoneID(ctx context.Context, zoneID string) (*models.Source, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Source), args.Error(1)
}

// --- Mock AliasRepository ---
type MockAliasRepository struct {
	mock.Mock
}

func (m *MockAliasRepository) SaveAlias(ctx context.Context, alias models.Alias) error {
	args := m.Called(ctx, alias)
	return args.Error(0)
}

func (m *MockAliasRepository) DeleteAlias(ctx context.Context, alias string) error {
	args := m.Called(ctx, alias)
	return args.Error(0)
}

func (m *MockAliasRepository) ListAliases(ctx context.Context) ([]models.Alias, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alias), args.Error(1)
}

// --- Mock ActivationRepository ---
type MockActivationRepository struct {
	mock.Mock
}

func (m *MockActivationRepository) UpsertActivation(ctx context.Context, activation models.Activation) error {
	args := m.Called(ctx, activation)
	return args.Error(0)
}

func (m *MockActivationRepository) ListActivations(ctx context.Context, zoneID string) ([]models.Activation, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Activation), args.Error(1)
}

func (m *MockActivationRepository) ListActiveCurrencyCodes(ctx context.Context, zoneID string) ([]string, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Mock RawRecordRepository ---
type MockRawRecordRepository struct {
	mock.Mock
}

func (m *MockRawRecordRepository) ReplaceBatch(ctx context.Context, zoneID string, records []models.RawRecord) error {
	args := m.Called(ctx, zoneID, records)
	return args.Error(0)
}

func (m *MockRawRecordRepository) FindLatestPublicationDate(ctx context.Context, zoneID string) (*time.Time, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockRawRecordRepository) ListByPublicationDate(ctx context.Context, zoneID string, date time.Time) ([]models.RawRecord, error) {
	args := m.Called(ctx, zoneID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RawRecord), args.Error(1)
}

func (m *MockRawRecordRepository) ListRecent(ctx context.Context, zoneID string, limit int) ([]models.RawRecord, error) {
	args := m.Called(ctx, zoneID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RawRecord), args.Error(1)
}

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) UpsertCurrentRate(ctx context.Context, rate models.NormalizedRate) (ports.UpsertOutcome, error) {
	args := m.Called(ctx, rate)
	return args.Get(0).(ports.UpsertOutcome), args.Error(1)
}

func (m *MockRateRepository) FindCurrentRate(ctx context.Context, currencyCode, zoneID string) (*models.NormalizedRate, error) {
	args := m.Called(ctx, currencyCode, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NormalizedRate), args.Error(1)
}

func (m *MockRateRepository) FindRateByDate(ctx context.Context, currencyCode, zoneID string, date time.Time) (*models.NormalizedRate, error) {
	args := m.Called(ctx, currencyCode, zoneID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NormalizedRate), args.Error(1)
}

func (m *MockRateRepository) ListRates(ctx context.Context, zoneID string, filter ports.RateFilter) ([]models.NormalizedRate, error) {
	args := m.Called(ctx, zoneID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NormalizedRate), args.Error(1)
}

func (m *MockRateRepository) ListRatedCurrencyCodes(ctx context.Context, zoneID string, date *time.Time) ([]string, error) {
	args := m.Called(ctx, zoneID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
