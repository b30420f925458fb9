package ports

import (
	"context"
	"time"

	"github.com/zoneline/fx_rates_backend/internal/models"
)

// UpsertOutcome reports what the rate upsert actually did, so pipeline runs
// can be summarized as counts.
type UpsertOutcome int

const (
	// UpsertOutcomeInjected means a row was inserted or updated and flagged current.
	UpsertOutcomeInjected UpsertOutcome = iota
	// UpsertOutcomeSkippedIdentical means the stored row already matched byte
	// for byte and was already current, so nothing was written.
	UpsertOutcomeSkippedIdentical
)

// RateFilter narrows ListRates. When no date bound is set the listing is
// restricted to current rates, matching the read API contract.
type RateFilter struct {
	CurrencyCodes []string
	StartDate     *time.Time
	EndDate       *time.Time
	Limit         int
}

// CurrencyRepository defines persistence operations for the currency catalog.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency models.Currency) error
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error)
	ListCurrencies(ctx context.Context) ([]models.Currency, error)
}

// ZoneRepository defines persistence operations for monetary zones.
type ZoneRepository interface {
	SaveZone(ctx context.Context, zone models.Zone) error
	FindZoneByID(ctx context.Context, zoneID string) (*models.Zone, error)
	ListZones(ctx context.Context) ([]models.Zone, error)
	UpdateZone(ctx context.Context, zone models.Zone) error
}

// SourceRepository defines persistence operations for a zone's data source.
type SourceRepository interface {
	SaveSource(ctx context.Context, source models.Source) error
	FindSourceByZoneID(ctx context.Context, zoneID string) (*models.Source, error)
}

// AliasRepository defines persistence operations for the alias dictionary.
type AliasRepository interface {
	SaveAlias(ctx context.Context, alias models.Alias) error
	DeleteAlias(ctx context.Context, alias string) error
	ListAliases(ctx context.Context) ([]models.Alias, error)
}

// ActivationRepository defines persistence operations for per-zone currency
// activations.
type ActivationRepository interface {
	UpsertActivation(ctx context.Context, activation models.Activation) error
	ListActivations(ctx context.Context, zoneID string) ([]models.Activation, error)
	ListActiveCurrencyCodes(ctx context.Context, zoneID string) ([]string, error)
}

// RawRecordRepository defines persistence operations for scraped raw records.
type RawRecordRepository interface {
	// ReplaceBatch replaces previously scraped rows for each publication date
	// present in the batch, then inserts the batch atomically. Re-scraping a
	// date is therefore safe and leaves exactly one scrape per date.
	ReplaceBatch(ctx context.Context, zoneID string, records []models.RawRecord) error
	FindLatestPublicationDate(ctx context.Context, zoneID string) (*time.Time, error)
	ListByPublicationDate(ctx context.Context, zoneID string, date time.Time) ([]models.RawRecord, error)
	ListRecent(ctx context.Context, zoneID string, limit int) ([]models.RawRecord, error)
}

// RateRepository defines persistence operations for normalized rates.
type RateRepository interface {
	// UpsertCurrentRate atomically reconciles the current-rate flag for the
	// rate's (currency, zone) pair: inside one transaction it locks the
	// pair's rows, skips when the stored row is identical and already
	// current, otherwise clears every current flag for the pair and inserts
	// or updates the row as the new current rate.
	UpsertCurrentRate(ctx context.Context, rate models.NormalizedRate) (UpsertOutcome, error)
	FindCurrentRate(ctx context.Context, currencyCode, zoneID string) (*models.NormalizedRate, error)
	FindRateByDate(ctx context.Context, currencyCode, zoneID string, date time.Time) (*models.NormalizedRate, error)
	ListRates(ctx context.Context, zoneID string, filter RateFilter) ([]models.NormalizedRate, error)
	// ListRatedCurrencyCodes returns the codes that have a rate in the zone:
	// the current rate when date is nil, or a rate on exactly that date.
	ListRatedCurrencyCodes(ctx context.Context, zoneID string, date *time.Time) ([]string, error)
}
