package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zoneline/fx_rates_backend/internal/core/ports"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) ports.RepositoryProvider {
	return ports.RepositoryProvider{
		CurrencyRepo:   NewCurrencyRepository(dbPool),
		ZoneRepo:       NewZoneRepository(dbPool),
		SourceRepo:     NewSourceRepository(dbPool),
		AliasRepo:      NewAliasRepository(dbPool),
		ActivationRepo: NewActivationRepository(dbPool),
		RawRecordRepo:  NewRawRecordRepository(dbPool),
		RateRepo:       NewRateRepository(dbPool),
	}
}
