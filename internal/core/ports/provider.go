package ports

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo   CurrencyRepository
	ZoneRepo       ZoneRepository
	SourceRepo     SourceRepository
	AliasRepo      AliasRepository
	ActivationRepo ActivationRepository
	RawRecordRepo  RawRecordRepository
	RateRepo       RateRepository
}
