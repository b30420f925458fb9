package services

import (
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos ports.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Zone = NewZoneService(repos.ZoneRepo, repos.SourceRepo, repos.ActivationRepo, repos.CurrencyRepo)
	container.Alias = NewAliasService(repos.AliasRepo, repos.CurrencyRepo)
	container.RawRecord = NewRawRecordService(repos.SourceRepo, repos.RawRecordRepo)
	container.Rate = NewRateService(repos.RateRepo, repos.ZoneRepo, repos.CurrencyRepo, repos.ActivationRepo)
	container.Pipeline = NewPipelineService(
		repos.ZoneRepo,
		repos.SourceRepo,
		repos.RawRecordRepo,
		repos.AliasRepo,
		repos.ActivationRepo,
		repos.RateRepo,
		cfg.PipelineTimeout,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade  = (*CurrencyService)(nil)
	_ portssvc.ZoneSvcFacade      = (*ZoneService)(nil)
	_ portssvc.AliasSvcFacade     = (*AliasService)(nil)
	_ portssvc.RawRecordSvcFacade = (*RawRecordService)(nil)
	_ portssvc.RateSvcFacade      = (*RateService)(nil)
	_ portssvc.PipelineSvcFacade  = (*PipelineService)(nil)
)
