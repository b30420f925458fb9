package services

// ServiceContainer holds instances of all the application services. Handlers
// depend on these facades, never on concrete service types.
type ServiceContainer struct {
	Currency  CurrencySvcFacade
	Zone      ZoneSvcFacade
	Alias     AliasSvcFacade
	RawRecord RawRecordSvcFacade
	Rate      RateSvcFacade
	Pipeline  PipelineSvcFacade
}
