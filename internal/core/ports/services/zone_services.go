package services

import (
	"context"

	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// ZoneReaderSvc defines read operations on zones and their sources.
type ZoneReaderSvc interface {
	GetZoneByID(ctx context.Context, zoneID string) (*models.Zone, error)
	ListZones(ctx context.Context) ([]models.Zone, error)
	GetSource(ctx context.Context, zoneID string) (*models.Source, error)
	ListActivations(ctx context.Context, zoneID string) ([]models.Activation, error)
}

// ZoneWriterSvc defines write operations on zones, sources and activations.
type ZoneWriterSvc interface {
	CreateZone(ctx context.Context, req dto.CreateZoneRequest) (*models.Zone, error)
	UpdateZone(ctx context.Context, zoneID string, req dto.UpdateZoneRequest) (*models.Zone, error)
	SetSource(ctx context.Context, zoneID string, req dto.SetSourceRequest) (*models.Source, error)
	SetActivation(ctx context.Context, zoneID, currencyCode string, isActive bool) (*models.Activation, error)
}

// ZoneSvcFacade combines all zone administration service interfaces.
type ZoneSvcFacade interface {
	ZoneReaderSvc
	ZoneWriterSvc
}
