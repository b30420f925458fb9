package services

import (
	"context"

	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// RawRecordSvcFacade receives scraped batches from the scraper collaborator
// and exposes the stored raw feed for inspection.
type RawRecordSvcFacade interface {
	IngestRawRecords(ctx context.Context, zoneID string, req dto.IngestRawRecordsRequest) (int, error)
	ListRecentRawRecords(ctx context.Context, zoneID string, limit int) ([]models.RawRecord, error)
}
