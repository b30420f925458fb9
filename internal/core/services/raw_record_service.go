package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

const defaultRawRecordLimit = 100

// RawRecordService receives scraped batches and exposes the raw feed. It is
// the write side of the contract with the scraper collaborator: raw rows are
// stored as-is and validated only later, by the pipeline.
type RawRecordService struct {
	sourceRepo ports.SourceRepository
	rawRepo    ports.RawRecordRepository
}

// NewRawRecordService creates a new RawRecordService.
func NewRawRecordService(sourceRepo ports.SourceRepository, rawRepo ports.RawRecordRepository) *RawRecordService {
	return &RawRecordService{sourceRepo: sourceRepo, rawRepo: rawRepo}
}

// IngestRawRecords stores one scraped batch for a zone, replacing earlier
// scrapes of the same publication dates. Rows without a parseable date are
// kept too; the pipeline simply never selects them.
func (s *RawRecordService) IngestRawRecords(ctx context.Context, zoneID string, req dto.IngestRawRecordsRequest) (int, error) {
	if _, err := s.sourceRepo.FindSourceByZoneID(ctx, zoneID); err != nil {
		return 0, fmt.Errorf("failed to get source for zone %s: %w", zoneID, err)
	}

	now := time.Now().UTC()
	records := make([]models.RawRecord, 0, len(req.Records))
	for _, item := range req.Records {
		rec := models.RawRecord{
			RawRecordID:   uuid.NewString(),
			ZoneID:        zoneID,
			RawName:       item.RawName,
			RawCode:       item.RawCode,
			RawValue:      item.RawValue,
			RawMultiplier: item.RawMultiplier,
			ScrapedAt:     now,
		}
		if item.PublicationDate != nil {
			// Format is validated at binding time.
			d, err := time.Parse("2006-01-02", *item.PublicationDate)
			if err == nil {
				rec.PublicationDate = &d
			}
		}
		records = append(records, rec)
	}

	if err := s.rawRepo.ReplaceBatch(ctx, zoneID, records); err != nil {
		return 0, fmt.Errorf("failed to store raw records for zone %s: %w", zoneID, err)
	}
	return len(records), nil
}

// ListRecentRawRecords returns the newest stored rows for a zone.
func (s *RawRecordService) ListRecentRawRecords(ctx context.Context, zoneID string, limit int) ([]models.RawRecord, error) {
	if limit <= 0 {
		limit = defaultRawRecordLimit
	}
	records, err := s.rawRepo.ListRecent(ctx, zoneID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list raw records for zone %s: %w", zoneID, err)
	}
	if records == nil {
		records = []models.RawRecord{}
	}
	return records, nil
}
