package services

import (
	"context"

	"github.com/zoneline/fx_rates_backend/internal/dto"
)

// PipelineSvcFacade runs the ingestion pipeline for one zone's source. Safe
// to call twice for the same snapshot: the upsert underneath is idempotent.
type PipelineSvcFacade interface {
	RunPipeline(ctx context.Context, zoneID string) (*dto.PipelineRunSummary, error)
}
