package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/middleware"
	"github.com/zoneline/fx_rates_backend/internal/models"
	"github.com/zoneline/fx_rates_backend/internal/utils/rates"
)

// defaultPipelineTimeout bounds one reconciliation run.
const defaultPipelineTimeout = 2 * time.Minute

// PipelineService runs the raw-to-normalized reconciliation for one zone at a
// time. A run reads the latest scraped publication date, resolves each raw
// line to a catalog currency, normalizes the quoted value, and reconciles the
// current-rate flag per (currency, zone) pair. Per-record problems never
// abort the run; they are tallied in the summary.
type PipelineService struct {
	zoneRepo       ports.ZoneRepository
	sourceRepo     ports.SourceRepository
	rawRepo        ports.RawRecordRepository
	aliasRepo      ports.AliasRepository
	activationRepo ports.ActivationRepository
	rateRepo       ports.RateRepository
	runTimeout     time.Duration
}

// NewPipelineService creates a new PipelineService. A non-positive timeout
// falls back to the default.
func NewPipelineService(
	zoneRepo ports.ZoneRepository,
	sourceRepo ports.SourceRepository,
	rawRepo ports.RawRecordRepository,
	aliasRepo ports.AliasRepository,
	activationRepo ports.ActivationRepository,
	rateRepo ports.RateRepository,
	runTimeout time.Duration,
) *PipelineService {
	if runTimeout <= 0 {
		runTimeout = defaultPipelineTimeout
	}
	return &PipelineService{
		zoneRepo:       zoneRepo,
		sourceRepo:     sourceRepo,
		rawRepo:        rawRepo,
		aliasRepo:      aliasRepo,
		activationRepo: activationRepo,
		rateRepo:       rateRepo,
		runTimeout:     runTimeout,
	}
}

// RunPipeline executes one reconciliation run for the zone and returns its
// summary. Missing source or zone is a hard error; an inactive zone or an
// empty raw table short-circuits with the matching status.
func (s *PipelineService) RunPipeline(ctx context.Context, zoneID string) (*dto.PipelineRunSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("zone_id", zoneID))

	if _, err := s.sourceRepo.FindSourceByZoneID(ctx, zoneID); err != nil {
		logger.Error("Pipeline aborted: no source configured", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get source for zone %s: %w", zoneID, err)
	}

	zone, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		logger.Error("Pipeline aborted: zone lookup failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}

	summary := &dto.PipelineRunSummary{ZoneID: zoneID}

	if !zone.IsActive {
		logger.Info("Pipeline skipped: zone is inactive")
		summary.Status = dto.PipelineStatusZoneInactive
		return summary, nil
	}

	pubDate, err := s.rawRepo.FindLatestPublicationDate(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest publication date for zone %s: %w", zoneID, err)
	}
	if pubDate == nil {
		logger.Info("Pipeline skipped: no raw records for zone")
		summary.Status = dto.PipelineStatusNoData
		return summary, nil
	}

	records, err := s.rawRepo.ListByPublicationDate(ctx, zoneID, *pubDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list raw records for zone %s: %w", zoneID, err)
	}

	aliasMap, err := s.loadAliasMap(ctx)
	if err != nil {
		return nil, err
	}
	activeSet, err := s.loadActiveSet(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	dateStr := pubDate.Format("2006-01-02")
	summary.Status = dto.PipelineStatusCompleted
	summary.PublicationDate = &dateStr

	logger.Info("Pipeline run started",
		slog.String("publication_date", dateStr),
		slog.Int("raw_records", len(records)),
	)

	for _, record := range records {
		code, ok := resolveCurrencyCode(record, aliasMap)
		if !ok {
			logger.Debug("Raw record left unresolved",
				slog.String("raw_name", record.RawName),
				slog.String("raw_code", record.RawCode),
			)
			summary.Unresolved++
			continue
		}

		if !activeSet[code] {
			summary.Inactive++
			continue
		}

		rate := models.NormalizedRate{
			CurrencyCode:    code,
			ZoneID:          zoneID,
			PublicationDate: *pubDate,
			RawValue:        record.RawValue,
			RawMultiplier:   record.RawMultiplier,
			UnitRate:        rates.Normalize(record.RawValue, record.RawMultiplier),
			IsCurrent:       true,
			CreatedAt:       time.Now().UTC(),
		}

		outcome, err := s.upsertWithRetry(ctx, rate)
		if err != nil {
			logger.Error("Failed to upsert rate",
				slog.String("currency_code", code),
				slog.String("error", err.Error()),
			)
			summary.Errors++
			continue
		}

		switch outcome {
		case ports.UpsertOutcomeSkippedIdentical:
			summary.SkippedIdentical++
		default:
			summary.Injected++
		}
	}

	logger.Info("Pipeline run completed",
		slog.Int("injected", summary.Injected),
		slog.Int("skipped_identical", summary.SkippedIdentical),
		slog.Int("unresolved", summary.Unresolved),
		slog.Int("inactive", summary.Inactive),
		slog.Int("errors", summary.Errors),
	)
	return summary, nil
}

// upsertWithRetry retries the tuple once when the transaction lost a
// serialization or deadlock race. The upsert is idempotent, so a second
// attempt is always safe.
func (s *PipelineService) upsertWithRetry(ctx context.Context, rate models.NormalizedRate) (ports.UpsertOutcome, error) {
	outcome, err := s.rateRepo.UpsertCurrentRate(ctx, rate)
	if err != nil && errors.Is(err, apperrors.ErrConflict) {
		return s.rateRepo.UpsertCurrentRate(ctx, rate)
	}
	return outcome, err
}

func (s *PipelineService) loadAliasMap(ctx context.Context) (map[string]string, error) {
	aliases, err := s.aliasRepo.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list aliases: %w", err)
	}
	aliasMap := make(map[string]string, len(aliases))
	for _, a := range aliases {
		aliasMap[strings.ToUpper(a.Alias)] = a.CurrencyCode
	}
	return aliasMap, nil
}

func (s *PipelineService) loadActiveSet(ctx context.Context, zoneID string) (map[string]bool, error) {
	codes, err := s.activationRepo.ListActiveCurrencyCodes(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activations for zone %s: %w", zoneID, err)
	}
	activeSet := make(map[string]bool, len(codes))
	for _, code := range codes {
		activeSet[code] = true
	}
	return activeSet, nil
}

// resolveCurrencyCode maps a raw line to a catalog currency code through the
// alias dictionary. The scraped name is tried first, the scraped code second;
// both lookups are case-insensitive and a line with no dictionary entry stays
// unresolved, even when its code happens to spell a real ISO code.
func resolveCurrencyCode(record models.RawRecord, aliasMap map[string]string) (string, bool) {
	if code, ok := aliasMap[strings.ToUpper(strings.TrimSpace(record.RawName))]; ok {
		return code, true
	}
	if code, ok := aliasMap[strings.ToUpper(strings.TrimSpace(record.RawCode))]; ok {
		return code, true
	}
	return "", false
}
