package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// ZoneService manages zones, their data sources and per-zone currency
// activations.
type ZoneService struct {
	zoneRepo       ports.ZoneRepository
	sourceRepo     ports.SourceRepository
	activationRepo ports.ActivationRepository
	currencyRepo   ports.CurrencyRepository
}

// NewZoneService creates a new ZoneService.
func NewZoneService(
	zoneRepo ports.ZoneRepository,
	sourceRepo ports.SourceRepository,
	activationRepo ports.ActivationRepository,
	currencyRepo ports.CurrencyRepository,
) *ZoneService {
	return &ZoneService{
		zoneRepo:       zoneRepo,
		sourceRepo:     sourceRepo,
		activationRepo: activationRepo,
		currencyRepo:   currencyRepo,
	}
}

// CreateZone creates a monetary zone. When a base currency is given it must
// exist in the catalog.
func (s *ZoneService) CreateZone(ctx context.Context, req dto.CreateZoneRequest) (*models.Zone, error) {
	if req.BaseCurrencyCode != nil {
		if err := s.requireCurrency(ctx, *req.BaseCurrencyCode, "base"); err != nil {
			return nil, err
		}
	}

	zone := models.Zone{
		ZoneID:           uuid.NewString(),
		Name:             req.Name,
		BaseCurrencyCode: req.BaseCurrencyCode,
		IsActive:         true,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.zoneRepo.SaveZone(ctx, zone); err != nil {
		return nil, fmt.Errorf("failed to create zone: %w", err)
	}
	return &zone, nil
}

// GetZoneByID retrieves a zone.
func (s *ZoneService) GetZoneByID(ctx context.Context, zoneID string) (*models.Zone, error) {
	zone, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}
	return zone, nil
}

// ListZones retrieves all zones.
func (s *ZoneService) ListZones(ctx context.Context) ([]models.Zone, error) {
	zones, err := s.zoneRepo.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	if zones == nil {
		zones = []models.Zone{}
	}
	return zones, nil
}

// UpdateZone applies a partial update: the active flag and/or the base
// currency. Disabling a zone stops future pipeline runs without touching any
// stored rates.
func (s *ZoneService) UpdateZone(ctx context.Context, zoneID string, req dto.UpdateZoneRequest) (*models.Zone, error) {
	zone, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}

	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}
	if req.BaseCurrencyCode != nil {
		if err := s.requireCurrency(ctx, *req.BaseCurrencyCode, "base"); err != nil {
			return nil, err
		}
		zone.BaseCurrencyCode = req.BaseCurrencyCode
	}

	if err := s.zoneRepo.UpdateZone(ctx, *zone); err != nil {
		return nil, fmt.Errorf("failed to update zone %s: %w", zoneID, err)
	}
	return zone, nil
}

// SetSource configures the single data source feeding a zone.
func (s *ZoneService) SetSource(ctx context.Context, zoneID string, req dto.SetSourceRequest) (*models.Source, error) {
	if _, err := s.zoneRepo.FindZoneByID(ctx, zoneID); err != nil {
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}

	source := models.Source{
		ZoneID:      zoneID,
		Name:        req.Name,
		SourceURL:   req.SourceURL,
		ScraperName: req.ScraperName,
		Schedule:    req.Schedule,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.sourceRepo.SaveSource(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to set source for zone %s: %w", zoneID, err)
	}
	return &source, nil
}

// GetSource retrieves the source feeding a zone.
func (s *ZoneService) GetSource(ctx context.Context, zoneID string) (*models.Source, error) {
	source, err := s.sourceRepo.FindSourceByZoneID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get source for zone %s: %w", zoneID, err)
	}
	return source, nil
}

// SetActivation toggles a currency's eligibility within a zone. The currency
// must exist in the catalog.
func (s *ZoneService) SetActivation(ctx context.Context, zoneID, currencyCode string, isActive bool) (*models.Activation, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if _, err := s.zoneRepo.FindZoneByID(ctx, zoneID); err != nil {
		return nil, fmt.Errorf("failed to get zone %s: %w", zoneID, err)
	}
	if err := s.requireCurrency(ctx, currencyCode, "activated"); err != nil {
		return nil, err
	}

	activation := models.Activation{
		ZoneID:       zoneID,
		CurrencyCode: currencyCode,
		IsActive:     isActive,
	}
	if err := s.activationRepo.UpsertActivation(ctx, activation); err != nil {
		return nil, fmt.Errorf("failed to set activation %s/%s: %w", zoneID, currencyCode, err)
	}
	return &activation, nil
}

// ListActivations retrieves the activation configuration of a zone.
func (s *ZoneService) ListActivations(ctx context.Context, zoneID string) ([]models.Activation, error) {
	activations, err := s.activationRepo.ListActivations(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activations for zone %s: %w", zoneID, err)
	}
	if activations == nil {
		activations = []models.Activation{}
	}
	return activations, nil
}

func (s *ZoneService) requireCurrency(ctx context.Context, currencyCode, role string) error {
	_, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s currency %q is not in the catalog", apperrors.ErrValidation, role, currencyCode)
		}
		return fmt.Errorf("failed to validate %s currency %q: %w", role, currencyCode, err)
	}
	return nil
}
