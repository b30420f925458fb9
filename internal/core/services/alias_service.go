package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// AliasService manages the alias dictionary. Aliases are stored uppercased so
// resolution can ignore case.
type AliasService struct {
	aliasRepo    ports.AliasRepository
	currencyRepo ports.CurrencyRepository
}

// NewAliasService creates a new AliasService.
func NewAliasService(aliasRepo ports.AliasRepository, currencyRepo ports.CurrencyRepository) *AliasService {
	return &AliasService{aliasRepo: aliasRepo, currencyRepo: currencyRepo}
}

// SaveAlias binds a raw label to a catalog currency, creating or repointing
// the entry.
func (s *AliasService) SaveAlias(ctx context.Context, alias, currencyCode string) (*models.Alias, error) {
	alias = strings.ToUpper(strings.TrimSpace(alias))
	currencyCode = strings.ToUpper(currencyCode)
	if alias == "" {
		return nil, fmt.Errorf("%w: alias cannot be empty", apperrors.ErrValidation)
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %q is not in the catalog", apperrors.ErrValidation, currencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency %q: %w", currencyCode, err)
	}

	entry := models.Alias{Alias: alias, CurrencyCode: currencyCode}
	if err := s.aliasRepo.SaveAlias(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save alias %q: %w", alias, err)
	}
	return &entry, nil
}

// DeleteAlias removes an alias dictionary entry.
func (s *AliasService) DeleteAlias(ctx context.Context, alias string) error {
	alias = strings.ToUpper(strings.TrimSpace(alias))
	if err := s.aliasRepo.DeleteAlias(ctx, alias); err != nil {
		return fmt.Errorf("failed to delete alias %q: %w", alias, err)
	}
	return nil
}

// ListAliases retrieves the whole dictionary.
func (s *AliasService) ListAliases(ctx context.Context) ([]models.Alias, error) {
	aliases, err := s.aliasRepo.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list aliases: %w", err)
	}
	if aliases == nil {
		aliases = []models.Alias{}
	}
	return aliases, nil
}
