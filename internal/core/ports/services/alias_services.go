package services

import (
	"context"

	"github.com/zoneline/fx_rates_backend/internal/models"
)

// AliasSvcFacade manages the alias dictionary consumed by the pipeline's
// resolver. Aliases are exact, case-normalized and manually curated.
type AliasSvcFacade interface {
	SaveAlias(ctx context.Context, alias, currencyCode string) (*models.Alias, error)
	DeleteAlias(ctx context.Context, alias string) error
	ListAliases(ctx context.Context) ([]models.Alias, error)
}
