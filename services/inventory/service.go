package inventory

import (
	"context"
	"fmt"

	inventoryRepo "voyago/database/repository/inventory"
	"voyago/models"

	"go.uber.org/zap"
)

// Service answers searchItems calls for the booking engine. A failed
// lookup is always a descriptive error, never an ambiguous empty list;
// an empty list means the search genuinely matched nothing.
type Service interface {
	SearchItems(ctx context.Context, vertical models.Vertical, criteria models.SearchCriteria) ([]models.Item, error)
}

// CatalogService implements Service against the Mongo catalog.
type CatalogService struct {
	Repo   inventoryRepo.InventoryRepository
	Logger *zap.Logger
}

func NewCatalogService(repo inventoryRepo.InventoryRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{Repo: repo, Logger: logger}
}

func (s *CatalogService) SearchItems(ctx context.Context, vertical models.Vertical, criteria models.SearchCriteria) ([]models.Item, error) {
	items, err := s.Repo.Find(ctx, vertical, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s inventory for %s on %s: %w",
			vertical, criteria.Destination, criteria.Date, err)
	}
	s.Logger.Debug("inventory search",
		zap.String("vertical", string(vertical)),
		zap.String("destination", criteria.Destination),
		zap.Int("matches", len(items)),
	)
	return items, nil
}
