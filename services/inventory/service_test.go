package inventory

import (
	"context"
	"errors"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRepo struct {
	items []models.Item
	err   error
}

func (r *stubRepo) Find(ctx context.Context, vertical models.Vertical, criteria models.SearchCriteria) ([]models.Item, error) {
	return r.items, r.err
}

func (r *stubRepo) Upsert(ctx context.Context, item models.Item) error { return nil }

func TestSearchItemsPassesThrough(t *testing.T) {
	repo := &stubRepo{items: []models.Item{{ID: "FL-1"}, {ID: "FL-2"}}}
	svc := NewCatalogService(repo, zap.NewNop())

	items, err := svc.SearchItems(context.Background(), models.VerticalFlight, models.SearchCriteria{Destination: "London"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSearchItemsWrapsFailuresDescriptively(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection reset")}
	svc := NewCatalogService(repo, zap.NewNop())

	_, err := svc.SearchItems(context.Background(), models.VerticalFlight, models.SearchCriteria{Destination: "London", Date: "2026-10-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flight")
	assert.Contains(t, err.Error(), "London")
	assert.True(t, errors.Is(err, repo.err))
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	svc := NewCatalogService(&stubRepo{}, zap.NewNop())

	items, err := svc.SearchItems(context.Background(), models.VerticalTour, models.SearchCriteria{Destination: "Rome"})
	require.NoError(t, err)
	assert.Empty(t, items)
}
