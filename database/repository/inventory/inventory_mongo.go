package inventoryRepo

import (
	"context"
	"fmt"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Find returns the catalog items matching the criteria for one vertical,
// cheapest first. Flights additionally match on origin.
func (r *mongoInventoryRepo) Find(ctx context.Context, vertical models.Vertical, criteria models.SearchCriteria) ([]models.Item, error) {
	filter := bson.M{
		"vertical":    string(vertical),
		"destination": criteria.Destination,
		"date":        criteria.Date,
	}
	if criteria.Origin != "" {
		filter["origin"] = criteria.Origin
	}

	opts := options.Find().SetSort(bson.D{{Key: "unit_price", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("inventory query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("inventory decode failed: %w", err)
	}
	return items, nil
}

// Upsert writes one catalog item, keyed by its id.
func (r *mongoInventoryRepo) Upsert(ctx context.Context, item models.Item) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": item.ID}, item, opts)
	if err != nil {
		return fmt.Errorf("inventory upsert failed: %w", err)
	}
	return nil
}
