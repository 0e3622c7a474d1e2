package inventoryRepo

import (
	"context"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InventoryRepository provides access to the bookable item catalog.
type InventoryRepository interface {
	Find(ctx context.Context, vertical models.Vertical, criteria models.SearchCriteria) ([]models.Item, error)
	Upsert(ctx context.Context, item models.Item) error
}

type mongoInventoryRepo struct {
	coll *mongo.Collection
}

// NewMongoInventoryRepo returns an InventoryRepository backed by MongoDB.
func NewMongoInventoryRepo() InventoryRepository {
	db := database.MongoClient.Database("voyago")
	return &mongoInventoryRepo{
		coll: db.Collection("inventory"),
	}
}
