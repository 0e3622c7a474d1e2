package ordersRepo

import (
	"context"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository persists committed orders.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByTravelerID(ctx context.Context, travelerID string) ([]models.Order, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns an OrderRepository backed by MongoDB.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database("voyago")
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}
