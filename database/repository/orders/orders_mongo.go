package ordersRepo

import (
	"context"
	"errors"
	"fmt"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a committed order. Orders are immutable; there is no
// update path.
func (r *mongoOrderRepo) Create(ctx context.Context, order models.Order) error {
	if order.ID == "" {
		return errors.New("order id is required")
	}
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("order insert failed: %w", err)
	}
	return nil
}

// GetByID returns one order by its id.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("order %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByTravelerID returns every order a traveler has committed.
func (r *mongoOrderRepo) GetByTravelerID(ctx context.Context, travelerID string) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"traveler_id": travelerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
