package repository

import (
	"context"
	"fmt"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepository{
		collection: db.Collection(OrdersCollection),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (*entity.InsertResult, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpInsert, OrdersCollection)
	result, err := r.collection.InsertOne(ctx, order)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	return entity.NewInsertResult(result), nil
}

// ListByBuyer возвращает заказы покупателя, последние первыми
func (r *orderRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpFind, OrdersCollection)
	cursor, err := r.collection.Find(ctx, bson.M{"buyerEmail": buyerEmail}, opts)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]entity.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
