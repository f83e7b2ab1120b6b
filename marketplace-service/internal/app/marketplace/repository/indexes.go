package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes создает индексы всех коллекций.
// Уникальные индексы гарантируют один документ на email пользователя,
// на пару (userEmail, productId) в watchlist и на пару (productId, userEmail) в отзывах.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
		},
		ProductsCollection: {
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("status_created_at_idx"),
			},
			{
				Keys:    bson.D{{Key: "vendor_email", Value: 1}},
				Options: options.Index().SetName("vendor_email_idx"),
			},
			{
				Keys:    bson.D{{Key: "itemName", Value: 1}},
				Options: options.Index().SetName("item_name_idx"),
			},
		},
		WatchlistCollection: {
			{
				Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "productId", Value: 1}},
				Options: options.Index().SetName("user_product_unique").SetUnique(true),
			},
		},
		OrdersCollection: {
			{
				Keys:    bson.D{{Key: "buyerEmail", Value: 1}, {Key: "date", Value: -1}},
				Options: options.Index().SetName("buyer_date_idx"),
			},
		},
		ReviewsCollection: {
			{
				Keys:    bson.D{{Key: "productId", Value: 1}, {Key: "userEmail", Value: 1}},
				Options: options.Index().SetName("product_user_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "productId", Value: 1}, {Key: "date", Value: -1}},
				Options: options.Index().SetName("product_date_idx"),
			},
		},
		AdvertisementsCollection: {
			{
				Keys:    bson.D{{Key: "vendor_email", Value: 1}},
				Options: options.Index().SetName("vendor_email_idx"),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}

	return nil
}
