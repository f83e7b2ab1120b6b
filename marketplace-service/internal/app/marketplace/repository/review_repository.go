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

type reviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(ReviewsCollection),
	}
}

// AddIfAbsent сохраняет отзыв, если пользователь еще не оценивал товар
func (r *reviewRepository) AddIfAbsent(ctx context.Context, review *entity.Review) (*entity.InsertResult, bool, error) {
	filter := bson.M{
		"productId": review.ProductID,
		"userEmail": review.UserEmail,
	}

	onInsert := bson.M{
		"rating":  review.Rating,
		"comment": review.Comment,
		"date":    review.Date,
	}
	if review.UserName != "" {
		onInsert["userName"] = review.UserName
	}
	if review.UserPhoto != "" {
		onInsert["userPhoto"] = review.UserPhoto
	}

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpUpsert, ReviewsCollection)
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$setOnInsert": onInsert}, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		timer.Done(nil)
		return nil, false, nil
	}
	timer.Done(err)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add review: %w", err)
	}

	if result.UpsertedCount == 0 {
		return nil, false, nil
	}

	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}

	return &entity.InsertResult{Acknowledged: true, InsertedID: result.UpsertedID}, true, nil
}

// ListByProduct возвращает отзывы товара, новые первыми
func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpFind, ReviewsCollection)
	cursor, err := r.collection.Find(ctx, bson.M{"productId": productID}, opts)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := make([]entity.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}
