package repository

import (
	"context"
	"fmt"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type advertisementRepository struct {
	collection *mongo.Collection
}

func NewAdvertisementRepository(db *mongo.Database) AdvertisementRepository {
	return &advertisementRepository{
		collection: db.Collection(AdvertisementsCollection),
	}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) (*entity.InsertResult, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpInsert, AdvertisementsCollection)
	result, err := r.collection.InsertOne(ctx, ad)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to create advertisement: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		ad.ID = oid
	}

	return entity.NewInsertResult(result), nil
}

func (r *advertisementRepository) ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Advertisement, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpFind, AdvertisementsCollection)
	cursor, err := r.collection.Find(ctx, bson.M{"vendor_email": vendorEmail})
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to find advertisements: %w", err)
	}
	defer cursor.Close(ctx)

	ads := make([]entity.Advertisement, 0)
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode advertisements: %w", err)
	}

	return ads, nil
}

// Update меняет title, description и image (только переданные) и всегда ставит updated_at
func (r *advertisementRepository) Update(ctx context.Context, id string, patch AdvertisementPatch) (*entity.UpdateResult, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": patch.UpdatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpUpdate, AdvertisementsCollection)
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to update advertisement: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return entity.NewUpdateResult(result), nil
}

func (r *advertisementRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpDelete, AdvertisementsCollection)
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to delete advertisement: %w", err)
	}

	if result.DeletedCount == 0 {
		return nil, ErrNotFound
	}

	return entity.NewDeleteResult(result), nil
}
