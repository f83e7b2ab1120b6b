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

type watchlistRepository struct {
	collection *mongo.Collection
}

func NewWatchlistRepository(db *mongo.Database) WatchlistRepository {
	return &watchlistRepository{
		collection: db.Collection(WatchlistCollection),
	}
}

// AddIfAbsent вставляет запись через upsert с $setOnInsert по паре (userEmail, productId).
// Проверка и вставка атомарны; при гонке двух upsert уникальный индекс отклоняет второй,
// и он тоже считается повтором.
func (r *watchlistRepository) AddIfAbsent(ctx context.Context, entry *entity.WatchlistEntry) (*entity.InsertResult, bool, error) {
	filter := bson.M{
		"userEmail": entry.UserEmail,
		"productId": entry.ProductID,
	}

	onInsert := bson.M{"date": entry.Date}
	if entry.ItemName != "" {
		onInsert["itemName"] = entry.ItemName
	}
	if entry.Market != "" {
		onInsert["market"] = entry.Market
	}

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpUpsert, WatchlistCollection)
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$setOnInsert": onInsert}, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		timer.Done(nil)
		return nil, false, nil
	}
	timer.Done(err)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add watchlist entry: %w", err)
	}

	if result.UpsertedCount == 0 {
		return nil, false, nil
	}

	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		entry.ID = oid
	}

	return &entity.InsertResult{Acknowledged: true, InsertedID: result.UpsertedID}, true, nil
}

func (r *watchlistRepository) ListByUser(ctx context.Context, userEmail string) ([]entity.WatchlistEntry, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpFind, WatchlistCollection)
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": userEmail})
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to find watchlist: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]entity.WatchlistEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode watchlist: %w", err)
	}

	return entries, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpDelete, WatchlistCollection)
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to delete watchlist entry: %w", err)
	}

	if result.DeletedCount == 0 {
		return nil, ErrNotFound
	}

	return entity.NewDeleteResult(result), nil
}
