package repository

import (
	"context"
	"errors"
	"fmt"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(UsersCollection),
	}
}

// Upsert выполняет вход пользователя одной операцией:
// у существующего документа меняется только last_loggedIn,
// новый документ получает role, created_at и профиль через $setOnInsert.
func (r *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.UpdateResult, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpUpsert, UsersCollection)

	onInsert := bson.M{
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}
	if user.Name != "" {
		onInsert["name"] = user.Name
	}
	if user.Photo != "" {
		onInsert["photo"] = user.Photo
	}

	filter := bson.M{"email": user.Email}
	update := bson.M{
		"$set":         bson.M{"last_loggedIn": user.LastLoggedIn},
		"$setOnInsert": onInsert,
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// параллельный первый вход: документ уже вставлен, повтор попадет в $set
		result, err = r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	}
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return entity.NewUpdateResult(result), nil
}

// List возвращает всех пользователей, новые первыми
func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpFind, UsersCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]entity.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role string) (*entity.UpdateResult, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpUpdate, UsersCollection)
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"role": role}},
	)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return entity.NewUpdateResult(result), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpFind, UsersCollection)

	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		timer.Done(nil)
		return nil, ErrNotFound
	}
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
