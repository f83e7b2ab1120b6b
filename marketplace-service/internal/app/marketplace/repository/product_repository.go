package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{
		collection: db.Collection(ProductsCollection),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) (*entity.InsertResult, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpInsert, ProductsCollection)
	result, err := r.collection.InsertOne(ctx, product)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	return entity.NewInsertResult(result), nil
}

// List возвращает товары для страницы "все товары".
// Диапазон дат включительный с обеих сторон и применяется только если заданы обе границы.
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]entity.Product, error) {
	query := bson.M{}
	if filter.From != nil && filter.To != nil {
		query["created_at"] = bson.M{
			"$gte": *filter.From,
			"$lte": *filter.To,
		}
	}

	opts := options.Find()
	if filter.SortByPrice == 1 || filter.SortByPrice == -1 {
		opts.SetSort(bson.D{{Key: "pricePerUnit", Value: filter.SortByPrice}})
	}

	return r.find(ctx, query, opts)
}

// ListApprovedBetween - лента главной страницы: одобренные товары за окно дат, без сортировки
func (r *productRepository) ListApprovedBetween(ctx context.Context, from, to time.Time, limit int64) ([]entity.Product, error) {
	query := bson.M{
		"status": entity.ProductStatusApproved,
		"created_at": bson.M{
			"$gte": from,
			"$lte": to,
		},
	}

	return r.find(ctx, query, options.Find().SetLimit(limit))
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *productRepository) GetByItemName(ctx context.Context, itemName string) (*entity.Product, error) {
	return r.findOne(ctx, bson.M{"itemName": itemName})
}

func (r *productRepository) ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Product, error) {
	return r.find(ctx, bson.M{"vendor_email": vendorEmail}, options.Find())
}

// Replace перезаписывает редактируемые вендором поля.
// status не трогается, product_image меняется только если передано новое изображение.
func (r *productRepository) Replace(ctx context.Context, id string, product *entity.Product) (*entity.UpdateResult, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"vendor_email":      product.VendorEmail,
		"vendor_name":       product.VendorName,
		"market":            product.Market,
		"marketDescription": product.MarketDescription,
		"itemName":          product.ItemName,
		"itemDescription":   product.ItemDescription,
		"prices":            product.Prices,
		"created_at":        product.CreatedAt,
		"pricePerUnit":      product.PricePerUnit,
	}
	if product.ProductImage != "" {
		set["product_image"] = product.ProductImage
	}

	return r.updateOne(ctx, objectID, bson.M{"$set": set})
}

func (r *productRepository) UpdateStatus(ctx context.Context, id string, status string, feedback string) (*entity.UpdateResult, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"status": status}}
	if feedback != "" {
		update["$set"].(bson.M)["feedback"] = feedback
	} else {
		update["$unset"] = bson.M{"feedback": ""}
	}

	return r.updateOne(ctx, objectID, update)
}

func (r *productRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpDelete, ProductsCollection)
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	if result.DeletedCount == 0 {
		return nil, ErrNotFound
	}

	return entity.NewDeleteResult(result), nil
}

// DistinctItemNames группирует товары по itemName и возвращает [{itemName}] без _id
func (r *productRepository) DistinctItemNames(ctx context.Context) ([]entity.ItemName, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$itemName"}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "itemName", Value: "$_id"},
		}}},
	}

	timer := metrics.NewDbTimer(metricsService, metrics.DbOpAggregate, ProductsCollection)
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate item names: %w", err)
	}
	defer cursor.Close(ctx)

	names := make([]entity.ItemName, 0)
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("failed to decode item names: %w", err)
	}

	return names, nil
}

func (r *productRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]entity.Product, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpFind, ProductsCollection)
	cursor, err := r.collection.Find(ctx, query, opts)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]entity.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (r *productRepository) findOne(ctx context.Context, query bson.M) (*entity.Product, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpFind, ProductsCollection)

	var product entity.Product
	err := r.collection.FindOne(ctx, query).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		timer.Done(nil)
		return nil, ErrNotFound
	}
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (r *productRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.UpdateResult, error) {
	timer := metrics.NewDbTimer(metricsService, metrics.DbOpUpdate, ProductsCollection)
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	timer.Done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return entity.NewUpdateResult(result), nil
}
