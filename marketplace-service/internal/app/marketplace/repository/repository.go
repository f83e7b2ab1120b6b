package repository

import (
	"context"
	"errors"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid object id")
)

const (
	UsersCollection          = "users"
	ProductsCollection       = "products"
	WatchlistCollection      = "watchLists"
	OrdersCollection         = "orders"
	ReviewsCollection        = "reviews"
	AdvertisementsCollection = "advertisements"
)

const metricsService = "marketplace-service"

type UserRepository interface {
	// Upsert обновляет last_loggedIn существующего пользователя или создает нового
	Upsert(ctx context.Context, user *entity.User) (*entity.UpdateResult, error)
	List(ctx context.Context) ([]entity.User, error)
	UpdateRole(ctx context.Context, id string, role string) (*entity.UpdateResult, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProductFilter - фильтр и сортировка для полного списка товаров
type ProductFilter struct {
	From        *time.Time
	To          *time.Time
	SortByPrice int // 1 - по возрастанию, -1 - по убыванию, 0 - без сортировки
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (*entity.InsertResult, error)
	List(ctx context.Context, filter ProductFilter) ([]entity.Product, error)
	ListApprovedBetween(ctx context.Context, from, to time.Time, limit int64) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByItemName(ctx context.Context, itemName string) (*entity.Product, error)
	ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Product, error)
	Replace(ctx context.Context, id string, product *entity.Product) (*entity.UpdateResult, error)
	UpdateStatus(ctx context.Context, id string, status string, feedback string) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
	DistinctItemNames(ctx context.Context) ([]entity.ItemName, error)
}

type WatchlistRepository interface {
	// AddIfAbsent возвращает created=false, если пара (userEmail, productId) уже есть
	AddIfAbsent(ctx context.Context, entry *entity.WatchlistEntry) (*entity.InsertResult, bool, error)
	ListByUser(ctx context.Context, userEmail string) ([]entity.WatchlistEntry, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (*entity.InsertResult, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]entity.Order, error)
}

type ReviewRepository interface {
	// AddIfAbsent возвращает created=false, если пара (productId, userEmail) уже есть
	AddIfAbsent(ctx context.Context, review *entity.Review) (*entity.InsertResult, bool, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.Review, error)
}

// AdvertisementPatch - изменяемые поля рекламы, nil означает "не менять"
type AdvertisementPatch struct {
	Title       *string
	Description *string
	Image       *string
	UpdatedAt   time.Time
}

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *entity.Advertisement) (*entity.InsertResult, error)
	ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Advertisement, error)
	Update(ctx context.Context, id string, patch AdvertisementPatch) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
