package service

import (
	"context"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
)

type UserServiceInterface interface {
	Upsert(ctx context.Context, req *entity.UpsertUserRequest) (*UpsertUserResult, error)
	List(ctx context.Context) ([]entity.User, error)
	UpdateRole(ctx context.Context, id string, role string) (*entity.UpdateResult, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	HasRole(ctx context.Context, email string, roles ...string) (bool, error)
}

type ProductServiceInterface interface {
	Create(ctx context.Context, req *entity.ProductRequest) (*entity.InsertResult, error)
	List(ctx context.Context, query entity.ProductListQuery) ([]entity.Product, error)
	HomeFeed(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByItemName(ctx context.Context, itemName string) (*entity.Product, error)
	ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Product, error)
	Replace(ctx context.Context, id string, req *entity.ProductRequest) (*entity.UpdateResult, error)
	UpdateStatus(ctx context.Context, id string, req *entity.UpdateProductStatusRequest) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
	ItemNames(ctx context.Context) ([]entity.ItemName, error)
}

type WatchlistServiceInterface interface {
	Add(ctx context.Context, callerEmail string, req *entity.AddWatchlistRequest) (*entity.InsertResult, bool, error)
	ListByUser(ctx context.Context, email string) ([]entity.WatchlistEntry, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, callerEmail string, req *entity.CreateOrderRequest) (*entity.InsertResult, error)
	ListByBuyer(ctx context.Context, email string) ([]entity.Order, error)
}

type ReviewServiceInterface interface {
	Add(ctx context.Context, callerEmail string, req *entity.CreateReviewRequest) (*entity.InsertResult, bool, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.Review, error)
}

type AdvertisementServiceInterface interface {
	Create(ctx context.Context, req *entity.CreateAdvertisementRequest) (*entity.InsertResult, error)
	ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Advertisement, error)
	Update(ctx context.Context, id string, req *entity.UpdateAdvertisementRequest) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) error
}

type PaymentServiceInterface interface {
	CreatePaymentIntent(ctx context.Context, amount float64) (string, error)
}
