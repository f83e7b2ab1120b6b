package mocks

import (
	"context"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository мок для UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.UpdateResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role string) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockProductRepository мок для ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.InsertResult, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InsertResult), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListApprovedBetween(ctx context.Context, from, to time.Time, limit int64) ([]entity.Product, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByItemName(ctx context.Context, itemName string) (*entity.Product, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Product, error) {
	args := m.Called(ctx, vendorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) Replace(ctx context.Context, id string, product *entity.Product) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockProductRepository) UpdateStatus(ctx context.Context, id string, status string, feedback string) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, status, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DeleteResult), args.Error(1)
}

func (m *MockProductRepository) DistinctItemNames(ctx context.Context) ([]entity.ItemName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ItemName), args.Error(1)
}

// MockWatchlistRepository мок для WatchlistRepository
type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) AddIfAbsent(ctx context.Context, entry *entity.WatchlistEntry) (*entity.InsertResult, bool, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.InsertResult), args.Bool(1), args.Error(2)
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userEmail string) ([]entity.WatchlistEntry, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DeleteResult), args.Error(1)
}

// MockOrderRepository мок для OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.InsertResult, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InsertResult), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]entity.Order, error) {
	args := m.Called(ctx, buyerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

// MockReviewRepository мок для ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) AddIfAbsent(ctx context.Context, review *entity.Review) (*entity.InsertResult, bool, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.InsertResult), args.Bool(1), args.Error(2)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Review), args.Error(1)
}

// MockAdvertisementRepository мок для AdvertisementRepository
type MockAdvertisementRepository struct {
	mock.Mock
}

func (m *MockAdvertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) (*entity.InsertResult, error) {
	args := m.Called(ctx, ad)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InsertResult), args.Error(1)
}

func (m *MockAdvertisementRepository) ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Advertisement, error) {
	args := m.Called(ctx, vendorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Advertisement), args.Error(1)
}

func (m *MockAdvertisementRepository) Update(ctx context.Context, id string, patch repository.AdvertisementPatch) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockAdvertisementRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DeleteResult), args.Error(1)
}

// MockMessagePublisher мок для Kafka MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockItemNameCache мок для кеша уникальных наименований
type MockItemNameCache struct {
	mock.Mock
}

func (m *MockItemNameCache) GetItemNames(ctx context.Context) ([]entity.ItemName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ItemName), args.Error(1)
}

func (m *MockItemNameCache) SetItemNames(ctx context.Context, names []entity.ItemName) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

func (m *MockItemNameCache) InvalidateItemNames(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemNameCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockPaymentGateway мок для платежного шлюза
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}
