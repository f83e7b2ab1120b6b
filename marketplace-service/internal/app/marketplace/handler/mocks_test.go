package handler

import (
	"context"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/stretchr/testify/mock"
)

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token string) (*infrastructure.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infrastructure.Identity), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Upsert(ctx context.Context, req *entity.UpsertUserRequest) (*service.UpsertUserResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UpsertUserResult), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserService) UpdateRole(ctx context.Context, id string, role string) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserService) HasRole(ctx context.Context, email string, roles ...string) (bool, error) {
	args := m.Called(ctx, email, roles)
	return args.Bool(0), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, req *entity.ProductRequest) (*entity.InsertResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InsertResult), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, query entity.ProductListQuery) ([]entity.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductService) HomeFeed(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductService) GetByItemName(ctx context.Context, itemName string) (*entity.Product, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductService) ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Product, error) {
	args := m.Called(ctx, vendorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductService) Replace(ctx context.Context, id string, req *entity.ProductRequest) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockProductService) UpdateStatus(ctx context.Context, id string, req *entity.UpdateProductStatusRequest) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DeleteResult), args.Error(1)
}

func (m *MockProductService) ItemNames(ctx context.Context) ([]entity.ItemName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ItemName), args.Error(1)
}

type MockWatchlistService struct {
	mock.Mock
}

func (m *MockWatchlistService) Add(ctx context.Context, callerEmail string, req *entity.AddWatchlistRequest) (*entity.InsertResult, bool, error) {
	args := m.Called(ctx, callerEmail, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.InsertResult), args.Bool(1), args.Error(2)
}

func (m *MockWatchlistService) ListByUser(ctx context.Context, email string) ([]entity.WatchlistEntry, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistService) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DeleteResult), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, callerEmail string, req *entity.CreateOrderRequest) (*entity.InsertResult, error) {
	args := m.Called(ctx, callerEmail, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InsertResult), args.Error(1)
}

func (m *MockOrderService) ListByBuyer(ctx context.Context, email string) ([]entity.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Add(ctx context.Context, callerEmail string, req *entity.CreateReviewRequest) (*entity.InsertResult, bool, error) {
	args := m.Called(ctx, callerEmail, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.InsertResult), args.Bool(1), args.Error(2)
}

func (m *MockReviewService) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Review), args.Error(1)
}

type MockAdvertisementService struct {
	mock.Mock
}

func (m *MockAdvertisementService) Create(ctx context.Context, req *entity.CreateAdvertisementRequest) (*entity.InsertResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InsertResult), args.Error(1)
}

func (m *MockAdvertisementService) ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Advertisement, error) {
	args := m.Called(ctx, vendorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Advertisement), args.Error(1)
}

func (m *MockAdvertisementService) Update(ctx context.Context, id string, req *entity.UpdateAdvertisementRequest) (*entity.UpdateResult, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpdateResult), args.Error(1)
}

func (m *MockAdvertisementService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}
