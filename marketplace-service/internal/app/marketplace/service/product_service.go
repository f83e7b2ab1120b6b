package service

import (
	"context"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"
	"bazaar/marketplace-service/internal/app/marketplace/repository"
	"bazaar/pkg/logger"
	"bazaar/pkg/metrics"
)

const (
	homeFeedWindow = 48 * time.Hour
	homeFeedLimit  = 6
)

// ProductService - товары вендоров, модерация и кеш наименований
type ProductService struct {
	productRepo repository.ProductRepository
	cache       infrastructure.ItemNameCache
	publisher   infrastructure.MessagePublisher
	now         func() time.Time
}

func NewProductService(
	productRepo repository.ProductRepository,
	cache infrastructure.ItemNameCache,
	publisher infrastructure.MessagePublisher,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		cache:       cache,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Create сохраняет товар со статусом pending независимо от тела запроса.
// Пустой created_at заменяется текущим временем
func (s *ProductService) Create(ctx context.Context, req *entity.ProductRequest) (*entity.InsertResult, error) {
	product, err := s.productFromRequest(req)
	if err != nil {
		return nil, err
	}
	product.Status = entity.ProductStatusPending

	result, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	metrics.ProductsSubmitted.Inc()
	s.invalidateItemNames(ctx)

	publishEvent(ctx, s.publisher, entity.MarketplaceEvent{
		EventType:   entity.EventProductSubmitted,
		DocumentID:  product.ID.Hex(),
		ProductID:   product.ID.Hex(),
		VendorEmail: product.VendorEmail,
		Status:      product.Status,
		Timestamp:   s.now(),
	})

	return result, nil
}

// List - полный список: диапазон по created_at применяется только если заданы обе границы,
// sort=asc|desc сортирует по pricePerUnit
func (s *ProductService) List(ctx context.Context, query entity.ProductListQuery) ([]entity.Product, error) {
	var filter repository.ProductFilter

	if query.Start != "" && query.End != "" {
		from, err := entity.ParseDate(query.Start, time.Time{})
		if err != nil {
			return nil, err
		}
		to, err := entity.ParseDate(query.End, time.Time{})
		if err != nil {
			return nil, err
		}
		filter.From = &from
		filter.To = &to
	}

	switch query.Sort {
	case "asc":
		filter.SortByPrice = 1
	case "desc":
		filter.SortByPrice = -1
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// HomeFeed - до 6 одобренных товаров, созданных за последние двое суток
func (s *ProductService) HomeFeed(ctx context.Context) ([]entity.Product, error) {
	now := s.now()
	products, err := s.productRepo.ListApprovedBetween(ctx, now.Add(-homeFeedWindow), now, homeFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, ErrProductNotFound, "get product")
	}
	return product, nil
}

func (s *ProductService) GetByItemName(ctx context.Context, itemName string) (*entity.Product, error) {
	product, err := s.productRepo.GetByItemName(ctx, itemName)
	if err != nil {
		return nil, mapRepositoryError(err, ErrProductNotFound, "get product")
	}
	return product, nil
}

func (s *ProductService) ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Product, error) {
	products, err := s.productRepo.ListByVendor(ctx, vendorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor products: %w", err)
	}
	return products, nil
}

// Replace перезаписывает редактируемые поля товара; статус и feedback не меняются
func (s *ProductService) Replace(ctx context.Context, id string, req *entity.ProductRequest) (*entity.UpdateResult, error) {
	product, err := s.productFromRequest(req)
	if err != nil {
		return nil, err
	}

	result, err := s.productRepo.Replace(ctx, id, product)
	if err != nil {
		return nil, mapRepositoryError(err, ErrProductNotFound, "update product")
	}

	s.invalidateItemNames(ctx)
	return result, nil
}

// UpdateStatus - модерация товара администратором
func (s *ProductService) UpdateStatus(ctx context.Context, id string, req *entity.UpdateProductStatusRequest) (*entity.UpdateResult, error) {
	result, err := s.productRepo.UpdateStatus(ctx, id, req.Status, req.Feedback)
	if err != nil {
		return nil, mapRepositoryError(err, ErrProductNotFound, "update product status")
	}

	metrics.ProductsModerated.WithLabelValues(req.Status).Inc()

	publishEvent(ctx, s.publisher, entity.MarketplaceEvent{
		EventType:  entity.EventProductStatusChanged,
		DocumentID: id,
		ProductID:  id,
		Status:     req.Status,
		Timestamp:  s.now(),
	})

	return result, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, ErrProductNotFound, "delete product")
	}

	s.invalidateItemNames(ctx)
	return result, nil
}

// ItemNames возвращает уникальные наименования, сначала из кеша.
// Ошибки кеша не прерывают запрос: данные берутся из MongoDB
func (s *ProductService) ItemNames(ctx context.Context) ([]entity.ItemName, error) {
	cached, err := s.cache.GetItemNames(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read item names from cache")
	} else if cached != nil {
		return cached, nil
	}

	names, err := s.productRepo.DistinctItemNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate item names: %w", err)
	}

	if err := s.cache.SetItemNames(ctx, names); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache item names")
	}

	return names, nil
}

func (s *ProductService) productFromRequest(req *entity.ProductRequest) (*entity.Product, error) {
	createdAt, err := entity.ParseDate(req.CreatedAt, s.now())
	if err != nil {
		return nil, err
	}

	prices := req.Prices
	if prices == nil {
		prices = []entity.PricePoint{}
	}

	return &entity.Product{
		VendorEmail:       req.VendorEmail,
		VendorName:        req.VendorName,
		Market:            req.Market,
		MarketDescription: req.MarketDescription,
		ItemName:          req.ItemName,
		ItemDescription:   req.ItemDescription,
		Prices:            prices,
		PricePerUnit:      req.PricePerUnit.Float64(),
		ProductImage:      req.ProductImage,
		CreatedAt:         createdAt,
	}, nil
}

func (s *ProductService) invalidateItemNames(ctx context.Context) {
	if err := s.cache.InvalidateItemNames(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate item names cache")
	}
}
