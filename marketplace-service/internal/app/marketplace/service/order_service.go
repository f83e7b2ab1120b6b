package service

import (
	"context"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"
	"bazaar/marketplace-service/internal/app/marketplace/repository"
	"bazaar/pkg/metrics"
)

type OrderService struct {
	orderRepo repository.OrderRepository
	publisher infrastructure.MessagePublisher
	now       func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, publisher infrastructure.MessagePublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create сохраняет заказ после оплаты и отправляет ORDER_PLACED.
// Если amount не передан, он считается как quantity * pricePerUnit
func (s *OrderService) Create(ctx context.Context, callerEmail string, req *entity.CreateOrderRequest) (*entity.InsertResult, error) {
	order := &entity.Order{
		BuyerEmail:      req.BuyerEmail,
		ProductID:       req.ProductID,
		ItemName:        req.ItemName,
		Market:          req.Market,
		VendorEmail:     req.VendorEmail,
		Quantity:        req.Quantity,
		PricePerUnit:    req.PricePerUnit.Float64(),
		Amount:          req.Amount.Float64(),
		PaymentIntentID: req.PaymentIntentID,
		Date:            s.now(),
	}
	if order.BuyerEmail == "" {
		order.BuyerEmail = callerEmail
	}
	if order.Amount == 0 && order.Quantity > 0 {
		order.Amount = float64(order.Quantity) * order.PricePerUnit
	}

	result, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	metrics.OrdersPlaced.Inc()

	publishEvent(ctx, s.publisher, entity.MarketplaceEvent{
		EventType:   entity.EventOrderPlaced,
		DocumentID:  order.ID.Hex(),
		ProductID:   order.ProductID,
		Email:       order.BuyerEmail,
		VendorEmail: order.VendorEmail,
		Amount:      order.Amount,
		Timestamp:   order.Date,
	})

	return result, nil
}

// ListByBuyer - заказы покупателя, новые первыми
func (s *OrderService) ListByBuyer(ctx context.Context, email string) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListByBuyer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}
