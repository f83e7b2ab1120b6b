package service

import (
	"context"
	"math"

	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"
	"bazaar/pkg/metrics"
)

type PaymentService struct {
	gateway infrastructure.PaymentGateway
}

func NewPaymentService(gateway infrastructure.PaymentGateway) *PaymentService {
	return &PaymentService{gateway: gateway}
}

// paymentError матчится с ErrPaymentFailed, но текст оставляет от шлюза
type paymentError struct {
	cause error
}

func (e *paymentError) Error() string { return e.cause.Error() }

func (e *paymentError) Unwrap() []error { return []error{ErrPaymentFailed, e.cause} }

// CreatePaymentIntent возвращает client secret для оплаты картой.
// Сумма должна быть положительной, а сумма в центах - помещаться в int64
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	if !validAmount(amount) {
		return "", ErrInvalidAmount
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, amount)
	if err != nil {
		metrics.PaymentIntents.WithLabelValues("failed").Inc()
		return "", &paymentError{cause: err}
	}

	metrics.PaymentIntents.WithLabelValues("created").Inc()
	return secret, nil
}

func validAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return false
	}
	return math.Trunc(amount*100) < float64(math.MaxInt64)
}
