package infrastructure

import (
	"context"
	"errors"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
)

// ErrInvalidToken возвращается верификатором для любого отклоненного токена
var ErrInvalidToken = errors.New("invalid token")

// MessagePublisher интерфейс для отправки сообщений в очередь (Kafka)
// Используется для dependency injection и упрощения тестирования
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

// ItemNameCache кеширует результат агрегации уникальных наименований.
// GetItemNames возвращает nil, nil при промахе
type ItemNameCache interface {
	GetItemNames(ctx context.Context) ([]entity.ItemName, error)
	SetItemNames(ctx context.Context, names []entity.ItemName) error
	InvalidateItemNames(ctx context.Context) error
	Close() error
}

// Identity - проверенная личность владельца bearer токена
type Identity struct {
	UID   string
	Email string
}

// IdentityVerifier проверяет bearer токен (Firebase ID token или HS256 JWT)
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// PaymentGateway создает платежное намерение и возвращает client secret
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount float64) (string, error)
}
