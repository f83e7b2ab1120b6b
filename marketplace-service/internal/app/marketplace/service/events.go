package service

import (
	"context"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure/messaging"
	"bazaar/pkg/logger"
)

// publishEvent отправляет событие в Kafka. Ошибка только логируется:
// документ уже сохранен, запрос не должен падать из-за брокера
func publishEvent(ctx context.Context, publisher infrastructure.MessagePublisher, event entity.MarketplaceEvent) {
	key, value, err := messaging.EncodeEvent(event)
	if err == nil {
		err = publisher.PublishMessage(ctx, key, value)
	}
	if err != nil {
		eventLog := logger.WithFields(map[string]interface{}{
			"event_type":  event.EventType,
			"document_id": event.DocumentID,
		})
		eventLog.Warn().Err(err).Msg("Failed to publish marketplace event")
	}
}

func objectIDHex(id interface{}) string {
	if oid, ok := id.(interface{ Hex() string }); ok {
		return oid.Hex()
	}
	return ""
}
