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

// ReviewService обрабатывает бизнес-логику отзывов
// Координирует работу репозитория и Kafka
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	publisher  infrastructure.MessagePublisher
	now        func() time.Time
}

func NewReviewService(reviewRepo repository.ReviewRepository, publisher infrastructure.MessagePublisher) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Add сохраняет отзыв, один на пару (productId, userEmail).
// Повторный отзыв возвращает created=false без ошибки
func (s *ReviewService) Add(ctx context.Context, callerEmail string, req *entity.CreateReviewRequest) (*entity.InsertResult, bool, error) {
	review := &entity.Review{
		ProductID: req.ProductID,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		UserPhoto: req.UserPhoto,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      s.now(),
	}
	if review.UserEmail == "" {
		review.UserEmail = callerEmail
	}

	result, created, err := s.reviewRepo.AddIfAbsent(ctx, review)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create review: %w", err)
	}

	if !created {
		metrics.DuplicateSubmissions.WithLabelValues("review").Inc()
		return nil, false, nil
	}

	metrics.ReviewsCreated.Inc()

	publishEvent(ctx, s.publisher, entity.MarketplaceEvent{
		EventType:  entity.EventReviewCreated,
		DocumentID: objectIDHex(result.InsertedID),
		ProductID:  review.ProductID,
		Email:      review.UserEmail,
		Rating:     review.Rating,
		Timestamp:  review.Date,
	})

	return result, true, nil
}

// ListByProduct - отзывы о товаре, новые первыми
func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}
