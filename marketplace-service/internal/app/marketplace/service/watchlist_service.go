package service

import (
	"context"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/repository"
	"bazaar/pkg/metrics"
)

type WatchlistService struct {
	watchlistRepo repository.WatchlistRepository
	now           func() time.Time
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		now:           time.Now,
	}
}

// Add добавляет товар в список наблюдения. created=false, если пара уже была
func (s *WatchlistService) Add(ctx context.Context, callerEmail string, req *entity.AddWatchlistRequest) (*entity.InsertResult, bool, error) {
	entry := &entity.WatchlistEntry{
		UserEmail: req.UserEmail,
		ProductID: req.ProductID,
		ItemName:  req.ItemName,
		Market:    req.Market,
		Date:      s.now(),
	}
	if entry.UserEmail == "" {
		entry.UserEmail = callerEmail
	}

	result, created, err := s.watchlistRepo.AddIfAbsent(ctx, entry)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add to watchlist: %w", err)
	}

	if !created {
		metrics.DuplicateSubmissions.WithLabelValues("watchlist").Inc()
	}

	return result, created, nil
}

func (s *WatchlistService) ListByUser(ctx context.Context, email string) ([]entity.WatchlistEntry, error) {
	entries, err := s.watchlistRepo.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	return entries, nil
}

func (s *WatchlistService) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := s.watchlistRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, ErrWatchlistItemNotFound, "delete watchlist item")
	}
	return result, nil
}
