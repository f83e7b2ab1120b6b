package service

import (
	"errors"
	"fmt"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/repository"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrUserNotFound          = errors.New("user not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrWatchlistItemNotFound = errors.New("watchlist item not found")
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	ErrInvalidID             = errors.New("invalid id")
	ErrInvalidDate           = entity.ErrInvalidDate
	ErrInvalidAmount         = errors.New("amount must be a positive number")
	ErrPaymentFailed         = errors.New("payment failed")
)

// mapRepositoryError переводит ошибки репозитория в ошибки сервиса.
// notFound - сущностная ошибка для ErrNotFound, остальное оборачивается с action
func mapRepositoryError(err error, notFound error, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrInvalidID):
		return ErrInvalidID
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}
