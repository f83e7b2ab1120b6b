package service

import (
	"context"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/repository"
)

type AdvertisementService struct {
	adRepo repository.AdvertisementRepository
	now    func() time.Time
}

func NewAdvertisementService(adRepo repository.AdvertisementRepository) *AdvertisementService {
	return &AdvertisementService{
		adRepo: adRepo,
		now:    time.Now,
	}
}

func (s *AdvertisementService) Create(ctx context.Context, req *entity.CreateAdvertisementRequest) (*entity.InsertResult, error) {
	ad := &entity.Advertisement{
		VendorEmail: req.VendorEmail,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Status:      req.Status,
		CreatedAt:   s.now(),
	}

	result, err := s.adRepo.Create(ctx, ad)
	if err != nil {
		return nil, fmt.Errorf("failed to add advertisement: %w", err)
	}
	return result, nil
}

func (s *AdvertisementService) ListByVendor(ctx context.Context, vendorEmail string) ([]entity.Advertisement, error) {
	ads, err := s.adRepo.ListByVendor(ctx, vendorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advertisements: %w", err)
	}
	return ads, nil
}

// Update меняет только title, description и image; updated_at ставится всегда
func (s *AdvertisementService) Update(ctx context.Context, id string, req *entity.UpdateAdvertisementRequest) (*entity.UpdateResult, error) {
	patch := repository.AdvertisementPatch{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		UpdatedAt:   s.now(),
	}

	result, err := s.adRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepositoryError(err, ErrAdvertisementNotFound, "update advertisement")
	}
	return result, nil
}

func (s *AdvertisementService) Delete(ctx context.Context, id string) error {
	if _, err := s.adRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, ErrAdvertisementNotFound, "delete advertisement")
	}
	return nil
}
