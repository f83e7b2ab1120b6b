package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/repository"
	"bazaar/pkg/metrics"
)

// UpsertUserResult - итог входа: либо создан новый пользователь (Insert), либо обновлен (Update)
type UpsertUserResult struct {
	Created bool
	Insert  *entity.InsertResult
	Update  *entity.UpdateResult
}

type UserService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Upsert регистрирует пользователя при первом входе (role=user) или обновляет last_loggedIn
func (s *UserService) Upsert(ctx context.Context, req *entity.UpsertUserRequest) (*UpsertUserResult, error) {
	now := s.now()
	user := &entity.User{
		Email:        req.Email,
		Name:         req.Name,
		Photo:        req.Photo,
		Role:         entity.RoleUser,
		CreatedAt:    now,
		LastLoggedIn: now,
	}

	result, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if result.UpsertedCount > 0 {
		metrics.UsersRegistered.Inc()
		return &UpsertUserResult{
			Created: true,
			Insert:  &entity.InsertResult{Acknowledged: true, InsertedID: result.UpsertedID},
		}, nil
	}

	return &UpsertUserResult{Update: result}, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role string) (*entity.UpdateResult, error) {
	result, err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, mapRepositoryError(err, ErrUserNotFound, "update role")
	}
	return result, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, mapRepositoryError(err, ErrUserNotFound, "get user")
	}
	return user, nil
}

// HasRole проверяет роль пользователя из коллекции users.
// Неизвестный email - это не ошибка, а отсутствие роли
func (s *UserService) HasRole(ctx context.Context, email string, roles ...string) (bool, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	for _, role := range roles {
		if user.Role == role {
			return true, nil
		}
	}
	return false, nil
}
