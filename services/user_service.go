package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/repositories"
)

type UserService interface {
	// EnsureUser records the authenticated identity on first sight and
	// refreshes the display name afterwards. The id comes from the identity
	// provider and is treated as an opaque key.
	EnsureUser(ctx context.Context, id, name string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) EnsureUser(ctx context.Context, id, name string) (*models.User, error) {
	user := &models.User{ID: id, Name: name}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to ensure user %s: %w", id, err)
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}
