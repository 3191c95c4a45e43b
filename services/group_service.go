package services

import (
	"context"
	"errors"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/repositories"
)

type GroupService interface {
	GetByID(ctx context.Context, id int) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
}

type groupService struct {
	groupRepo repositories.GroupRepository
}

func NewGroupService(groupRepo repositories.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) GetByID(ctx context.Context, id int) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (s *groupService) List(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.List(ctx)
}
