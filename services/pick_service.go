package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/repositories"
)

type PickService interface {
	// SubmitGroupPick stores a user's (first seed, second seed) prediction
	// for a group. Submitting again replaces the earlier pick in place; at
	// most one live pick per (user, group) ever exists.
	SubmitGroupPick(ctx context.Context, userID string, groupID, firstSeedID, secondSeedID int) (*models.GroupPick, error)

	// SubmitKnockoutPick stores a winner prediction for a knockout fixture.
	// Knockout picks are final: re-submission fails with
	// ErrKnockoutPickExists instead of overwriting.
	SubmitKnockoutPick(ctx context.Context, userID string, knockoutMatchID, winnerID int) (*models.KnockoutPick, error)

	ListGroupPicks(ctx context.Context, userID string) ([]*models.GroupPick, error)
	ListKnockoutPicks(ctx context.Context, userID string) ([]*models.KnockoutPick, error)
	GetGroupPick(ctx context.Context, userID string, groupID int) (*models.GroupPick, error)
	GetKnockoutPick(ctx context.Context, userID string, knockoutMatchID int) (*models.KnockoutPick, error)
}

type pickService struct {
	groupPickRepo    repositories.GroupPickRepository
	knockoutPickRepo repositories.KnockoutPickRepository
	groupRepo        repositories.GroupRepository
	knockoutRepo     repositories.KnockoutMatchRepository
}

func NewPickService(
	groupPickRepo repositories.GroupPickRepository,
	knockoutPickRepo repositories.KnockoutPickRepository,
	groupRepo repositories.GroupRepository,
	knockoutRepo repositories.KnockoutMatchRepository,
) PickService {
	return &pickService{
		groupPickRepo:    groupPickRepo,
		knockoutPickRepo: knockoutPickRepo,
		groupRepo:        groupRepo,
		knockoutRepo:     knockoutRepo,
	}
}

func (s *pickService) SubmitGroupPick(ctx context.Context, userID string, groupID, firstSeedID, secondSeedID int) (*models.GroupPick, error) {
	if firstSeedID == secondSeedID {
		return nil, ErrPickSeedsIdentical
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	if !group.HasTeam(firstSeedID) || !group.HasTeam(secondSeedID) {
		return nil, ErrPickTeamNotInGroup
	}

	pick := &models.GroupPick{
		UserID:       userID,
		GroupID:      groupID,
		FirstSeedID:  firstSeedID,
		SecondSeedID: secondSeedID,
	}
	if err := s.groupPickRepo.Upsert(ctx, pick); err != nil {
		if errors.Is(err, repositories.ErrGroupPickTeamInvalid) {
			return nil, ErrPickTeamNotInGroup
		}
		return nil, fmt.Errorf("failed to submit group pick: %w", err)
	}
	return pick, nil
}

func (s *pickService) SubmitKnockoutPick(ctx context.Context, userID string, knockoutMatchID, winnerID int) (*models.KnockoutPick, error) {
	match, err := s.knockoutRepo.GetByID(ctx, knockoutMatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrKnockoutMatchNotFound) {
			return nil, ErrKnockoutMatchNotFound
		}
		return nil, err
	}
	if winnerID != match.Team1ID && winnerID != match.Team2ID {
		return nil, ErrWinnerNotParticipant
	}

	pick := &models.KnockoutPick{
		UserID:          userID,
		KnockoutMatchID: knockoutMatchID,
		WinnerID:        winnerID,
	}
	if err := s.knockoutPickRepo.Create(ctx, pick); err != nil {
		switch {
		case errors.Is(err, repositories.ErrKnockoutPickExists):
			return nil, ErrKnockoutPickExists
		case errors.Is(err, repositories.ErrKnockoutPickTeamInvalid):
			return nil, ErrWinnerNotParticipant
		}
		return nil, fmt.Errorf("failed to submit knockout pick: %w", err)
	}
	return pick, nil
}

func (s *pickService) ListGroupPicks(ctx context.Context, userID string) ([]*models.GroupPick, error) {
	return s.groupPickRepo.ListByUser(ctx, userID)
}

func (s *pickService) ListKnockoutPicks(ctx context.Context, userID string) ([]*models.KnockoutPick, error) {
	return s.knockoutPickRepo.ListByUser(ctx, userID)
}

func (s *pickService) GetGroupPick(ctx context.Context, userID string, groupID int) (*models.GroupPick, error) {
	pick, err := s.groupPickRepo.GetByUserAndGroup(ctx, userID, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupPickNotFound) {
			return nil, ErrPickNotFound
		}
		return nil, err
	}
	return pick, nil
}

func (s *pickService) GetKnockoutPick(ctx context.Context, userID string, knockoutMatchID int) (*models.KnockoutPick, error) {
	pick, err := s.knockoutPickRepo.GetByUserAndMatch(ctx, userID, knockoutMatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrKnockoutPickNotFound) {
			return nil, ErrPickNotFound
		}
		return nil, err
	}
	return pick, nil
}
