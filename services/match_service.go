package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cactuspool/pickem/live"
	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/repositories"
)

// Broadcaster pushes events to connected clients. Satisfied by *live.Hub.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}

type MatchService interface {
	GetMatch(ctx context.Context, id int) (*models.Match, error)
	ListMatches(ctx context.Context) ([]*models.Match, error)
	ListMatchesByGroup(ctx context.Context, groupID int) ([]*models.Match, error)
	ListMatchesByTeam(ctx context.Context, teamID int) ([]*models.Match, error)
	GetKnockoutMatch(ctx context.Context, id int) (*models.KnockoutMatch, error)
	ListKnockoutMatches(ctx context.Context) ([]*models.KnockoutMatch, error)

	// RecordResult and RecordKnockoutResult are the administrator's single
	// write per match: goals (or winner) are fixed and played flips true.
	RecordResult(ctx context.Context, matchID, team1Goals, team2Goals int) (*models.Match, error)
	RecordKnockoutResult(ctx context.Context, matchID, winnerID int) (*models.KnockoutMatch, error)
}

type matchService struct {
	matchRepo    repositories.MatchRepository
	knockoutRepo repositories.KnockoutMatchRepository
	broadcaster  Broadcaster
	logger       *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	knockoutRepo repositories.KnockoutMatchRepository,
	broadcaster Broadcaster,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo:    matchRepo,
		knockoutRepo: knockoutRepo,
		broadcaster:  broadcaster,
		logger:       logger,
	}
}

func (s *matchService) GetMatch(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context) ([]*models.Match, error) {
	return s.matchRepo.List(ctx)
}

func (s *matchService) ListMatchesByGroup(ctx context.Context, groupID int) ([]*models.Match, error) {
	return s.matchRepo.ListByGroup(ctx, groupID)
}

func (s *matchService) ListMatchesByTeam(ctx context.Context, teamID int) ([]*models.Match, error) {
	return s.matchRepo.ListByTeam(ctx, teamID)
}

func (s *matchService) GetKnockoutMatch(ctx context.Context, id int) (*models.KnockoutMatch, error) {
	match, err := s.knockoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrKnockoutMatchNotFound) {
			return nil, ErrKnockoutMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (s *matchService) ListKnockoutMatches(ctx context.Context) ([]*models.KnockoutMatch, error) {
	return s.knockoutRepo.List(ctx)
}

func (s *matchService) RecordResult(ctx context.Context, matchID, team1Goals, team2Goals int) (*models.Match, error) {
	if team1Goals < 0 || team2Goals < 0 {
		return nil, ErrInvalidGoals
	}

	err := s.matchRepo.RecordResult(ctx, matchID, team1Goals, team2Goals)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		case errors.Is(err, repositories.ErrMatchAlreadyPlayed):
			return nil, ErrMatchAlreadyPlayed
		}
		return nil, fmt.Errorf("failed to record result for match %d: %w", matchID, err)
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("group match result recorded",
		slog.Int("match_id", matchID),
		slog.Int("team_1_goals", team1Goals),
		slog.Int("team_2_goals", team2Goals),
	)
	s.broadcaster.Broadcast(live.EventMatchResult, match)
	return match, nil
}

func (s *matchService) RecordKnockoutResult(ctx context.Context, matchID, winnerID int) (*models.KnockoutMatch, error) {
	match, err := s.GetKnockoutMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if winnerID != match.Team1ID && winnerID != match.Team2ID {
		return nil, ErrWinnerNotParticipant
	}

	err = s.knockoutRepo.RecordResult(ctx, matchID, winnerID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrKnockoutMatchNotFound):
			return nil, ErrKnockoutMatchNotFound
		case errors.Is(err, repositories.ErrKnockoutMatchAlreadyPlayed):
			return nil, ErrMatchAlreadyPlayed
		}
		return nil, fmt.Errorf("failed to record result for knockout match %d: %w", matchID, err)
	}

	match.WinnerID = &winnerID
	match.Played = true

	s.logger.Info("knockout result recorded",
		slog.Int("match_id", matchID),
		slog.Int("winner_id", winnerID),
	)
	s.broadcaster.Broadcast(live.EventKnockoutResult, match)
	return match, nil
}
