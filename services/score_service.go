package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cactuspool/pickem/live"
	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/repositories"
	"github.com/cactuspool/pickem/scoring"
)

// How many users' picks are fetched concurrently while assembling the
// leaderboard snapshot.
const leaderboardFetchConcurrency = 8

// ScoreService is the read side of the pool: it assembles immutable
// snapshots from the stores and hands them to the scoring engine. All
// results are recomputed per call; nothing scoring-related is persisted.
type ScoreService interface {
	TeamStanding(ctx context.Context, teamID int) (*models.TeamStanding, error)
	// GroupStandings returns the four members' standings in the group's
	// enumeration order, whether or not the group is fully played.
	GroupStandings(ctx context.Context, groupID int) ([]models.TeamStanding, error)
	// GroupSeedOrder returns nil without error while the group's round-robin
	// is unfinished: undetermined is a defined state, not a failure.
	GroupSeedOrder(ctx context.Context, groupID int) (*models.SeedOrder, error)
	// GroupScore returns nil without error while the user has not picked
	// every group; absent is distinct from a zero score.
	GroupScore(ctx context.Context, userID string) (*int, error)
	KnockoutScore(ctx context.Context, userID string) (int, error)
	Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error)
	// PublishLeaderboard recomputes the leaderboard and pushes it to live
	// clients. Called after an administrator records a result.
	PublishLeaderboard(ctx context.Context) error
}

type scoreService struct {
	userRepo         repositories.UserRepository
	teamRepo         repositories.TeamRepository
	groupRepo        repositories.GroupRepository
	matchRepo        repositories.MatchRepository
	knockoutRepo     repositories.KnockoutMatchRepository
	groupPickRepo    repositories.GroupPickRepository
	knockoutPickRepo repositories.KnockoutPickRepository
	engine           *scoring.Engine
	broadcaster      Broadcaster
	logger           *slog.Logger
}

func NewScoreService(
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	knockoutRepo repositories.KnockoutMatchRepository,
	groupPickRepo repositories.GroupPickRepository,
	knockoutPickRepo repositories.KnockoutPickRepository,
	engine *scoring.Engine,
	broadcaster Broadcaster,
	logger *slog.Logger,
) ScoreService {
	return &scoreService{
		userRepo:         userRepo,
		teamRepo:         teamRepo,
		groupRepo:        groupRepo,
		matchRepo:        matchRepo,
		knockoutRepo:     knockoutRepo,
		groupPickRepo:    groupPickRepo,
		knockoutPickRepo: knockoutPickRepo,
		engine:           engine,
		broadcaster:      broadcaster,
		logger:           logger,
	}
}

func (s *scoreService) TeamStanding(ctx context.Context, teamID int) (*models.TeamStanding, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	matches, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for team %d: %w", teamID, err)
	}

	standing := scoring.Standing(teamID, matches)
	return &standing, nil
}

func (s *scoreService) GroupStandings(ctx context.Context, groupID int) ([]models.TeamStanding, error) {
	group, matches, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	teamIDs := group.TeamIDs()
	standings := make([]models.TeamStanding, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		standings = append(standings, scoring.Standing(teamID, matches))
	}
	return standings, nil
}

func (s *scoreService) GroupSeedOrder(ctx context.Context, groupID int) (*models.SeedOrder, error) {
	group, matches, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	seeds, determined := scoring.GroupSeeds(group, matches)
	if !determined {
		return nil, nil
	}
	return seeds, nil
}

func (s *scoreService) GroupScore(ctx context.Context, userID string) (*int, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	picks, err := s.groupPickRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.engine.GroupScore(picks, groups, matches)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPickDataCorrupt, err)
	}
	return total, nil
}

func (s *scoreService) KnockoutScore(ctx context.Context, userID string) (int, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	matches, err := s.knockoutRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	picks, err := s.knockoutPickRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	total, err := s.engine.KnockoutScore(picks, matches)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPickDataCorrupt, err)
	}
	return total, nil
}

func (s *scoreService) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	input, err := s.loadLeaderboardInput(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.engine.Leaderboard(*input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPickDataCorrupt, err)
	}
	return entries, nil
}

func (s *scoreService) PublishLeaderboard(ctx context.Context) error {
	entries, err := s.Leaderboard(ctx)
	if err != nil {
		return err
	}
	s.broadcaster.Broadcast(live.EventLeaderboard, entries)
	s.logger.Debug("leaderboard published", slog.Int("entries", len(entries)))
	return nil
}

func (s *scoreService) loadGroup(ctx context.Context, groupID int) (*models.Group, []*models.Match, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, nil, ErrGroupNotFound
		}
		return nil, nil, err
	}

	matches, err := s.matchRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load matches for group %d: %w", groupID, err)
	}
	return group, matches, nil
}

// loadLeaderboardInput gathers one consistent-enough snapshot of the pool.
// Per-user pick lists are fetched concurrently; the engine works on the
// snapshot it is given, so a result recorded mid-fetch simply lands in the
// next invocation.
func (s *scoreService) loadLeaderboardInput(ctx context.Context) (*scoring.LeaderboardInput, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	knockoutMatches, err := s.knockoutRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	groupPicks := make([][]*models.GroupPick, len(users))
	knockoutPicks := make([][]*models.KnockoutPick, len(users))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(leaderboardFetchConcurrency)
	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			picks, err := s.groupPickRepo.ListByUser(gCtx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to load group picks for user %s: %w", user.ID, err)
			}
			groupPicks[i] = picks

			koPicks, err := s.knockoutPickRepo.ListByUser(gCtx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to load knockout picks for user %s: %w", user.ID, err)
			}
			knockoutPicks[i] = koPicks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	input := &scoring.LeaderboardInput{
		Users:          users,
		Groups:         groups,
		Matches:        matches,
		KnockoutRounds: knockoutMatches,
		GroupPicks:     make(map[string][]*models.GroupPick, len(users)),
		KnockoutPicks:  make(map[string][]*models.KnockoutPick, len(users)),
	}
	for i, user := range users {
		input.GroupPicks[user.ID] = groupPicks[i]
		input.KnockoutPicks[user.ID] = knockoutPicks[i]
	}
	return input, nil
}
