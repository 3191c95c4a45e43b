package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Upsert(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.ID == user.ID {
			u.Name = user.Name
			return nil
		}
	}
	r.users = append(r.users, &models.User{ID: user.ID, Name: user.Name})
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	return r.users, nil
}

type fakeTeamRepo struct {
	teams []*models.Team
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	for _, t := range r.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*models.Team, error) {
	return r.teams, nil
}

func (r *fakeTeamRepo) UpdateCrestKey(_ context.Context, id int, crestKey *string) error {
	for _, t := range r.teams {
		if t.ID == id {
			t.CrestKey = crestKey
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

type fakeGroupRepo struct {
	groups []*models.Group
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id int) (*models.Group, error) {
	for _, g := range r.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, repositories.ErrGroupNotFound
}

func (r *fakeGroupRepo) List(_ context.Context) ([]*models.Group, error) {
	return r.groups, nil
}

type fakeMatchRepo struct {
	matches []*models.Match
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	for _, m := range r.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) List(_ context.Context) ([]*models.Match, error) {
	return r.matches, nil
}

func (r *fakeMatchRepo) ListByGroup(_ context.Context, groupID int) ([]*models.Match, error) {
	matches := make([]*models.Match, 0)
	for _, m := range r.matches {
		if m.GroupID == groupID {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (r *fakeMatchRepo) ListByTeam(_ context.Context, teamID int) ([]*models.Match, error) {
	matches := make([]*models.Match, 0)
	for _, m := range r.matches {
		if m.Team1ID == teamID || m.Team2ID == teamID {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (r *fakeMatchRepo) RecordResult(_ context.Context, id int, team1Goals, team2Goals int) error {
	for _, m := range r.matches {
		if m.ID == id {
			if m.Played {
				return repositories.ErrMatchAlreadyPlayed
			}
			g1, g2 := team1Goals, team2Goals
			m.Team1Goals, m.Team2Goals = &g1, &g2
			m.Played = true
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

type fakeKnockoutMatchRepo struct {
	matches []*models.KnockoutMatch
}

func (r *fakeKnockoutMatchRepo) GetByID(_ context.Context, id int) (*models.KnockoutMatch, error) {
	for _, m := range r.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repositories.ErrKnockoutMatchNotFound
}

func (r *fakeKnockoutMatchRepo) List(_ context.Context) ([]*models.KnockoutMatch, error) {
	return r.matches, nil
}

func (r *fakeKnockoutMatchRepo) RecordResult(_ context.Context, id int, winnerID int) error {
	for _, m := range r.matches {
		if m.ID == id {
			if m.Played {
				return repositories.ErrKnockoutMatchAlreadyPlayed
			}
			w := winnerID
			m.WinnerID = &w
			m.Played = true
			return nil
		}
	}
	return repositories.ErrKnockoutMatchNotFound
}

type fakeGroupPickRepo struct {
	mu    sync.Mutex
	picks []*models.GroupPick
}

func (r *fakeGroupPickRepo) Upsert(_ context.Context, pick *models.GroupPick) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.picks {
		if p.UserID == pick.UserID && p.GroupID == pick.GroupID {
			p.FirstSeedID = pick.FirstSeedID
			p.SecondSeedID = pick.SecondSeedID
			pick.ID = p.ID
			return nil
		}
	}
	pick.ID = len(r.picks) + 1
	copied := *pick
	r.picks = append(r.picks, &copied)
	return nil
}

func (r *fakeGroupPickRepo) GetByUserAndGroup(_ context.Context, userID string, groupID int) (*models.GroupPick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.picks {
		if p.UserID == userID && p.GroupID == groupID {
			return p, nil
		}
	}
	return nil, repositories.ErrGroupPickNotFound
}

func (r *fakeGroupPickRepo) ListByUser(_ context.Context, userID string) ([]*models.GroupPick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	picks := make([]*models.GroupPick, 0)
	for _, p := range r.picks {
		if p.UserID == userID {
			picks = append(picks, p)
		}
	}
	return picks, nil
}

type fakeKnockoutPickRepo struct {
	mu    sync.Mutex
	picks []*models.KnockoutPick
}

func (r *fakeKnockoutPickRepo) Create(_ context.Context, pick *models.KnockoutPick) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.picks {
		if p.UserID == pick.UserID && p.KnockoutMatchID == pick.KnockoutMatchID {
			return repositories.ErrKnockoutPickExists
		}
	}
	pick.ID = len(r.picks) + 1
	copied := *pick
	r.picks = append(r.picks, &copied)
	return nil
}

func (r *fakeKnockoutPickRepo) GetByUserAndMatch(_ context.Context, userID string, knockoutMatchID int) (*models.KnockoutPick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.picks {
		if p.UserID == userID && p.KnockoutMatchID == knockoutMatchID {
			return p, nil
		}
	}
	return nil, repositories.ErrKnockoutPickNotFound
}

func (r *fakeKnockoutPickRepo) ListByUser(_ context.Context, userID string) ([]*models.KnockoutPick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	picks := make([]*models.KnockoutPick, 0)
	for _, p := range r.picks {
		if p.UserID == userID {
			picks = append(picks, p)
		}
	}
	return picks, nil
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *fakeBroadcaster) Broadcast(event string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *fakeBroadcaster) Events() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.events...)
}
