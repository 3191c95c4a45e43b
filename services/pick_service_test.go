package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/services"
)

func poolGroup() *models.Group {
	return &models.Group{ID: 1, Name: "Group A", Team1ID: 10, Team2ID: 20, Team3ID: 30, Team4ID: 40}
}

func newPickService() (services.PickService, *fakeGroupPickRepo, *fakeKnockoutPickRepo) {
	groupPicks := &fakeGroupPickRepo{}
	knockoutPicks := &fakeKnockoutPickRepo{}
	groups := &fakeGroupRepo{groups: []*models.Group{poolGroup()}}
	knockouts := &fakeKnockoutMatchRepo{matches: []*models.KnockoutMatch{
		{ID: 1, Date: time.Date(2022, 12, 3, 15, 0, 0, 0, time.UTC), Team1ID: 10, Team2ID: 50},
	}}
	return services.NewPickService(groupPicks, knockoutPicks, groups, knockouts), groupPicks, knockoutPicks
}

func TestSubmitGroupPick_OverwritesInPlace(t *testing.T) {
	svc, repo, _ := newPickService()
	ctx := context.Background()

	first, err := svc.SubmitGroupPick(ctx, "alice", 1, 10, 20)
	require.NoError(t, err)

	second, err := svc.SubmitGroupPick(ctx, "alice", 1, 30, 40)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "resubmission updates the same row")
	require.Len(t, repo.picks, 1, "at most one live pick per user per group")
	assert.Equal(t, 30, repo.picks[0].FirstSeedID)
	assert.Equal(t, 40, repo.picks[0].SecondSeedID)
}

func TestSubmitGroupPick_RejectsIdenticalSeeds(t *testing.T) {
	svc, _, _ := newPickService()

	_, err := svc.SubmitGroupPick(context.Background(), "alice", 1, 10, 10)

	assert.ErrorIs(t, err, services.ErrPickSeedsIdentical)
}

func TestSubmitGroupPick_RejectsTeamOutsideGroup(t *testing.T) {
	svc, _, _ := newPickService()

	_, err := svc.SubmitGroupPick(context.Background(), "alice", 1, 10, 99)

	assert.ErrorIs(t, err, services.ErrPickTeamNotInGroup)
}

func TestSubmitGroupPick_UnknownGroup(t *testing.T) {
	svc, _, _ := newPickService()

	_, err := svc.SubmitGroupPick(context.Background(), "alice", 9, 10, 20)

	assert.ErrorIs(t, err, services.ErrGroupNotFound)
}

func TestSubmitKnockoutPick_NoOverwritePath(t *testing.T) {
	svc, _, repo := newPickService()
	ctx := context.Background()

	_, err := svc.SubmitKnockoutPick(ctx, "alice", 1, 10)
	require.NoError(t, err)

	_, err = svc.SubmitKnockoutPick(ctx, "alice", 1, 50)
	assert.ErrorIs(t, err, services.ErrKnockoutPickExists)
	require.Len(t, repo.picks, 1)
	assert.Equal(t, 10, repo.picks[0].WinnerID, "original pick stands")
}

func TestSubmitKnockoutPick_WinnerMustParticipate(t *testing.T) {
	svc, _, _ := newPickService()

	_, err := svc.SubmitKnockoutPick(context.Background(), "alice", 1, 77)

	assert.ErrorIs(t, err, services.ErrWinnerNotParticipant)
}

func TestSubmitKnockoutPick_UnknownMatch(t *testing.T) {
	svc, _, _ := newPickService()

	_, err := svc.SubmitKnockoutPick(context.Background(), "alice", 42, 10)

	assert.ErrorIs(t, err, services.ErrKnockoutMatchNotFound)
}
