package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/scoring"
)

var matchDate = time.Date(2022, 11, 21, 16, 0, 0, 0, time.UTC)

func playedMatch(id, groupID, team1, team2, goals1, goals2 int) *models.Match {
	return &models.Match{
		ID:         id,
		GroupID:    groupID,
		Date:       matchDate,
		Team1ID:    team1,
		Team2ID:    team2,
		Team1Goals: &goals1,
		Team2Goals: &goals2,
		Played:     true,
	}
}

func scheduledMatch(id, groupID, team1, team2 int) *models.Match {
	return &models.Match{
		ID:      id,
		GroupID: groupID,
		Date:    matchDate,
		Team1ID: team1,
		Team2ID: team2,
	}
}

func TestStanding_WinAndDraw(t *testing.T) {
	// One 2-0 win plus one 1-1 draw: 4 points from 2 games.
	matches := []*models.Match{
		playedMatch(1, 1, 10, 20, 2, 0),
		playedMatch(2, 1, 30, 10, 1, 1),
	}

	standing := scoring.Standing(10, matches)

	assert.Equal(t, 4, standing.Points)
	assert.Equal(t, 2, standing.GamesPlayed)
}

func TestStanding_LossScoresNothing(t *testing.T) {
	matches := []*models.Match{
		playedMatch(1, 1, 10, 20, 0, 3),
	}

	standing := scoring.Standing(10, matches)

	assert.Equal(t, 0, standing.Points)
	assert.Equal(t, 1, standing.GamesPlayed)
}

func TestStanding_AwaySideWin(t *testing.T) {
	matches := []*models.Match{
		playedMatch(1, 1, 20, 10, 0, 3),
	}

	standing := scoring.Standing(10, matches)

	assert.Equal(t, 3, standing.Points)
}

func TestStanding_UnplayedContributesNothing(t *testing.T) {
	matches := []*models.Match{
		scheduledMatch(1, 1, 10, 20),
		scheduledMatch(2, 1, 30, 10),
	}

	standing := scoring.Standing(10, matches)

	assert.Equal(t, 0, standing.Points)
	assert.Equal(t, 0, standing.GamesPlayed)
}

func TestStanding_IgnoresOtherTeamsMatches(t *testing.T) {
	matches := []*models.Match{
		playedMatch(1, 1, 20, 30, 5, 0),
	}

	standing := scoring.Standing(10, matches)

	assert.Equal(t, models.TeamStanding{TeamID: 10}, standing)
}

func TestStanding_Idempotent(t *testing.T) {
	matches := []*models.Match{
		playedMatch(1, 1, 10, 20, 2, 0),
		playedMatch(2, 1, 30, 10, 1, 1),
	}

	first := scoring.Standing(10, matches)
	second := scoring.Standing(10, matches)

	require.Equal(t, first, second)
}
