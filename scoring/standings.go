package scoring

import "github.com/cactuspool/pickem/models"

const (
	pointsWin  = 3
	pointsDraw = 1
)

// Standing accumulates a team's competition points and games played over
// the given group-stage matches. Unplayed matches contribute nothing;
// matches not involving the team are skipped.
func Standing(teamID int, matches []*models.Match) models.TeamStanding {
	standing := models.TeamStanding{TeamID: teamID}

	for _, m := range matches {
		if !m.Played || m.Team1Goals == nil || m.Team2Goals == nil {
			continue
		}
		if m.Team1ID != teamID && m.Team2ID != teamID {
			continue
		}

		standing.GamesPlayed++

		own, opp := *m.Team1Goals, *m.Team2Goals
		if m.Team2ID == teamID {
			own, opp = opp, own
		}
		switch {
		case own > opp:
			standing.Points += pointsWin
		case own == opp:
			standing.Points += pointsDraw
		}
	}

	return standing
}
