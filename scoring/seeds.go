package scoring

import "github.com/cactuspool/pickem/models"

// A group's round-robin is complete when its six fixtures have been played,
// i.e. games played summed over the four teams reaches 12.
const groupGamesComplete = 12

// GroupSeeds resolves a group's (first seed, second seed) pair from the
// given matches. It returns (nil, false) until every fixture in the group
// is played; no partial or speculative seeding is ever produced.
//
// Ranking is by points alone. Ties go to the team encountered first in the
// group's team-1..team-4 enumeration order. That rule is deliberate: it is
// arbitrary but deterministic, and every pick ever scored against it
// depends on it staying exactly as is. There is no goal-difference or
// head-to-head tie-break.
func GroupSeeds(group *models.Group, matches []*models.Match) (*models.SeedOrder, bool) {
	teamIDs := group.TeamIDs()

	var standings [4]models.TeamStanding
	totalGames := 0
	for i, id := range teamIDs {
		standings[i] = Standing(id, matches)
		totalGames += standings[i].GamesPlayed
	}
	if totalGames != groupGamesComplete {
		return nil, false
	}

	first := maxPointsIndex(standings, -1)
	second := maxPointsIndex(standings, first)

	return &models.SeedOrder{
		FirstSeedID:  teamIDs[first],
		SecondSeedID: teamIDs[second],
	}, true
}

// maxPointsIndex returns the index of the standing with the strictly
// highest points, skipping the excluded index. A strict comparison keeps
// the first-encountered team ahead on equal points.
func maxPointsIndex(standings [4]models.TeamStanding, exclude int) int {
	best := -1
	for i := range standings {
		if i == exclude {
			continue
		}
		if best == -1 || standings[i].Points > standings[best].Points {
			best = i
		}
	}
	return best
}
