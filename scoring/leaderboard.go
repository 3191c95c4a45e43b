package scoring

import (
	"fmt"
	"sort"

	"github.com/cactuspool/pickem/models"
)

// LeaderboardInput is the immutable snapshot the leaderboard is computed
// from. Picks are keyed by user ID; users absent from a map simply have no
// picks of that kind.
type LeaderboardInput struct {
	Users          []*models.User
	Groups         []*models.Group
	Matches        []*models.Match
	KnockoutRounds []*models.KnockoutMatch
	GroupPicks     map[string][]*models.GroupPick
	KnockoutPicks  map[string][]*models.KnockoutPick
}

// Leaderboard ranks users by total points, descending. For ranking a nil
// group score counts as 0, but the entry keeps the nil so callers can still
// show "no complete picks" rather than "0".
//
// Users tied on total keep their input order (callers pass users in
// creation order, so the earlier-registered user ranks first). The original
// behavior here was whatever the storage returned; a stable rule replaces it.
func (e *Engine) Leaderboard(input LeaderboardInput) ([]*models.LeaderboardEntry, error) {
	entries := make([]*models.LeaderboardEntry, 0, len(input.Users))

	for _, user := range input.Users {
		groupPoints, err := e.GroupScore(input.GroupPicks[user.ID], input.Groups, input.Matches)
		if err != nil {
			return nil, fmt.Errorf("group score for user %s: %w", user.ID, err)
		}
		knockoutPoints, err := e.KnockoutScore(input.KnockoutPicks[user.ID], input.KnockoutRounds)
		if err != nil {
			return nil, fmt.Errorf("knockout score for user %s: %w", user.ID, err)
		}

		if e.policy == RequireCompleteGroupPicks && groupPoints == nil {
			continue
		}

		total := knockoutPoints
		if groupPoints != nil {
			total += *groupPoints
		}
		entries = append(entries, &models.LeaderboardEntry{
			User:           *user,
			GroupPoints:    groupPoints,
			KnockoutPoints: knockoutPoints,
			TotalPoints:    total,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})

	return entries, nil
}
