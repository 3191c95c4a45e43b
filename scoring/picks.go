package scoring

import (
	"fmt"

	"github.com/cactuspool/pickem/models"
)

// ScoreGroupPick compares a prediction against the resolved seed order.
// The comparison is order-sensitive: 3 for both slots exact, 2 for both
// teams correct but swapped, 1 for a single predicted team appearing among
// the seeds, 0 otherwise.
func ScoreGroupPick(pick *models.GroupPick, seeds models.SeedOrder) int {
	switch {
	case pick.FirstSeedID == seeds.FirstSeedID && pick.SecondSeedID == seeds.SecondSeedID:
		return PointsExactSeeds
	case pick.FirstSeedID == seeds.SecondSeedID && pick.SecondSeedID == seeds.FirstSeedID:
		return PointsSwappedSeeds
	case pick.FirstSeedID == seeds.FirstSeedID || pick.FirstSeedID == seeds.SecondSeedID,
		pick.SecondSeedID == seeds.FirstSeedID || pick.SecondSeedID == seeds.SecondSeedID:
		return PointsOneSeed
	default:
		return 0
	}
}

// ScoreKnockoutPick awards points for a predicted knockout winner. Unplayed
// matches and wrong predictions score 0; a correct prediction is worth 1, 2
// or 4 points depending on the match date relative to the two cutoffs, so
// later rounds always pay at least as much as earlier ones.
func (e *Engine) ScoreKnockoutPick(pick *models.KnockoutPick, match *models.KnockoutMatch) int {
	if match == nil || !match.Played || match.WinnerID == nil {
		return 0
	}
	if pick.WinnerID != *match.WinnerID {
		return 0
	}

	switch {
	case !match.Date.After(e.cutoffs.First):
		return PointsEarlyRound
	case !match.Date.After(e.cutoffs.Second):
		return PointsMidRound
	default:
		return PointsLateRound
	}
}

// GroupScore totals a user's group picks against the given groups and
// matches. The result is nil (absent, distinct from zero) until the user
// has a pick for every group. Groups whose seeds are still undetermined
// contribute 0 without blocking the groups already decided.
//
// A duplicate pick for one group or a pick referencing an unknown group or
// a team outside its group is a data-integrity failure and returns an error.
func (e *Engine) GroupScore(picks []*models.GroupPick, groups []*models.Group, matches []*models.Match) (*int, error) {
	groupByID := make(map[int]*models.Group, len(groups))
	for _, g := range groups {
		groupByID[g.ID] = g
	}

	pickByGroup := make(map[int]*models.GroupPick, len(picks))
	for _, p := range picks {
		if _, dup := pickByGroup[p.GroupID]; dup {
			return nil, fmt.Errorf("%w: user %s, group %d", ErrDuplicatePick, p.UserID, p.GroupID)
		}
		g, ok := groupByID[p.GroupID]
		if !ok {
			return nil, fmt.Errorf("%w: group %d", ErrUnknownGroup, p.GroupID)
		}
		if !g.HasTeam(p.FirstSeedID) || !g.HasTeam(p.SecondSeedID) {
			return nil, fmt.Errorf("%w: pick %d for group %d", ErrUnknownTeam, p.ID, p.GroupID)
		}
		pickByGroup[p.GroupID] = p
	}

	if len(pickByGroup) != len(groups) {
		return nil, nil
	}

	total := 0
	for _, g := range groups {
		seeds, determined := GroupSeeds(g, matches)
		if !determined {
			continue
		}
		total += ScoreGroupPick(pickByGroup[g.ID], *seeds)
	}
	return &total, nil
}

// KnockoutScore totals a user's knockout picks. Unlike the group score it
// is always defined: users earn points match by match, and fixtures they
// skipped or that are still unplayed simply contribute 0.
func (e *Engine) KnockoutScore(picks []*models.KnockoutPick, matches []*models.KnockoutMatch) (int, error) {
	matchByID := make(map[int]*models.KnockoutMatch, len(matches))
	for _, m := range matches {
		matchByID[m.ID] = m
	}

	seen := make(map[int]bool, len(picks))
	total := 0
	for _, p := range picks {
		if seen[p.KnockoutMatchID] {
			return 0, fmt.Errorf("%w: user %s, knockout match %d", ErrDuplicatePick, p.UserID, p.KnockoutMatchID)
		}
		seen[p.KnockoutMatchID] = true

		match, ok := matchByID[p.KnockoutMatchID]
		if !ok {
			return 0, fmt.Errorf("%w: knockout match %d", ErrUnknownKnockoutMatch, p.KnockoutMatchID)
		}
		total += e.ScoreKnockoutPick(p, match)
	}
	return total, nil
}
