package models

// GroupPick is a user's prediction of a group's first and second seed,
// in order. At most one live pick exists per (user, group); a later
// submission overwrites the earlier one.
type GroupPick struct {
	ID           int    `json:"id" db:"id"`
	UserID       string `json:"user_id" db:"user_id"`
	GroupID      int    `json:"group_id" db:"group_id"`
	FirstSeedID  int    `json:"first_seed_id" db:"first_seed_id"`
	SecondSeedID int    `json:"second_seed_id" db:"second_seed_id"`
}

// KnockoutPick is a user's predicted winner for a knockout fixture.
// Unlike group picks there is no overwrite path: re-submission is rejected.
type KnockoutPick struct {
	ID              int    `json:"id" db:"id"`
	UserID          string `json:"user_id" db:"user_id"`
	KnockoutMatchID int    `json:"knockout_match_id" db:"knockout_match_id"`
	WinnerID        int    `json:"winner_id" db:"winner_id"`
}
