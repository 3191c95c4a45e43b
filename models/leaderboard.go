package models

// LeaderboardEntry is one ranked row of the pool leaderboard.
// GroupPoints is nil for users who have not submitted a pick for every
// group; that is distinct from a legitimate score of zero.
type LeaderboardEntry struct {
	User           User `json:"user"`
	GroupPoints    *int `json:"group_points"`
	KnockoutPoints int  `json:"knockout_points"`
	TotalPoints    int  `json:"total_points"`
}
