package models

// TeamStanding is derived from match results and never persisted.
type TeamStanding struct {
	TeamID      int `json:"team_id"`
	Points      int `json:"points"`
	GamesPlayed int `json:"games_played"`
}

// SeedOrder is the resolved (first seed, second seed) pair for a group.
// It exists only once all six of the group's fixtures are played.
type SeedOrder struct {
	FirstSeedID  int `json:"first_seed_id"`
	SecondSeedID int `json:"second_seed_id"`
}
