package models

import "time"

// Match is a group-stage fixture. Goals are nil until an administrator
// records the result; they are meaningful only when Played is true.
type Match struct {
	ID         int       `json:"id" db:"id"`
	GroupID    int       `json:"group_id" db:"group_id"`
	Date       time.Time `json:"date" db:"match_date"`
	Team1ID    int       `json:"team_1_id" db:"team_1_id"`
	Team2ID    int       `json:"team_2_id" db:"team_2_id"`
	Team1Goals *int      `json:"team_1_goals,omitempty" db:"team_1_goals"`
	Team2Goals *int      `json:"team_2_goals,omitempty" db:"team_2_goals"`
	Played     bool      `json:"played" db:"played"`
}

// KnockoutMatch is an elimination-stage fixture. WinnerID is nil until the
// result is recorded; recording the result also flips Played.
type KnockoutMatch struct {
	ID       int       `json:"id" db:"id"`
	Date     time.Time `json:"date" db:"match_date"`
	Team1ID  int       `json:"team_1_id" db:"team_1_id"`
	Team2ID  int       `json:"team_2_id" db:"team_2_id"`
	WinnerID *int      `json:"winner_id,omitempty" db:"winner_id"`
	Played   bool      `json:"played" db:"played"`
}
