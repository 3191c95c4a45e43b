package models

// Group is a fixed set of four teams playing a single round-robin.
// The four slots are explicit because seed tie-breaking depends on the
// team-1..team-4 enumeration order; membership never changes after setup.
type Group struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Team1ID int    `json:"team_1_id" db:"team_1_id"`
	Team2ID int    `json:"team_2_id" db:"team_2_id"`
	Team3ID int    `json:"team_3_id" db:"team_3_id"`
	Team4ID int    `json:"team_4_id" db:"team_4_id"`
}

// TeamIDs returns the member teams in enumeration order.
func (g *Group) TeamIDs() [4]int {
	return [4]int{g.Team1ID, g.Team2ID, g.Team3ID, g.Team4ID}
}

// HasTeam reports whether teamID is one of the group's four members.
func (g *Group) HasTeam(teamID int) bool {
	for _, id := range g.TeamIDs() {
		if id == teamID {
			return true
		}
	}
	return false
}
