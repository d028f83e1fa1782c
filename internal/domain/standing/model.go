package standing

import "github.com/goalside/sportsdata/internal/domain/team"

// Standing is one canonical league-table row.
type Standing struct {
	Position       int
	Team           team.Lite
	PlayedGames    int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	// Form is the provider's recent-results string, e.g. "WWDWW".
	Form string
}
