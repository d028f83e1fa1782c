package playerstats

// CompetitionStats is one competition-scoped statistics block for a
// player, already normalized from the provider shape. A player has one
// block per competition/team they appeared for in the lookback window.
type CompetitionStats struct {
	TeamID     int64
	TeamName   string
	LeagueID   int64
	LeagueName string

	Appearances      int
	Minutes          int
	Goals            int
	Assists          int
	PassesTotal      int
	PassesKey        int
	DribblesAttempts int
	DribblesSuccess  int
	TacklesTotal     int
	Interceptions    int
	DuelsTotal       int
	DuelsWon         int
	FoulsDrawn       int
	FoulsCommitted   int
	YellowCards      int
	RedCards         int

	// Rating is nil when the provider reported no rating for the block.
	Rating *float64
}

// AggregateStats is a player's cross-competition summary.
type AggregateStats struct {
	Appearances      int
	Minutes          int
	Goals            int
	Assists          int
	PassesTotal      int
	PassesKey        int
	DribblesAttempts int
	DribblesSuccess  int
	TacklesTotal     int
	Interceptions    int
	DuelsTotal       int
	DuelsWon         int
	FoulsDrawn       int
	FoulsCommitted   int
	YellowCards      int
	RedCards         int

	// Rating is the average over exactly the blocks that reported one,
	// nil when none did. Competitions without a rating never dilute it.
	Rating *float64
}
