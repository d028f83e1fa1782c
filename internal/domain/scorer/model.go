package scorer

// Scorer is one entry of a top-scorers or top-assists list.
//
// Team and the counting stats come from the player's first statistics
// block only: the provider orders blocks by the player's primary
// club/competition context.
type Scorer struct {
	Player        Player
	Team          TeamRef
	Goals         int
	Assists       int
	PlayedMatches int
}

type Player struct {
	ID          int64
	Name        string
	FirstName   string
	LastName    string
	Nationality string
	Photo       string
}

type TeamRef struct {
	ID    int64
	Name  string
	Crest string
}
