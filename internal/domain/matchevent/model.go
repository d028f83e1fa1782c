package matchevent

// Event is one canonical in-match event (goal, card, substitution, VAR).
type Event struct {
	Time     Clock
	Team     TeamRef
	Player   *PlayerRef
	Assist   *PlayerRef
	Type     string
	Detail   string
	Comments string
}

type Clock struct {
	Elapsed int
	Extra   *int
}

type TeamRef struct {
	ID   int64
	Name string
	Logo string
}

type PlayerRef struct {
	ID   int64
	Name string
}
