package match

import (
	"strings"
	"time"

	"github.com/goalside/sportsdata/internal/domain/team"
)

// Canonical match states. The provider's short codes are mapped onto this
// vocabulary at the boundary; unknown codes pass through unchanged.
const (
	StatusScheduled   = "SCHEDULED"
	StatusInPlay      = "IN_PLAY"
	StatusFinished    = "FINISHED"
	StatusSuspended   = "SUSPENDED"
	StatusInterrupted = "INTERRUPTED"
	StatusPostponed   = "POSTPONED"
	StatusCancelled   = "CANCELLED"
	StatusAbandoned   = "ABANDONED"
	StatusAwarded     = "AWARDED"
	StatusWalkover    = "WALKOVER"
)

// Match is one scheduled or played fixture in canonical form.
type Match struct {
	ID          int64
	UTCDate     time.Time
	Status      string
	StatusShort string
	Minute      *int
	Matchday    int
	Round       string
	HomeTeam    team.Lite
	AwayTeam    team.Lite
	Score       Score
	Competition Competition
	Venue       string
	Referee     string
}

type Competition struct {
	ID     int64
	Name   string
	Emblem string
}

// Score keeps nil for goals of fixtures that have not produced one yet;
// nil and 0 carry different meaning (not started vs. 0-0).
type Score struct {
	FullTime ScorePair
	HalfTime ScorePair
}

type ScorePair struct {
	Home *int
	Away *int
}

// TeamStats is a per-team per-match stat summary extracted from the
// provider's raw stat array.
type TeamStats struct {
	TeamID        int64
	TeamName      string
	ShotsTotal    int
	ShotsOnGoal   int
	PossessionPct int
	Corners       int
	Fouls         int
	Offsides      int
	YellowCards   int
	RedCards      int
	PassesTotal   int
	PassAccuracy  int
}

func IsInPlay(status string) bool {
	return NormalizeStatus(status) == StatusInPlay
}

func IsFinished(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, StatusAwarded, StatusWalkover:
		return true
	default:
		return false
	}
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}
