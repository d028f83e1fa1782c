package usecase

import (
	"context"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/domain/matchevent"
	"github.com/goalside/sportsdata/internal/domain/playerstats"
	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/domain/standing"
	"github.com/goalside/sportsdata/internal/domain/team"
)

// FixturesFilter narrows a fixtures lookup. League and Season go together;
// Date, Next and Last are mutually exclusive provider-side shortcuts.
type FixturesFilter struct {
	LeagueID int64
	Season   int
	TeamID   int64
	Date     string
	Next     int
	Last     int
}

// SportDataProvider is the upstream football data source. Implementations
// return canonical domain records, never raw provider payloads.
type SportDataProvider interface {
	Fixtures(ctx context.Context, filter FixturesFilter) ([]match.Match, error)
	FixtureByID(ctx context.Context, fixtureID int64) (match.Match, error)
	Standings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error)
	TopScorers(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error)
	TopAssists(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error)
	FixtureEvents(ctx context.Context, fixtureID int64) ([]matchevent.Event, error)
	FixtureStatistics(ctx context.Context, fixtureID int64) ([]match.TeamStats, error)
	TeamByID(ctx context.Context, teamID int64) (team.Team, error)
	PlayerSeasonStats(ctx context.Context, playerID int64, season int) (scorer.Player, []playerstats.CompetitionStats, error)
}
