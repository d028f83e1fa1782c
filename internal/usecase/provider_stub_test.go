package usecase

import (
	"context"
	"errors"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/domain/matchevent"
	"github.com/goalside/sportsdata/internal/domain/playerstats"
	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/domain/standing"
	"github.com/goalside/sportsdata/internal/domain/team"
)

var errStubNotConfigured = errors.New("stub method not configured")

type stubProvider struct {
	fixturesFn          func(ctx context.Context, filter FixturesFilter) ([]match.Match, error)
	fixtureByIDFn       func(ctx context.Context, fixtureID int64) (match.Match, error)
	standingsFn         func(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error)
	topScorersFn        func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error)
	topAssistsFn        func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error)
	fixtureEventsFn     func(ctx context.Context, fixtureID int64) ([]matchevent.Event, error)
	fixtureStatisticsFn func(ctx context.Context, fixtureID int64) ([]match.TeamStats, error)
	teamByIDFn          func(ctx context.Context, teamID int64) (team.Team, error)
	playerSeasonStatsFn func(ctx context.Context, playerID int64, season int) (scorer.Player, []playerstats.CompetitionStats, error)
}

func (s *stubProvider) Fixtures(ctx context.Context, filter FixturesFilter) ([]match.Match, error) {
	if s.fixturesFn == nil {
		return nil, errStubNotConfigured
	}
	return s.fixturesFn(ctx, filter)
}

func (s *stubProvider) FixtureByID(ctx context.Context, fixtureID int64) (match.Match, error) {
	if s.fixtureByIDFn == nil {
		return match.Match{}, errStubNotConfigured
	}
	return s.fixtureByIDFn(ctx, fixtureID)
}

func (s *stubProvider) Standings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	if s.standingsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.standingsFn(ctx, leagueID, season)
}

func (s *stubProvider) TopScorers(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
	if s.topScorersFn == nil {
		return nil, errStubNotConfigured
	}
	return s.topScorersFn(ctx, leagueID, season)
}

func (s *stubProvider) TopAssists(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
	if s.topAssistsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.topAssistsFn(ctx, leagueID, season)
}

func (s *stubProvider) FixtureEvents(ctx context.Context, fixtureID int64) ([]matchevent.Event, error) {
	if s.fixtureEventsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.fixtureEventsFn(ctx, fixtureID)
}

func (s *stubProvider) FixtureStatistics(ctx context.Context, fixtureID int64) ([]match.TeamStats, error) {
	if s.fixtureStatisticsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.fixtureStatisticsFn(ctx, fixtureID)
}

func (s *stubProvider) TeamByID(ctx context.Context, teamID int64) (team.Team, error) {
	if s.teamByIDFn == nil {
		return team.Team{}, errStubNotConfigured
	}
	return s.teamByIDFn(ctx, teamID)
}

func (s *stubProvider) PlayerSeasonStats(ctx context.Context, playerID int64, season int) (scorer.Player, []playerstats.CompetitionStats, error) {
	if s.playerSeasonStatsFn == nil {
		return scorer.Player{}, nil, errStubNotConfigured
	}
	return s.playerSeasonStatsFn(ctx, playerID, season)
}
