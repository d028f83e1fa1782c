package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/domain/matchevent"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

// MatchDetails joins a fixture with its timeline and both team stat lines.
// The join is all-or-nothing: a partial detail view is never returned.
type MatchDetails struct {
	Match     match.Match
	Events    []matchevent.Event
	HomeStats match.TeamStats
	AwayStats match.TeamStats
}

type MatchService struct {
	provider SportDataProvider
	cache    *cache.Store
	season   int
}

func NewMatchService(provider SportDataProvider, store *cache.Store, season int) *MatchService {
	return &MatchService{
		provider: provider,
		cache:    store,
		season:   season,
	}
}

func (s *MatchService) ListByLeague(ctx context.Context, leagueID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("fixtures:%d:%d", leagueID, s.season)
	return cache.Lookup(ctx, s.cache, key, func(ctx context.Context) ([]match.Match, error) {
		fixtures, err := s.provider.Fixtures(ctx, FixturesFilter{LeagueID: leagueID, Season: s.season})
		if err != nil {
			return nil, fmt.Errorf("list fixtures league=%d: %w", leagueID, err)
		}
		return fixtures, nil
	})
}

// ListByLeagueAndDate is not cached: date-scoped views are used for live
// boards where staleness is worse than the extra provider call.
func (s *MatchService) ListByLeagueAndDate(ctx context.Context, leagueID int64, date string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByLeagueAndDate")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	fixtures, err := s.provider.Fixtures(ctx, FixturesFilter{LeagueID: leagueID, Season: s.season, Date: date})
	if err != nil {
		return nil, fmt.Errorf("list fixtures league=%d date=%s: %w", leagueID, date, err)
	}
	return fixtures, nil
}

func (s *MatchService) Details(ctx context.Context, fixtureID int64) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Details")
	defer span.End()

	if fixtureID <= 0 {
		return MatchDetails{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("match:%d", fixtureID)
	return cache.Lookup(ctx, s.cache, key, func(ctx context.Context) (MatchDetails, error) {
		return s.loadDetails(ctx, fixtureID)
	})
}

func (s *MatchService) loadDetails(ctx context.Context, fixtureID int64) (MatchDetails, error) {
	var (
		fixture match.Match
		events  []matchevent.Event
		stats   []match.TeamStats
	)

	workers := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	workers.Go(func(ctx context.Context) error {
		loaded, err := s.provider.FixtureByID(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("fetch fixture fixture=%d: %w", fixtureID, err)
		}
		fixture = loaded
		return nil
	})
	workers.Go(func(ctx context.Context) error {
		loaded, err := s.provider.FixtureEvents(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("fetch events fixture=%d: %w", fixtureID, err)
		}
		events = loaded
		return nil
	})
	workers.Go(func(ctx context.Context) error {
		loaded, err := s.provider.FixtureStatistics(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("fetch statistics fixture=%d: %w", fixtureID, err)
		}
		stats = loaded
		return nil
	})
	if err := workers.Wait(); err != nil {
		return MatchDetails{}, err
	}

	details := MatchDetails{
		Match:  fixture,
		Events: events,
	}
	for _, line := range stats {
		switch line.TeamID {
		case fixture.HomeTeam.ID:
			details.HomeStats = line
		case fixture.AwayTeam.ID:
			details.AwayStats = line
		}
	}
	return details, nil
}
