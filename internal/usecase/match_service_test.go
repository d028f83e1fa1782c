package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/domain/matchevent"
	"github.com/goalside/sportsdata/internal/domain/team"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

func TestMatchService_ListByLeague_CachesResult(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider := &stubProvider{
		fixturesFn: func(ctx context.Context, filter FixturesFilter) ([]match.Match, error) {
			calls.Add(1)
			if filter.LeagueID != 39 || filter.Season != 2025 {
				t.Errorf("filter = %+v", filter)
			}
			return []match.Match{{ID: 868023, Status: match.StatusFinished}}, nil
		},
	}
	svc := NewMatchService(provider, cache.NewStore(time.Minute), 2025)

	for i := 0; i < 3; i++ {
		fixtures, err := svc.ListByLeague(context.Background(), 39)
		if err != nil {
			t.Fatalf("ListByLeague: %v", err)
		}
		if len(fixtures) != 1 || fixtures[0].ID != 868023 {
			t.Fatalf("fixtures = %+v", fixtures)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("provider called %d times, want 1", got)
	}
}

func TestMatchService_ListByLeague_ErrorIsNotCached(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("provider down")
	var calls atomic.Int32
	provider := &stubProvider{
		fixturesFn: func(ctx context.Context, filter FixturesFilter) ([]match.Match, error) {
			if calls.Add(1) == 1 {
				return nil, wantErr
			}
			return []match.Match{{ID: 1}}, nil
		},
	}
	svc := NewMatchService(provider, cache.NewStore(time.Minute), 2025)

	if _, err := svc.ListByLeague(context.Background(), 39); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	fixtures, err := svc.ListByLeague(context.Background(), 39)
	if err != nil {
		t.Fatalf("ListByLeague after failure: %v", err)
	}
	if len(fixtures) != 1 {
		t.Fatalf("fixtures = %+v", fixtures)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("provider called %d times, want 2", got)
	}
}

func TestMatchService_ListByLeague_RequiresLeagueID(t *testing.T) {
	t.Parallel()

	svc := NewMatchService(&stubProvider{}, cache.NewStore(time.Minute), 2025)
	if _, err := svc.ListByLeague(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestMatchService_Details_JoinsAllParts(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		fixtureByIDFn: func(ctx context.Context, fixtureID int64) (match.Match, error) {
			return match.Match{
				ID:       fixtureID,
				Status:   match.StatusFinished,
				HomeTeam: team.Lite{ID: 40, Name: "Liverpool"},
				AwayTeam: team.Lite{ID: 42, Name: "Arsenal"},
			}, nil
		},
		fixtureEventsFn: func(ctx context.Context, fixtureID int64) ([]matchevent.Event, error) {
			return []matchevent.Event{
				{Time: matchevent.Clock{Elapsed: 12}, Type: "Goal"},
				{Time: matchevent.Clock{Elapsed: 67}, Type: "Goal"},
			}, nil
		},
		fixtureStatisticsFn: func(ctx context.Context, fixtureID int64) ([]match.TeamStats, error) {
			return []match.TeamStats{
				{TeamID: 42, TeamName: "Arsenal", ShotsTotal: 9},
				{TeamID: 40, TeamName: "Liverpool", ShotsTotal: 15},
			}, nil
		},
	}
	svc := NewMatchService(provider, cache.NewStore(time.Minute), 2025)

	details, err := svc.Details(context.Background(), 868023)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if details.Match.ID != 868023 {
		t.Fatalf("match = %+v", details.Match)
	}
	if len(details.Events) != 2 {
		t.Fatalf("events = %+v", details.Events)
	}
	if details.HomeStats.TeamID != 40 || details.HomeStats.ShotsTotal != 15 {
		t.Fatalf("home stats = %+v", details.HomeStats)
	}
	if details.AwayStats.TeamID != 42 || details.AwayStats.ShotsTotal != 9 {
		t.Fatalf("away stats = %+v", details.AwayStats)
	}
}

func TestMatchService_Details_AllOrNothing(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("events unavailable")
	var fixtureCalls atomic.Int32
	provider := &stubProvider{
		fixtureByIDFn: func(ctx context.Context, fixtureID int64) (match.Match, error) {
			fixtureCalls.Add(1)
			return match.Match{ID: fixtureID}, nil
		},
		fixtureEventsFn: func(ctx context.Context, fixtureID int64) ([]matchevent.Event, error) {
			return nil, wantErr
		},
		fixtureStatisticsFn: func(ctx context.Context, fixtureID int64) ([]match.TeamStats, error) {
			return nil, nil
		},
	}
	store := cache.NewStore(time.Minute)
	svc := NewMatchService(provider, store, 2025)

	if _, err := svc.Details(context.Background(), 868023); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	// The failed join must not leave a partial entry behind.
	if store.Len() != 0 {
		t.Fatalf("cache has %d entries, want 0", store.Len())
	}
}

func TestMatchService_ListByLeagueAndDate_BypassesCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider := &stubProvider{
		fixturesFn: func(ctx context.Context, filter FixturesFilter) ([]match.Match, error) {
			calls.Add(1)
			if filter.Date != "2025-12-26" {
				t.Errorf("date = %q", filter.Date)
			}
			return []match.Match{{ID: 1, Status: match.StatusInPlay}}, nil
		},
	}
	svc := NewMatchService(provider, cache.NewStore(time.Minute), 2025)

	for i := 0; i < 2; i++ {
		if _, err := svc.ListByLeagueAndDate(context.Background(), 39, "2025-12-26"); err != nil {
			t.Fatalf("ListByLeagueAndDate: %v", err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("provider called %d times, want 2 (no caching)", got)
	}
}
