package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/domain/standing"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

func newWarmupFixture(provider SportDataProvider, leagueIDs []int64) (*WarmupService, *cache.Store) {
	store := cache.NewStore(time.Minute)
	matches := NewMatchService(provider, store, 2025)
	standings := NewStandingService(provider, store, 2025)
	scorers := NewScorerService(provider, store, 2025)
	return NewWarmupService(matches, standings, scorers, leagueIDs), store
}

func TestWarmupService_Warmup_PrefetchesEveryKind(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		fixturesFn: func(ctx context.Context, filter FixturesFilter) ([]match.Match, error) {
			return []match.Match{{ID: 1}, {ID: 2}}, nil
		},
		standingsFn: func(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
			return []standing.Standing{{Position: 1}}, nil
		},
		topScorersFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			return []scorer.Scorer{{Player: scorer.Player{ID: 1}}}, nil
		},
		topAssistsFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			return []scorer.Scorer{{Player: scorer.Player{ID: 2}}}, nil
		},
	}
	svc, store := newWarmupFixture(provider, []int64{39, 140})

	result, err := svc.Warmup(context.Background(), WarmupInput{MaxWorkers: 2})
	if err != nil {
		t.Fatalf("Warmup: %v", err)
	}
	if result.LeagueCount != 2 || result.TaskCount != 8 {
		t.Fatalf("result = %+v", result)
	}
	if result.SuccessCount != 8 || result.FailedCount != 0 {
		t.Fatalf("counts = %d success / %d failed", result.SuccessCount, result.FailedCount)
	}
	if len(result.Tasks) != 8 {
		t.Fatalf("tasks = %d, want 8", len(result.Tasks))
	}
	// One cache entry per league per kind.
	if store.Len() != 8 {
		t.Fatalf("cache entries = %d, want 8", store.Len())
	}
	// Tasks come back ordered by league then kind.
	if result.Tasks[0].LeagueID != 39 || result.Tasks[4].LeagueID != 140 {
		t.Fatalf("task order = %+v", result.Tasks)
	}
}

func TestWarmupService_Warmup_ReportsFailuresPerTask(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		fixturesFn: func(ctx context.Context, filter FixturesFilter) ([]match.Match, error) {
			return []match.Match{{ID: 1}}, nil
		},
		standingsFn: func(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
			return nil, errors.New("standings feed down")
		},
		topScorersFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			return nil, nil
		},
		topAssistsFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			return nil, nil
		},
	}
	svc, _ := newWarmupFixture(provider, []int64{39})

	result, err := svc.Warmup(context.Background(), WarmupInput{})
	if err != nil {
		t.Fatalf("Warmup: %v", err)
	}
	if result.SuccessCount != 3 || result.FailedCount != 1 {
		t.Fatalf("counts = %d success / %d failed, want 3/1", result.SuccessCount, result.FailedCount)
	}

	var failed *WarmupTaskResult
	for i := range result.Tasks {
		if result.Tasks[i].Status == warmupStatusFailed {
			failed = &result.Tasks[i]
		}
	}
	if failed == nil || failed.Data != warmupDataStandings {
		t.Fatalf("failed task = %+v", failed)
	}
	if failed.Message == "" {
		t.Fatal("failed task should carry the error message")
	}
}

func TestWarmupService_Warmup_RejectsInvalidLeague(t *testing.T) {
	t.Parallel()

	svc, _ := newWarmupFixture(&stubProvider{}, []int64{39})
	if _, err := svc.Warmup(context.Background(), WarmupInput{LeagueIDs: []int64{-1}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
