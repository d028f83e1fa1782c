package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goalside/sportsdata/internal/domain/playerstats"
	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

func floatPtr(v float64) *float64 { return &v }

func TestComparisonService_CandidatePool_DeduplicatesAcrossLeagues(t *testing.T) {
	t.Parallel()

	haaland := scorer.Scorer{Player: scorer.Player{ID: 1100, Name: "E. Haaland"}, Goals: 17}
	salah := scorer.Scorer{Player: scorer.Player{ID: 874, Name: "M. Salah"}, Goals: 15, Assists: 3}

	provider := &stubProvider{
		topScorersFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			return []scorer.Scorer{haaland, salah}, nil
		},
		topAssistsFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			// Salah shows up in both rankings; the pool keeps one entry.
			return []scorer.Scorer{salah}, nil
		},
	}
	svc := NewComparisonService(provider, cache.NewStore(time.Minute), []int64{39, 140}, 2025)

	pool, err := svc.CandidatePool(context.Background())
	if err != nil {
		t.Fatalf("CandidatePool: %v", err)
	}
	if len(pool) != 2 {
		t.Fatalf("pool size = %d, want 2", len(pool))
	}
	if pool[0].Player.ID != 1100 {
		t.Fatalf("pool[0] = %+v, want top goals first", pool[0])
	}
}

func TestComparisonService_CandidatePool_FailsWhole(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("league feed down")
	provider := &stubProvider{
		topScorersFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			if leagueID == 140 {
				return nil, wantErr
			}
			return []scorer.Scorer{{Player: scorer.Player{ID: 1}}}, nil
		},
		topAssistsFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			return nil, nil
		},
	}
	svc := NewComparisonService(provider, cache.NewStore(time.Minute), []int64{39, 140}, 2025)

	if _, err := svc.CandidatePool(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestComparisonService_CandidatePool_RequiresLeagues(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(&stubProvider{}, cache.NewStore(time.Minute), nil, 2025)
	if _, err := svc.CandidatePool(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("err = %v, want ErrDependencyUnavailable", err)
	}
}

func TestComparisonService_FindPlayer(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		topScorersFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			return []scorer.Scorer{
				{Player: scorer.Player{ID: 1100, Name: "E. Haaland"}, Goals: 17},
				{Player: scorer.Player{ID: 874, Name: "M. Salah"}, Goals: 15},
			}, nil
		},
		topAssistsFn: func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
			return nil, nil
		},
	}
	svc := NewComparisonService(provider, cache.NewStore(time.Minute), []int64{39}, 2025)

	found, err := svc.FindPlayer(context.Background(), "salah")
	if err != nil {
		t.Fatalf("FindPlayer: %v", err)
	}
	if found.Player.ID != 874 {
		t.Fatalf("found = %+v", found)
	}

	if _, err := svc.FindPlayer(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.FindPlayer(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestComparisonService_Compare(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		playerSeasonStatsFn: func(ctx context.Context, playerID int64, season int) (scorer.Player, []playerstats.CompetitionStats, error) {
			switch playerID {
			case 874:
				return scorer.Player{ID: 874, Name: "M. Salah"}, []playerstats.CompetitionStats{
					{Goals: 15, Assists: 3, Appearances: 20, DribblesSuccess: 18, Rating: floatPtr(7.5)},
					{Goals: 5, Assists: 1, Appearances: 6},
				}, nil
			case 1100:
				return scorer.Player{ID: 1100, Name: "E. Haaland"}, []playerstats.CompetitionStats{
					{Goals: 17, Assists: 4, Appearances: 19, DribblesSuccess: 6, Rating: floatPtr(7.2)},
				}, nil
			default:
				return scorer.Player{}, nil, errStubNotConfigured
			}
		},
	}
	svc := NewComparisonService(provider, cache.NewStore(time.Minute), []int64{39}, 2025)

	result, err := svc.Compare(context.Background(), 874, 1100)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	// Salah totals: 20 goals, 4 assists, 26 apps, 18 dribbles, rating 7.5
	// (the ratingless block does not dilute the average).
	if result.First.Totals.Goals != 20 || result.First.Totals.Appearances != 26 {
		t.Fatalf("first totals = %+v", result.First.Totals)
	}
	if result.First.Totals.Rating == nil || *result.First.Totals.Rating != 7.5 {
		t.Fatalf("first rating = %v, want 7.5", result.First.Totals.Rating)
	}

	// Goals 20>17, appearances 26>19, rating 7.5>7.2, dribbles 18>6 all go
	// to the first player; assists 4=4 is a tie and counts for neither.
	if result.Verdict.Outcome != playerstats.OutcomeFirst {
		t.Fatalf("outcome = %s, want %s", result.Verdict.Outcome, playerstats.OutcomeFirst)
	}
	if result.Verdict.FirstWins != 4 || result.Verdict.SecondWins != 0 {
		t.Fatalf("wins = %d/%d, want 4/0", result.Verdict.FirstWins, result.Verdict.SecondWins)
	}
}

func TestComparisonService_Compare_CachesPlayerLoads(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider := &stubProvider{
		playerSeasonStatsFn: func(ctx context.Context, playerID int64, season int) (scorer.Player, []playerstats.CompetitionStats, error) {
			calls.Add(1)
			return scorer.Player{ID: playerID}, []playerstats.CompetitionStats{{Goals: int(playerID)}}, nil
		},
	}
	svc := NewComparisonService(provider, cache.NewStore(time.Minute), []int64{39}, 2025)

	if _, err := svc.Compare(context.Background(), 1, 2); err != nil {
		t.Fatalf("first Compare: %v", err)
	}
	if _, err := svc.Compare(context.Background(), 1, 2); err != nil {
		t.Fatalf("second Compare: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("provider called %d times, want 2 (one per player)", got)
	}
}

func TestComparisonService_Compare_RejectsSelfComparison(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(&stubProvider{}, cache.NewStore(time.Minute), []int64{39}, 2025)
	if _, err := svc.Compare(context.Background(), 874, 874); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestComparisonService_Compare_FailsWhenEitherSideFails(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("player feed down")
	provider := &stubProvider{
		playerSeasonStatsFn: func(ctx context.Context, playerID int64, season int) (scorer.Player, []playerstats.CompetitionStats, error) {
			if playerID == 2 {
				return scorer.Player{}, nil, wantErr
			}
			return scorer.Player{ID: playerID}, nil, nil
		},
	}
	svc := NewComparisonService(provider, cache.NewStore(time.Minute), []int64{39}, 2025)

	if _, err := svc.Compare(context.Background(), 1, 2); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
