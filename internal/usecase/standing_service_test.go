package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goalside/sportsdata/internal/domain/standing"
	"github.com/goalside/sportsdata/internal/domain/team"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

func TestStandingService_TableByLeague_CachesResult(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider := &stubProvider{
		standingsFn: func(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
			calls.Add(1)
			return []standing.Standing{
				{Position: 1, Team: team.Lite{ID: 40, Name: "Liverpool"}, Points: 45},
				{Position: 2, Team: team.Lite{ID: 42, Name: "Arsenal"}, Points: 42},
			}, nil
		},
	}
	svc := NewStandingService(provider, cache.NewStore(time.Minute), 2025)

	for i := 0; i < 2; i++ {
		table, err := svc.TableByLeague(context.Background(), 39)
		if err != nil {
			t.Fatalf("TableByLeague: %v", err)
		}
		if len(table) != 2 || table[0].Position != 1 {
			t.Fatalf("table = %+v", table)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("provider called %d times, want 1", got)
	}
}

func TestStandingService_TableByLeague_EmptyTableIsNotFound(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		standingsFn: func(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
			return nil, nil
		},
	}
	svc := NewStandingService(provider, cache.NewStore(time.Minute), 2025)

	if _, err := svc.TableByLeague(context.Background(), 39); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTeamService_GetByID_CachesResult(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider := &stubProvider{
		teamByIDFn: func(ctx context.Context, teamID int64) (team.Team, error) {
			calls.Add(1)
			return team.Team{ID: teamID, Name: "Liverpool", TLA: "LIV"}, nil
		},
	}
	svc := NewTeamService(provider, cache.NewStore(time.Minute))

	for i := 0; i < 2; i++ {
		loaded, err := svc.GetByID(context.Background(), 40)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if loaded.TLA != "LIV" {
			t.Fatalf("team = %+v", loaded)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("provider called %d times, want 1", got)
	}

	if _, err := svc.GetByID(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
