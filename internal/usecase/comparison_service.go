package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/goalside/sportsdata/internal/domain/playerstats"
	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

// PlayerComparison is the head-to-head result for two players: their
// cross-competition aggregates and the five-metric verdict.
type PlayerComparison struct {
	First   ComparedPlayer
	Second  ComparedPlayer
	Verdict playerstats.Comparison
}

type ComparedPlayer struct {
	Player scorer.Player
	Blocks []playerstats.CompetitionStats
	Totals playerstats.AggregateStats
}

type ComparisonService struct {
	provider  SportDataProvider
	cache     *cache.Store
	leagueIDs []int64
	season    int
}

func NewComparisonService(provider SportDataProvider, store *cache.Store, leagueIDs []int64, season int) *ComparisonService {
	ids := make([]int64, 0, len(leagueIDs))
	for _, id := range leagueIDs {
		if id > 0 {
			ids = append(ids, id)
		}
	}
	return &ComparisonService{
		provider:  provider,
		cache:     store,
		leagueIDs: ids,
		season:    season,
	}
}

// CandidatePool lists every player appearing in the top-scorer or
// top-assist rankings of the configured leagues, deduplicated by player
// id. Any failed league fetch fails the whole pool.
func (s *ComparisonService) CandidatePool(ctx context.Context) ([]scorer.Scorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.CandidatePool")
	defer span.End()

	if len(s.leagueIDs) == 0 {
		return nil, fmt.Errorf("%w: no leagues configured for player comparison", ErrDependencyUnavailable)
	}

	key := fmt.Sprintf("comparison-pool:%d", s.season)
	return cache.Lookup(ctx, s.cache, key, func(ctx context.Context) ([]scorer.Scorer, error) {
		return s.loadCandidatePool(ctx)
	})
}

func (s *ComparisonService) loadCandidatePool(ctx context.Context) ([]scorer.Scorer, error) {
	var mu sync.Mutex
	byPlayerID := make(map[int64]scorer.Scorer, 64)

	collect := func(items []scorer.Scorer) {
		mu.Lock()
		defer mu.Unlock()
		for _, item := range items {
			if item.Player.ID <= 0 {
				continue
			}
			if _, exists := byPlayerID[item.Player.ID]; exists {
				continue
			}
			byPlayerID[item.Player.ID] = item
		}
	}

	workers := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for _, leagueID := range s.leagueIDs {
		leagueID := leagueID
		workers.Go(func(ctx context.Context) error {
			scorers, err := s.provider.TopScorers(ctx, leagueID, s.season)
			if err != nil {
				return fmt.Errorf("fetch top scorers league=%d: %w", leagueID, err)
			}
			collect(scorers)
			return nil
		})
		workers.Go(func(ctx context.Context) error {
			assists, err := s.provider.TopAssists(ctx, leagueID, s.season)
			if err != nil {
				return fmt.Errorf("fetch top assists league=%d: %w", leagueID, err)
			}
			collect(assists)
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return nil, err
	}

	out := make([]scorer.Scorer, 0, len(byPlayerID))
	for _, item := range byPlayerID {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Player.ID < out[j].Player.ID
	})
	return out, nil
}

// FindPlayer resolves a player by case-insensitive name match against the
// candidate pool.
func (s *ComparisonService) FindPlayer(ctx context.Context, name string) (scorer.Scorer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return scorer.Scorer{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	candidates, err := s.CandidatePool(ctx)
	if err != nil {
		return scorer.Scorer{}, err
	}

	needle := strings.ToLower(name)
	for _, candidate := range candidates {
		if strings.ToLower(candidate.Player.Name) == needle {
			return candidate, nil
		}
	}
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate.Player.Name), needle) {
			return candidate, nil
		}
	}
	return scorer.Scorer{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
}

// Compare fetches both players' season blocks concurrently, aggregates
// each side and returns the five-metric verdict. Either fetch failing
// fails the comparison.
func (s *ComparisonService) Compare(ctx context.Context, firstID, secondID int64) (PlayerComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.Compare")
	defer span.End()

	if firstID <= 0 || secondID <= 0 {
		return PlayerComparison{}, fmt.Errorf("%w: both player ids are required", ErrInvalidInput)
	}
	if firstID == secondID {
		return PlayerComparison{}, fmt.Errorf("%w: cannot compare a player against themselves", ErrInvalidInput)
	}

	var first, second ComparedPlayer
	workers := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	workers.Go(func(ctx context.Context) error {
		side, err := s.loadComparedPlayer(ctx, firstID)
		if err != nil {
			return err
		}
		first = side
		return nil
	})
	workers.Go(func(ctx context.Context) error {
		side, err := s.loadComparedPlayer(ctx, secondID)
		if err != nil {
			return err
		}
		second = side
		return nil
	})
	if err := workers.Wait(); err != nil {
		return PlayerComparison{}, err
	}

	return PlayerComparison{
		First:   first,
		Second:  second,
		Verdict: playerstats.Compare(first.Totals, second.Totals),
	}, nil
}

func (s *ComparisonService) loadComparedPlayer(ctx context.Context, playerID int64) (ComparedPlayer, error) {
	key := fmt.Sprintf("player:%d:%d", playerID, s.season)
	return cache.Lookup(ctx, s.cache, key, func(ctx context.Context) (ComparedPlayer, error) {
		player, blocks, err := s.provider.PlayerSeasonStats(ctx, playerID, s.season)
		if err != nil {
			return ComparedPlayer{}, fmt.Errorf("fetch player stats player=%d: %w", playerID, err)
		}
		return ComparedPlayer{
			Player: player,
			Blocks: blocks,
			Totals: playerstats.Aggregate(blocks),
		}, nil
	})
}
