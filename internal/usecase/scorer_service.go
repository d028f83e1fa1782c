package usecase

import (
	"context"
	"fmt"

	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

type ScorerService struct {
	provider SportDataProvider
	cache    *cache.Store
	season   int
}

func NewScorerService(provider SportDataProvider, store *cache.Store, season int) *ScorerService {
	return &ScorerService{
		provider: provider,
		cache:    store,
		season:   season,
	}
}

func (s *ScorerService) TopScorersByLeague(ctx context.Context, leagueID int64) ([]scorer.Scorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.TopScorersByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("scorers:%d:%d", leagueID, s.season)
	return cache.Lookup(ctx, s.cache, key, func(ctx context.Context) ([]scorer.Scorer, error) {
		scorers, err := s.provider.TopScorers(ctx, leagueID, s.season)
		if err != nil {
			return nil, fmt.Errorf("fetch top scorers league=%d: %w", leagueID, err)
		}
		return scorers, nil
	})
}

func (s *ScorerService) TopAssistsByLeague(ctx context.Context, leagueID int64) ([]scorer.Scorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.TopAssistsByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("assists:%d:%d", leagueID, s.season)
	return cache.Lookup(ctx, s.cache, key, func(ctx context.Context) ([]scorer.Scorer, error) {
		scorers, err := s.provider.TopAssists(ctx, leagueID, s.season)
		if err != nil {
			return nil, fmt.Errorf("fetch top assists league=%d: %w", leagueID, err)
		}
		return scorers, nil
	})
}
