package usecase

import (
	"context"
	"fmt"

	"github.com/goalside/sportsdata/internal/domain/standing"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

type StandingService struct {
	provider SportDataProvider
	cache    *cache.Store
	season   int
}

func NewStandingService(provider SportDataProvider, store *cache.Store, season int) *StandingService {
	return &StandingService{
		provider: provider,
		cache:    store,
		season:   season,
	}
}

func (s *StandingService) TableByLeague(ctx context.Context, leagueID int64) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TableByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("standings:%d:%d", leagueID, s.season)
	return cache.Lookup(ctx, s.cache, key, func(ctx context.Context) ([]standing.Standing, error) {
		table, err := s.provider.Standings(ctx, leagueID, s.season)
		if err != nil {
			return nil, fmt.Errorf("fetch standings league=%d: %w", leagueID, err)
		}
		if len(table) == 0 {
			return nil, fmt.Errorf("%w: standings league=%d", ErrNotFound, leagueID)
		}
		return table, nil
	})
}
