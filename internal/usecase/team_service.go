package usecase

import (
	"context"
	"fmt"

	"github.com/goalside/sportsdata/internal/domain/team"
	"github.com/goalside/sportsdata/internal/platform/cache"
)

type TeamService struct {
	provider SportDataProvider
	cache    *cache.Store
}

func NewTeamService(provider SportDataProvider, store *cache.Store) *TeamService {
	return &TeamService{
		provider: provider,
		cache:    store,
	}
}

func (s *TeamService) GetByID(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("team:%d", teamID)
	return cache.Lookup(ctx, s.cache, key, func(ctx context.Context) (team.Team, error) {
		loaded, err := s.provider.TeamByID(ctx, teamID)
		if err != nil {
			return team.Team{}, fmt.Errorf("fetch team team=%d: %w", teamID, err)
		}
		return loaded, nil
	})
}
