package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/goalside/sportsdata/external/apifootball"
	"github.com/goalside/sportsdata/internal/config"
	"github.com/goalside/sportsdata/internal/interfaces/httpapi"
	"github.com/goalside/sportsdata/internal/platform/cache"
	"github.com/goalside/sportsdata/internal/platform/logging"
	"github.com/goalside/sportsdata/internal/platform/resilience"
	"github.com/goalside/sportsdata/internal/usecase"
)

// Services bundles the wired use cases so the caller can run warmup or
// other startup work outside the HTTP request path.
type Services struct {
	Matches     *usecase.MatchService
	Standings   *usecase.StandingService
	Scorers     *usecase.ScorerService
	Teams       *usecase.TeamService
	Comparisons *usecase.ComparisonService
	Warmups     *usecase.WarmupService
	Cache       *cache.Store
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger, clientLogger *logging.Logger) (*http.Server, *Services, error) {
	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		Token:      cfg.APIFootballKey,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     clientLogger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})

	store := cache.NewStore(cfg.CacheTTL)

	matchSvc := usecase.NewMatchService(provider, store, cfg.Season)
	standingSvc := usecase.NewStandingService(provider, store, cfg.Season)
	scorerSvc := usecase.NewScorerService(provider, store, cfg.Season)
	teamSvc := usecase.NewTeamService(provider, store)
	comparisonSvc := usecase.NewComparisonService(provider, store, cfg.LeagueIDs, cfg.Season)
	warmupSvc := usecase.NewWarmupService(matchSvc, standingSvc, scorerSvc, cfg.LeagueIDs)

	handler := httpapi.NewHandler(matchSvc, standingSvc, scorerSvc, teamSvc, comparisonSvc, warmupSvc, store, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalAdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, &Services{
		Matches:     matchSvc,
		Standings:   standingSvc,
		Scorers:     scorerSvc,
		Teams:       teamSvc,
		Comparisons: comparisonSvc,
		Warmups:     warmupSvc,
		Cache:       store,
	}, nil
}
