package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures", handler.ListFixturesByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/scorers", handler.ListTopScorersByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/assists", handler.ListTopAssistsByLeague)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetFixtureDetails)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players", handler.ListComparablePlayers)
	mux.HandleFunc("POST /v1/players/compare", handler.ComparePlayers)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalToken string) {
	mux.Handle("POST /v1/internal/cache/invalidate", RequireInternalToken(internalToken, http.HandlerFunc(handler.InvalidateCache)))
	mux.Handle("POST /v1/internal/warmup", RequireInternalToken(internalToken, http.HandlerFunc(handler.RunWarmup)))
}
