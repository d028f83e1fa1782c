package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/platform/cache"
	"github.com/goalside/sportsdata/internal/usecase"
)

type Handler struct {
	matchService      *usecase.MatchService
	standingService   *usecase.StandingService
	scorerService     *usecase.ScorerService
	teamService       *usecase.TeamService
	comparisonService *usecase.ComparisonService
	warmupService     *usecase.WarmupService
	cache             *cache.Store
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	standingService *usecase.StandingService,
	scorerService *usecase.ScorerService,
	teamService *usecase.TeamService,
	comparisonService *usecase.ComparisonService,
	warmupService *usecase.WarmupService,
	store *cache.Store,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		matchService:      matchService,
		standingService:   standingService,
		scorerService:     scorerService,
		teamService:       teamService,
		comparisonService: comparisonService,
		warmupService:     warmupService,
		cache:             store,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByLeague")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	fixtures, err := h.listFixtures(ctx, leagueID, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "league_id", leagueID, "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, matchToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.standingService.TableByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(table))
	for _, row := range table {
		items = append(items, standingToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTopScorersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorersByLeague")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	scorers, err := h.scorerService.TopScorersByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scorerDTO, 0, len(scorers))
	for _, s := range scorers {
		items = append(items, scorerToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTopAssistsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopAssistsByLeague")
	defer span.End()

	leagueID, err := parsePathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	assists, err := h.scorerService.TopAssistsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list top assists failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scorerDTO, 0, len(assists))
	for _, s := range assists {
		items = append(items, scorerToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFixtureDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureDetails")
	defer span.End()

	fixtureID, err := parsePathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.matchService.Details(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture details failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsToDTO(details))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := parsePathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

// ListComparablePlayers returns the comparison candidate pool, or a
// single resolved entry when ?name= is provided.
func (h *Handler) ListComparablePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListComparablePlayers")
	defer span.End()

	if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
		found, err := h.comparisonService.FindPlayer(ctx, name)
		if err != nil {
			h.logger.WarnContext(ctx, "find player failed", "name", name, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, scorerToDTO(found))
		return
	}

	candidates, err := h.comparisonService.CandidatePool(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list comparable players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scorerDTO, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, scorerToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	var req comparePlayersRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.comparisonService.Compare(ctx, req.FirstPlayerID, req.SecondPlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed",
			"first_player_id", req.FirstPlayerID,
			"second_player_id", req.SecondPlayerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(comparison))
}

func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InvalidateCache")
	defer span.End()

	var req invalidateCacheRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	before := h.cache.Len()
	switch req.Scope {
	case "all":
		h.cache.DeleteAll(ctx)
	case "prefix":
		h.cache.DeletePrefix(ctx, req.Prefix)
	}
	removed := before - h.cache.Len()

	h.logger.InfoContext(ctx, "cache invalidated", "scope", req.Scope, "prefix", req.Prefix, "removed", removed)
	writeSuccess(ctx, w, http.StatusOK, invalidateCacheResponse{
		Scope:   req.Scope,
		Prefix:  req.Prefix,
		Removed: removed,
	})
}

func (h *Handler) RunWarmup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmup")
	defer span.End()

	var req warmupRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.warmupService.Warmup(ctx, usecase.WarmupInput{
		LeagueIDs:  req.LeagueIDs,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "warmup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "warmup finished",
		"task_count", result.TaskCount,
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) listFixtures(ctx context.Context, leagueID int64, date string) ([]match.Match, error) {
	if date != "" {
		return h.matchService.ListByLeagueAndDate(ctx, leagueID, date)
	}
	return h.matchService.ListByLeague(ctx, leagueID)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

type comparePlayersRequest struct {
	FirstPlayerID  int64 `json:"first_player_id" validate:"required,gt=0"`
	SecondPlayerID int64 `json:"second_player_id" validate:"required,gt=0"`
}

type invalidateCacheRequest struct {
	Scope  string `json:"scope" validate:"required,oneof=all prefix"`
	Prefix string `json:"prefix" validate:"required_if=Scope prefix"`
}

type invalidateCacheResponse struct {
	Scope   string `json:"scope"`
	Prefix  string `json:"prefix,omitempty"`
	Removed int    `json:"removed"`
}

type warmupRequest struct {
	LeagueIDs  []int64 `json:"league_ids" validate:"omitempty,dive,gt=0"`
	MaxWorkers int     `json:"max_workers" validate:"omitempty,gte=1,lte=64"`
}
