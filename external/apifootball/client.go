package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/domain/matchevent"
	"github.com/goalside/sportsdata/internal/domain/playerstats"
	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/domain/standing"
	"github.com/goalside/sportsdata/internal/domain/team"
	"github.com/goalside/sportsdata/internal/platform/logging"
	"github.com/goalside/sportsdata/internal/platform/resilience"
	"github.com/goalside/sportsdata/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	authHeader     = "x-apisports-key"
)

var errProviderTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func fixtureParams(query usecase.FixturesFilter) map[string]string {
	out := make(map[string]string, 4)
	if query.LeagueID > 0 {
		out["league"] = strconv.FormatInt(query.LeagueID, 10)
	}
	if query.Season > 0 {
		out["season"] = strconv.Itoa(query.Season)
	}
	if query.TeamID > 0 {
		out["team"] = strconv.FormatInt(query.TeamID, 10)
	}
	if query.Date != "" {
		out["date"] = query.Date
	} else if query.Next > 0 {
		out["next"] = strconv.Itoa(query.Next)
	} else if query.Last > 0 {
		out["last"] = strconv.Itoa(query.Last)
	}
	return out
}

func (c *Client) Fixtures(ctx context.Context, query usecase.FixturesFilter) ([]match.Match, error) {
	if query.LeagueID <= 0 && query.TeamID <= 0 {
		return nil, fmt.Errorf("league or team id must be greater than zero")
	}

	var env fixturesEnvelope
	if err := c.doJSON(ctx, "/fixtures", fixtureParams(query), &env); err != nil {
		return nil, fmt.Errorf("fetch fixtures league_id=%d: %w", query.LeagueID, err)
	}
	if err := env.err(); err != nil {
		return nil, fmt.Errorf("fetch fixtures league_id=%d: %w", query.LeagueID, err)
	}

	out := make([]match.Match, 0, len(env.Response))
	for _, item := range env.Response {
		mapped, err := TransformFixture(item)
		if err != nil {
			c.logger.WarnContext(ctx, "skip malformed fixture row", "league_id", query.LeagueID, "error", err)
			continue
		}
		out = append(out, mapped)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].UTCDate.Equal(out[j].UTCDate) {
			return out[i].UTCDate.Before(out[j].UTCDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (c *Client) FixtureByID(ctx context.Context, fixtureID int64) (match.Match, error) {
	if fixtureID <= 0 {
		return match.Match{}, fmt.Errorf("fixture id must be greater than zero")
	}

	query := map[string]string{"id": strconv.FormatInt(fixtureID, 10)}
	var env fixturesEnvelope
	if err := c.doJSON(ctx, "/fixtures", query, &env); err != nil {
		return match.Match{}, fmt.Errorf("fetch fixture fixture_id=%d: %w", fixtureID, err)
	}
	if err := env.err(); err != nil {
		return match.Match{}, fmt.Errorf("fetch fixture fixture_id=%d: %w", fixtureID, err)
	}
	if len(env.Response) == 0 {
		return match.Match{}, fmt.Errorf("%w: fixture=%d", usecase.ErrNotFound, fixtureID)
	}

	return TransformFixture(env.Response[0])
}

func (c *Client) Standings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}

	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	}
	var env standingsEnvelope
	if err := c.doJSON(ctx, "/standings", query, &env); err != nil {
		return nil, fmt.Errorf("fetch standings league_id=%d: %w", leagueID, err)
	}
	if err := env.err(); err != nil {
		return nil, fmt.Errorf("fetch standings league_id=%d: %w", leagueID, err)
	}

	out := make([]standing.Standing, 0, 24)
	for _, item := range env.Response {
		for _, group := range item.League.Standings {
			for _, row := range group {
				mapped, err := TransformStanding(row)
				if err != nil {
					c.logger.WarnContext(ctx, "skip malformed standing row", "league_id", leagueID, "error", err)
					continue
				}
				out = append(out, mapped)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (c *Client) TopScorers(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
	return c.fetchPlayerRanking(ctx, "/players/topscorers", leagueID, season)
}

func (c *Client) TopAssists(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
	return c.fetchPlayerRanking(ctx, "/players/topassists", leagueID, season)
}

func (c *Client) fetchPlayerRanking(ctx context.Context, path string, leagueID int64, season int) ([]scorer.Scorer, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}

	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	}
	var env playersEnvelope
	if err := c.doJSON(ctx, path, query, &env); err != nil {
		return nil, fmt.Errorf("fetch %s league_id=%d: %w", strings.TrimPrefix(path, "/players/"), leagueID, err)
	}
	if err := env.err(); err != nil {
		return nil, fmt.Errorf("fetch %s league_id=%d: %w", strings.TrimPrefix(path, "/players/"), leagueID, err)
	}

	out := make([]scorer.Scorer, 0, len(env.Response))
	for _, entry := range env.Response {
		mapped, err := TransformScorer(entry)
		if err != nil {
			c.logger.WarnContext(ctx, "skip malformed player ranking entry", "league_id", leagueID, "error", err)
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

func (c *Client) FixtureEvents(ctx context.Context, fixtureID int64) ([]matchevent.Event, error) {
	if fixtureID <= 0 {
		return nil, fmt.Errorf("fixture id must be greater than zero")
	}

	query := map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)}
	var env eventsEnvelope
	if err := c.doJSON(ctx, "/fixtures/events", query, &env); err != nil {
		return nil, fmt.Errorf("fetch events fixture_id=%d: %w", fixtureID, err)
	}
	if err := env.err(); err != nil {
		return nil, fmt.Errorf("fetch events fixture_id=%d: %w", fixtureID, err)
	}

	out := make([]matchevent.Event, 0, len(env.Response))
	for _, item := range env.Response {
		out = append(out, TransformEvent(item))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Time.Elapsed != out[j].Time.Elapsed {
			return out[i].Time.Elapsed < out[j].Time.Elapsed
		}
		return extraOrZero(out[i].Time.Extra) < extraOrZero(out[j].Time.Extra)
	})
	return out, nil
}

func (c *Client) FixtureStatistics(ctx context.Context, fixtureID int64) ([]match.TeamStats, error) {
	if fixtureID <= 0 {
		return nil, fmt.Errorf("fixture id must be greater than zero")
	}

	query := map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)}
	var env teamStatisticsEnvelope
	if err := c.doJSON(ctx, "/fixtures/statistics", query, &env); err != nil {
		return nil, fmt.Errorf("fetch statistics fixture_id=%d: %w", fixtureID, err)
	}
	if err := env.err(); err != nil {
		return nil, fmt.Errorf("fetch statistics fixture_id=%d: %w", fixtureID, err)
	}

	out := make([]match.TeamStats, 0, len(env.Response))
	for _, item := range env.Response {
		out = append(out, TransformTeamStats(item))
	}
	return out, nil
}

func (c *Client) TeamByID(ctx context.Context, teamID int64) (team.Team, error) {
	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("team id must be greater than zero")
	}

	query := map[string]string{"id": strconv.FormatInt(teamID, 10)}
	var env teamsEnvelope
	if err := c.doJSON(ctx, "/teams", query, &env); err != nil {
		return team.Team{}, fmt.Errorf("fetch team team_id=%d: %w", teamID, err)
	}
	if err := env.err(); err != nil {
		return team.Team{}, fmt.Errorf("fetch team team_id=%d: %w", teamID, err)
	}
	if len(env.Response) == 0 {
		return team.Team{}, fmt.Errorf("%w: team=%d", usecase.ErrNotFound, teamID)
	}

	return TransformTeam(env.Response[0])
}

// PlayerSeasonStats returns the player's identity and one normalized block
// per competition they appeared in during the season.
func (c *Client) PlayerSeasonStats(ctx context.Context, playerID int64, season int) (scorer.Player, []playerstats.CompetitionStats, error) {
	if playerID <= 0 {
		return scorer.Player{}, nil, fmt.Errorf("player id must be greater than zero")
	}

	query := map[string]string{
		"id":     strconv.FormatInt(playerID, 10),
		"season": strconv.Itoa(season),
	}
	var env playersEnvelope
	if err := c.doJSON(ctx, "/players", query, &env); err != nil {
		return scorer.Player{}, nil, fmt.Errorf("fetch player stats player_id=%d: %w", playerID, err)
	}
	if err := env.err(); err != nil {
		return scorer.Player{}, nil, fmt.Errorf("fetch player stats player_id=%d: %w", playerID, err)
	}
	if len(env.Response) == 0 {
		return scorer.Player{}, nil, fmt.Errorf("%w: player=%d", usecase.ErrNotFound, playerID)
	}

	entry := env.Response[0]
	player := scorer.Player{
		ID:          entry.Player.ID,
		Name:        strings.TrimSpace(entry.Player.Name),
		FirstName:   strings.TrimSpace(entry.Player.FirstName),
		LastName:    strings.TrimSpace(entry.Player.LastName),
		Nationality: strings.TrimSpace(entry.Player.Nationality),
		Photo:       strings.TrimSpace(entry.Player.Photo),
	}
	return player, TransformPlayerStatistics(entry.Statistics), nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "provider circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isProviderCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(authHeader, c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errProviderTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errProviderTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: provider status=%d body=%s", errProviderTransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "provider request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// err surfaces the envelope's polymorphic errors field: an empty array when
// the call succeeded, an object keyed by error kind otherwise.
func (e envelope) err() error {
	switch typed := e.Errors.(type) {
	case nil:
		return nil
	case []any:
		if len(typed) == 0 {
			return nil
		}
		return fmt.Errorf("provider reported %d errors on %s", len(typed), e.Get)
	case map[string]any:
		if len(typed) == 0 {
			return nil
		}
		parts := make([]string, 0, len(typed))
		for kind, detail := range typed {
			parts = append(parts, fmt.Sprintf("%s: %v", kind, detail))
		}
		sort.Strings(parts)
		return fmt.Errorf("provider rejected %s: %s", e.Get, strings.Join(parts, "; "))
	default:
		return fmt.Errorf("provider returned unrecognized errors payload %T on %s", typed, e.Get)
	}
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return value
}

func isProviderCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errProviderTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func extraOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
