package apifootball

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/domain/matchevent"
	"github.com/goalside/sportsdata/internal/domain/playerstats"
	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/domain/standing"
	"github.com/goalside/sportsdata/internal/domain/team"
)

var digitsRegex = regexp.MustCompile(`\d+`)

// statusByShortCode translates the provider's short status vocabulary into
// the canonical match states. Codes not in the table pass through
// unchanged so a new provider code degrades to display-as-is instead of
// breaking the pipeline.
var statusByShortCode = map[string]string{
	"NS":   match.StatusScheduled,
	"TBD":  match.StatusScheduled,
	"1H":   match.StatusInPlay,
	"HT":   match.StatusInPlay,
	"2H":   match.StatusInPlay,
	"ET":   match.StatusInPlay,
	"BT":   match.StatusInPlay,
	"P":    match.StatusInPlay,
	"LIVE": match.StatusInPlay,
	"FT":   match.StatusFinished,
	"AET":  match.StatusFinished,
	"PEN":  match.StatusFinished,
	"SUSP": match.StatusSuspended,
	"INT":  match.StatusInterrupted,
	"PST":  match.StatusPostponed,
	"CANC": match.StatusCancelled,
	"ABD":  match.StatusAbandoned,
	"AWD":  match.StatusAwarded,
	"WO":   match.StatusWalkover,
}

// Fallback counters for the silent-degradation paths; exposed so the host
// can watch for a provider vocabulary drift without changing behavior.
var (
	unknownStatusCount  atomic.Int64
	digitlessRoundCount atomic.Int64
)

// FallbackCounters reports how often MapStatus passed an unknown code
// through and how often ParseMatchday defaulted a digitless round label.
func FallbackCounters() (unknownStatus, digitlessRound int64) {
	return unknownStatusCount.Load(), digitlessRoundCount.Load()
}

// MapStatus translates a provider short status code into a canonical
// match state. Unknown codes are returned unchanged.
func MapStatus(shortCode string) string {
	if mapped, ok := statusByShortCode[shortCode]; ok {
		return mapped
	}
	unknownStatusCount.Add(1)
	return shortCode
}

// ParseMatchday extracts the matchday from a free-text round label: the
// first run of digits, or 1 when the label has none ("Final", "").
// Digitless knockout rounds are indistinguishable by design.
func ParseMatchday(round string) int {
	candidate := digitsRegex.FindString(strings.TrimSpace(round))
	if candidate == "" {
		digitlessRoundCount.Add(1)
		return 1
	}
	value, err := strconv.Atoi(candidate)
	if err != nil || value <= 0 {
		digitlessRoundCount.Add(1)
		return 1
	}
	return value
}

// StatValue finds the first entry of the given type and returns its
// numeric value: numbers pass through (including 0), percentage strings
// drop the sign ("65%" -> 65), absent or null values yield 0. The result
// is never negative-by-accident NaN or a null sentinel.
func StatValue(stats []StatEntry, statType string) float64 {
	for _, entry := range stats {
		if entry.Type != statType {
			continue
		}
		return numericStatValue(entry.Value)
	}
	return 0
}

func numericStatValue(value any) float64 {
	switch typed := value.(type) {
	case nil:
		return 0
	case float64:
		return typed
	case float32:
		return float64(typed)
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		trimmed := strings.TrimSuffix(strings.TrimSpace(typed), "%")
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// deriveTLA returns the three-letter team code: the provider's code when
// present, else the first three letters of the name, ASCII-uppercased.
func deriveTLA(code, name string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == 3 {
		return code
	}

	// Digits, dots and spaces do not count: "1. FC Köln" yields FCK.
	letters := make([]rune, 0, 3)
	for _, r := range strings.TrimSpace(name) {
		if !unicode.IsLetter(r) {
			continue
		}
		letters = append(letters, unicode.ToUpper(r))
		if len(letters) == 3 {
			break
		}
	}
	return string(letters)
}

func teamLiteFromRef(ref TeamRef) team.Lite {
	name := strings.TrimSpace(ref.Name)
	return team.Lite{
		ID:        ref.ID,
		Name:      name,
		ShortName: name,
		TLA:       deriveTLA("", name),
		Crest:     strings.TrimSpace(ref.Logo),
	}
}

// TransformFixture maps one raw fixture payload onto a canonical Match.
// Scores are carried through as-is, nil included: nil means not played,
// which must stay distinct from 0-0.
func TransformFixture(item FixtureItem) (match.Match, error) {
	if item.Fixture.ID <= 0 {
		return match.Match{}, fmt.Errorf("fixture is missing its id")
	}

	utcDate, err := parseProviderDateTime(item.Fixture.Date)
	if err != nil {
		return match.Match{}, fmt.Errorf("fixture %d: %w", item.Fixture.ID, err)
	}

	shortCode := strings.TrimSpace(item.Fixture.Status.Short)
	return match.Match{
		ID:          item.Fixture.ID,
		UTCDate:     utcDate,
		Status:      MapStatus(shortCode),
		StatusShort: shortCode,
		Minute:      item.Fixture.Status.Elapsed,
		Matchday:    ParseMatchday(item.League.Round),
		Round:       strings.TrimSpace(item.League.Round),
		HomeTeam:    teamLiteFromRef(item.Teams.Home),
		AwayTeam:    teamLiteFromRef(item.Teams.Away),
		Score: match.Score{
			FullTime: match.ScorePair{Home: item.Goals.Home, Away: item.Goals.Away},
			HalfTime: match.ScorePair{Home: item.Score.Halftime.Home, Away: item.Score.Halftime.Away},
		},
		Competition: match.Competition{
			ID:     item.League.ID,
			Name:   strings.TrimSpace(item.League.Name),
			Emblem: strings.TrimSpace(item.League.Logo),
		},
		Venue:   strings.TrimSpace(item.Fixture.Venue.Name),
		Referee: strings.TrimSpace(item.Fixture.Referee),
	}, nil
}

// TransformStanding maps one raw table row onto a canonical Standing.
func TransformStanding(row StandingRow) (standing.Standing, error) {
	if row.Team.ID <= 0 {
		return standing.Standing{}, fmt.Errorf("standing row rank=%d is missing its team id", row.Rank)
	}

	return standing.Standing{
		Position:       row.Rank,
		Team:           teamLiteFromRef(row.Team),
		PlayedGames:    row.All.Played,
		Won:            row.All.Win,
		Draw:           row.All.Draw,
		Lost:           row.All.Lose,
		Points:         row.Points,
		GoalsFor:       row.All.Goals.For,
		GoalsAgainst:   row.All.Goals.Against,
		GoalDifference: row.GoalsDiff,
		Form:           strings.TrimSpace(row.Form),
	}, nil
}

// TransformScorer maps one top-scorers/top-assists entry onto a canonical
// Scorer. Team and the counting stats come from the first statistics
// block only (the player's primary competition context); absent blocks or
// nested fields default to zero without failing.
func TransformScorer(entry PlayerEntry) (scorer.Scorer, error) {
	if entry.Player.ID <= 0 {
		return scorer.Scorer{}, fmt.Errorf("scorer entry is missing its player id")
	}

	out := scorer.Scorer{
		Player: scorer.Player{
			ID:          entry.Player.ID,
			Name:        strings.TrimSpace(entry.Player.Name),
			FirstName:   strings.TrimSpace(entry.Player.FirstName),
			LastName:    strings.TrimSpace(entry.Player.LastName),
			Nationality: strings.TrimSpace(entry.Player.Nationality),
			Photo:       strings.TrimSpace(entry.Player.Photo),
		},
	}

	if len(entry.Statistics) == 0 {
		return out, nil
	}

	primary := entry.Statistics[0]
	out.Team = scorer.TeamRef{
		ID:    primary.Team.ID,
		Name:  strings.TrimSpace(primary.Team.Name),
		Crest: strings.TrimSpace(primary.Team.Logo),
	}
	out.Goals = intOrZero(primary.Goals.Total)
	out.Assists = intOrZero(primary.Goals.Assists)
	out.PlayedMatches = intOrZero(primary.Games.Appearences)
	return out, nil
}

// TransformEvent maps one raw in-match event onto a canonical Event.
// Player and assist stay nil when the provider omits them (e.g. a missed
// VAR check carries no player).
func TransformEvent(item EventItem) matchevent.Event {
	return matchevent.Event{
		Time: matchevent.Clock{
			Elapsed: item.Time.Elapsed,
			Extra:   item.Time.Extra,
		},
		Team: matchevent.TeamRef{
			ID:   item.Team.ID,
			Name: strings.TrimSpace(item.Team.Name),
			Logo: strings.TrimSpace(item.Team.Logo),
		},
		Player:   eventPlayerRef(item.Player),
		Assist:   eventPlayerRef(item.Assist),
		Type:     strings.TrimSpace(item.Type),
		Detail:   strings.TrimSpace(item.Detail),
		Comments: strings.TrimSpace(item.Comments),
	}
}

func eventPlayerRef(source EventPlayer) *matchevent.PlayerRef {
	if source.ID == nil && strings.TrimSpace(source.Name) == "" {
		return nil
	}
	ref := matchevent.PlayerRef{Name: strings.TrimSpace(source.Name)}
	if source.ID != nil {
		ref.ID = *source.ID
	}
	return &ref
}

// TransformTeam maps one team profile onto a canonical Team.
func TransformTeam(profile TeamProfile) (team.Team, error) {
	if profile.Team.ID <= 0 {
		return team.Team{}, fmt.Errorf("team profile is missing its id")
	}

	name := strings.TrimSpace(profile.Team.Name)
	return team.Team{
		ID:        profile.Team.ID,
		Name:      name,
		ShortName: name,
		TLA:       deriveTLA(profile.Team.Code, name),
		Crest:     strings.TrimSpace(profile.Team.Logo),
		Venue:     strings.TrimSpace(profile.Venue.Name),
		Founded:   profile.Team.Founded,
		Country:   strings.TrimSpace(profile.Team.Country),
	}, nil
}

// TransformTeamStats condenses one team's raw stat array into the
// canonical per-match summary.
func TransformTeamStats(item TeamStatisticsItem) match.TeamStats {
	stats := item.Statistics
	return match.TeamStats{
		TeamID:        item.Team.ID,
		TeamName:      strings.TrimSpace(item.Team.Name),
		ShotsTotal:    int(StatValue(stats, "Total Shots")),
		ShotsOnGoal:   int(StatValue(stats, "Shots on Goal")),
		PossessionPct: int(StatValue(stats, "Ball Possession")),
		Corners:       int(StatValue(stats, "Corner Kicks")),
		Fouls:         int(StatValue(stats, "Fouls")),
		Offsides:      int(StatValue(stats, "Offsides")),
		YellowCards:   int(StatValue(stats, "Yellow Cards")),
		RedCards:      int(StatValue(stats, "Red Cards")),
		PassesTotal:   int(StatValue(stats, "Total passes")),
		PassAccuracy:  int(StatValue(stats, "Passes %")),
	}
}

// TransformPlayerStatistics normalizes a player's per-competition blocks.
// A block's rating is kept only when it parses; missing sub-objects
// default every counter to zero.
func TransformPlayerStatistics(blocks []PlayerStatistics) []playerstats.CompetitionStats {
	out := make([]playerstats.CompetitionStats, 0, len(blocks))
	for _, block := range blocks {
		stats := playerstats.CompetitionStats{
			TeamID:           block.Team.ID,
			TeamName:         strings.TrimSpace(block.Team.Name),
			LeagueID:         block.League.ID,
			LeagueName:       strings.TrimSpace(block.League.Name),
			Appearances:      intOrZero(block.Games.Appearences),
			Minutes:          intOrZero(block.Games.Minutes),
			Goals:            intOrZero(block.Goals.Total),
			Assists:          intOrZero(block.Goals.Assists),
			PassesTotal:      intOrZero(block.Passes.Total),
			PassesKey:        intOrZero(block.Passes.Key),
			DribblesAttempts: intOrZero(block.Dribbles.Attempts),
			DribblesSuccess:  intOrZero(block.Dribbles.Success),
			TacklesTotal:     intOrZero(block.Tackles.Total),
			Interceptions:    intOrZero(block.Tackles.Interceptions),
			DuelsTotal:       intOrZero(block.Duels.Total),
			DuelsWon:         intOrZero(block.Duels.Won),
			FoulsDrawn:       intOrZero(block.Fouls.Drawn),
			FoulsCommitted:   intOrZero(block.Fouls.Committed),
			YellowCards:      intOrZero(block.Cards.Yellow),
			RedCards:         intOrZero(block.Cards.Red),
		}
		if rating, ok := parseRating(block.Games.Rating); ok {
			stats.Rating = &rating
		}
		out = append(out, stats)
	}
	return out
}

func parseRating(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func parseProviderDateTime(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("fixture date is empty")
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized fixture date %q", value)
}
