package apifootball

// Wire shapes for the provider's v3 JSON payloads. Only the fields the
// transformers depend on are declared; unknown fields are ignored at
// decode time so additive provider changes stay harmless.

// envelope is the outer shape of every provider response. Errors is
// polymorphic on the wire: an empty array when there are none, an object
// keyed by error kind otherwise.
type envelope struct {
	Get     string `json:"get"`
	Errors  any    `json:"errors"`
	Results int    `json:"results"`
	Paging  paging `json:"paging"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type fixturesEnvelope struct {
	envelope
	Response []FixtureItem `json:"response"`
}

type standingsEnvelope struct {
	envelope
	Response []standingsLeagueItem `json:"response"`
}

type playersEnvelope struct {
	envelope
	Response []PlayerEntry `json:"response"`
}

type eventsEnvelope struct {
	envelope
	Response []EventItem `json:"response"`
}

type teamsEnvelope struct {
	envelope
	Response []TeamProfile `json:"response"`
}

type teamStatisticsEnvelope struct {
	envelope
	Response []TeamStatisticsItem `json:"response"`
}

// FixtureItem is one fixture row from /fixtures.
type FixtureItem struct {
	Fixture FixtureCore    `json:"fixture"`
	League  LeagueInfo     `json:"league"`
	Teams   FixtureTeams   `json:"teams"`
	Goals   GoalPair       `json:"goals"`
	Score   ScoreBreakdown `json:"score"`
}

type FixtureCore struct {
	ID        int64         `json:"id"`
	Referee   string        `json:"referee"`
	Timezone  string        `json:"timezone"`
	Date      string        `json:"date"`
	Timestamp int64         `json:"timestamp"`
	Status    FixtureStatus `json:"status"`
	Venue     VenueInfo     `json:"venue"`
}

type FixtureStatus struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type VenueInfo struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type LeagueInfo struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Flag    string `json:"flag"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type FixtureTeams struct {
	Home TeamRef `json:"home"`
	Away TeamRef `json:"away"`
}

type TeamRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type GoalPair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type ScoreBreakdown struct {
	Halftime  GoalPair `json:"halftime"`
	Fulltime  GoalPair `json:"fulltime"`
	Extratime GoalPair `json:"extratime"`
	Penalty   GoalPair `json:"penalty"`
}

// standingsLeagueItem wraps the nested standings groups from /standings.
// Standings is a list of groups (a single-group league table, or one group
// per conference/stage), each a list of rows.
type standingsLeagueItem struct {
	League struct {
		ID        int64           `json:"id"`
		Name      string          `json:"name"`
		Logo      string          `json:"logo"`
		Season    int             `json:"season"`
		Standings [][]StandingRow `json:"standings"`
	} `json:"league"`
}

// StandingRow is one raw league-table row.
type StandingRow struct {
	Rank        int          `json:"rank"`
	Team        TeamRef      `json:"team"`
	Points      int          `json:"points"`
	GoalsDiff   int          `json:"goalsDiff"`
	Group       string       `json:"group"`
	Form        string       `json:"form"`
	Description string       `json:"description"`
	All         StandingSide `json:"all"`
	Home        StandingSide `json:"home"`
	Away        StandingSide `json:"away"`
}

type StandingSide struct {
	Played int `json:"played"`
	Win    int `json:"win"`
	Draw   int `json:"draw"`
	Lose   int `json:"lose"`
	Goals  struct {
		For     int `json:"for"`
		Against int `json:"against"`
	} `json:"goals"`
}

// PlayerEntry is one player row from /players, /players/topscorers or
// /players/topassists: identity plus one statistics block per
// competition/team.
type PlayerEntry struct {
	Player     PlayerInfo         `json:"player"`
	Statistics []PlayerStatistics `json:"statistics"`
}

type PlayerInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Age         *int   `json:"age"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
}

type PlayerStatistics struct {
	Team     TeamRef        `json:"team"`
	League   LeagueInfo     `json:"league"`
	Games    GamesStats     `json:"games"`
	Goals    GoalsStats     `json:"goals"`
	Passes   PassesStats    `json:"passes"`
	Dribbles DribblesStats  `json:"dribbles"`
	Tackles  TacklesStats   `json:"tackles"`
	Duels    DuelsStats     `json:"duels"`
	Fouls    FoulsStats     `json:"fouls"`
	Cards    CardsStats     `json:"cards"`
	Penalty  PenaltyStats   `json:"penalty"`
}

type GamesStats struct {
	// Appearences is the provider's own spelling.
	Appearences *int   `json:"appearences"`
	Lineups     *int   `json:"lineups"`
	Minutes     *int   `json:"minutes"`
	Position    string `json:"position"`
	Rating      string `json:"rating"`
	Captain     bool   `json:"captain"`
}

type GoalsStats struct {
	Total    *int `json:"total"`
	Conceded *int `json:"conceded"`
	Assists  *int `json:"assists"`
	Saves    *int `json:"saves"`
}

type PassesStats struct {
	Total    *int `json:"total"`
	Key      *int `json:"key"`
	Accuracy *int `json:"accuracy"`
}

type DribblesStats struct {
	Attempts *int `json:"attempts"`
	Success  *int `json:"success"`
	Past     *int `json:"past"`
}

type TacklesStats struct {
	Total         *int `json:"total"`
	Blocks        *int `json:"blocks"`
	Interceptions *int `json:"interceptions"`
}

type DuelsStats struct {
	Total *int `json:"total"`
	Won   *int `json:"won"`
}

type FoulsStats struct {
	Drawn     *int `json:"drawn"`
	Committed *int `json:"committed"`
}

type CardsStats struct {
	Yellow    *int `json:"yellow"`
	YellowRed *int `json:"yellowred"`
	Red       *int `json:"red"`
}

type PenaltyStats struct {
	Won      *int `json:"won"`
	Scored   *int `json:"scored"`
	Missed   *int `json:"missed"`
	Saved    *int `json:"saved"`
}

// EventItem is one raw in-match event from /fixtures/events.
type EventItem struct {
	Time     EventClock  `json:"time"`
	Team     TeamRef     `json:"team"`
	Player   EventPlayer `json:"player"`
	Assist   EventPlayer `json:"assist"`
	Type     string      `json:"type"`
	Detail   string      `json:"detail"`
	Comments string      `json:"comments"`
}

type EventClock struct {
	Elapsed int  `json:"elapsed"`
	Extra   *int `json:"extra"`
}

type EventPlayer struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// TeamProfile is one row from /teams.
type TeamProfile struct {
	Team  TeamInfo     `json:"team"`
	Venue VenueProfile `json:"venue"`
}

type TeamInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Country  string `json:"country"`
	Founded  *int   `json:"founded"`
	National bool   `json:"national"`
	Logo     string `json:"logo"`
}

type VenueProfile struct {
	ID       *int64 `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity *int   `json:"capacity"`
}

// TeamStatisticsItem is one team's raw stat array for a fixture, from
// /fixtures/statistics.
type TeamStatisticsItem struct {
	Team       TeamRef     `json:"team"`
	Statistics []StatEntry `json:"statistics"`
}

// StatEntry is a heterogeneous stat cell: Value arrives as a number, a
// percentage string like "65%", or null.
type StatEntry struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}
