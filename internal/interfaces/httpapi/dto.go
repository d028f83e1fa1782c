package httpapi

import (
	"time"

	"github.com/goalside/sportsdata/internal/domain/match"
	"github.com/goalside/sportsdata/internal/domain/matchevent"
	"github.com/goalside/sportsdata/internal/domain/scorer"
	"github.com/goalside/sportsdata/internal/domain/standing"
	"github.com/goalside/sportsdata/internal/domain/team"
	"github.com/goalside/sportsdata/internal/usecase"
)

type teamLiteDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest,omitempty"`
}

type teamDTO struct {
	teamLiteDTO
	Venue   string `json:"venue,omitempty"`
	Founded *int   `json:"founded,omitempty"`
	Country string `json:"country,omitempty"`
}

type scorePairDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type scoreDTO struct {
	FullTime scorePairDTO `json:"full_time"`
	HalfTime scorePairDTO `json:"half_time"`
}

type competitionDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Emblem string `json:"emblem,omitempty"`
}

type matchDTO struct {
	ID          int64          `json:"id"`
	UTCDate     time.Time      `json:"utc_date"`
	Status      string         `json:"status"`
	StatusShort string         `json:"status_short"`
	Live        bool           `json:"live"`
	Finished    bool           `json:"finished"`
	Minute      *int           `json:"minute,omitempty"`
	Matchday    int            `json:"matchday"`
	Round       string         `json:"round"`
	HomeTeam    teamLiteDTO    `json:"home_team"`
	AwayTeam    teamLiteDTO    `json:"away_team"`
	Score       scoreDTO       `json:"score"`
	Competition competitionDTO `json:"competition"`
	Venue       string         `json:"venue,omitempty"`
	Referee     string         `json:"referee,omitempty"`
}

type standingDTO struct {
	Position       int         `json:"position"`
	Team           teamLiteDTO `json:"team"`
	PlayedGames    int         `json:"played_games"`
	Won            int         `json:"won"`
	Draw           int         `json:"draw"`
	Lost           int         `json:"lost"`
	Points         int         `json:"points"`
	GoalsFor       int         `json:"goals_for"`
	GoalsAgainst   int         `json:"goals_against"`
	GoalDifference int         `json:"goal_difference"`
	Form           string      `json:"form,omitempty"`
}

type playerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

type scorerDTO struct {
	Player        playerDTO    `json:"player"`
	Team          teamRefDTO   `json:"team"`
	Goals         int          `json:"goals"`
	Assists       int          `json:"assists"`
	PlayedMatches int          `json:"played_matches"`
}

type teamRefDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest,omitempty"`
}

type eventClockDTO struct {
	Elapsed int  `json:"elapsed"`
	Extra   *int `json:"extra,omitempty"`
}

type eventPlayerDTO struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type eventDTO struct {
	Time     eventClockDTO   `json:"time"`
	Team     teamRefDTO      `json:"team"`
	Player   *eventPlayerDTO `json:"player,omitempty"`
	Assist   *eventPlayerDTO `json:"assist,omitempty"`
	Type     string          `json:"type"`
	Detail   string          `json:"detail,omitempty"`
	Comments string          `json:"comments,omitempty"`
}

type teamStatsDTO struct {
	TeamID        int64  `json:"team_id"`
	TeamName      string `json:"team_name"`
	ShotsTotal    int    `json:"shots_total"`
	ShotsOnGoal   int    `json:"shots_on_goal"`
	PossessionPct int    `json:"possession_pct"`
	Corners       int    `json:"corners"`
	Fouls         int    `json:"fouls"`
	Offsides      int    `json:"offsides"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
	PassesTotal   int    `json:"passes_total"`
	PassAccuracy  int    `json:"pass_accuracy"`
}

type matchDetailsDTO struct {
	Match     matchDTO     `json:"match"`
	Events    []eventDTO   `json:"events"`
	HomeStats teamStatsDTO `json:"home_stats"`
	AwayStats teamStatsDTO `json:"away_stats"`
}

type aggregateStatsDTO struct {
	Appearances     int      `json:"appearances"`
	Minutes         int      `json:"minutes"`
	Goals           int      `json:"goals"`
	Assists         int      `json:"assists"`
	DribblesSuccess int      `json:"dribbles_success"`
	Rating          *float64 `json:"rating"`
}

type comparedPlayerDTO struct {
	Player playerDTO         `json:"player"`
	Totals aggregateStatsDTO `json:"totals"`
}

type comparisonDTO struct {
	First      comparedPlayerDTO `json:"first"`
	Second     comparedPlayerDTO `json:"second"`
	FirstWins  int               `json:"first_wins"`
	SecondWins int               `json:"second_wins"`
	Outcome    string            `json:"outcome"`
	Metrics    map[string]string `json:"metrics"`
}

func teamLiteToDTO(item team.Lite) teamLiteDTO {
	return teamLiteDTO{
		ID:        item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		TLA:       item.TLA,
		Crest:     item.Crest,
	}
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		teamLiteDTO: teamLiteToDTO(item.Lite()),
		Venue:       item.Venue,
		Founded:     item.Founded,
		Country:     item.Country,
	}
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:          item.ID,
		UTCDate:     item.UTCDate,
		Status:      item.Status,
		StatusShort: item.StatusShort,
		Live:        match.IsInPlay(item.Status),
		Finished:    match.IsFinished(item.Status),
		Minute:      item.Minute,
		Matchday:    item.Matchday,
		Round:       item.Round,
		HomeTeam:    teamLiteToDTO(item.HomeTeam),
		AwayTeam:    teamLiteToDTO(item.AwayTeam),
		Score: scoreDTO{
			FullTime: scorePairDTO{Home: item.Score.FullTime.Home, Away: item.Score.FullTime.Away},
			HalfTime: scorePairDTO{Home: item.Score.HalfTime.Home, Away: item.Score.HalfTime.Away},
		},
		Competition: competitionDTO{
			ID:     item.Competition.ID,
			Name:   item.Competition.Name,
			Emblem: item.Competition.Emblem,
		},
		Venue:   item.Venue,
		Referee: item.Referee,
	}
}

func standingToDTO(item standing.Standing) standingDTO {
	return standingDTO{
		Position:       item.Position,
		Team:           teamLiteToDTO(item.Team),
		PlayedGames:    item.PlayedGames,
		Won:            item.Won,
		Draw:           item.Draw,
		Lost:           item.Lost,
		Points:         item.Points,
		GoalsFor:       item.GoalsFor,
		GoalsAgainst:   item.GoalsAgainst,
		GoalDifference: item.GoalDifference,
		Form:           item.Form,
	}
}

func playerToDTO(item scorer.Player) playerDTO {
	return playerDTO{
		ID:          item.ID,
		Name:        item.Name,
		FirstName:   item.FirstName,
		LastName:    item.LastName,
		Nationality: item.Nationality,
		Photo:       item.Photo,
	}
}

func scorerToDTO(item scorer.Scorer) scorerDTO {
	return scorerDTO{
		Player: playerToDTO(item.Player),
		Team: teamRefDTO{
			ID:    item.Team.ID,
			Name:  item.Team.Name,
			Crest: item.Team.Crest,
		},
		Goals:         item.Goals,
		Assists:       item.Assists,
		PlayedMatches: item.PlayedMatches,
	}
}

func eventToDTO(item matchevent.Event) eventDTO {
	out := eventDTO{
		Time: eventClockDTO{
			Elapsed: item.Time.Elapsed,
			Extra:   item.Time.Extra,
		},
		Team: teamRefDTO{
			ID:    item.Team.ID,
			Name:  item.Team.Name,
			Crest: item.Team.Logo,
		},
		Type:     item.Type,
		Detail:   item.Detail,
		Comments: item.Comments,
	}
	if item.Player != nil {
		out.Player = &eventPlayerDTO{ID: item.Player.ID, Name: item.Player.Name}
	}
	if item.Assist != nil {
		out.Assist = &eventPlayerDTO{ID: item.Assist.ID, Name: item.Assist.Name}
	}
	return out
}

func teamStatsToDTO(item match.TeamStats) teamStatsDTO {
	return teamStatsDTO{
		TeamID:        item.TeamID,
		TeamName:      item.TeamName,
		ShotsTotal:    item.ShotsTotal,
		ShotsOnGoal:   item.ShotsOnGoal,
		PossessionPct: item.PossessionPct,
		Corners:       item.Corners,
		Fouls:         item.Fouls,
		Offsides:      item.Offsides,
		YellowCards:   item.YellowCards,
		RedCards:      item.RedCards,
		PassesTotal:   item.PassesTotal,
		PassAccuracy:  item.PassAccuracy,
	}
}

func matchDetailsToDTO(item usecase.MatchDetails) matchDetailsDTO {
	events := make([]eventDTO, 0, len(item.Events))
	for _, event := range item.Events {
		events = append(events, eventToDTO(event))
	}
	return matchDetailsDTO{
		Match:     matchToDTO(item.Match),
		Events:    events,
		HomeStats: teamStatsToDTO(item.HomeStats),
		AwayStats: teamStatsToDTO(item.AwayStats),
	}
}

func comparisonToDTO(item usecase.PlayerComparison) comparisonDTO {
	return comparisonDTO{
		First:      comparedPlayerToDTO(item.First),
		Second:     comparedPlayerToDTO(item.Second),
		FirstWins:  item.Verdict.FirstWins,
		SecondWins: item.Verdict.SecondWins,
		Outcome:    item.Verdict.Outcome,
		Metrics:    item.Verdict.Metrics,
	}
}

func comparedPlayerToDTO(item usecase.ComparedPlayer) comparedPlayerDTO {
	return comparedPlayerDTO{
		Player: playerToDTO(item.Player),
		Totals: aggregateStatsDTO{
			Appearances:     item.Totals.Appearances,
			Minutes:         item.Totals.Minutes,
			Goals:           item.Totals.Goals,
			Assists:         item.Totals.Assists,
			DribblesSuccess: item.Totals.DribblesSuccess,
			Rating:          item.Totals.Rating,
		},
	}
}
