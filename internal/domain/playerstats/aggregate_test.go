package playerstats

import "testing"

func ratingPtr(v float64) *float64 { return &v }

func TestAggregate_SumsCountingStatsAcrossBlocks(t *testing.T) {
	t.Parallel()

	blocks := []CompetitionStats{
		{
			LeagueName:       "Premier League",
			Appearances:      20,
			Minutes:          1700,
			Goals:            12,
			Assists:          5,
			PassesTotal:      600,
			PassesKey:        30,
			DribblesAttempts: 40,
			DribblesSuccess:  25,
			TacklesTotal:     10,
			Interceptions:    4,
			DuelsTotal:       120,
			DuelsWon:         70,
			FoulsDrawn:       22,
			FoulsCommitted:   8,
			YellowCards:      3,
			RedCards:         0,
			Rating:           ratingPtr(7.5),
		},
		{
			LeagueName:       "FA Cup",
			Appearances:      4,
			Minutes:          290,
			Goals:            3,
			Assists:          1,
			PassesTotal:      90,
			PassesKey:        6,
			DribblesAttempts: 9,
			DribblesSuccess:  6,
			TacklesTotal:     2,
			Interceptions:    1,
			DuelsTotal:       18,
			DuelsWon:         11,
			FoulsDrawn:       5,
			FoulsCommitted:   2,
			YellowCards:      1,
			RedCards:         1,
		},
	}

	got := Aggregate(blocks)

	if got.Appearances != 24 || got.Goals != 15 || got.Assists != 6 {
		t.Fatalf("unexpected sums: %+v", got)
	}
	if got.Minutes != 1990 || got.PassesTotal != 690 || got.PassesKey != 36 {
		t.Fatalf("unexpected passing sums: %+v", got)
	}
	if got.DribblesAttempts != 49 || got.DribblesSuccess != 31 {
		t.Fatalf("unexpected dribble sums: %+v", got)
	}
	if got.DuelsTotal != 138 || got.DuelsWon != 81 || got.TacklesTotal != 12 || got.Interceptions != 5 {
		t.Fatalf("unexpected defensive sums: %+v", got)
	}
	if got.FoulsDrawn != 27 || got.FoulsCommitted != 10 || got.YellowCards != 4 || got.RedCards != 1 {
		t.Fatalf("unexpected discipline sums: %+v", got)
	}
}

func TestAggregate_RatingAveragesOnlyReportedBlocks(t *testing.T) {
	t.Parallel()

	got := Aggregate([]CompetitionStats{
		{Rating: ratingPtr(7.5)},
		{}, // no rating reported for this competition
	})

	if got.Rating == nil {
		t.Fatal("expected rating, got nil")
	}
	if *got.Rating != 7.5 {
		t.Fatalf("rating = %v, want 7.5 (must not be diluted by ratingless blocks)", *got.Rating)
	}
}

func TestAggregate_RatingAveragesMultipleReportedBlocks(t *testing.T) {
	t.Parallel()

	got := Aggregate([]CompetitionStats{
		{Rating: ratingPtr(7.0)},
		{Rating: ratingPtr(8.0)},
		{},
	})

	if got.Rating == nil || *got.Rating != 7.5 {
		t.Fatalf("rating = %v, want 7.5", got.Rating)
	}
}

func TestAggregate_NoRatingAnywhereYieldsNil(t *testing.T) {
	t.Parallel()

	got := Aggregate([]CompetitionStats{{Goals: 2}, {Goals: 1}})
	if got.Rating != nil {
		t.Fatalf("rating = %v, want nil", *got.Rating)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	t.Parallel()

	got := Aggregate(nil)
	if got.Goals != 0 || got.Appearances != 0 || got.Rating != nil {
		t.Fatalf("unexpected aggregate for empty input: %+v", got)
	}
}

func TestCompare_MajorityWins(t *testing.T) {
	t.Parallel()

	first := AggregateStats{Goals: 10, Assists: 4, Appearances: 30, DribblesSuccess: 20, Rating: ratingPtr(7.1)}
	second := AggregateStats{Goals: 8, Assists: 6, Appearances: 28, DribblesSuccess: 25, Rating: ratingPtr(7.0)}

	got := Compare(first, second)

	if got.FirstWins != 3 || got.SecondWins != 2 {
		t.Fatalf("wins = %d/%d, want 3/2", got.FirstWins, got.SecondWins)
	}
	if got.Outcome != OutcomeFirst {
		t.Fatalf("outcome = %s, want %s", got.Outcome, OutcomeFirst)
	}
	if got.Metrics["assists"] != OutcomeSecond || got.Metrics["goals"] != OutcomeFirst {
		t.Fatalf("unexpected metric breakdown: %+v", got.Metrics)
	}
}

func TestCompare_TiesExcludedFromBothSides(t *testing.T) {
	t.Parallel()

	first := AggregateStats{Goals: 5, Assists: 3, Appearances: 20, DribblesSuccess: 10}
	second := AggregateStats{Goals: 5, Assists: 3, Appearances: 20, DribblesSuccess: 10}

	got := Compare(first, second)

	if got.FirstWins != 0 || got.SecondWins != 0 {
		t.Fatalf("wins = %d/%d, want 0/0", got.FirstWins, got.SecondWins)
	}
	if got.Outcome != OutcomeTie {
		t.Fatalf("outcome = %s, want %s", got.Outcome, OutcomeTie)
	}
	for name, winner := range got.Metrics {
		if winner != OutcomeTie {
			t.Fatalf("metric %s = %s, want %s", name, winner, OutcomeTie)
		}
	}
}

func TestCompare_MissingRatingComparesAsZero(t *testing.T) {
	t.Parallel()

	first := AggregateStats{Rating: ratingPtr(6.5)}
	second := AggregateStats{}

	got := Compare(first, second)
	if got.Metrics["rating"] != OutcomeFirst {
		t.Fatalf("rating metric = %s, want %s", got.Metrics["rating"], OutcomeFirst)
	}
}

func TestCompare_EqualWinCountsIsATie(t *testing.T) {
	t.Parallel()

	// first takes goals and dribbles, second takes assists and
	// appearances, rating ties.
	first := AggregateStats{Goals: 9, Assists: 2, Appearances: 18, DribblesSuccess: 30}
	second := AggregateStats{Goals: 4, Assists: 7, Appearances: 25, DribblesSuccess: 12}

	got := Compare(first, second)
	if got.FirstWins != 2 || got.SecondWins != 2 {
		t.Fatalf("wins = %d/%d, want 2/2", got.FirstWins, got.SecondWins)
	}
	if got.Outcome != OutcomeTie {
		t.Fatalf("outcome = %s, want %s", got.Outcome, OutcomeTie)
	}
}
