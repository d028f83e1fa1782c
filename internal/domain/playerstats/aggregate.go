package playerstats

// Comparison outcomes for the head-to-head verdict.
const (
	OutcomeFirst  = "FIRST"
	OutcomeSecond = "SECOND"
	OutcomeTie    = "TIE"
)

// Comparison is the result of comparing two aggregated players over the
// five head-to-head metrics.
type Comparison struct {
	FirstWins  int
	SecondWins int
	Outcome    string
	// Metrics maps metric name to the side that won it (TIE when equal).
	Metrics map[string]string
}

// Aggregate merges a player's per-competition blocks into one summary.
// Counting stats are plain sums; the rating is averaged only over the
// blocks that reported one.
func Aggregate(blocks []CompetitionStats) AggregateStats {
	var out AggregateStats
	ratingSum := 0.0
	ratingCount := 0

	for _, block := range blocks {
		out.Appearances += block.Appearances
		out.Minutes += block.Minutes
		out.Goals += block.Goals
		out.Assists += block.Assists
		out.PassesTotal += block.PassesTotal
		out.PassesKey += block.PassesKey
		out.DribblesAttempts += block.DribblesAttempts
		out.DribblesSuccess += block.DribblesSuccess
		out.TacklesTotal += block.TacklesTotal
		out.Interceptions += block.Interceptions
		out.DuelsTotal += block.DuelsTotal
		out.DuelsWon += block.DuelsWon
		out.FoulsDrawn += block.FoulsDrawn
		out.FoulsCommitted += block.FoulsCommitted
		out.YellowCards += block.YellowCards
		out.RedCards += block.RedCards

		if block.Rating != nil {
			ratingSum += *block.Rating
			ratingCount++
		}
	}

	if ratingCount > 0 {
		avg := ratingSum / float64(ratingCount)
		out.Rating = &avg
	}
	return out
}

// Compare runs the five-metric head-to-head verdict: goals, assists,
// appearances, rating and successful dribbles, compared pairwise with
// strict >. Ties count for neither side; the overall winner needs a
// strict majority of metric wins.
func Compare(first, second AggregateStats) Comparison {
	metrics := []struct {
		name   string
		first  float64
		second float64
	}{
		{"goals", float64(first.Goals), float64(second.Goals)},
		{"assists", float64(first.Assists), float64(second.Assists)},
		{"appearances", float64(first.Appearances), float64(second.Appearances)},
		{"rating", ratingValue(first.Rating), ratingValue(second.Rating)},
		{"dribbles_success", float64(first.DribblesSuccess), float64(second.DribblesSuccess)},
	}

	out := Comparison{Metrics: make(map[string]string, len(metrics))}
	for _, metric := range metrics {
		switch {
		case metric.first > metric.second:
			out.FirstWins++
			out.Metrics[metric.name] = OutcomeFirst
		case metric.second > metric.first:
			out.SecondWins++
			out.Metrics[metric.name] = OutcomeSecond
		default:
			out.Metrics[metric.name] = OutcomeTie
		}
	}

	switch {
	case out.FirstWins > out.SecondWins:
		out.Outcome = OutcomeFirst
	case out.SecondWins > out.FirstWins:
		out.Outcome = OutcomeSecond
	default:
		out.Outcome = OutcomeTie
	}
	return out
}

// A missing rating compares as 0, matching how the comparison feature
// treats players without a reported rating.
func ratingValue(rating *float64) float64 {
	if rating == nil {
		return 0
	}
	return *rating
}
