package retrieval

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// RankedTeam is one row of a metric ranking. Stats carries the full aggregate
// for the prompt formatter but stays off the wire.
type RankedTeam struct {
	TeamNumber string          `json:"teamNumber"`
	Value      float64         `json:"value"`
	MatchCount int             `json:"matchCount"`
	Stats      *TeamStatistics `json:"-"`
}

// defaultRankLimit caps rankings when the caller does not ask for a size.
const defaultRankLimit = 10

// TopTeamsByMetric ranks teams by the value at a dotted metric path (for
// example "averageScore" or "recentTrend.percentage") in the JSON form of
// their statistics. Teams where the path is missing or non-numeric are
// excluded. Ties keep ascending team-number order, so repeated calls over the
// same data return identical rankings.
func TopTeamsByMetric(teams map[string]*TeamStatistics, metric string, limit int) []RankedTeam {
	if limit <= 0 {
		limit = defaultRankLimit
	}

	ranked := []RankedTeam{}
	for _, team := range SortedTeamNumbers(teams) {
		stats := teams[team]
		value, ok := metricValue(stats, metric)
		if !ok {
			continue
		}
		ranked = append(ranked, RankedTeam{
			TeamNumber: team,
			Value:      value,
			MatchCount: stats.MatchCount,
			Stats:      stats,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopOverallTeams ranks by average total score.
func TopOverallTeams(teams map[string]*TeamStatistics, limit int) []RankedTeam {
	return TopTeamsByMetric(teams, "averageScore", limit)
}

// TopCoralScoringTeams ranks by average coral pieces per match.
func TopCoralScoringTeams(teams map[string]*TeamStatistics, limit int) []RankedTeam {
	return TopTeamsByMetric(teams, "avgTotalCoral", limit)
}

// TopAlgaeScoringTeams ranks by average algae pieces per match.
func TopAlgaeScoringTeams(teams map[string]*TeamStatistics, limit int) []RankedTeam {
	return TopTeamsByMetric(teams, "avgTotalAlgae", limit)
}

// TopDefensiveTeams ranks by average defense rating, keeping only teams that
// actually played defense. A zero rating means "never played defense", not
// "worst defender", so those teams do not belong in the ranking at all.
func TopDefensiveTeams(teams map[string]*TeamStatistics, limit int) []RankedTeam {
	ranked := TopTeamsByMetric(teams, "defensiveRating", limit)
	filtered := ranked[:0]
	for _, r := range ranked {
		if r.Value > 0 {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SortedTeamNumbers returns map keys in ascending numeric order, with
// non-numeric labels after the numeric ones in lexical order.
func SortedTeamNumbers(teams map[string]*TeamStatistics) []string {
	keys := make([]string, 0, len(teams))
	for team := range teams {
		keys = append(keys, team)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// metricValue resolves a dotted path against the JSON form of the statistics
// and coerces the leaf to a float. Numeric strings count; anything else is
// excluded from rankings.
func metricValue(stats *TeamStatistics, metric string) (float64, bool) {
	data, err := json.Marshal(stats)
	if err != nil {
		return 0, false
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, false
	}

	var current any = doc
	for _, part := range strings.Split(metric, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return 0, false
		}
		current, ok = obj[part]
		if !ok {
			return 0, false
		}
	}
	return toFloat(current)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
