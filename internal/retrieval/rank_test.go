package retrieval

import "testing"

func statsFixture() map[string]*TeamStatistics {
	return map[string]*TeamStatistics{
		"254":  {TeamNumber: "254", MatchCount: 3, AverageScore: 80, DefensiveRating: 0, AvgTotalCoral: 12},
		"1678": {TeamNumber: "1678", MatchCount: 3, AverageScore: 95, DefensiveRating: 6.5, AvgTotalCoral: 14},
		"118":  {TeamNumber: "118", MatchCount: 2, AverageScore: 60, DefensiveRating: 8, AvgTotalCoral: 9},
		"973":  {TeamNumber: "973", MatchCount: 4, AverageScore: 60, DefensiveRating: 3, AvgTotalCoral: 7},
	}
}

func TestTopTeamsByMetric(t *testing.T) {
	ranked := TopTeamsByMetric(statsFixture(), "averageScore", 3)

	if len(ranked) != 3 {
		t.Fatalf("len(ranked) = %d, want 3", len(ranked))
	}
	if ranked[0].TeamNumber != "1678" || ranked[0].Value != 95 {
		t.Errorf("ranked[0] = %s/%v, want 1678/95", ranked[0].TeamNumber, ranked[0].Value)
	}
	if ranked[1].TeamNumber != "254" {
		t.Errorf("ranked[1] = %s, want 254", ranked[1].TeamNumber)
	}
	// 118 and 973 tie at 60; the lower team number ranks first, and only one
	// fits under the limit.
	if ranked[2].TeamNumber != "118" {
		t.Errorf("ranked[2] = %s, want 118", ranked[2].TeamNumber)
	}
	if ranked[0].MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", ranked[0].MatchCount)
	}
}

func TestTopTeamsByMetricDescending(t *testing.T) {
	ranked := TopTeamsByMetric(statsFixture(), "avgTotalCoral", 0)
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Value > ranked[i-1].Value {
			t.Fatalf("ranking not descending at %d: %v", i, ranked)
		}
	}
}

func TestTopTeamsByMetricExcludesMissingPath(t *testing.T) {
	teams := statsFixture()
	teams["973"].RecentTrend = &Trend{Direction: TrendImproving, Percentage: 25}

	ranked := TopTeamsByMetric(teams, "recentTrend.percentage", 10)
	if len(ranked) != 1 {
		t.Fatalf("len(ranked) = %d, want 1 (teams without a trend excluded)", len(ranked))
	}
	if ranked[0].TeamNumber != "973" || ranked[0].Value != 25 {
		t.Errorf("ranked[0] = %s/%v, want 973/25", ranked[0].TeamNumber, ranked[0].Value)
	}
}

func TestTopTeamsByMetricNonNumericLeaf(t *testing.T) {
	teams := statsFixture()
	teams["973"].RecentTrend = &Trend{Direction: TrendImproving}

	if ranked := TopTeamsByMetric(teams, "recentTrend.direction", 10); len(ranked) != 0 {
		t.Errorf("len(ranked) = %d, want 0 for non-numeric leaf", len(ranked))
	}
}

func TestTopTeamsByMetricNumericStringLeaf(t *testing.T) {
	// Team numbers are numeric strings and still rank.
	ranked := TopTeamsByMetric(statsFixture(), "teamNumber", 2)
	if len(ranked) != 2 {
		t.Fatalf("len(ranked) = %d, want 2", len(ranked))
	}
	if ranked[0].TeamNumber != "1678" {
		t.Errorf("ranked[0] = %s, want 1678", ranked[0].TeamNumber)
	}
}

func TestTopTeamsByMetricDefaultLimit(t *testing.T) {
	teams := make(map[string]*TeamStatistics)
	for i := 0; i < 15; i++ {
		team := &TeamStatistics{TeamNumber: string(rune('a' + i)), AverageScore: float64(i)}
		teams[team.TeamNumber] = team
	}
	if ranked := TopTeamsByMetric(teams, "averageScore", 0); len(ranked) != defaultRankLimit {
		t.Errorf("len(ranked) = %d, want %d", len(ranked), defaultRankLimit)
	}
}

func TestTopDefensiveTeams(t *testing.T) {
	ranked := TopDefensiveTeams(statsFixture(), 10)

	// Team 254 never played defense and must not appear at all.
	if len(ranked) != 3 {
		t.Fatalf("len(ranked) = %d, want 3", len(ranked))
	}
	want := []string{"118", "1678", "973"}
	for i, team := range want {
		if ranked[i].TeamNumber != team {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].TeamNumber, team)
		}
	}
}

func TestSpecializedRankings(t *testing.T) {
	teams := statsFixture()

	if top := TopOverallTeams(teams, 1); top[0].TeamNumber != "1678" {
		t.Errorf("TopOverallTeams[0] = %s, want 1678", top[0].TeamNumber)
	}
	if top := TopCoralScoringTeams(teams, 1); top[0].TeamNumber != "1678" {
		t.Errorf("TopCoralScoringTeams[0] = %s, want 1678", top[0].TeamNumber)
	}

	algae := map[string]*TeamStatistics{
		"33": {TeamNumber: "33", AvgTotalAlgae: 5},
		"16": {TeamNumber: "16", AvgTotalAlgae: 2},
	}
	if top := TopAlgaeScoringTeams(algae, 5); top[0].TeamNumber != "33" {
		t.Errorf("TopAlgaeScoringTeams[0] = %s, want 33", top[0].TeamNumber)
	}
}

func TestTopTeamsByMetricEmpty(t *testing.T) {
	if ranked := TopTeamsByMetric(map[string]*TeamStatistics{}, "averageScore", 5); len(ranked) != 0 {
		t.Errorf("len(ranked) = %d, want 0", len(ranked))
	}
}
