package retrieval

import (
	"math"
	"testing"

	"github.com/robowhales/reefscout/internal/scouting"
)

// testRecord builds a minimal record with a given total score. Extra shaping
// happens at the call site.
func testRecord(team, match string, total int) scouting.MatchRecord {
	return scouting.MatchRecord{
		MatchInfo: scouting.MatchInfo{TeamNumber: team, MatchNumber: match},
		Scores:    scouting.Scores{TotalPoints: total},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateTeam(t *testing.T) {
	records := []scouting.MatchRecord{
		testRecord("254", "1", 30),
		testRecord("254", "2", 70),
		testRecord("254", "3", 50),
	}
	records[0].Scores.AutoPoints = 10
	records[1].Scores.AutoPoints = 20
	records[2].Scores.AutoPoints = 15
	records[0].Autonomous = scouting.PhaseCount{Mobility: true, CoralLevel4: 2}
	records[0].Teleop = scouting.PhaseCount{CoralLevel4: 4, AlgaeNet: 1}
	records[1].Endgame = scouting.Endgame{DeepCageClimb: true}
	records[2].Endgame = scouting.Endgame{RobotParked: true}
	records[1].Additional = scouting.Additional{PlayedDefense: true, DefenseRating: 7, RobotSpeed: 8, DriverSkill: 9}

	stats := AggregateTeam("254", records)

	if stats.TeamNumber != "254" {
		t.Errorf("TeamNumber = %q, want 254", stats.TeamNumber)
	}
	if stats.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", stats.MatchCount)
	}
	if !almostEqual(stats.AverageScore, 50) {
		t.Errorf("AverageScore = %v, want 50", stats.AverageScore)
	}
	if !almostEqual(stats.AutoPerformance, 15) {
		t.Errorf("AutoPerformance = %v, want 15", stats.AutoPerformance)
	}
	if stats.BestMatch == nil || stats.BestMatch.MatchInfo.MatchNumber != "2" {
		t.Errorf("BestMatch = %+v, want match 2", stats.BestMatch)
	}

	// Defense averages only over the one match where defense was played.
	if !almostEqual(stats.DefensiveRating, 7) {
		t.Errorf("DefensiveRating = %v, want 7", stats.DefensiveRating)
	}
	if stats.DefenseMatchCount != 1 {
		t.Errorf("DefenseMatchCount = %d, want 1", stats.DefenseMatchCount)
	}
	if stats.MaxDefenseRating != 7 {
		t.Errorf("MaxDefenseRating = %d, want 7", stats.MaxDefenseRating)
	}

	// Park counts as an attempt but not a success.
	if stats.ClimbAttempts != 2 {
		t.Errorf("ClimbAttempts = %d, want 2", stats.ClimbAttempts)
	}
	if stats.ClimbSuccesses != 1 {
		t.Errorf("ClimbSuccesses = %d, want 1", stats.ClimbSuccesses)
	}
	if !almostEqual(stats.ClimbSuccess, 1.0/3.0) {
		t.Errorf("ClimbSuccess = %v, want 1/3", stats.ClimbSuccess)
	}

	if !almostEqual(stats.MobilityRate, 1.0/3.0) {
		t.Errorf("MobilityRate = %v, want 1/3", stats.MobilityRate)
	}
	if !almostEqual(stats.AvgCoralLevel4, 2) {
		t.Errorf("AvgCoralLevel4 = %v, want 2", stats.AvgCoralLevel4)
	}
	if !almostEqual(stats.AvgTotalCoral, 2) {
		t.Errorf("AvgTotalCoral = %v, want 2", stats.AvgTotalCoral)
	}
	if !almostEqual(stats.AvgAlgaeNet, 1.0/3.0) {
		t.Errorf("AvgAlgaeNet = %v, want 1/3", stats.AvgAlgaeNet)
	}

	// Three matches is not enough history for a trend.
	if stats.RecentTrend != nil {
		t.Errorf("RecentTrend = %+v, want nil", stats.RecentTrend)
	}
}

func TestAggregateTeamEmpty(t *testing.T) {
	stats := AggregateTeam("999", nil)
	if stats.MatchCount != 0 {
		t.Errorf("MatchCount = %d, want 0", stats.MatchCount)
	}
	if stats.Matches == nil {
		t.Error("Matches is nil, want empty slice")
	}
	if stats.BestMatch != nil || stats.RecentTrend != nil {
		t.Error("expected no best match or trend for empty input")
	}
	if stats.AverageScore != 0 || stats.ClimbSuccess != 0 {
		t.Error("expected zero rates for empty input")
	}
}

func TestAggregateTeamSortsChronologically(t *testing.T) {
	records := []scouting.MatchRecord{
		testRecord("118", "10", 40),
		testRecord("118", "2", 20),
		testRecord("118", "7", 30),
	}

	stats := AggregateTeam("118", records)

	got := []string{}
	for _, m := range stats.Matches {
		got = append(got, m.MatchInfo.MatchNumber)
	}
	want := []string{"2", "7", "10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match order = %v, want %v", got, want)
		}
	}
}

func TestBestMatchTieKeepsEarliest(t *testing.T) {
	records := []scouting.MatchRecord{
		testRecord("148", "3", 60),
		testRecord("148", "1", 60),
	}
	stats := AggregateTeam("148", records)
	if stats.BestMatch.MatchInfo.MatchNumber != "1" {
		t.Errorf("BestMatch = match %s, want match 1", stats.BestMatch.MatchInfo.MatchNumber)
	}
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name       string
		totals     []int
		direction  string
		percentage float64
	}{
		{"improving", []int{20, 40, 40, 40}, TrendImproving, 100},
		{"declining", []int{100, 40, 40, 70}, TrendDeclining, -50},
		{"stable", []int{50, 50, 50, 50}, TrendStable, 0},
		{"zero prior average", []int{0, 10, 10, 10}, TrendImproving, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []scouting.MatchRecord
			for i, total := range tt.totals {
				records = append(records, testRecord("254", string(rune('1'+i)), total))
			}
			stats := AggregateTeam("254", records)
			if stats.RecentTrend == nil {
				t.Fatal("RecentTrend is nil, want a trend")
			}
			if stats.RecentTrend.Direction != tt.direction {
				t.Errorf("Direction = %q, want %q", stats.RecentTrend.Direction, tt.direction)
			}
			if !almostEqual(stats.RecentTrend.Percentage, tt.percentage) {
				t.Errorf("Percentage = %v, want %v", stats.RecentTrend.Percentage, tt.percentage)
			}
		})
	}
}

func TestComputeTrendNeedsHistory(t *testing.T) {
	records := []scouting.MatchRecord{
		testRecord("254", "1", 10),
		testRecord("254", "2", 20),
		testRecord("254", "3", 30),
	}
	if stats := AggregateTeam("254", records); stats.RecentTrend != nil {
		t.Errorf("RecentTrend = %+v, want nil with only 3 matches", stats.RecentTrend)
	}
}

func TestAggregateAll(t *testing.T) {
	records := []scouting.MatchRecord{
		testRecord("254", "1", 10),
		testRecord("1678", "1", 20),
		testRecord("254", "2", 30),
	}

	teams := AggregateAll(records)
	if len(teams) != 2 {
		t.Fatalf("len(teams) = %d, want 2", len(teams))
	}
	if teams["254"].MatchCount != 2 {
		t.Errorf("team 254 MatchCount = %d, want 2", teams["254"].MatchCount)
	}
	if teams["1678"].MatchCount != 1 {
		t.Errorf("team 1678 MatchCount = %d, want 1", teams["1678"].MatchCount)
	}
}
