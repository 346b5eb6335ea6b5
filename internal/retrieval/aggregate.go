package retrieval

import (
	"github.com/robowhales/reefscout/internal/scouting"
)

// TeamStatistics is the per-team aggregate handed to the prompt formatter and
// the rankings endpoint. Field names are part of the wire contract.
type TeamStatistics struct {
	TeamNumber string `json:"teamNumber"`
	MatchCount int    `json:"matchCount"`

	AverageScore       float64 `json:"averageScore"`
	AutoPerformance    float64 `json:"autoPerformance"`
	TeleopPerformance  float64 `json:"teleopPerformance"`
	EndgamePerformance float64 `json:"endgamePerformance"`

	ClimbAttempts  int     `json:"climbAttempts"`
	ClimbSuccesses int     `json:"climbSuccesses"`
	ClimbSuccess   float64 `json:"climbSuccess"`
	MobilityRate   float64 `json:"mobilityRate"`

	DefensiveRating   float64 `json:"defensiveRating"`
	MaxDefenseRating  int     `json:"maxDefenseRating"`
	DefenseMatchCount int     `json:"defenseMatchCount"`
	RobotSpeedRating  float64 `json:"robotSpeedRating"`
	DriverSkillRating float64 `json:"driverSkillRating"`

	AvgCoralLevel1    float64 `json:"avgCoralLevel1"`
	AvgCoralLevel2    float64 `json:"avgCoralLevel2"`
	AvgCoralLevel3    float64 `json:"avgCoralLevel3"`
	AvgCoralLevel4    float64 `json:"avgCoralLevel4"`
	AvgTotalCoral     float64 `json:"avgTotalCoral"`
	AvgAlgaeProcessor float64 `json:"avgAlgaeProcessor"`
	AvgAlgaeNet       float64 `json:"avgAlgaeNet"`
	AvgTotalAlgae     float64 `json:"avgTotalAlgae"`

	Matches     []scouting.MatchRecord `json:"matches"`
	BestMatch   *scouting.MatchRecord  `json:"bestMatch,omitempty"`
	RecentTrend *Trend                 `json:"recentTrend,omitempty"`
}

// Trend compares a team's last three matches against everything before them.
type Trend struct {
	Direction  string  `json:"direction"`
	Percentage float64 `json:"percentage"`
}

// Trend directions.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// trendWindow is how many recent matches form the "recent" side of the trend
// comparison. A trend needs at least one earlier match beyond the window.
const trendWindow = 3

// AggregateTeam folds a team's match records into a TeamStatistics. The input
// slice is not modified; records are re-sorted chronologically so positional
// computations (best match ties, recent trend) are deterministic regardless of
// input order.
func AggregateTeam(teamNumber string, records []scouting.MatchRecord) *TeamStatistics {
	stats := &TeamStatistics{
		TeamNumber: teamNumber,
		MatchCount: len(records),
		Matches:    []scouting.MatchRecord{},
	}
	if len(records) == 0 {
		return stats
	}

	matches := make([]scouting.MatchRecord, len(records))
	copy(matches, records)
	scouting.SortByMatchNumber(matches)
	stats.Matches = matches

	var (
		totalScore, autoScore, teleopScore, bargeScore int
		coral1, coral2, coral3, coral4                 int
		algaeProcessor, algaeNet                       int
		defenseSum, speedSum, skillSum                 int
		mobilityCount                                  int
	)

	for i := range matches {
		m := &matches[i]

		totalScore += m.Scores.TotalPoints
		autoScore += m.Scores.AutoPoints
		teleopScore += m.Scores.TeleopPoints
		bargeScore += m.Scores.BargePoints

		coral1 += m.Autonomous.CoralLevel1 + m.Teleop.CoralLevel1
		coral2 += m.Autonomous.CoralLevel2 + m.Teleop.CoralLevel2
		coral3 += m.Autonomous.CoralLevel3 + m.Teleop.CoralLevel3
		coral4 += m.Autonomous.CoralLevel4 + m.Teleop.CoralLevel4
		algaeProcessor += m.Autonomous.AlgaeProcessor + m.Teleop.AlgaeProcessor
		algaeNet += m.Autonomous.AlgaeNet + m.Teleop.AlgaeNet

		if m.Autonomous.Mobility {
			mobilityCount++
		}

		if m.Endgame.RobotParked || m.Endgame.ShallowCageClimb || m.Endgame.DeepCageClimb {
			stats.ClimbAttempts++
		}
		if m.Endgame.ShallowCageClimb || m.Endgame.DeepCageClimb {
			stats.ClimbSuccesses++
		}

		if m.Additional.PlayedDefense {
			stats.DefenseMatchCount++
			defenseSum += m.Additional.DefenseRating
			if m.Additional.DefenseRating > stats.MaxDefenseRating {
				stats.MaxDefenseRating = m.Additional.DefenseRating
			}
		}
		speedSum += m.Additional.RobotSpeed
		skillSum += m.Additional.DriverSkill

		// Strictly-greater keeps the earliest match on ties.
		if stats.BestMatch == nil || m.Scores.TotalPoints > stats.BestMatch.Scores.TotalPoints {
			stats.BestMatch = m
		}
	}

	n := float64(len(matches))
	stats.AverageScore = float64(totalScore) / n
	stats.AutoPerformance = float64(autoScore) / n
	stats.TeleopPerformance = float64(teleopScore) / n
	stats.EndgamePerformance = float64(bargeScore) / n
	stats.ClimbSuccess = float64(stats.ClimbSuccesses) / n
	stats.MobilityRate = float64(mobilityCount) / n
	stats.RobotSpeedRating = float64(speedSum) / n
	stats.DriverSkillRating = float64(skillSum) / n

	// Defense averages only over matches where defense was actually played, so
	// a team that played strong defense once is not diluted by its other
	// matches.
	if stats.DefenseMatchCount > 0 {
		stats.DefensiveRating = float64(defenseSum) / float64(stats.DefenseMatchCount)
	}

	stats.AvgCoralLevel1 = float64(coral1) / n
	stats.AvgCoralLevel2 = float64(coral2) / n
	stats.AvgCoralLevel3 = float64(coral3) / n
	stats.AvgCoralLevel4 = float64(coral4) / n
	stats.AvgTotalCoral = float64(coral1+coral2+coral3+coral4) / n
	stats.AvgAlgaeProcessor = float64(algaeProcessor) / n
	stats.AvgAlgaeNet = float64(algaeNet) / n
	stats.AvgTotalAlgae = float64(algaeProcessor+algaeNet) / n

	stats.RecentTrend = computeTrend(matches)
	return stats
}

// AggregateAll groups records by team number and aggregates each group.
func AggregateAll(records []scouting.MatchRecord) map[string]*TeamStatistics {
	byTeam := make(map[string][]scouting.MatchRecord)
	for _, rec := range records {
		team := rec.MatchInfo.TeamNumber
		byTeam[team] = append(byTeam[team], rec)
	}

	teams := make(map[string]*TeamStatistics, len(byTeam))
	for team, group := range byTeam {
		teams[team] = AggregateTeam(team, group)
	}
	return teams
}

// computeTrend compares the average total score of the last trendWindow
// matches against the average of all earlier matches. Returns nil when there
// are not enough matches for both sides of the comparison.
func computeTrend(matches []scouting.MatchRecord) *Trend {
	if len(matches) <= trendWindow {
		return nil
	}

	split := len(matches) - trendWindow
	priorAvg := averageTotal(matches[:split])
	recentAvg := averageTotal(matches[split:])

	trend := &Trend{Direction: TrendStable}
	switch {
	case recentAvg > priorAvg:
		trend.Direction = TrendImproving
	case recentAvg < priorAvg:
		trend.Direction = TrendDeclining
	}
	if priorAvg > 0 {
		trend.Percentage = (recentAvg - priorAvg) / priorAvg * 100
	}
	return trend
}

func averageTotal(matches []scouting.MatchRecord) float64 {
	if len(matches) == 0 {
		return 0
	}
	total := 0
	for _, m := range matches {
		total += m.Scores.TotalPoints
	}
	return float64(total) / float64(len(matches))
}
