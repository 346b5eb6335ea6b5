package assistant

import (
	"fmt"
	"strings"

	"github.com/robowhales/reefscout/internal/gamedata"
	"github.com/robowhales/reefscout/internal/retrieval"
	"github.com/robowhales/reefscout/internal/scouting"
)

// BuildSystemPrompt renders retrieved data into the system prompt for the
// model. Pre-ranked sections go first so the model uses them verbatim instead
// of re-deriving rankings; per-team sections follow with the best match
// explicitly labeled.
func BuildSystemPrompt(query string, result *retrieval.Result) string {
	var b strings.Builder

	b.WriteString("You are an FRC (FIRST Robotics Competition) scouting assistant for Team 9032 (RoboWhales).\n")
	b.WriteString("You analyze match data for the 2025 game Reefscape.\n\n")

	b.WriteString("# GAME MANUAL INFORMATION\n")
	b.WriteString(gamedata.RelevantManualSections(query))
	b.WriteString("\n\n")

	b.WriteString("# SCOUTING DATA\n\n")
	writeDataSections(&b, query, result)

	b.WriteString("IMPORTANT INSTRUCTIONS:\n")
	b.WriteString("- ONLY reference and analyze teams that are specifically mentioned in the data provided. DO NOT mention or analyze teams that are not in this dataset.\n")
	b.WriteString("- When ranked data is provided (like \"Top Teams for X\"), maintain the exact same ranking order in your response. Do not reorder or recalculate rankings yourself.\n")
	b.WriteString("- When asked about a team's \"best game\" or \"best match\", ALWAYS reference the match explicitly labeled as [BEST MATCH] in the data.\n")
	b.WriteString("- When discussing defensive capabilities, prioritize average defense ratings, then maximum defense ratings.\n")
	b.WriteString("- When ranking teams, ALWAYS use averages rather than totals for fair comparison.\n")
	b.WriteString("- Double-check your numbers against the data provided to ensure accuracy.\n")
	b.WriteString("- If no data is available for a specific team or match, clearly state this limitation rather than making up information.\n")
	b.WriteString("- Keep your analysis concise but informative, focused on the question asked.\n")

	return b.String()
}

func writeDataSections(b *strings.Builder, query string, result *retrieval.Result) {
	qc := result.QueryContext

	switch qc.Intent {
	case retrieval.IntentFallback, retrieval.IntentError:
		fmt.Fprintf(b, "Scouting data could not be retrieved (%s). Tell the user the data is currently unavailable and suggest trying again later. Do not invent any numbers.\n\n", qc.Message)
		return
	}
	if qc.Note == retrieval.NoteNoData {
		b.WriteString("No scouting data matched this query. Tell the user no relevant data was found rather than inventing numbers.\n\n")
		return
	}

	queryLower := strings.ToLower(query)
	writeDefenseRanking(b, queryLower, result.Teams)
	writeCoralRanking(b, queryLower, result.Teams)
	writeAlgaeRanking(b, queryLower, result.Teams)
	writeTeamSections(b, result.Teams)
	writeMatchSections(b, result.Matches)
}

func writeDefenseRanking(b *strings.Builder, queryLower string, teams map[string]*retrieval.TeamStatistics) {
	if !strings.Contains(queryLower, "defens") {
		return
	}

	ranked := retrieval.TopDefensiveTeams(teams, 10)
	b.WriteString("### Top Defensive Teams (Ranked)\n\n")
	for i, team := range ranked {
		fmt.Fprintf(b, "%d. Team %s: Defense Rating %.1f/10 (%d defensive matches out of %d total)\n",
			i+1, team.TeamNumber, team.Value, team.Stats.DefenseMatchCount, team.Stats.MatchCount)
	}
	if len(ranked) == 0 {
		b.WriteString("No teams in the dataset have played defense in their matches.\n")
	}
	b.WriteString("\n")
}

func writeCoralRanking(b *strings.Builder, queryLower string, teams map[string]*retrieval.TeamStatistics) {
	mentionsLevel := strings.Contains(queryLower, "level 1") || strings.Contains(queryLower, "level 2") ||
		strings.Contains(queryLower, "level 3") || strings.Contains(queryLower, "level 4")
	if !strings.Contains(queryLower, "coral") && !mentionsLevel {
		return
	}

	level := 0
	switch {
	case strings.Contains(queryLower, "level 4"):
		level = 4
	case strings.Contains(queryLower, "level 3"):
		level = 3
	case strings.Contains(queryLower, "level 2"):
		level = 2
	case strings.Contains(queryLower, "level 1"):
		level = 1
	}

	if level > 0 {
		ranked := retrieval.TopTeamsByMetric(teams, fmt.Sprintf("avgCoralLevel%d", level), 10)
		fmt.Fprintf(b, "### Top Teams for Level %d Coral Scoring (Ranked)\n\n", level)
		for i, team := range ranked {
			fmt.Fprintf(b, "%d. Team %s: Avg. Level %d Coral: %.1f pieces (Total Coral: %.1f pieces per match)\n",
				i+1, team.TeamNumber, level, team.Value, team.Stats.AvgTotalCoral)
		}
	} else {
		ranked := retrieval.TopCoralScoringTeams(teams, 10)
		b.WriteString("### Top Teams for Overall Coral Scoring (Ranked)\n\n")
		for i, team := range ranked {
			fmt.Fprintf(b, "%d. Team %s: Avg. Total Coral: %.1f pieces per match\n", i+1, team.TeamNumber, team.Value)
			fmt.Fprintf(b, "   Level 1: %.1f, Level 2: %.1f, Level 3: %.1f, Level 4: %.1f\n",
				team.Stats.AvgCoralLevel1, team.Stats.AvgCoralLevel2, team.Stats.AvgCoralLevel3, team.Stats.AvgCoralLevel4)
		}
	}
	b.WriteString("\n")
}

func writeAlgaeRanking(b *strings.Builder, queryLower string, teams map[string]*retrieval.TeamStatistics) {
	if !strings.Contains(queryLower, "algae") && !strings.Contains(queryLower, "processor") &&
		!strings.Contains(queryLower, "net") {
		return
	}

	switch {
	case strings.Contains(queryLower, "processor"):
		ranked := retrieval.TopTeamsByMetric(teams, "avgAlgaeProcessor", 10)
		b.WriteString("### Top Teams for Algae Processor Scoring (Ranked)\n\n")
		for i, team := range ranked {
			fmt.Fprintf(b, "%d. Team %s: Avg. Algae Processor: %.1f pieces (Total Algae: %.1f pieces per match)\n",
				i+1, team.TeamNumber, team.Value, team.Stats.AvgTotalAlgae)
		}
	case strings.Contains(queryLower, "net"):
		ranked := retrieval.TopTeamsByMetric(teams, "avgAlgaeNet", 10)
		b.WriteString("### Top Teams for Algae Net Scoring (Ranked)\n\n")
		for i, team := range ranked {
			fmt.Fprintf(b, "%d. Team %s: Avg. Algae Net: %.1f pieces (Total Algae: %.1f pieces per match)\n",
				i+1, team.TeamNumber, team.Value, team.Stats.AvgTotalAlgae)
		}
	default:
		ranked := retrieval.TopAlgaeScoringTeams(teams, 10)
		b.WriteString("### Top Teams for Overall Algae Scoring (Ranked)\n\n")
		for i, team := range ranked {
			fmt.Fprintf(b, "%d. Team %s: Avg. Total Algae: %.1f pieces per match\n", i+1, team.TeamNumber, team.Value)
			fmt.Fprintf(b, "   Processor: %.1f, Net: %.1f\n", team.Stats.AvgAlgaeProcessor, team.Stats.AvgAlgaeNet)
		}
	}
	b.WriteString("\n")
}

func writeTeamSections(b *strings.Builder, teams map[string]*retrieval.TeamStatistics) {
	if len(teams) == 0 {
		return
	}

	b.WriteString("### Team Data\n\n")
	for _, teamNumber := range retrieval.SortedTeamNumbers(teams) {
		stats := teams[teamNumber]

		fmt.Fprintf(b, "#### Team %s\n", teamNumber)
		fmt.Fprintf(b, "- Average Score: %.1f points\n", stats.AverageScore)
		fmt.Fprintf(b, "- Average Auto: %.1f points\n", stats.AutoPerformance)
		fmt.Fprintf(b, "- Average Teleop: %.1f points\n", stats.TeleopPerformance)
		fmt.Fprintf(b, "- Average Endgame: %.1f points\n", stats.EndgamePerformance)
		if stats.DefenseMatchCount > 0 {
			fmt.Fprintf(b, "- Defense Rating: %.1f/10 (max %d, over %d matches)\n",
				stats.DefensiveRating, stats.MaxDefenseRating, stats.DefenseMatchCount)
		}
		fmt.Fprintf(b, "- Robot Speed Rating: %.1f/10\n", stats.RobotSpeedRating)
		fmt.Fprintf(b, "- Driver Skill Rating: %.1f/10\n", stats.DriverSkillRating)
		fmt.Fprintf(b, "- Climb Success Rate: %.1f%%\n", stats.ClimbSuccess*100)

		b.WriteString("\n##### Game Piece Scoring:\n")
		fmt.Fprintf(b, "- Avg. Coral Pieces: %.1f per match\n", stats.AvgTotalCoral)
		fmt.Fprintf(b, "  - Level 1: %.1f\n", stats.AvgCoralLevel1)
		fmt.Fprintf(b, "  - Level 2: %.1f\n", stats.AvgCoralLevel2)
		fmt.Fprintf(b, "  - Level 3: %.1f\n", stats.AvgCoralLevel3)
		fmt.Fprintf(b, "  - Level 4: %.1f\n", stats.AvgCoralLevel4)
		fmt.Fprintf(b, "- Avg. Algae Pieces: %.1f per match\n", stats.AvgTotalAlgae)
		fmt.Fprintf(b, "  - Processor: %.1f\n", stats.AvgAlgaeProcessor)
		fmt.Fprintf(b, "  - Net: %.1f\n", stats.AvgAlgaeNet)
		fmt.Fprintf(b, "- Match Count: %d\n\n", stats.MatchCount)

		if stats.RecentTrend != nil {
			fmt.Fprintf(b, "- Recent Trend: %s (%.1f%% vs earlier matches)\n\n",
				stats.RecentTrend.Direction, stats.RecentTrend.Percentage)
		}

		if stats.BestMatch != nil {
			best := stats.BestMatch
			fmt.Fprintf(b, "##### BEST MATCH FOR TEAM %s:\n", teamNumber)
			fmt.Fprintf(b, "- Match %s: %d total points\n", best.MatchInfo.MatchNumber, best.Scores.TotalPoints)
			fmt.Fprintf(b, "  - Auto: %d, Teleop: %d, Endgame: %d\n\n",
				best.Scores.AutoPoints, best.Scores.TeleopPoints, best.Scores.BargePoints)
		}

		if len(stats.Matches) > 0 {
			b.WriteString("##### All Match Scores:\n")
			for i := range stats.Matches {
				writeMatchLine(b, &stats.Matches[i], stats.BestMatch)
			}
			b.WriteString("\n")
		}
	}

	writeBestMatchSummary(b, teams)
}

func writeMatchLine(b *strings.Builder, m, best *scouting.MatchRecord) {
	marker := ""
	if best != nil && m.MatchInfo.MatchNumber == best.MatchInfo.MatchNumber {
		marker = " [BEST MATCH]"
	}

	fmt.Fprintf(b, "- Match %s%s: %d total points (Auto: %d, Teleop: %d, Endgame: %d)",
		m.MatchInfo.MatchNumber, marker,
		m.Scores.TotalPoints, m.Scores.AutoPoints, m.Scores.TeleopPoints, m.Scores.BargePoints)
	if m.Additional.DefenseRating > 0 {
		fmt.Fprintf(b, ", Defense: %d/10", m.Additional.DefenseRating)
	}
	if m.Additional.RobotSpeed > 0 {
		fmt.Fprintf(b, ", Speed: %d/10", m.Additional.RobotSpeed)
	}
	if m.Additional.DriverSkill > 0 {
		fmt.Fprintf(b, ", Driver: %d/10", m.Additional.DriverSkill)
	}
	b.WriteString("\n")

	var scored []string
	for level, count := range []int{m.Teleop.CoralLevel1, m.Teleop.CoralLevel2, m.Teleop.CoralLevel3, m.Teleop.CoralLevel4} {
		if count > 0 {
			scored = append(scored, fmt.Sprintf("%d coral in Level %d", count, level+1))
		}
	}
	if m.Teleop.AlgaeProcessor > 0 {
		scored = append(scored, fmt.Sprintf("%d algae in Processor", m.Teleop.AlgaeProcessor))
	}
	if m.Teleop.AlgaeNet > 0 {
		scored = append(scored, fmt.Sprintf("%d algae in Net", m.Teleop.AlgaeNet))
	}
	if len(scored) > 0 {
		fmt.Fprintf(b, "  - Scored: %s\n", strings.Join(scored, ", "))
	}

	if m.Additional.Notes != "" {
		fmt.Fprintf(b, "  - Notes: %s\n", m.Additional.Notes)
	}
}

func writeBestMatchSummary(b *strings.Builder, teams map[string]*retrieval.TeamStatistics) {
	teamNumbers := retrieval.SortedTeamNumbers(teams)

	any := false
	for _, teamNumber := range teamNumbers {
		if teams[teamNumber].BestMatch != nil {
			any = true
			break
		}
	}
	if !any {
		return
	}

	b.WriteString("### SUMMARY OF BEST MATCHES:\n\n")
	for _, teamNumber := range teamNumbers {
		best := teams[teamNumber].BestMatch
		if best == nil {
			continue
		}
		fmt.Fprintf(b, "- Team %s's best match: Match %s with %d points\n",
			teamNumber, best.MatchInfo.MatchNumber, best.Scores.TotalPoints)
	}
	b.WriteString("\n")
}

func writeMatchSections(b *strings.Builder, matches []scouting.MatchRecord) {
	if len(matches) == 0 {
		return
	}

	b.WriteString("### Requested Match Records\n\n")
	for i := range matches {
		m := &matches[i]
		fmt.Fprintf(b, "- Match %s, Team %s (%s alliance): %d total points (Auto: %d, Teleop: %d, Endgame: %d)\n",
			m.MatchInfo.MatchNumber, m.MatchInfo.TeamNumber, m.MatchInfo.Alliance,
			m.Scores.TotalPoints, m.Scores.AutoPoints, m.Scores.TeleopPoints, m.Scores.BargePoints)
		if m.Additional.Notes != "" {
			fmt.Fprintf(b, "  - Notes: %s\n", m.Additional.Notes)
		}
	}
	b.WriteString("\n")
}
