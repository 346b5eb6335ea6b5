package retrieval

import "regexp"

// Intent labels form a closed vocabulary. Classification is single-label:
// rules are checked in priority order and the first match wins.
const (
	IntentTeamComparison = "team_comparison"
	IntentBestMatch      = "best_match"
	IntentTopTeams       = "top_teams"
	IntentMatchAnalysis  = "match_analysis"
	IntentDefense        = "defensive_analysis"
	IntentAlliance       = "alliance_selection"
	IntentStrategy       = "strategy_recommendation"
	IntentGeneral        = "general_question"

	// Degraded markers set only by the Retriever, never by classification.
	IntentFallback = "fallback"
	IntentError    = "error"
)

type intentRule struct {
	label   string
	pattern *regexp.Regexp
}

// intentRules are checked in order; earlier rules win. best_match outranks
// top_teams so "team 254's best match" is not mistaken for a ranking query.
var intentRules = []intentRule{
	{IntentTeamComparison, regexp.MustCompile(`(?i)\b(?:compare[sd]?|comparing|comparison|versus|vs\.?|against|better)\b`)},
	{IntentBestMatch, regexp.MustCompile(`(?i)\b(?:best|strongest)\s+(?:match|game)\b`)},
	{IntentTopTeams, regexp.MustCompile(`(?i)\b(?:best|top|strongest|highest|most effective)\b`)},
	{IntentMatchAnalysis, regexp.MustCompile(`(?i)\b(?:match|qualification|quals?|elims?|playoffs?)\s+(?:\d+|results|outcomes?|scores?)\b`)},
	{IntentDefense, regexp.MustCompile(`(?i)\b(?:defense|defensive|block|blocking|counter)\b`)},
	{IntentAlliance, regexp.MustCompile(`(?i)\b(?:alliance|selection|pick|draft|partner)\b`)},
	{IntentStrategy, regexp.MustCompile(`(?i)\b(?:strategy|plan|approach|tactics?)\b`)},
}

// ClassifyIntent maps query text to a single intent label from the closed
// vocabulary, defaulting to general_question.
func ClassifyIntent(query string) string {
	for _, rule := range intentRules {
		if rule.pattern.MatchString(query) {
			return rule.label
		}
	}
	return IntentGeneral
}

// needsAllTeams reports whether an intent implies comparison or ranking
// across the whole field, requiring stats for every team.
func needsAllTeams(intent string) bool {
	switch intent {
	case IntentTeamComparison, IntentTopTeams, IntentDefense, IntentAlliance:
		return true
	}
	return false
}
