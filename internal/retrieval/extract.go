package retrieval

import "regexp"

// Team numbers are any standalone run of 1-4 digits. This also matches
// years and scores mentioned in prose; callers are expected to tolerate
// the false positives.
var teamNumberRe = regexp.MustCompile(`\b\d{1,4}\b`)

// Match numbers must be introduced by a match-reference word; bare numbers
// are never treated as match numbers.
var matchNumberRe = regexp.MustCompile(`(?i)\b(?:match|qualification|qual|elim|elimination|finals?)\s*#?\s*(\d+)\b`)

// ExtractTeamNumbers returns the deduplicated team-number-like tokens in the
// query, in order of first appearance.
func ExtractTeamNumbers(text string) []string {
	return dedupe(teamNumberRe.FindAllString(text, -1))
}

// ExtractMatchNumbers returns the deduplicated match numbers referenced in
// the query, in order of first appearance.
func ExtractMatchNumbers(text string) []string {
	var numbers []string
	for _, m := range matchNumberRe.FindAllStringSubmatch(text, -1) {
		numbers = append(numbers, m[1])
	}
	return dedupe(numbers)
}

func dedupe(tokens []string) []string {
	result := []string{}
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		result = append(result, tok)
	}
	return result
}
