// Package gamedata holds static Reefscape reference material injected into
// assistant prompts.
package gamedata

import (
	"regexp"
	"strings"
)

const overviewSection = `REEFSCAPE is played by two alliances of three teams each. The objective is to score more points than the opposing alliance by collecting and scoring CORAL pieces, processing ALGAE, and CLIMBING at the end of the match.`

const scoringSection = `Points are awarded as follows:
- CORAL Level 1: 3 points in auto, 2 points in teleop
- CORAL Level 2: 4 points in auto, 3 points in teleop
- CORAL Level 3: 6 points in auto, 4 points in teleop
- CORAL Level 4: 7 points in auto, 5 points in teleop
- ALGAE in processor: 6 points
- ALGAE in net: 4 points
- ROBOT parked: 2 points
- ROBOT in shallow cage: 6 points
- ROBOT in deep cage: 12 points`

const matchPlaySection = `Matches consist of:
- 15-second autonomous period
- 2-minute and 15-second teleop period`

const fieldElementsSection = `The field contains:
- CORAL REEF: Four levels where CORAL pieces can be scored
- ALGAE PROCESSORS: Stations where ALGAE can be processed for 6 points
- ALGAE NETS: Areas where ALGAE can be deposited for 4 points
- CLIMBING ZONES: Areas where robots can climb at the end of the match`

const robotRequirementsSection = `Robot specifications:
- Maximum size: 120" perimeter, 45" height
- Maximum weight: 125 lbs (excluding bumpers and battery)
- Must have bumpers that follow FRC bumper rules`

type manualSection struct {
	text    string
	pattern *regexp.Regexp
}

var manualSections = []manualSection{
	{scoringSection, regexp.MustCompile(`(?i)\b(?:scor(?:e|ing)|points|coral|algae|climb(?:ing)?)\b`)},
	{matchPlaySection, regexp.MustCompile(`(?i)\b(?:match|auto(?:nomous)?|teleop|time)\b`)},
	{fieldElementsSection, regexp.MustCompile(`(?i)\b(?:field|reef|processor|net|zone|climb(?:ing)?)\b`)},
	{robotRequirementsSection, regexp.MustCompile(`(?i)\b(?:robot|spec(?:ification)?s|size|weight|bumper)\b`)},
}

// RelevantManualSections returns the manual sections that look relevant to
// the query, joined by blank lines. The overview is always included; the rest
// are keyword-gated so prompts stay small.
func RelevantManualSections(query string) string {
	sections := []string{overviewSection}
	for _, s := range manualSections {
		if s.pattern.MatchString(query) {
			sections = append(sections, s.text)
		}
	}
	return strings.Join(sections, "\n\n")
}
