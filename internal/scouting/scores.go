package scouting

// Reefscape point values. Coral is worth more in auto than teleop; algae and
// endgame values are phase-independent.
var (
	coralAutoPoints   = [4]int{3, 4, 6, 7}
	coralTeleopPoints = [4]int{2, 3, 4, 5}
)

const (
	algaeProcessorPoints = 6
	algaeNetPoints       = 4
	mobilityPoints       = 3
	parkPoints           = 2
	shallowClimbPoints   = 6
	deepClimbPoints      = 12
)

// ComputeScores derives the point totals for a record from its raw counts
// using the Reefscape point table. Called once at submission time; the stored
// scores are authoritative from then on.
func ComputeScores(rec *MatchRecord) Scores {
	auto := phasePoints(rec.Autonomous, true)
	teleop := phasePoints(rec.Teleop, false)
	barge := bargePoints(rec.Endgame)

	return Scores{
		AutoPoints:   auto,
		TeleopPoints: teleop,
		BargePoints:  barge,
		TotalPoints:  auto + teleop + barge,
	}
}

func phasePoints(p PhaseCount, isAuto bool) int {
	table := coralTeleopPoints
	if isAuto {
		table = coralAutoPoints
	}

	points := p.CoralLevel1*table[0] +
		p.CoralLevel2*table[1] +
		p.CoralLevel3*table[2] +
		p.CoralLevel4*table[3] +
		p.AlgaeProcessor*algaeProcessorPoints +
		p.AlgaeNet*algaeNetPoints

	if isAuto && p.Mobility {
		points += mobilityPoints
	}
	return points
}

func bargePoints(e Endgame) int {
	points := 0
	if e.RobotParked {
		points += parkPoints
	}
	if e.ShallowCageClimb {
		points += shallowClimbPoints
	}
	if e.DeepCageClimb {
		points += deepClimbPoints
	}
	return points
}
