package scouting

// MatchRecord is one scout's observation of one team's performance in one
// match. The JSON field names are a wire contract shared with the form client
// and the prompt formatter; do not rename them.
type MatchRecord struct {
	ID         string     `json:"id,omitempty"`
	MatchInfo  MatchInfo  `json:"matchInfo"`
	Autonomous PhaseCount `json:"autonomous"`
	Teleop     PhaseCount `json:"teleop"`
	Endgame    Endgame    `json:"endgame"`
	Additional Additional `json:"additional"`
	Scores     Scores     `json:"scores"`
	Timestamp  string     `json:"timestamp,omitempty"`
}

// MatchInfo identifies the match and the observed team. Team and match
// numbers are strings on purpose: the form client stores them as strings to
// avoid numeric-precision surprises, and equality filters compare labels,
// not numbers.
type MatchInfo struct {
	MatchNumber     string `json:"matchNumber"`
	TeamNumber      string `json:"teamNumber"`
	Alliance        string `json:"alliance"`
	ScouterInitials string `json:"scouterInitials"`
}

// Alliance values.
const (
	AllianceRed  = "red"
	AllianceBlue = "blue"
)

// PhaseCount holds per-phase scoring action counts. Mobility only applies to
// the autonomous phase and AlgaeDescored only to teleop; both are zero-valued
// otherwise.
type PhaseCount struct {
	Mobility       bool `json:"mobility,omitempty"`
	CoralLevel1    int  `json:"coralLevel1"`
	CoralLevel2    int  `json:"coralLevel2"`
	CoralLevel3    int  `json:"coralLevel3"`
	CoralLevel4    int  `json:"coralLevel4"`
	AlgaeProcessor int  `json:"algaeProcessor"`
	AlgaeNet       int  `json:"algaeNet"`
	AlgaeDescored  int  `json:"algaeDescored,omitempty"`
}

// Endgame records the robot's end-of-match state. The form enforces that at
// most one of these is set; the aggregator tolerates any combination.
type Endgame struct {
	RobotParked      bool `json:"robotParked"`
	ShallowCageClimb bool `json:"shallowCageClimb"`
	DeepCageClimb    bool `json:"deepCageClimb"`
}

// Additional holds subjective scout ratings and free-text notes. Ratings are
// on a 1-10 scale; DefenseRating is 0 when the robot did not play defense.
type Additional struct {
	PlayedDefense bool   `json:"playedDefense"`
	DefenseRating int    `json:"defenseRating"`
	DriverSkill   int    `json:"driverSkill"`
	RobotSpeed    int    `json:"robotSpeed"`
	RobotDied     bool   `json:"robotDied"`
	RobotTipped   bool   `json:"robotTipped"`
	Notes         string `json:"notes,omitempty"`
}

// Scores holds the derived point totals, computed at submission time from the
// raw counts. Consumers treat these as authoritative and never re-derive them.
type Scores struct {
	AutoPoints   int `json:"autoPoints"`
	TeleopPoints int `json:"teleopPoints"`
	BargePoints  int `json:"bargePoints"`
	TotalPoints  int `json:"totalPoints"`
}
