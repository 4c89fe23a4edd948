package entity

// MinTargetPoints and MaxTargetPoints bound the configurable match length.
const (
	MinTargetPoints = 1
	MaxTargetPoints = 50
)

// Winner identifies which side, if any, has taken the match.
type Winner int

const (
	NoWinner Winner = iota
	PlayerWins
	CPUWins
)

// Score tracks both counters and the target the match plays to.
type Score struct {
	Player int
	CPU    int
	Target int
}

// NewScore returns a zeroed score playing to target points. The target is
// clamped into [MinTargetPoints, MaxTargetPoints].
func NewScore(target int) Score {
	if target < MinTargetPoints {
		target = MinTargetPoints
	}
	if target > MaxTargetPoints {
		target = MaxTargetPoints
	}
	return Score{Target: target}
}

// Winner reports whether either counter has reached the target.
func (s Score) Winner() Winner {
	switch {
	case s.Player >= s.Target:
		return PlayerWins
	case s.CPU >= s.Target:
		return CPUWins
	default:
		return NoWinner
	}
}
