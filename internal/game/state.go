package game

// State is the match's top-level mode. Transitions go through the table
// below; anything not listed is rejected.
type State int

const (
	StateMenu State = iota
	StateSettings
	StateInGame
	StatePaused
	StateGameOver
)

// String returns the state name used in snapshots and logs.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateSettings:
		return "settings"
	case StateInGame:
		return "in_game"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// transitions lists every legal state edge.
var transitions = map[State][]State{
	StateMenu:     {StateSettings},
	StateSettings: {StateInGame},
	StateInGame:   {StatePaused, StateMenu, StateGameOver},
	StatePaused:   {StateInGame, StateMenu},
	StateGameOver: {StateMenu, StateSettings, StateInGame},
}

// canTransition reports whether the edge from → to is in the table.
func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
