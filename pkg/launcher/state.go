package launcher

// State is a stage of the launch pipeline. Stages only move forward; any of
// them may end in StateFailed instead.
type State int

const (
	StateStart State = iota
	StateLocated
	StatePinned
	StateResolved
	StateEnvSet
	StateSpawned
	StateEnd
	StateFailed
)

var stateNames = [...]string{
	StateStart:    "START",
	StateLocated:  "LOCATED",
	StatePinned:   "PINNED",
	StateResolved: "RESOLVED",
	StateEnvSet:   "ENVSET",
	StateSpawned:  "SPAWNED",
	StateEnd:      "END",
	StateFailed:   "FAILED",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}
