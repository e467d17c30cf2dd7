package launcher

import "fmt"

// State is a step of the launch sequence.
type State int

const (
	StateInit State = iota
	StateDirResolved
	StateEnvConfigured
	StateChildRunning
	StateChildExited
	StateAwaitingAck
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateInit:          "INIT",
	StateDirResolved:   "DIR_RESOLVED",
	StateEnvConfigured: "ENV_CONFIGURED",
	StateChildRunning:  "CHILD_RUNNING",
	StateChildExited:   "CHILD_EXITED",
	StateAwaitingAck:   "AWAITING_ACK",
	StateDone:          "DONE",
	StateFailed:        "FAILED",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// FAILED is only reachable before the environment is configured, and it
// still leads through AWAITING_ACK so the diagnostic stays on screen.
var transitions = map[State][]State{
	StateInit:          {StateDirResolved, StateFailed},
	StateDirResolved:   {StateEnvConfigured, StateFailed},
	StateEnvConfigured: {StateChildRunning},
	StateChildRunning:  {StateChildExited},
	StateChildExited:   {StateAwaitingAck},
	StateFailed:        {StateAwaitingAck},
	StateAwaitingAck:   {StateDone},
}

// CanTransitionTo reports whether next may directly follow s.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
