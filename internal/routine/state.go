// Package routine implements the daily-routine state machine: an agent that
// sleeps, eats, studies, does chores and rests, one simulated hour at a time.
package routine

// State is the activity the agent is currently engaged in.
type State uint8

const (
	StateSleep State = iota // Initial state
	StateEat
	StateStudy
	StateDoChores // Also covers air-alarm shelter trips at night
	StateRest
)

// NumStates is the total number of states.
const NumStates = 5

var stateNames = [NumStates]string{"sleep", "eat", "study", "do_chores", "rest"}

// String returns the lowercase name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the five known states.
func (s State) Valid() bool {
	return s < NumStates
}
