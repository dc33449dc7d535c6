package routine

import "fmt"

// Resource bounds and thresholds.
const (
	MaxEnergy = 100
	MinEnergy = 0

	hungryThreshold   = 25 // above this, work drains energy twice as fast
	starvingThreshold = 40 // above this, most states break off to eat
	supperThreshold   = 8  // minimum hunger for a supper break at 19:00
	exhaustedEnergy   = 10 // below this, the agent heads for a nap
)

// Source supplies the uniform random draws the transitions depend on.
type Source interface {
	Float64() float64 // uniform in [0, 1)
	IntN(n int) int   // uniform in [0, n)
}

// Agent is the single simulated person. It is not safe for concurrent use;
// one driver owns it and feeds it hours through Accept.
type Agent struct {
	energy int
	hunger int
	state  State

	rng      Source
	sink     Sink
	shutdown bool
}

// Status is a read-only snapshot of the agent.
type Status struct {
	State  State
	Energy int
	Hunger int
}

// NewAgent creates a rested, fed agent that starts out asleep.
// A nil sink discards messages.
func NewAgent(rng Source, sink Sink) *Agent {
	if sink == nil {
		sink = discard{}
	}
	return &Agent{
		energy: MaxEnergy,
		hunger: 0,
		state:  StateSleep,
		rng:    rng,
		sink:   sink,
	}
}

// Energy returns the current energy level, always within [0,100].
func (a *Agent) Energy() int { return a.energy }

// Hunger returns the current hunger level.
func (a *Agent) Hunger() int { return a.hunger }

// State returns the active state.
func (a *Agent) State() State { return a.state }

// Status returns a snapshot of the agent.
func (a *Agent) Status() Status {
	return Status{State: a.state, Energy: a.energy, Hunger: a.hunger}
}

// HungerModifier scales energy drain while working: 2 when hungry, else 1.
func (a *Agent) HungerModifier() int {
	if a.hunger > hungryThreshold {
		return 2
	}
	return 1
}

// addEnergy is the only way energy changes.
func (a *Agent) addEnergy(delta int) {
	e := a.energy + delta
	if e < MinEnergy {
		e = MinEnergy
	}
	if e > MaxEnergy {
		e = MaxEnergy
	}
	a.energy = e
}

func (a *Agent) addHunger(delta int) {
	if delta < 0 {
		return
	}
	a.hunger += delta
}

func (a *Agent) resetHunger() {
	a.hunger = 0
}

// Accept feeds one simulated hour to the active state. The state's
// transition runs to completion, its message goes to the sink, and only
// then does the active state change.
func (a *Agent) Accept(hour int) error {
	if a.shutdown {
		return ErrShutdown
	}
	if err := validateHour(hour); err != nil {
		return err
	}

	step, ok := transitions[a.state]
	if !ok {
		return fmt.Errorf("%w: no transition for state %d", ErrInvariant, a.state)
	}

	message, next := step(a, hour)
	if a.energy < MinEnergy || a.energy > MaxEnergy {
		return fmt.Errorf("%w: energy %d after %s", ErrInvariant, a.energy, a.state)
	}

	a.sink.Record(hour, message)
	a.state = next
	return nil
}

// Shutdown stops the agent. Later Accept calls return ErrShutdown.
func (a *Agent) Shutdown() {
	a.shutdown = true
}

// uniformInt returns a uniform integer in [lo, hi].
func (a *Agent) uniformInt(lo, hi int) int {
	return lo + a.rng.IntN(hi-lo+1)
}

// chance reports whether a draw lands at or under p.
func (a *Agent) chance(p float64) bool {
	return a.rng.Float64() <= p
}

func (a *Agent) pick(states ...State) State {
	return states[a.rng.IntN(len(states))]
}
