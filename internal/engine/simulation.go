// Simulation ties the agent to the clock and keeps the hourly journal.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/talgya/daily-routine/internal/routine"
)

// maxEvents bounds the in-memory journal.
const maxEvents = 1000

// Simulation holds the agent and everything recorded about it.
type Simulation struct {
	Agent    *routine.Agent
	Events   []Event // Recent events, oldest first
	LastTick uint64  // Most recent tick processed

	// Day holds counters for the day in progress; Totals spans the run.
	Day    SimStats
	Totals SimStats

	// Journaling keeps every event queued until AckPending, for a store
	// that persists the full transcript. Off, only Events is kept.
	Journaling bool

	out     routine.Sink
	message string  // Message recorded by the agent during the current hour
	pending []Event // Events not yet acknowledged by AckPending
}

// Event is one accepted hour.
type Event struct {
	Tick    uint64 `db:"tick"`
	Day     int    `db:"day"`
	Hour    int    `db:"hour"`
	From    string `db:"from_state"`
	To      string `db:"to_state"`
	Message string `db:"message"`
}

// SimStats counts what the agent did.
type SimStats struct {
	HoursIn     [routine.NumStates]int // Hours that started in each state
	Transitions int
	AirAlarms   int // Sleep interrupted by an alarm
	Naps        int // Study or chores left for Sleep between 08:00 and 23:00
}

// NewSimulation creates a fresh agent drawing from rng. Every message is
// forwarded to out, which may be nil.
func NewSimulation(rng routine.Source, out routine.Sink) *Simulation {
	s := &Simulation{out: out}
	s.Agent = routine.NewAgent(rng, s)
	return s
}

// Record implements routine.Sink for the agent.
func (s *Simulation) Record(hour int, message string) {
	s.message = message
	if s.out != nil {
		s.out.Record(hour, message)
	}
}

// CurrentTick returns the most recently processed tick number.
func (s *Simulation) CurrentTick() uint64 {
	return s.LastTick
}

// TickHour feeds one hour to the agent and journals the outcome.
func (s *Simulation) TickHour(tick uint64, hour int) error {
	from := s.Agent.State()
	s.message = ""
	if err := s.Agent.Accept(hour); err != nil {
		return err
	}
	to := s.Agent.State()
	s.LastTick = tick

	e := Event{
		Tick:    tick,
		Day:     Day(tick),
		Hour:    hour,
		From:    from.String(),
		To:      to.String(),
		Message: s.message,
	}
	s.Events = append(s.Events, e)
	if len(s.Events) > maxEvents {
		s.Events = s.Events[len(s.Events)-maxEvents:]
	}
	if s.Journaling {
		s.pending = append(s.pending, e)
	}

	s.Day.count(from, to, hour)
	s.Totals.count(from, to, hour)

	slog.Debug("hour", "time", SimTime(tick), "from", from, "to", to,
		"energy", s.Agent.Energy(), "hunger", s.Agent.Hunger())
	return nil
}

func (st *SimStats) count(from, to routine.State, hour int) {
	st.HoursIn[from]++
	if from != to {
		st.Transitions++
	}
	if from == routine.StateSleep && to == routine.StateDoChores && hour < 7 {
		st.AirAlarms++
	}
	working := from == routine.StateStudy || from == routine.StateDoChores
	if working && to == routine.StateSleep && hour >= 8 {
		st.Naps++
	}
}

// TickDay logs the daily report and starts a new day's counters.
// tick is the first tick of the next day.
func (s *Simulation) TickDay(tick uint64) {
	day := Day(tick - 1)
	status := s.Agent.Status()

	slog.Info("daily report",
		"day", humanize.Ordinal(day),
		"state", status.State,
		"energy", status.Energy,
		"hunger", status.Hunger,
		"hours_sleep", s.Day.HoursIn[routine.StateSleep],
		"hours_eat", s.Day.HoursIn[routine.StateEat],
		"hours_study", s.Day.HoursIn[routine.StateStudy],
		"hours_chores", s.Day.HoursIn[routine.StateDoChores],
		"hours_rest", s.Day.HoursIn[routine.StateRest],
		"transitions", s.Day.Transitions,
		"air_alarms", s.Day.AirAlarms,
		"naps", s.Day.Naps,
	)

	s.Day = SimStats{}
}

// Pending returns the queued events without removing them.
func (s *Simulation) Pending() []Event {
	return append([]Event(nil), s.pending...)
}

// AckPending drops the first n queued events once a store has kept them.
func (s *Simulation) AckPending(n int) {
	if n >= len(s.pending) {
		s.pending = nil
		return
	}
	s.pending = s.pending[n:]
}

// Summary returns a one-line description of the whole run.
func (s *Simulation) Summary() string {
	total := 0
	for _, h := range s.Totals.HoursIn {
		total += h
	}
	return fmt.Sprintf("%s hours simulated: %s asleep, %s studying, %s on chores, %d air alarms",
		humanize.Comma(int64(total)),
		share(s.Totals.HoursIn[routine.StateSleep], total),
		share(s.Totals.HoursIn[routine.StateStudy], total),
		share(s.Totals.HoursIn[routine.StateDoChores], total),
		s.Totals.AirAlarms,
	)
}

func share(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return humanize.FtoaWithDigits(float64(part)*100/float64(total), 1) + "%"
}
