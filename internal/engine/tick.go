// Package engine provides the hour clock that drives the routine, and the
// simulation that records what the agent does each hour.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
)

// HoursPerDay is the number of hours fed to the agent per simulated day.
const HoursPerDay = 24

// ErrNegativeDays is returned by RunDays for a negative day count.
var ErrNegativeDays = errors.New("engine: negative day count")

// Engine feeds simulated hours to its callbacks, one at a time, with no
// waiting between them.
type Engine struct {
	Tick    uint64 // Hours processed so far (monotonic, never resets)
	Running bool

	// Callbacks populated during setup.
	OnHour func(tick uint64, hour int) error // Every hour; an error stops the run
	OnDay  func(tick uint64)                 // After hour 23 of each day
}

// NewEngine creates an engine at day 1, 00:00.
func NewEngine() *Engine {
	return &Engine{}
}

// RunDays advances the clock by days×24 hours, starting wherever the clock
// stands. It returns early with the first callback error, or nil if Stop
// was called.
func (e *Engine) RunDays(days int) error {
	if days < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDays, days)
	}

	e.Running = true
	slog.Info("simulation engine started", "tick", e.Tick, "days", days)

	remaining := uint64(days) * HoursPerDay
	var err error
	for ; remaining > 0 && e.Running; remaining-- {
		if err = e.step(); err != nil {
			break
		}
	}

	e.Running = false
	slog.Info("simulation engine stopped", "tick", e.Tick, "time", SimTime(e.Tick))
	return err
}

// Stop halts the run. Called from OnHour, that hour does not count.
func (e *Engine) Stop() {
	e.Running = false
}

// step advances the simulation by one hour.
func (e *Engine) step() error {
	hour := int(e.Tick % HoursPerDay)

	if e.OnHour != nil {
		if err := e.OnHour(e.Tick, hour); err != nil {
			return fmt.Errorf("tick %d (%s): %w", e.Tick, SimTime(e.Tick), err)
		}
	}
	// Stopped from inside OnHour: the hour was not taken, leave the clock.
	if !e.Running {
		return nil
	}
	e.Tick++

	if e.Tick%HoursPerDay == 0 && e.OnDay != nil {
		e.OnDay(e.Tick)
	}
	return nil
}

// Day returns the 1-based day a tick falls on.
func Day(tick uint64) int {
	return int(tick/HoursPerDay) + 1
}

// SimTime returns a human-readable time for a tick, e.g. "Day 2, 07:00".
func SimTime(tick uint64) string {
	return fmt.Sprintf("Day %d, %02d:00", Day(tick), tick%HoursPerDay)
}
