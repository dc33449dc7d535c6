package routine

import (
	"errors"
	"fmt"
)

// MinHour and MaxHour bound the hour values Accept will take.
const (
	MinHour = 0
	MaxHour = 23
)

var (
	// ErrShutdown is returned by Accept once the agent has been shut down.
	ErrShutdown = errors.New("routine: agent shut down")

	// ErrInvariant signals an internal logic error: energy escaped [0,100].
	ErrInvariant = errors.New("routine: invariant violated")
)

// InputError reports an hour outside [MinHour, MaxHour].
// The agent is left untouched when it is returned.
type InputError struct {
	Hour int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("routine: hour %d out of range [%d,%d]", e.Hour, MinHour, MaxHour)
}

func validateHour(hour int) error {
	if hour < MinHour || hour > MaxHour {
		return &InputError{Hour: hour}
	}
	return nil
}
