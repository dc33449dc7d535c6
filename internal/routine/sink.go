package routine

import "fmt"

// Sink receives the message produced for every accepted hour.
type Sink interface {
	Record(hour int, message string)
}

type discard struct{}

func (discard) Record(int, string) {}

// FormatEntry renders a message with its hour prefix, e.g. "07:00 - Rise and shine!".
func FormatEntry(hour int, message string) string {
	return fmt.Sprintf("%02d:00 - %s", hour, message)
}
