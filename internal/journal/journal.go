// Package journal provides sinks for the routine's hourly messages.
package journal

import (
	"fmt"
	"io"

	"github.com/talgya/daily-routine/internal/routine"
)

// Printer writes each message as a "HH:00 - message" line.
// The first write error is kept and later writes are skipped.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Record implements routine.Sink.
func (p *Printer) Record(hour int, message string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, routine.FormatEntry(hour, message))
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

// Tee forwards every message to each of its sinks in order.
type Tee []routine.Sink

// Record implements routine.Sink.
func (t Tee) Record(hour int, message string) {
	for _, s := range t {
		s.Record(hour, message)
	}
}
