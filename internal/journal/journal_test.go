package journal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_FormatsLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Record(7, "Rise and shine!")
	p.Record(23, "Zzz...")

	assert.NoError(t, p.Err())
	assert.Equal(t, "07:00 - Rise and shine!\n23:00 - Zzz...\n", buf.String())
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestPrinter_KeepsFirstError(t *testing.T) {
	w := &failingWriter{}
	p := NewPrinter(w)

	p.Record(1, "a")
	p.Record(2, "b")

	assert.EqualError(t, p.Err(), "disk full")
	assert.Equal(t, 1, w.calls)
}

func TestTee_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	tee := Tee{NewPrinter(&a), NewPrinter(&b)}

	tee.Record(0, "Zzz...")
	tee.Record(1, "Zzz...")

	assert.Equal(t, "00:00 - Zzz...\n01:00 - Zzz...\n", a.String())
	assert.Equal(t, a.String(), b.String())
}
