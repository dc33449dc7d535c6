package engine

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/daily-routine/internal/routine"
)

type lines []string

func (l *lines) Record(hour int, message string) {
	*l = append(*l, routine.FormatEntry(hour, message))
}

func runDays(t *testing.T, days int, out routine.Sink) *Simulation {
	t.Helper()
	sim := NewSimulation(rand.New(rand.NewPCG(11, 13)), out)
	eng := NewEngine()
	eng.OnHour = sim.TickHour
	eng.OnDay = sim.TickDay
	require.NoError(t, eng.RunDays(days))
	return sim
}

func TestSimulation_JournalsEveryHour(t *testing.T) {
	var out lines
	sim := runDays(t, 3, &out)

	require.Len(t, sim.Events, 72)
	require.Len(t, out, 72)
	assert.Equal(t, uint64(71), sim.CurrentTick())

	for i, e := range sim.Events {
		assert.Equal(t, uint64(i), e.Tick)
		assert.Equal(t, i%24, e.Hour)
		assert.Equal(t, i/24+1, e.Day)
		assert.NotEmpty(t, e.Message)
		assert.Equal(t, routine.FormatEntry(e.Hour, e.Message), out[i])
		if i > 0 {
			assert.Equal(t, sim.Events[i-1].To, e.From, "state chain broken at tick %d", i)
		}
	}
	assert.Equal(t, "sleep", sim.Events[0].From)
	assert.True(t, strings.HasPrefix(out[7], "07:00 - "))
}

func TestSimulation_StatsAndDayReset(t *testing.T) {
	sim := runDays(t, 5, nil)

	total := 0
	for _, h := range sim.Totals.HoursIn {
		total += h
	}
	assert.Equal(t, 120, total)
	assert.Equal(t, SimStats{}, sim.Day, "day counters reset after each day")
	assert.Contains(t, sim.Summary(), "120 hours simulated")
}

func TestSimulation_PendingAckedByStore(t *testing.T) {
	sim := NewSimulation(rand.New(rand.NewPCG(1, 1)), nil)
	sim.Journaling = true

	require.NoError(t, sim.TickHour(0, 0))
	require.NoError(t, sim.TickHour(1, 1))
	require.NoError(t, sim.TickHour(2, 2))

	queued := sim.Pending()
	require.Len(t, queued, 3)
	assert.Len(t, sim.Pending(), 3, "Pending does not consume")

	sim.AckPending(2)
	rest := sim.Pending()
	require.Len(t, rest, 1)
	assert.Equal(t, uint64(2), rest[0].Tick)

	sim.AckPending(5)
	assert.Empty(t, sim.Pending())
}

func TestSimulation_NoQueueWithoutJournaling(t *testing.T) {
	sim := runDays(t, 500, nil)

	assert.Len(t, sim.Events, maxEvents)
	assert.Empty(t, sim.Pending())
}

func TestSimulation_EventsAreBounded(t *testing.T) {
	sim := runDays(t, 50, nil)

	assert.Len(t, sim.Events, maxEvents)
	assert.Equal(t, uint64(50*24-1), sim.Events[len(sim.Events)-1].Tick)
}

func TestSimulation_PropagatesAgentErrors(t *testing.T) {
	sim := NewSimulation(rand.New(rand.NewPCG(1, 1)), nil)

	var inputErr *routine.InputError
	assert.ErrorAs(t, sim.TickHour(0, 24), &inputErr)

	sim.Agent.Shutdown()
	assert.ErrorIs(t, sim.TickHour(0, 1), routine.ErrShutdown)
	assert.Empty(t, sim.Events)
}

func TestSimStats_Count(t *testing.T) {
	var st SimStats
	st.count(routine.StateSleep, routine.StateDoChores, 3)
	st.count(routine.StateStudy, routine.StateSleep, 14)
	st.count(routine.StateDoChores, routine.StateSleep, 22)
	st.count(routine.StateStudy, routine.StateStudy, 15)

	assert.Equal(t, 1, st.AirAlarms)
	assert.Equal(t, 2, st.Naps)
	assert.Equal(t, 3, st.Transitions)
	assert.Equal(t, 2, st.HoursIn[routine.StateStudy])
}

func TestSimStats_NapsOnlyFromWork(t *testing.T) {
	tests := []struct {
		name     string
		from, to routine.State
		hour     int
	}{
		{"still asleep in the day", routine.StateSleep, routine.StateSleep, 14},
		{"tired after a meal", routine.StateEat, routine.StateSleep, 13},
		{"rest at midnight", routine.StateRest, routine.StateSleep, 0},
		{"study at midnight", routine.StateStudy, routine.StateSleep, 0},
		{"alarm over", routine.StateDoChores, routine.StateSleep, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st SimStats
			st.count(tt.from, tt.to, tt.hour)
			assert.Zero(t, st.Naps)
		})
	}
}
