package breathing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickN(s State, n int) State {
	for i := 0; i < n; i++ {
		s = Next(s)
	}
	return s
}

func TestStartEntersInhale(t *testing.T) {
	s := Start(State{})
	assert.Equal(t, State{Phase: Inhale, Active: true}, s)
	assert.Equal(t, "Breathe in slowly...", s.Prompt())

	mid := tickN(s, 2)
	assert.Equal(t, mid, Start(mid), "start on an active timer keeps its state")
}

func TestReadyDoesNotTick(t *testing.T) {
	assert.Equal(t, State{}, tickN(State{}, 10))
	assert.Equal(t, "Click to start", State{}.Prompt())
}

func TestPhaseTransitions(t *testing.T) {
	s := Start(State{})

	s = tickN(s, 3)
	assert.Equal(t, Inhale, s.Phase)
	assert.Equal(t, 3, s.Count)

	s = Next(s)
	assert.Equal(t, State{Phase: Hold, Active: true}, s)

	s = tickN(s, 6)
	assert.Equal(t, Hold, s.Phase)
	s = Next(s)
	assert.Equal(t, State{Phase: Exhale, Active: true}, s)

	s = tickN(s, 7)
	assert.Equal(t, Exhale, s.Phase)
	assert.Equal(t, 7, s.Count)
	s = Next(s)
	assert.Equal(t, State{Phase: Inhale, Active: true}, s)
}

func TestFullCycle(t *testing.T) {
	start := Start(State{})
	assert.Equal(t, start, tickN(start, CycleTicks))
	assert.Equal(t, start, tickN(start, 3*CycleTicks))
	assert.NotEqual(t, start, tickN(start, CycleTicks-1))
}

func TestTimer(t *testing.T) {
	var tm Timer
	tm.Tick()
	assert.Equal(t, Ready, tm.State().Phase)

	tm.Start()
	for i := 0; i < 4; i++ {
		tm.Tick()
	}
	assert.Equal(t, Hold, tm.State().Phase)

	tm.Reset()
	assert.Equal(t, State{}, tm.State())
}

func TestRunWithInjectedTicks(t *testing.T) {
	ticks := make(chan time.Time)
	var seen []State
	done := make(chan State)
	go func() {
		done <- Run(context.Background(), ticks, State{}, func(s State) { seen = append(seen, s) })
	}()

	for i := 0; i < 4; i++ {
		ticks <- time.Time{}
	}
	close(ticks)

	last := <-done
	assert.Equal(t, State{Phase: Hold, Active: true}, last)
	require.Len(t, seen, 5)
	assert.Equal(t, Inhale, seen[0].Phase)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := Run(ctx, make(chan time.Time), State{}, nil)
	assert.Equal(t, Inhale, s.Phase)
}
