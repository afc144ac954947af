// Package breathing implements the 4-7-8 breathing guide as an explicit
// state machine advanced one tick (one second) at a time.
package breathing

import "fmt"

type Phase int

const (
	Ready Phase = iota
	Inhale
	Hold
	Exhale
)

// CycleTicks is the number of ticks in one inhale-hold-exhale cycle.
const CycleTicks = 4 + 7 + 8

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Inhale:
		return "inhale"
	case Hold:
		return "hold"
	case Exhale:
		return "exhale"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Threshold is the number of ticks spent in p. Ready has none.
func (p Phase) Threshold() int {
	switch p {
	case Inhale:
		return 4
	case Hold:
		return 7
	case Exhale:
		return 8
	}
	return 0
}

func (p Phase) next() Phase {
	switch p {
	case Inhale:
		return Hold
	case Hold:
		return Exhale
	}
	return Inhale
}

// Prompt is the instruction shown for p.
func Prompt(p Phase) string {
	switch p {
	case Inhale:
		return "Breathe in slowly..."
	case Hold:
		return "Hold your breath..."
	case Exhale:
		return "Exhale slowly..."
	}
	return "Click to start"
}

// State is the full timer state. Count is the raw number of ticks spent in
// the current phase.
type State struct {
	Phase  Phase
	Count  int
	Active bool
}

// Start enters inhale with a zero count. Starting an active timer is a no-op.
func Start(s State) State {
	if s.Active {
		return s
	}
	return State{Phase: Inhale, Active: true}
}

// Next applies one tick.
func Next(s State) State {
	if !s.Active || s.Phase == Ready {
		return s
	}
	s.Count++
	if s.Count >= s.Phase.Threshold() {
		return State{Phase: s.Phase.next(), Active: true}
	}
	return s
}

func (s State) Prompt() string { return Prompt(s.Phase) }

// Timer is a mutable holder around State for UI code.
type Timer struct {
	state State
}

func (t *Timer) Start()       { t.state = Start(t.state) }
func (t *Timer) Tick()        { t.state = Next(t.state) }
func (t *Timer) Reset()       { t.state = State{} }
func (t *Timer) State() State { return t.state }
