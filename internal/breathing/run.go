package breathing

import (
	"context"
	"time"
)

// Run advances from on every value received from ticks and reports each new
// state to onChange. It returns the last state when ctx is done or ticks is
// closed. A ready state is started first.
func Run(ctx context.Context, ticks <-chan time.Time, from State, onChange func(State)) State {
	s := Start(from)
	if onChange != nil {
		onChange(s)
	}
	for {
		select {
		case <-ctx.Done():
			return s
		case _, ok := <-ticks:
			if !ok {
				return s
			}
			s = Next(s)
			if onChange != nil {
				onChange(s)
			}
		}
	}
}
