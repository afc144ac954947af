package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/safespace/internal/breathing"
	"github.com/idilsaglam/safespace/internal/ui"
)

func addBreathe(topLevel *cobra.Command, e *env) {
	var cycles int
	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Guide a 4-7-8 breathing exercise in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cycles < 0 {
				return usagef("breathe: --cycles must not be negative")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return breathe(ctx, e, cycles)
		},
	}
	cmd.Flags().IntVarP(&cycles, "cycles", "n", 3,
		"Number of inhale-hold-exhale cycles; 0 runs until interrupted.")
	topLevel.AddCommand(cmd)
}

// breathe prints one line per phase with the elapsed seconds after it. It
// stops after cycles full cycles, or on ctx when cycles is 0.
func breathe(ctx context.Context, e *env, cycles int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	t := ui.Current()
	limit := cycles * breathing.CycleTicks
	ticks := -1
	var last breathing.State
	breathing.Run(ctx, ticker.C, last, func(s breathing.State) {
		ticks++
		if limit > 0 && ticks >= limit {
			cancel()
			return
		}
		if s.Phase != last.Phase || !last.Active {
			if last.Active {
				fmt.Fprintln(e.out)
			}
			fmt.Fprint(e.out, ui.C(t.Accent, fmt.Sprintf("%-7s %s", s.Phase, s.Prompt())))
		} else {
			fmt.Fprintf(e.out, " %d", s.Count)
		}
		last = s
	})
	fmt.Fprintln(e.out)
	if limit == 0 || ticks < limit {
		return nil
	}
	ok(e.out, fmt.Sprintf("%d breathing cycles done", cycles))
	return nil
}
