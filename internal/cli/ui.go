package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/safespace/internal/player"
	"github.com/idilsaglam/safespace/internal/tui"
)

func addUI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive journal (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(e)
		},
	}
	topLevel.AddCommand(cmd)
}

func runUI(e *env) error {
	var (
		handle player.Playback = player.NopPlayback{}
		ended  <-chan struct{}
	)
	if len(e.cfg.PlayerCommand) > 0 {
		ex := player.NewExecPlayback(e.cfg.PlayerCommand, e.log.Named("exec"))
		defer func() {
			if err := ex.Close(); err != nil {
				e.log.Warn("stop player", zap.Error(err))
			}
		}()
		handle, ended = ex, ex.Ended()
	}

	s := e.session(handle)
	if s.Persistent() {
		if err := s.Load(); err != nil {
			return err
		}
	}
	e.log.Info("session started", zap.Bool("persistent", s.Persistent()))
	return tui.Run(s, tui.Options{Ended: ended, Logger: e.log})
}
