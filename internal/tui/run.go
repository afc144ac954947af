package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/safespace/internal/app"
)

// Run starts the interactive program on the alternate screen and saves the
// journal on quit if it changed and the session is file-backed.
func Run(s *app.Session, opt Options) error {
	p := tea.NewProgram(New(s, opt), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok || !fm.Changed() || !s.Persistent() {
		return nil
	}
	if err := s.Save(); err != nil {
		return err
	}
	if opt.Logger != nil {
		opt.Logger.Info("session saved on exit", zap.Int("entries", s.Entries.Len()))
	}
	return nil
}
