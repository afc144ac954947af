// Package cli is the safespace command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/idilsaglam/safespace/internal/app"
	"github.com/idilsaglam/safespace/internal/companion"
	"github.com/idilsaglam/safespace/internal/config"
	"github.com/idilsaglam/safespace/internal/journal"
	"github.com/idilsaglam/safespace/internal/logging"
	"github.com/idilsaglam/safespace/internal/player"
	"github.com/idilsaglam/safespace/internal/ui"
)

// usageError marks errors that exit with status 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, a ...interface{}) error {
	return usageError{msg: fmt.Sprintf(format, a...)}
}

// env is what every command runs with once configuration is loaded.
type env struct {
	v      *viper.Viper
	cfg    config.Config
	log    *zap.Logger
	out    io.Writer
	errOut io.Writer

	// overridable in tests
	rand  companion.Source
	clock journal.Clock
	tick  time.Duration
	noLog bool
}

func (e *env) session(playback player.Playback) *app.Session {
	s := app.New(app.Options{
		Clock:          e.clock,
		Rand:           e.rand,
		Playback:       playback,
		CompanionDelay: e.cfg.CompanionDelay,
		JournalPath:    e.cfg.Journal,
		Logger:         e.log,
	})
	s.Player.SetVolume(e.cfg.PlayerVolume)
	return s
}

// fileSession opens the configured journal file.
func (e *env) fileSession() (*app.Session, error) {
	s := e.session(nil)
	if err := s.Load(); err != nil {
		if errors.Is(err, app.ErrNoJournal) {
			return nil, fmt.Errorf("%w (set --journal or %q in .safespace.yaml)", err, config.KeyJournal)
		}
		return nil, err
	}
	return s, nil
}

// New builds the root command. With no subcommand it opens the interactive UI.
func New(e *env) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "safespace",
		Short:         "A safe space to express, reflect, and grow.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(e)
		},
	}
	cmd.SetOut(e.out)
	cmd.SetErr(e.errOut)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	f := cmd.PersistentFlags()
	f.StringVar(&configFile, "config", "", "config file (default .safespace.yaml in ./ or ~/.safespace)")
	f.String("journal", "", "journal file to load and save; empty keeps everything in memory")
	f.String("log-level", "", "log level: debug, info, warn, error")
	f.String("theme", "", "output theme: classic, neon, mono")
	_ = e.v.BindPFlag(config.KeyJournal, f.Lookup("journal"))
	_ = e.v.BindPFlag(config.KeyLogLevel, f.Lookup("log-level"))
	_ = e.v.BindPFlag(config.KeyTheme, f.Lookup("theme"))

	AddCommands(cmd, e)
	return cmd
}

func AddCommands(topLevel *cobra.Command, e *env) {
	addUI(topLevel, e)
	addAdd(topLevel, e)
	addGrateful(topLevel, e)
	addStats(topLevel, e)
	addBreathe(topLevel, e)
	addQuote(topLevel, e)
	addCoping(topLevel, e)
	addTracks(topLevel, e)
}

func (e *env) setup(configFile string) error {
	cfg, err := config.Load(e.v, configFile)
	if err != nil {
		return err
	}
	e.cfg = cfg
	ui.SetTheme(cfg.Theme)

	if e.noLog {
		e.log = zap.NewNop()
		return nil
	}
	l, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	e.log = l
	return nil
}

// Execute runs the command line and returns the exit status
// (0 ok, 1 error, 2 usage).
func Execute(args []string, stdout, stderr io.Writer) int {
	e := &env{v: viper.New(), out: stdout, errOut: stderr, log: zap.NewNop(), tick: time.Second}
	return execute(e, args)
}

func execute(e *env, args []string) int {
	if e.log == nil {
		e.log = zap.NewNop()
	}
	cmd := New(e)
	cmd.SetArgs(args)
	err := cmd.Execute()
	_ = e.log.Sync()
	if err == nil {
		return 0
	}
	fail(e.errOut, err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(e.errOut)
		cmd.SetOut(e.errOut)
		_ = cmd.Usage()
		return 2
	}
	return 1
}

// Main is the entry point shared by the binaries.
func Main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}
