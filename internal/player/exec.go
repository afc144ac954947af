package player

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// VolumeArg is replaced by the volume (0-100) in command arguments.
const VolumeArg = "{volume}"

// DefaultCommand streams a locator with mpv.
var DefaultCommand = []string{"mpv", "--no-video", "--really-quiet", "--volume=" + VolumeArg}

var ErrNoCommand = errors.New("no player command configured")

// ExecPlayback plays tracks by running an external media player with the
// track locator as its last argument. A process that exits cleanly counts as
// the end of the track and is reported on Ended.
type ExecPlayback struct {
	command []string
	log     *zap.Logger

	mu     sync.Mutex
	src    string
	volume float64
	proc   *process
	ended  chan struct{}
}

type process struct {
	cmd     *exec.Cmd
	paused  bool
	stopped bool
	done    chan struct{}
}

func NewExecPlayback(command []string, log *zap.Logger) *ExecPlayback {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExecPlayback{
		command: append([]string(nil), command...),
		log:     log,
		volume:  DefaultVolume,
		ended:   make(chan struct{}, 1),
	}
}

// Ended delivers one value each time a track finishes on its own.
func (e *ExecPlayback) Ended() <-chan struct{} { return e.ended }

// Load stops whatever is playing and remembers src for the next Play.
func (e *ExecPlayback) Load(src string) error {
	e.mu.Lock()
	p := e.detach()
	e.src = src
	e.mu.Unlock()
	return stop(p)
}

func (e *ExecPlayback) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.proc != nil {
		if !e.proc.paused {
			return nil
		}
		if err := resume(e.proc.cmd.Process); err != nil {
			return fmt.Errorf("resume: %w", err)
		}
		e.proc.paused = false
		return nil
	}
	if len(e.command) == 0 {
		return ErrNoCommand
	}
	if e.src == "" {
		return errors.New("no track loaded")
	}

	args := make([]string, 0, len(e.command))
	for _, a := range e.command[1:] {
		args = append(args, strings.ReplaceAll(a, VolumeArg, strconv.Itoa(int(e.volume*100+0.5))))
	}
	args = append(args, e.src)
	cmd := exec.Command(e.command[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", e.command[0], err)
	}
	p := &process{cmd: cmd, done: make(chan struct{})}
	e.proc = p
	go e.wait(p)
	return nil
}

func (e *ExecPlayback) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.proc == nil || e.proc.paused {
		return nil
	}
	if err := suspend(e.proc.cmd.Process); err != nil {
		return fmt.Errorf("suspend: %w", err)
	}
	e.proc.paused = true
	return nil
}

// SetVolume takes effect on the next launched process.
func (e *ExecPlayback) SetVolume(v float64) error {
	e.mu.Lock()
	e.volume = clamp(v)
	e.mu.Unlock()
	return nil
}

// Close stops the running process, if any, and waits for it to exit.
func (e *ExecPlayback) Close() error {
	e.mu.Lock()
	p := e.detach()
	e.mu.Unlock()
	return stop(p)
}

// detach must be called with mu held.
func (e *ExecPlayback) detach() *process {
	p := e.proc
	e.proc = nil
	if p != nil {
		p.stopped = true
	}
	return p
}

func stop(p *process) error {
	if p == nil {
		return nil
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		<-p.done
		return fmt.Errorf("kill: %w", err)
	}
	<-p.done
	return nil
}

func (e *ExecPlayback) wait(p *process) {
	err := p.cmd.Wait()
	defer close(p.done)

	e.mu.Lock()
	stopped := p.stopped
	if e.proc == p {
		e.proc = nil
	}
	e.mu.Unlock()

	if stopped {
		return
	}
	if err != nil {
		e.log.Warn("player exited with error", zap.String("src", e.srcOf(p)), zap.Error(err))
		return
	}
	select {
	case e.ended <- struct{}{}:
	default:
	}
}

func (e *ExecPlayback) srcOf(p *process) string {
	if n := len(p.cmd.Args); n > 0 {
		return p.cmd.Args[n-1]
	}
	return ""
}
