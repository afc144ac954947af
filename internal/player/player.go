// Package player drives ambient audio playback: the active track, the playing
// flag and the volume, applied to a Playback handle.
package player

import (
	"math"

	"go.uber.org/zap"

	"github.com/idilsaglam/safespace/internal/model"
)

// DefaultVolume is the volume a new player starts with.
const DefaultVolume = 0.5

// Playback is the underlying media handle.
type Playback interface {
	Load(src string) error
	Play() error
	Pause() error
	SetVolume(v float64) error
}

// Player holds playback state over a fixed track list. Playback failures are
// logged and otherwise ignored.
type Player struct {
	tracks  []model.Track
	handle  Playback
	log     *zap.Logger
	index   int
	playing bool
	volume  float64
}

// New creates a stopped player positioned on the first track. tracks must not
// be empty.
func New(tracks []model.Track, handle Playback, log *zap.Logger) *Player {
	if handle == nil {
		handle = NopPlayback{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{
		tracks: append([]model.Track(nil), tracks...),
		handle: handle,
		log:    log,
		volume: DefaultVolume,
	}
	if len(p.tracks) > 0 {
		p.check("load", p.handle.Load(p.tracks[0].Source))
	}
	p.check("volume", p.handle.SetVolume(p.volume))
	return p
}

func (p *Player) Tracks() []model.Track { return append([]model.Track(nil), p.tracks...) }
func (p *Player) Index() int            { return p.index }
func (p *Player) Playing() bool         { return p.playing }
func (p *Player) Volume() float64       { return p.volume }

func (p *Player) Current() model.Track {
	if len(p.tracks) == 0 {
		return model.Track{}
	}
	return p.tracks[p.index]
}

// TogglePlay flips the playing flag and plays or pauses accordingly.
func (p *Player) TogglePlay() {
	if p.playing {
		p.check("pause", p.handle.Pause())
	} else {
		p.check("play", p.handle.Play())
	}
	p.playing = !p.playing
}

// SelectTrack makes track i active and starts playing it. Out-of-range
// indexes are ignored.
func (p *Player) SelectTrack(i int) {
	if i < 0 || i >= len(p.tracks) {
		return
	}
	if i == p.index {
		if !p.playing {
			p.check("play", p.handle.Play())
		}
		p.playing = true
		return
	}
	p.playing = true
	p.switchTo(i)
}

// SetVolume clamps v into [0,1] and applies it.
func (p *Player) SetVolume(v float64) {
	p.volume = clamp(v)
	p.check("volume", p.handle.SetVolume(p.volume))
}

// TrackEnded advances to the next track, wrapping after the last one.
func (p *Player) TrackEnded() {
	if len(p.tracks) == 0 {
		return
	}
	p.switchTo((p.index + 1) % len(p.tracks))
}

func (p *Player) switchTo(i int) {
	p.index = i
	p.check("load", p.handle.Load(p.tracks[i].Source))
	if p.playing {
		p.check("play", p.handle.Play())
	}
}

func (p *Player) check(op string, err error) {
	if err == nil {
		return
	}
	p.log.Warn("audio playback failed",
		zap.String("op", op),
		zap.String("track", p.Current().Name),
		zap.Error(err))
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// NopPlayback accepts every call and plays nothing.
type NopPlayback struct{}

func (NopPlayback) Load(string) error       { return nil }
func (NopPlayback) Play() error             { return nil }
func (NopPlayback) Pause() error            { return nil }
func (NopPlayback) SetVolume(float64) error { return nil }
