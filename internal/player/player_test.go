package player

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/safespace/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePlayback struct {
	calls   []string
	loaded  string
	volume  float64
	playErr error
}

func (f *fakePlayback) Load(src string) error {
	f.calls = append(f.calls, "load "+src)
	f.loaded = src
	return nil
}

func (f *fakePlayback) Play() error {
	f.calls = append(f.calls, "play")
	return f.playErr
}

func (f *fakePlayback) Pause() error {
	f.calls = append(f.calls, "pause")
	return nil
}

func (f *fakePlayback) SetVolume(v float64) error {
	f.volume = v
	return nil
}

func testTracks(n int) []model.Track {
	out := make([]model.Track, n)
	for i := range out {
		out[i] = model.Track{Name: string(rune('A' + i)), Source: "src-" + string(rune('a'+i))}
	}
	return out
}

func TestNewPlayerState(t *testing.T) {
	f := &fakePlayback{}
	p := New(testTracks(3), f, nil)
	assert.Equal(t, 0, p.Index())
	assert.False(t, p.Playing())
	assert.Equal(t, DefaultVolume, p.Volume())
	assert.Equal(t, "src-a", f.loaded)
	assert.Equal(t, DefaultVolume, f.volume)
}

func TestTogglePlay(t *testing.T) {
	f := &fakePlayback{}
	p := New(testTracks(2), f, nil)
	f.calls = nil

	p.TogglePlay()
	assert.True(t, p.Playing())
	p.TogglePlay()
	assert.False(t, p.Playing())
	assert.Equal(t, []string{"play", "pause"}, f.calls)
}

func TestSelectTrackForcesPlaying(t *testing.T) {
	f := &fakePlayback{}
	p := New(testTracks(3), f, nil)
	f.calls = nil

	p.SelectTrack(2)
	assert.Equal(t, 2, p.Index())
	assert.True(t, p.Playing())
	assert.Equal(t, []string{"load src-c", "play"}, f.calls)

	f.calls = nil
	p.SelectTrack(7)
	p.SelectTrack(-1)
	assert.Equal(t, 2, p.Index())
	assert.Empty(t, f.calls)

	p.TogglePlay()
	f.calls = nil
	p.SelectTrack(2)
	assert.True(t, p.Playing())
	assert.Equal(t, []string{"play"}, f.calls)
}

func TestSetVolumeClamps(t *testing.T) {
	f := &fakePlayback{}
	p := New(testTracks(1), f, nil)
	cases := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{-3, 0},
		{1.7, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
	}
	for _, c := range cases {
		p.SetVolume(c.in)
		assert.Equal(t, c.want, p.Volume())
		assert.Equal(t, c.want, f.volume)
	}
}

func TestTrackEndedWraps(t *testing.T) {
	f := &fakePlayback{}
	n := 5
	p := New(testTracks(n), f, nil)
	p.SelectTrack(n - 1)
	f.calls = nil

	p.TrackEnded()
	assert.Equal(t, 0, p.Index())
	assert.True(t, p.Playing())
	assert.Equal(t, []string{"load src-a", "play"}, f.calls)

	p.TrackEnded()
	assert.Equal(t, 1, p.Index())
}

func TestTrackEndedWhilePausedDoesNotPlay(t *testing.T) {
	f := &fakePlayback{}
	p := New(testTracks(2), f, nil)
	f.calls = nil
	p.TrackEnded()
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, []string{"load src-b"}, f.calls)
}

func TestPlaybackFailureIsLoggedAndIgnored(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := &fakePlayback{playErr: errors.New("network down")}
	p := New(testTracks(2), f, zap.New(core))

	p.TogglePlay()
	assert.True(t, p.Playing(), "state still reflects the user's intent")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audio playback failed", entry.Message)
	assert.Equal(t, "play", entry.ContextMap()["op"])
}

func TestDefaultTracks(t *testing.T) {
	tracks := DefaultTracks()
	require.Len(t, tracks, 5)
	assert.Equal(t, "Calm Meditation", tracks[0].Name)
	tracks[0].Name = "x"
	assert.Equal(t, "Calm Meditation", DefaultTracks()[0].Name)
}
