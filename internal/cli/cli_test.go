package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/safespace/internal/companion"
	"github.com/idilsaglam/safespace/internal/model"
	"github.com/idilsaglam/safespace/internal/player"
	"github.com/idilsaglam/safespace/internal/store/jsonstore"
)

type firstPick struct{}

func (firstPick) Intn(int) int { return 0 }

type result struct {
	code        int
	out, errOut string
}

// run executes args in an isolated home and working directory.
func run(t *testing.T, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	t0 := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	e := &env{
		v:      viper.New(),
		out:    &out,
		errOut: &errOut,
		rand:   firstPick{},
		clock:  func() time.Time { return t0 },
		tick:   time.Millisecond,
		noLog:  true,
	}
	code := execute(e, append([]string{"--theme", "mono"}, args...))
	return result{code: code, out: out.String(), errOut: errOut.String()}
}

func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("SAFESPACE_CONFIG_PATH", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestAddAndStats(t *testing.T) {
	dir := isolate(t)
	journal := filepath.Join(dir, "journal.json")

	r := run(t, "--journal", journal, "add", "--mood", "hopeful", "a", "walk", "helped")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "✔ added")
	assert.Contains(t, r.out, companion.Responses(model.Hopeful)[0])

	r = run(t, "--journal", journal, "add", "-m", "difficult", "rough night")
	require.Equal(t, 0, r.code, r.errOut)

	snap, err := jsonstore.Load(journal)
	require.NoError(t, err)
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "rough night", snap.Entries[0].Text)
	assert.Equal(t, model.Difficult, snap.Entries[0].Mood)
	assert.Equal(t, "a walk helped", snap.Entries[1].Text)
	assert.NotEqual(t, snap.Entries[0].ID, snap.Entries[1].ID)

	r = run(t, "--journal", journal, "stats")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "Entries 2")
	assert.Contains(t, r.out, " 50%")
	assert.NotContains(t, r.out, "neutral")
}

func TestStatsEmptyJournal(t *testing.T) {
	dir := isolate(t)
	r := run(t, "--journal", filepath.Join(dir, "none.json"), "stats")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "no entries yet")
}

func TestJournalFromConfigFile(t *testing.T) {
	dir := isolate(t)
	journal := filepath.Join(dir, "from-config.json")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".safespace.yaml"),
		[]byte("journal: "+journal+"\n"), 0o600))

	r := run(t, "grateful", "warm", "tea")
	require.Equal(t, 0, r.code, r.errOut)

	snap, err := jsonstore.Load(journal)
	require.NoError(t, err)
	require.Len(t, snap.Gratitude, 1)
	assert.Equal(t, "warm tea", snap.Gratitude[0].Text)
	assert.Empty(t, snap.Entries)
}

func TestJournalCommandsNeedAFile(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{{"add", "hi"}, {"grateful", "hi"}, {"stats"}} {
		r := run(t, args...)
		assert.Equal(t, 1, r.code, args)
		assert.Contains(t, r.errOut, "no journal file configured", args)
	}
}

func TestUsageErrors(t *testing.T) {
	dir := isolate(t)
	journal := filepath.Join(dir, "journal.json")
	cases := map[string][]string{
		"empty text":      {"--journal", journal, "add", "  "},
		"no text":         {"--journal", journal, "grateful"},
		"unknown mood":    {"--journal", journal, "add", "--mood", "ecstatic", "hi"},
		"unknown flag":    {"quote", "--loud"},
		"unknown command": {"dance"},
		"negative cycles": {"breathe", "--cycles", "-1"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			r := run(t, args...)
			assert.Equal(t, 2, r.code)
			assert.Contains(t, r.errOut, "✖")
			assert.Contains(t, r.errOut, "Usage:")
		})
	}
	_, err := os.Stat(journal)
	assert.True(t, os.IsNotExist(err), "failed commands do not write the journal")
}

func TestContentCommands(t *testing.T) {
	isolate(t)

	r := run(t, "quote")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, companion.Quotes()[0].Text)
	assert.Contains(t, r.out, "- "+companion.Quotes()[0].Author)

	r = run(t, "coping")
	require.Equal(t, 0, r.code, r.errOut)
	for _, s := range companion.Strategies() {
		assert.Contains(t, r.out, s.Title)
	}

	r = run(t, "tracks")
	require.Equal(t, 0, r.code, r.errOut)
	for _, tr := range player.DefaultTracks() {
		assert.Contains(t, r.out, tr.Name)
	}
}

func TestBreatheCycle(t *testing.T) {
	isolate(t)
	r := run(t, "breathe", "--cycles", "1")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "inhale  Breathe in slowly... 1 2 3\n")
	assert.Contains(t, r.out, "hold    Hold your breath... 1 2 3 4 5 6\n")
	assert.Contains(t, r.out, "exhale  Exhale slowly... 1 2 3 4 5 6 7\n")
	assert.Contains(t, r.out, "✔ 1 breathing cycles done")
}

func TestBadConfigFails(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".safespace.yaml"),
		[]byte("player:\n  volume: 3\n"), 0o600))
	r := run(t, "quote")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.errOut, "player.volume")
}
