package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/safespace/internal/model"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Entries)
	assert.Empty(t, s.Gratitude)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.json")
	at := time.Date(2024, time.July, 4, 20, 15, 0, 0, time.UTC)
	want := Snapshot{
		Entries: []model.JournalEntry{
			{ID: 2, Text: "better evening", Mood: model.Hopeful, CreatedAt: at.Add(time.Hour)},
			{ID: 1, Text: "heavy day", Mood: model.Difficult, CreatedAt: at},
		},
		Gratitude: []model.GratitudeNote{{ID: 1, Text: "my sister", CreatedAt: at}},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"mood": "difficult"`)
}

func TestSaveEmptyWritesLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, Save(path, Snapshot{}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"entries": []`)
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := Load(path)
	assert.ErrorContains(t, err, "json unmarshal")
}
