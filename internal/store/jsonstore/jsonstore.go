package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/safespace/internal/model"
)

// JSON-backed journal file. Single file, human-readable, portable.
// No locking; one process owns the journal at a time.

// Snapshot is the saved state of a session. Entries are newest first,
// gratitude notes in insertion order.
type Snapshot struct {
	Entries   []model.JournalEntry  `json:"entries"`
	Gratitude []model.GratitudeNote `json:"gratitude"`
}

// Load reads the journal at path. A missing file is an empty journal.
func Load(path string) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return s, nil
}

// Save writes the journal to path, creating its directory when needed.
// The file is replaced atomically.
func Save(path string, s Snapshot) error {
	if s.Entries == nil {
		s.Entries = []model.JournalEntry{}
	}
	if s.Gratitude == nil {
		s.Gratitude = []model.GratitudeNote{}
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".journal-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
