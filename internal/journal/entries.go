package journal

import (
	"github.com/idilsaglam/safespace/internal/model"
)

// Entries is the journal entry store. The newest entry is kept first.
type Entries struct {
	clock Clock
	ids   ids
	items []model.JournalEntry
	mood  model.Mood
	draft string
}

func NewEntries(clock Clock) *Entries {
	return &Entries{clock: clockOrNow(clock), mood: model.Neutral}
}

// Submit records text under mood. Blank text is declined and reported with false.
func (s *Entries) Submit(text string, mood model.Mood) (model.JournalEntry, bool) {
	if blank(text) {
		return model.JournalEntry{}, false
	}
	now := s.clock()
	e := model.JournalEntry{
		ID:        s.ids.next(now),
		Text:      text,
		Mood:      mood,
		CreatedAt: now,
	}
	items := make([]model.JournalEntry, 0, len(s.items)+1)
	items = append(items, e)
	s.items = append(items, s.items...)
	return e, true
}

// SubmitDraft submits the input buffer under the selected mood and clears the
// buffer on success.
func (s *Entries) SubmitDraft() (model.JournalEntry, bool) {
	e, ok := s.Submit(s.draft, s.mood)
	if ok {
		s.draft = ""
	}
	return e, ok
}

// List returns the entries newest first.
func (s *Entries) List() []model.JournalEntry {
	out := make([]model.JournalEntry, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Entries) Len() int { return len(s.items) }

func (s *Entries) Mood() model.Mood { return s.mood }

func (s *Entries) SetMood(m model.Mood) {
	if m.Valid() {
		s.mood = m
	}
}

func (s *Entries) Draft() string { return s.draft }

func (s *Entries) SetDraft(text string) { s.draft = text }

// Restore replaces the contents with previously saved entries (newest first).
// Records with blank text or an unknown mood are dropped.
func (s *Entries) Restore(saved []model.JournalEntry) {
	s.items = s.items[:0]
	for _, e := range saved {
		if blank(e.Text) || !e.Mood.Valid() {
			continue
		}
		s.ids.seen(e.ID)
		s.items = append(s.items, e)
	}
}
