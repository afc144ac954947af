package journal

import (
	"github.com/idilsaglam/safespace/internal/model"
)

// Gratitude is the gratitude note store, kept in insertion order.
type Gratitude struct {
	clock Clock
	ids   ids
	items []model.GratitudeNote
	draft string
}

func NewGratitude(clock Clock) *Gratitude {
	return &Gratitude{clock: clockOrNow(clock)}
}

// Submit appends a note. Blank text is declined and reported with false.
func (s *Gratitude) Submit(text string) (model.GratitudeNote, bool) {
	if blank(text) {
		return model.GratitudeNote{}, false
	}
	now := s.clock()
	n := model.GratitudeNote{ID: s.ids.next(now), Text: text, CreatedAt: now}
	s.items = append(s.items, n)
	return n, true
}

func (s *Gratitude) SubmitDraft() (model.GratitudeNote, bool) {
	n, ok := s.Submit(s.draft)
	if ok {
		s.draft = ""
	}
	return n, ok
}

func (s *Gratitude) List() []model.GratitudeNote {
	out := make([]model.GratitudeNote, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Gratitude) Len() int { return len(s.items) }

func (s *Gratitude) Draft() string { return s.draft }

func (s *Gratitude) SetDraft(text string) { s.draft = text }

func (s *Gratitude) Restore(saved []model.GratitudeNote) {
	s.items = s.items[:0]
	for _, n := range saved {
		if blank(n.Text) {
			continue
		}
		s.ids.seen(n.ID)
		s.items = append(s.items, n)
	}
}
