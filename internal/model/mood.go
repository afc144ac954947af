package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mood is the coarse self-reported valence attached to a journal entry.
// Values are ordered from lowest to highest valence.
type Mood int

const (
	Difficult Mood = iota
	Neutral
	Hopeful
)

var ErrUnknownMood = errors.New("unknown mood")

// Moods lists every mood in valence order.
func Moods() []Mood { return []Mood{Difficult, Neutral, Hopeful} }

func (m Mood) String() string {
	switch m {
	case Difficult:
		return "difficult"
	case Neutral:
		return "neutral"
	case Hopeful:
		return "hopeful"
	}
	return fmt.Sprintf("mood(%d)", int(m))
}

// Label is the capitalised name used in charts.
func (m Mood) Label() string {
	s := m.String()
	if !m.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m Mood) Glyph() string {
	switch m {
	case Difficult:
		return "💙"
	case Hopeful:
		return "✨"
	}
	return "💜"
}

// Value maps the mood onto the 1..3 chart axis.
func (m Mood) Value() int { return int(m) + 1 }

func (m Mood) Valid() bool { return m >= Difficult && m <= Hopeful }

func ParseMood(s string) (Mood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "difficult":
		return Difficult, nil
	case "neutral":
		return Neutral, nil
	case "hopeful":
		return Hopeful, nil
	}
	return Neutral, fmt.Errorf("%w: %q", ErrUnknownMood, s)
}

func (m Mood) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMood, int(m))
	}
	return json.Marshal(m.String())
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseMood(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
