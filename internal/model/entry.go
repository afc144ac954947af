package model

import "time"

// JournalEntry is a single mood-tagged journal record.
// Entries are immutable once created.
type JournalEntry struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
}

// GratitudeNote is one line of the gratitude list.
type GratitudeNote struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
