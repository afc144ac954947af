// Package app owns the state of one journaling session. Views receive the
// Session by reference and mutate it only through its methods.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/safespace/internal/breathing"
	"github.com/idilsaglam/safespace/internal/companion"
	"github.com/idilsaglam/safespace/internal/insights"
	"github.com/idilsaglam/safespace/internal/journal"
	"github.com/idilsaglam/safespace/internal/model"
	"github.com/idilsaglam/safespace/internal/player"
	"github.com/idilsaglam/safespace/internal/store/jsonstore"
)

var ErrNoJournal = errors.New("no journal file configured")

// Options wires a Session. Zero values get working defaults.
type Options struct {
	Clock          journal.Clock
	Rand           companion.Source
	Playback       player.Playback
	Tracks         []model.Track
	CompanionDelay time.Duration
	// JournalPath enables loading and saving. Empty keeps the session in
	// memory only.
	JournalPath string
	Logger      *zap.Logger
}

type Session struct {
	Entries   *journal.Entries
	Gratitude *journal.Gratitude
	Companion *companion.Responder
	Quotes    *companion.QuoteRotator
	Breathing *breathing.Timer
	Player    *player.Player

	delay       time.Duration
	journalPath string
	log         *zap.Logger
}

func New(opt Options) *Session {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	src := opt.Rand
	if src == nil {
		src = companion.NewSource()
	}
	tracks := opt.Tracks
	if len(tracks) == 0 {
		tracks = player.DefaultTracks()
	}
	delay := opt.CompanionDelay
	if delay <= 0 {
		delay = companion.DefaultDelay
	}
	s := &Session{
		Entries:     journal.NewEntries(opt.Clock),
		Gratitude:   journal.NewGratitude(opt.Clock),
		Companion:   companion.NewResponder(src),
		Quotes:      companion.NewQuoteRotator(src),
		Breathing:   &breathing.Timer{},
		Player:      player.New(tracks, opt.Playback, log.Named("player")),
		delay:       delay,
		journalPath: opt.JournalPath,
		log:         log,
	}
	return s
}

// CompanionDelay is how long a companion request stays in the thinking state.
func (s *Session) CompanionDelay() time.Duration { return s.delay }

// SubmitEntry submits the journal draft. On success the companion starts
// thinking about the entry's mood and the pending request is returned.
func (s *Session) SubmitEntry() (model.JournalEntry, companion.Request, bool) {
	e, ok := s.Entries.SubmitDraft()
	if !ok {
		return model.JournalEntry{}, companion.Request{}, false
	}
	s.log.Debug("entry added", zap.Int64("id", e.ID), zap.Stringer("mood", e.Mood))
	return e, s.Companion.Begin(e.Mood), true
}

func (s *Session) SubmitGratitude() (model.GratitudeNote, bool) {
	n, ok := s.Gratitude.SubmitDraft()
	if ok {
		s.log.Debug("gratitude added", zap.Int64("id", n.ID))
	}
	return n, ok
}

func (s *Session) Stats() []insights.Stat { return insights.Aggregate(s.Entries.List()) }

func (s *Session) Trend() []insights.Point { return insights.Trend(s.Entries.List()) }

// Persistent reports whether the session is backed by a journal file.
func (s *Session) Persistent() bool { return s.journalPath != "" }

// Load restores entries and gratitude notes from the journal file.
func (s *Session) Load() error {
	if !s.Persistent() {
		return ErrNoJournal
	}
	snap, err := jsonstore.Load(s.journalPath)
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	s.Entries.Restore(snap.Entries)
	s.Gratitude.Restore(snap.Gratitude)
	s.log.Info("journal loaded",
		zap.String("path", s.journalPath),
		zap.Int("entries", s.Entries.Len()),
		zap.Int("gratitude", s.Gratitude.Len()))
	return nil
}

// Save writes entries and gratitude notes to the journal file.
func (s *Session) Save() error {
	if !s.Persistent() {
		return ErrNoJournal
	}
	snap := jsonstore.Snapshot{Entries: s.Entries.List(), Gratitude: s.Gratitude.List()}
	if err := jsonstore.Save(s.journalPath, snap); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	s.log.Info("journal saved", zap.String("path", s.journalPath))
	return nil
}
