// Package tui is the interactive terminal front end. It renders a Session and
// turns key presses and timer ticks into Session mutations.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/safespace/internal/app"
	"github.com/idilsaglam/safespace/internal/companion"
	"github.com/idilsaglam/safespace/internal/model"
)

type view int

const (
	viewJournal view = iota
	viewInsights
	viewBreathing
	viewCoping
	viewGratitude
	viewQuotes
	viewCount
)

var viewNames = [viewCount]string{
	viewJournal:   "📝 Journal",
	viewInsights:  "📊 Insights",
	viewBreathing: "🫁 Breathing",
	viewCoping:    "🌟 Self-Care",
	viewGratitude: "🙏 Gratitude",
	viewQuotes:    "💭 Quotes",
}

const (
	breathInterval   = time.Second
	ellipsisInterval = 500 * time.Millisecond
	volumeStep       = 0.05
)

type (
	// breathTickMsg is one breathing second. gen ties it to the timer that
	// scheduled it so ticks from a torn-down timer are dropped.
	breathTickMsg struct{ gen int }
	companionMsg  struct{ req companion.Request }
	ellipsisMsg   struct{}
	trackEndedMsg struct{}
)

// Options tune the interactive program.
type Options struct {
	// Ended reports natural end of the current track.
	Ended  <-chan struct{}
	Logger *zap.Logger
}

// Model is the Bubble Tea model for the whole application.
type Model struct {
	s     *app.Session
	log   *zap.Logger
	ended <-chan struct{}

	view    view
	width   int
	height  int
	keys    keyMap
	help    help.Model
	history viewport.Model

	entryInput     textarea.Model
	gratitudeInput textarea.Model
	typing         bool

	breathGen int
	frame     int
	animating bool
	changed   bool
}

func New(s *app.Session, opt Options) Model {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		s:       s,
		log:     log,
		ended:   opt.Ended,
		keys:    defaultKeys(),
		help:    help.New(),
		history: viewport.New(76, 8),
		width:   80,
		height:  24,
	}
	m.help.Styles.ShortKey = helpStyle
	m.help.Styles.ShortDesc = helpStyle

	m.entryInput = newInput("How are you feeling? This is a safe space to express yourself...")
	m.entryInput.SetValue(s.Entries.Draft())
	m.gratitudeInput = newInput("What are you grateful for today?")
	m.gratitudeInput.SetValue(s.Gratitude.Draft())
	m.resize()
	return m
}

func newInput(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(4)
	return ta
}

// Changed reports whether any entry or gratitude note was added.
func (m Model) Changed() bool { return m.changed }

func (m Model) Init() tea.Cmd { return m.waitForTrackEnd() }

func (m Model) waitForTrackEnd() tea.Cmd {
	if m.ended == nil {
		return nil
	}
	ch := m.ended
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return trackEndedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case breathTickMsg:
		if msg.gen != m.breathGen || !m.s.Breathing.State().Active {
			return m, nil
		}
		m.s.Breathing.Tick()
		return m, m.breathTick()

	case companionMsg:
		m.s.Companion.Resolve(msg.req)
		return m, nil

	case ellipsisMsg:
		if !m.s.Companion.Thinking() {
			m.animating = false
			m.frame = 0
			return m, nil
		}
		m.frame++
		return m, ellipsisTick()

	case trackEndedMsg:
		m.s.Player.TrackEnded()
		m.log.Debug("track ended", zap.String("next", m.s.Player.Current().Name))
		return m, m.waitForTrackEnd()

	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.MoodTyping) && m.view == viewJournal:
		m.cycleMood()
		return m, nil
	}

	var cmd tea.Cmd
	if m.view == viewGratitude {
		m.gratitudeInput, cmd = m.gratitudeInput.Update(msg)
		m.s.Gratitude.SetDraft(m.gratitudeInput.Value())
	} else {
		m.entryInput, cmd = m.entryInput.Update(msg)
		m.s.Entries.SetDraft(m.entryInput.Value())
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Next):
		return m.switchView((m.view + 1) % viewCount)
	case key.Matches(msg, k.Prev):
		return m.switchView((m.view + viewCount - 1) % viewCount)
	case key.Matches(msg, k.Journal):
		return m.switchView(viewJournal)
	case key.Matches(msg, k.Insights):
		return m.switchView(viewInsights)
	case key.Matches(msg, k.Breathing):
		return m.switchView(viewBreathing)
	case key.Matches(msg, k.Coping):
		return m.switchView(viewCoping)
	case key.Matches(msg, k.Gratitude):
		return m.switchView(viewGratitude)
	case key.Matches(msg, k.Quotes):
		return m.switchView(viewQuotes)

	case key.Matches(msg, k.Play):
		m.s.Player.TogglePlay()
		return m, nil
	case key.Matches(msg, k.NextTrack):
		n := len(m.s.Player.Tracks())
		m.s.Player.SelectTrack((m.s.Player.Index() + 1) % n)
		return m, nil
	case key.Matches(msg, k.PrevTrack):
		n := len(m.s.Player.Tracks())
		m.s.Player.SelectTrack((m.s.Player.Index() + n - 1) % n)
		return m, nil
	case key.Matches(msg, k.VolUp):
		m.s.Player.SetVolume(m.s.Player.Volume() + volumeStep)
		return m, nil
	case key.Matches(msg, k.VolDown):
		m.s.Player.SetVolume(m.s.Player.Volume() - volumeStep)
		return m, nil
	}

	switch m.view {
	case viewJournal:
		switch {
		case key.Matches(msg, k.Write):
			m.typing = true
			return m, m.entryInput.Focus()
		case key.Matches(msg, k.Mood):
			m.cycleMood()
			return m, nil
		case key.Matches(msg, k.NewQuote):
			m.s.Quotes.Next()
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd

	case viewGratitude:
		if key.Matches(msg, k.Write) {
			m.typing = true
			return m, m.gratitudeInput.Focus()
		}

	case viewBreathing:
		if key.Matches(msg, k.Start) && !m.s.Breathing.State().Active {
			m.s.Breathing.Start()
			m.breathGen++
			return m, m.breathTick()
		}

	case viewQuotes:
		if key.Matches(msg, k.NewQuote) || key.Matches(msg, k.Start) {
			m.s.Quotes.Next()
		}
	}
	return m, nil
}

// switchView tears down the breathing timer when leaving its view.
func (m Model) switchView(v view) (tea.Model, tea.Cmd) {
	if m.view == viewBreathing && v != viewBreathing {
		m.s.Breathing.Reset()
		m.breathGen++
	}
	m.view = v
	m.refreshHistory()
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.view == viewGratitude {
		m.s.Gratitude.SetDraft(m.gratitudeInput.Value())
		if _, ok := m.s.SubmitGratitude(); ok {
			m.gratitudeInput.Reset()
			m.changed = true
		}
		return m, nil
	}

	m.s.Entries.SetDraft(m.entryInput.Value())
	_, req, ok := m.s.SubmitEntry()
	if !ok {
		return m, nil
	}
	m.entryInput.Reset()
	m.changed = true
	m.refreshHistory()

	cmds := []tea.Cmd{companionAfter(m.s.CompanionDelay(), req)}
	if !m.animating {
		m.animating = true
		m.frame = 0
		cmds = append(cmds, ellipsisTick())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) blur() {
	m.typing = false
	m.entryInput.Blur()
	m.gratitudeInput.Blur()
}

func (m *Model) cycleMood() {
	moods := model.Moods()
	cur := m.s.Entries.Mood()
	m.s.Entries.SetMood(moods[(int(cur)+1)%len(moods)])
}

func (m Model) breathTick() tea.Cmd {
	gen := m.breathGen
	return tea.Tick(breathInterval, func(time.Time) tea.Msg { return breathTickMsg{gen: gen} })
}

func companionAfter(d time.Duration, req companion.Request) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return companionMsg{req: req} })
}

func ellipsisTick() tea.Cmd {
	return tea.Tick(ellipsisInterval, func(time.Time) tea.Msg { return ellipsisMsg{} })
}

func (m *Model) resize() {
	w := m.width - 6
	if w < 20 {
		w = 20
	}
	m.entryInput.SetWidth(w)
	m.gratitudeInput.SetWidth(w)
	m.help.Width = w
	m.history.Width = w
	h := m.height - 26
	if h < 3 {
		h = 3
	}
	m.history.Height = h
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	m.history.SetContent(renderEntries(m.s.Entries.List(), m.history.Width))
}
