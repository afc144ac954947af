package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev                   key.Binding
	Journal, Insights, Breathing key.Binding
	Coping, Gratitude, Quotes    key.Binding
	Write, Submit, Cancel        key.Binding
	Mood, MoodTyping             key.Binding
	Start, NewQuote              key.Binding
	Play, PrevTrack, NextTrack   key.Binding
	VolUp, VolDown               key.Binding
	Up, Down                     key.Binding
	Quit                         key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Journal:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "journal")),
		Insights:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "insights")),
		Breathing: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "breathing")),
		Coping:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "self-care")),
		Gratitude: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "gratitude")),
		Quotes:    key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "quotes")),

		Write:      key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i", "write")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "share")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop writing")),
		Mood:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mood")),
		MoodTyping: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "mood")),

		Start:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start")),
		NewQuote: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new quote")),

		Play:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play/pause")),
		PrevTrack: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev track")),
		NextTrack: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next track")),
		VolUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolDown:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "volume down")),

		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeys adapts a context's bindings to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
