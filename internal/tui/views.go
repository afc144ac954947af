package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/idilsaglam/safespace/internal/breathing"
	"github.com/idilsaglam/safespace/internal/companion"
	"github.com/idilsaglam/safespace/internal/insights"
	"github.com/idilsaglam/safespace/internal/model"
)

const (
	avatar    = "🕷"
	timestamp = "Jan 2, 2006 15:04"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Safe Space"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("A place to express, reflect, and grow"))
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	b.WriteString(m.companionView())
	b.WriteString("\n")

	switch m.view {
	case viewInsights:
		b.WriteString(m.insightsView())
	case viewBreathing:
		b.WriteString(breathingView(m.s.Breathing.State()))
	case viewCoping:
		b.WriteString(m.copingView())
	case viewGratitude:
		b.WriteString(m.gratitudeView())
	case viewQuotes:
		b.WriteString(quoteView(m.s.Quotes.Current()))
	default:
		b.WriteString(m.journalView())
	}
	b.WriteString("\n")
	b.WriteString(m.playerView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.helpKeys()))
	return panelString(b.String())
}

func (m Model) tabs() string {
	out := make([]string, 0, viewCount)
	for v := view(0); v < viewCount; v++ {
		label := fmt.Sprintf("%d %s", v+1, viewNames[v])
		if v == m.view {
			out = append(out, activeTab.Render(label))
		} else {
			out = append(out, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m Model) companionView() string {
	text := m.s.Companion.Message()
	if m.s.Companion.Thinking() {
		text = "Thinking" + companion.Ellipsis(m.frame)
	}
	w := m.width - 16
	if w < 20 {
		w = 20
	}
	bubble := bubbleStyle.Render(wordwrap.String(text, w))
	face := avatar
	if m.s.Companion.Thinking() {
		face += pendingStyle.Render("●")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, face+"  ", bubble)
}

func (m Model) journalView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Safe Space Journal"))
	b.WriteString("\n")
	b.WriteString(moodPicker(m.s.Entries.Mood()))
	b.WriteString("\n")
	b.WriteString(m.entryInput.View())
	b.WriteString("\n")
	b.WriteString(quoteView(m.s.Quotes.Current()))
	b.WriteString("\n")
	if m.s.Entries.Len() == 0 {
		b.WriteString(mutedStyle.Render("no entries yet"))
	} else {
		b.WriteString(m.history.View())
	}
	return b.String()
}

func moodPicker(selected model.Mood) string {
	parts := make([]string, 0, 3)
	for _, md := range model.Moods() {
		label := md.Glyph() + " " + md.String()
		if md == selected {
			parts = append(parts, selectedStyle.Render(label))
		} else {
			parts = append(parts, mutedStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func renderEntries(entries []model.JournalEntry, width int) string {
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render(e.CreatedAt.Format(timestamp)))
		b.WriteString(" ")
		b.WriteString(e.Mood.Glyph())
		b.WriteString("\n")
		b.WriteString(wordwrap.String(e.Text, width))
		b.WriteString("\n")
		b.WriteString(accentStyle.Render("👍 You're not alone"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) insightsView() string {
	stats := m.s.Stats()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mood Trends"))
	b.WriteString("\n")
	if len(stats) == 0 {
		b.WriteString(mutedStyle.Render("Share a journal entry to see your mood insights."))
		return b.String()
	}
	for _, st := range stats {
		fmt.Fprintf(&b, "%s %-9s %s %d\n", st.Mood.Glyph(), st.Mood.Label(), percentBar(st.Percent, 24), st.Count)
	}
	b.WriteString("\n")
	b.WriteString(trendChart(m.s.Trend(), m.width-20))
	return b.String()
}

func percentBar(pct, width int) string {
	filled := pct * width / 100
	return successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3d%%", pct)
}

// trendChart plots the most recent points that fit in width, one column per
// entry, with hopeful on the top row.
func trendChart(points []insights.Point, width int) string {
	if width < 4 {
		width = 4
	}
	cols := width / 2
	if len(points) > cols {
		points = points[len(points)-cols:]
	}
	moods := model.Moods()
	var b strings.Builder
	for r := len(moods) - 1; r >= 0; r-- {
		md := moods[r]
		fmt.Fprintf(&b, "%-9s │", md.Label())
		for _, p := range points {
			if p.Value == md.Value() {
				b.WriteString(accentStyle.Render(" ●"))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", 10) + "└" + strings.Repeat("─", 2*len(points)))
	if len(points) > 0 {
		first := points[0].Date.Format("Jan 2")
		last := points[len(points)-1].Date.Format("Jan 2")
		b.WriteString("\n" + strings.Repeat(" ", 11) + mutedStyle.Render(first+" → "+last))
	}
	return b.String()
}

func breathingView(s breathing.State) string {
	circle := breathStyle.Render(fmt.Sprintf("%d", s.Count))
	var b strings.Builder
	b.WriteString(titleStyle.Render("Breathing Exercise"))
	b.WriteString("\n")
	b.WriteString(circle)
	b.WriteString("\n")
	b.WriteString(s.Prompt())
	if s.Active {
		fmt.Fprintf(&b, "  %s", mutedStyle.Render(fmt.Sprintf("(%s %d/%d)", s.Phase, s.Count, s.Phase.Threshold())))
	} else {
		b.WriteString("\n")
		b.WriteString(accentStyle.Render("[space] Start Breathing Exercise"))
	}
	return b.String()
}

func (m Model) copingView() string {
	cards := make([]string, 0, 8)
	w := (m.width - 12) / 2
	if w < 20 {
		w = 20
	}
	for _, st := range companion.Strategies() {
		body := st.Emoji + " " + titleStyle.Render(st.Title) + "\n" +
			mutedStyle.Render(wordwrap.String(st.Description, w-4))
		cards = append(cards, cardStyle.Width(w).Render(body))
	}
	rows := make([]string, 0, len(cards)/2+1)
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return titleStyle.Render("Self-Care Toolkit") + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) gratitudeView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Gratitude Practice"))
	b.WriteString("\n")
	b.WriteString(m.gratitudeInput.View())
	b.WriteString("\n")
	notes := m.s.Gratitude.List()
	if len(notes) == 0 {
		b.WriteString(mutedStyle.Render("nothing here yet"))
	}
	for _, n := range notes {
		b.WriteString(gratitudeStyle.Render("✦ " + wordwrap.String(n.Text, m.width-10)))
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(n.CreatedAt.Format(timestamp)))
		b.WriteString("\n")
	}
	return b.String()
}

func quoteView(q model.Quote) string {
	return cardStyle.Render(fmt.Sprintf("\"%s\"\n%s", q.Text, mutedStyle.Render("- "+q.Author)))
}

func (m Model) playerView() string {
	p := m.s.Player
	state := "▶️"
	if p.Playing() {
		state = "⏸️"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  Volume %s\n",
		titleStyle.Render("Ambient Sounds"), state, percentBar(int(p.Volume()*100+0.5), 10))
	for i, t := range p.Tracks() {
		line := fmt.Sprintf("%s %s", t.Emoji, t.Name)
		if i == p.Index() {
			if p.Playing() {
				line += " ♪"
			}
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(p.Tracks())-1 {
			b.WriteString("  ")
		}
	}
	return b.String()
}

func (m Model) helpKeys() helpKeys {
	k := m.keys
	if m.typing {
		out := helpKeys{k.Submit, k.Cancel}
		if m.view == viewJournal {
			out = append(out, k.MoodTyping)
		}
		return out
	}
	var ctx []key.Binding
	switch m.view {
	case viewJournal:
		ctx = []key.Binding{k.Write, k.Mood, k.NewQuote, k.Up}
	case viewGratitude:
		ctx = []key.Binding{k.Write}
	case viewBreathing:
		ctx = []key.Binding{k.Start}
	case viewQuotes:
		ctx = []key.Binding{k.NewQuote}
	}
	return append(helpKeys(ctx), k.Next, k.Play, k.NextTrack, k.VolUp, k.VolDown, k.Quit)
}
