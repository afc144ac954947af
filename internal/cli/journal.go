package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/safespace/internal/model"
	"github.com/idilsaglam/safespace/internal/ui"
)

func addAdd(topLevel *cobra.Command, e *env) {
	var mood string
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a journal entry to the journal file",
		Example: `
safespace --journal ~/journal.json add --mood hopeful "a walk in the sun helped"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.ParseMood(mood)
			if err != nil {
				return usagef("add: %v", err)
			}
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return usagef("add: empty text")
			}
			s, err := e.fileSession()
			if err != nil {
				return err
			}
			s.Entries.SetMood(m)
			s.Entries.SetDraft(text)
			_, req, added := s.SubmitEntry()
			if !added {
				return usagef("add: empty text")
			}
			if err := s.Save(); err != nil {
				return err
			}
			ok(e.out, "added")
			fmt.Fprintln(e.out, ui.C(ui.Current().Accent, "🕷 "+s.Companion.Resolve(req)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&mood, "mood", "m", model.Neutral.String(),
		"Mood of the entry: difficult, neutral or hopeful.")
	topLevel.AddCommand(cmd)
}

func addGrateful(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "grateful <text...>",
		Short: "Add a note to the gratitude list",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return usagef("grateful: empty text")
			}
			s, err := e.fileSession()
			if err != nil {
				return err
			}
			s.Gratitude.SetDraft(text)
			if _, added := s.SubmitGratitude(); !added {
				return usagef("grateful: empty text")
			}
			if err := s.Save(); err != nil {
				return err
			}
			ok(e.out, "added")
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addStats(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show mood percentages from the journal file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.fileSession()
			if err != nil {
				return err
			}
			t := ui.Current()
			lines := []string{
				fmt.Sprintf("%s  %s %d  %s %d",
					ui.C(t.Title, "Mood Insights"),
					ui.C(t.Accent, "Entries"), s.Entries.Len(),
					ui.C(t.Success, "Gratitude"), s.Gratitude.Len()),
				"",
			}
			stats := s.Stats()
			if len(stats) == 0 {
				lines = append(lines, ui.C(t.Muted, "no entries yet"))
			}
			for _, st := range stats {
				lines = append(lines, fmt.Sprintf("%s %-9s %s  (%d)",
					st.Mood.Glyph(), st.Mood.Label(), ui.C(t.Pending, ui.Bar(st.Percent, 24)), st.Count))
			}
			lines = append(lines, "", ui.C(t.Muted, "Tip: add with `safespace add --mood hopeful \"...\"`"))
			ui.Panel(e.out, lines)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
