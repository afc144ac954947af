package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/safespace/internal/companion"
	"github.com/idilsaglam/safespace/internal/player"
	"github.com/idilsaglam/safespace/internal/ui"
)

func addQuote(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a random motivational quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := companion.Pick(e.source(), companion.Quotes())
			if err != nil {
				return err
			}
			t := ui.Current()
			ui.Panel(e.out, []string{
				ui.C(t.Title, "\""+q.Text+"\""),
				ui.C(t.Muted, "- "+q.Author),
			})
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addCoping(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "coping",
		Aliases: []string{"self-care"},
		Short:   "List self-care strategies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]interface{}{{"", "STRATEGY", "WHAT TO DO"}}
			for _, s := range companion.Strategies() {
				rows = append(rows, []interface{}{s.Emoji, s.Title, s.Description})
			}
			ui.Table(e.out, rows...)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addTracks(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "List the ambient tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]interface{}{{"#", "", "TRACK", "SOURCE"}}
			for i, t := range player.DefaultTracks() {
				rows = append(rows, []interface{}{i + 1, t.Emoji, t.Name, t.Source})
			}
			ui.Table(e.out, rows...)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func (e *env) source() companion.Source {
	if e.rand == nil {
		e.rand = companion.NewSource()
	}
	return e.rand
}
