package ui

import (
	"strings"

	"github.com/fatih/color"
)

// Theme bundles palette + symbols + box borders.
// All output helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending *color.Color
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	BarFull, BarEmpty                             string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:    color.New(color.FgHiMagenta, color.Bold),
			Muted:    color.New(color.FgHiBlack),
			Accent:   color.New(color.FgHiCyan),
			Success:  color.New(color.FgGreen),
			Error:    color.New(color.FgRed, color.Bold),
			Pending:  color.New(color.FgHiYellow),
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		color.NoColor = true
		current = Theme{
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			BarFull: "#", BarEmpty: ".",
		}
	default: // classic
		current = Theme{
			Title:    color.New(color.Bold),
			Muted:    color.New(color.FgHiBlack),
			Accent:   color.New(color.FgBlue),
			Success:  color.New(color.FgGreen),
			Error:    color.New(color.FgRed, color.Bold),
			Pending:  color.New(color.FgYellow),
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			BarFull: "█", BarEmpty: "░",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
