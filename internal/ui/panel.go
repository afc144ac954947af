package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uitable"
)

// Bar renders a percentage as a Unicode bar followed by the number.
func Bar(percent, width int) string {
	if width < 5 {
		width = 5
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	t := Current()
	filled := percent * width / 100
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vw := lipgloss.Width(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := lipgloss.Width(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// Table lays rows out in aligned, wrapped columns. The first row is the
// header.
func Table(w io.Writer, rows ...[]interface{}) {
	tbl := uitable.New()
	tbl.MaxColWidth = 72
	tbl.Wrap = true
	for i, r := range rows {
		if i == 0 {
			hdr := make([]interface{}, len(r))
			for j, c := range r {
				hdr[j] = C(Current().Accent, fmt.Sprint(c))
			}
			r = hdr
		}
		tbl.AddRow(r...)
	}
	fmt.Fprintln(w, tbl)
}
