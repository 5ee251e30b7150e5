package session

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Adaptive colors matching the CLI palette.
var (
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// styles are bound to the renderer of the session's output, so nothing is
// colored when output is not a terminal.
type styles struct {
	brand   lipgloss.Style
	rule    lipgloss.Style
	prompt  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		brand:   r.NewStyle().Bold(true).Foreground(colorCyan),
		rule:    r.NewStyle().Foreground(colorDim),
		prompt:  r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Bold(true).Foreground(colorYellow),
		err:     r.NewStyle().Bold(true).Foreground(colorRed),
		hint:    r.NewStyle().Foreground(colorDim),
	}
}

// center left-pads s so it sits in the middle of a line of the given width.
func center(s string, width int) string {
	pad := (width - ansi.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
