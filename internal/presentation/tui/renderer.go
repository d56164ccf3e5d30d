package tui

import (
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// It picks a light or dark style from the terminal background; if glamour
// cannot be initialized the text is returned unchanged.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// HeaderStyler returns a function that emphasizes section headers on w.
// On writers without color support the header is left as is.
func HeaderStyler(w io.Writer) func(string) string {
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		return func(s string) string { return s }
	}
	return func(s string) string {
		return out.String(s).Bold().Foreground(out.Profile.Color("#c084fc")).String()
	}
}
