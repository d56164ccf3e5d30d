package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the storyview banner, colored when w is a color terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.Profile

	rows := []struct {
		text  string
		color string
	}{
		{`     _                          _               `, "#818cf8"},
		{` ___| |_ ___  _ __ _   ___   _(_) _____      __`, "#a78bfa"},
		{`/ __| __/ _ \| '__| | | \ \ / / |/ _ \ \ /\ / /`, "#c084fc"},
		{`\__ \ || (_) | |  | |_| |\ V /| |  __/\ V  V / `, "#e879f9"},
		{`|___/\__\___/|_|   \__, | \_/ |_|\___| \_/\_/  `, "#f472b6"},
		{`                   |___/                        `, "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, r := range rows {
		fmt.Fprintln(w, out.String(r.text).Foreground(p.Color(r.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
