package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/storyview/pkg/domain"
)

// Header returns the header line printed before a section's content.
func Header(name string) string {
	return fmt.Sprintf("=== %s ===", name)
}

func (e *Engine) renderTitle(doc *domain.Document) {
	fmt.Fprintf(e.writer, "# %s\n", doc.Title)
	if doc.Description != "" {
		fmt.Fprintln(e.writer, doc.Description)
	}
}

// renderSection prints the header and the content lines of s.
// With a renderer, the lines are rendered as one block; a failing renderer
// falls back to the raw lines.
func (e *Engine) renderSection(s domain.Section) {
	fmt.Fprintln(e.writer, e.styler(Header(s.Name)))

	if len(s.Content) == 0 {
		return
	}

	if e.renderer != nil {
		rendered, err := e.renderer(strings.Join(s.Content, "\n"))
		if err == nil {
			fmt.Fprintln(e.writer, strings.TrimRight(rendered, "\n"))
			return
		}
		e.logger.Warn("Failed to render section content", "section", s.Name, "error", err)
	}

	for _, line := range s.Content {
		fmt.Fprintln(e.writer, line)
	}
}
