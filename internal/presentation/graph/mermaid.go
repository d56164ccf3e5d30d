package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/storyview/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a document's section tree.
// The document is a circle, sections with content are rectangles and empty
// sections are rounded. Solid arrows go from parent to child; dotted arrows
// follow the reading order between siblings.
func GenerateMermaid(doc *domain.Document) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	fmt.Fprintf(&sb, "    doc((\"%s\"))\n", escapeLabel(doc.Title))

	writeSections(&sb, "doc", "s", doc.Sections)
	return sb.String()
}

func writeSections(sb *strings.Builder, parentID, prefix string, sections []domain.Section) {
	prev := ""
	for i, s := range sections {
		id := prefix + "_" + strconv.Itoa(i)

		opener, closer := "[", "]"
		if len(s.Content) == 0 {
			opener, closer = "(", ")"
		}
		fmt.Fprintf(sb, "    %s%s\"%s\"%s\n", id, opener, escapeLabel(s.Name), closer)
		fmt.Fprintf(sb, "    %s --> %s\n", parentID, id)
		if prev != "" {
			fmt.Fprintf(sb, "    %s -.-> %s\n", prev, id)
		}
		prev = id

		writeSections(sb, id, id, s.Subsections)
	}
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
