package document

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/storyview/pkg/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type mdHeading struct {
	level int
	name  string
	line  int // first source line of the heading
	next  int // first source line after it
}

type mdNode struct {
	section  domain.Section
	level    int
	children []*mdNode
}

func (n *mdNode) build() domain.Section {
	s := n.section
	for _, c := range n.children {
		s.Subsections = append(s.Subsections, c.build())
	}
	return s
}

// DecodeMarkdown splits a markdown file into sections at its headings,
// nesting deeper headings under shallower ones. Section content is the raw
// source between a heading and the next one, so it can still be rendered as
// markdown. Text before the first heading becomes the description.
func DecodeMarkdown(data []byte, path string) (*domain.Document, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("markdown is not valid UTF-8")
	}

	root := goldmark.New().Parser().Parse(text.NewReader(data))
	lines, starts := splitLines(data)
	headings := collectHeadings(root, data, lines, starts)

	base := filepath.Base(path)
	doc := &domain.Document{Title: strings.TrimSuffix(base, filepath.Ext(base))}

	preambleEnd := len(lines)
	if len(headings) > 0 {
		preambleEnd = headings[0].line
	}
	doc.Description = strings.Join(trimBlank(lines[:preambleEnd]), "\n")

	if len(headings) == 0 {
		if doc.Description != "" {
			doc.Sections = []domain.Section{{Name: doc.Title, Content: trimBlank(lines)}}
			doc.Description = ""
		}
		return doc, nil
	}

	top := &mdNode{}
	stack := []*mdNode{top}
	for i, h := range headings {
		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].line
		}
		node := &mdNode{
			level: h.level,
			section: domain.Section{
				Name:    h.name,
				Content: trimBlank(lines[min(h.next, end):end]),
			},
		}
		for len(stack) > 1 && stack[len(stack)-1].level >= h.level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, node)
		stack = append(stack, node)
	}

	for _, c := range top.children {
		doc.Sections = append(doc.Sections, c.build())
	}
	return doc, nil
}

// collectHeadings locates the top-level headings of the parsed tree in the
// source. Fenced code that merely looks like a heading is not a heading node.
func collectHeadings(root ast.Node, src []byte, lines []string, starts []int) []mdHeading {
	var out []mdHeading
	cursor := 0
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		hd := mdHeading{level: h.Level}
		segs := h.Lines()
		if segs.Len() > 0 {
			parts := make([]string, 0, segs.Len())
			for i := 0; i < segs.Len(); i++ {
				seg := segs.At(i)
				parts = append(parts, strings.TrimSpace(string(seg.Value(src))))
			}
			hd.name = strings.Join(parts, " ")
			hd.line = lineOf(starts, segs.At(0).Start)
			hd.next = lineOf(starts, segs.At(segs.Len()-1).Start) + 1
			if !isATX(lines[hd.line]) {
				// setext underline
				hd.next++
			}
		} else {
			hd.line = findEmptyATX(lines, cursor)
			hd.next = hd.line + 1
		}
		hd.next = min(hd.next, len(lines))
		cursor = hd.next
		out = append(out, hd)
	}
	return out
}

func splitLines(src []byte) ([]string, []int) {
	raw := strings.Split(string(src), "\n")
	lines := make([]string, len(raw))
	starts := make([]int, len(raw))
	off := 0
	for i, l := range raw {
		starts[i] = off
		off += len(l) + 1
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, starts
}

func lineOf(starts []int, offset int) int {
	return sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
}

// isATX reports whether line opens an ATX heading: up to three spaces of
// indent, one to six '#', then a space, a tab or the end of the line.
func isATX(line string) bool {
	s := line
	for i := 0; i < 3 && strings.HasPrefix(s, " "); i++ {
		s = s[1:]
	}
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return false
	}
	return n == len(s) || s[n] == ' ' || s[n] == '\t'
}

func findEmptyATX(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if s := strings.TrimSpace(lines[i]); s != "" && strings.Trim(s, "# ") == "" {
			return i
		}
	}
	return from
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	out := make([]string, end-start)
	copy(out, lines[start:end])
	return out
}
