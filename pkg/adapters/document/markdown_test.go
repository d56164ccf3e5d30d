package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkdown = `Opening words.

# Chapter One

First line.
- a list item

## Scene

` + "```sh\n# not a heading\n```" + `

# Chapter Two
Second
======

Body.
`

func TestDecodeMarkdown(t *testing.T) {
	doc, err := DecodeMarkdown([]byte(sampleMarkdown), "stories/tale.md")
	require.NoError(t, err)

	assert.Equal(t, "tale", doc.Title)
	assert.Equal(t, "Opening words.", doc.Description)
	require.Len(t, doc.Sections, 3)

	one := doc.Sections[0]
	assert.Equal(t, "Chapter One", one.Name)
	assert.Equal(t, []string{"First line.", "- a list item"}, one.Content)
	require.Len(t, one.Subsections, 1)
	assert.Equal(t, "Scene", one.Subsections[0].Name)
	assert.Equal(t, []string{"```sh", "# not a heading", "```"}, one.Subsections[0].Content)

	two := doc.Sections[1]
	assert.Equal(t, "Chapter Two", two.Name)
	assert.Empty(t, two.Content)

	setext := doc.Sections[2]
	assert.Equal(t, "Second", setext.Name)
	assert.Equal(t, []string{"Body."}, setext.Content)
}

func TestDecodeMarkdown_NoHeadings(t *testing.T) {
	doc, err := DecodeMarkdown([]byte("just\ntext\n"), "note.markdown")
	require.NoError(t, err)

	assert.Equal(t, "note", doc.Title)
	assert.Empty(t, doc.Description)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "note", doc.Sections[0].Name)
	assert.Equal(t, []string{"just", "text"}, doc.Sections[0].Content)
}

func TestDecodeMarkdown_Empty(t *testing.T) {
	doc, err := DecodeMarkdown(nil, "empty.md")
	require.NoError(t, err)
	assert.Empty(t, doc.Sections)
}

func TestDecodeMarkdown_InvalidUTF8(t *testing.T) {
	_, err := DecodeMarkdown([]byte{0xff, 0xfe}, "bad.md")
	assert.Error(t, err)
}

func TestDecodeMarkdown_SetextStartingWithHash(t *testing.T) {
	doc, err := DecodeMarkdown([]byte("#hashtag story\n===\n\nBody.\n"), "tag.md")
	require.NoError(t, err)

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "#hashtag story", doc.Sections[0].Name)
	assert.Equal(t, []string{"Body."}, doc.Sections[0].Content)
}

func TestIsATX(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"# Title", true},
		{"###", true},
		{"   ## indented", true},
		{"##\tTabbed", true},
		{"#hashtag", false},
		{"####### seven", false},
		{"    # code", false},
		{"plain", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isATX(tt.line))
		})
	}
}
