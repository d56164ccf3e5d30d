package document

import (
	"testing"

	"github.com/aretw0/storyview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	doc, err := DecodeJSON([]byte(`{
		"title": "T",
		"description": "D",
		"sections": [
			{"name": "A", "content": ["l1", "l2"], "subsections": [{"name": "B"}]},
			{"content": []}
		]
	}`))
	require.NoError(t, err)
	doc.Normalize()

	assert.Equal(t, "T", doc.Title)
	assert.Equal(t, "D", doc.Description)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, []string{"l1", "l2"}, doc.Sections[0].Content)
	assert.Equal(t, "B", doc.Sections[0].Subsections[0].Name)
	assert.Equal(t, domain.DefaultSectionName, doc.Sections[1].Name)
}

func TestDecodeJSON_SingleSubsectionObject(t *testing.T) {
	single, err := DecodeJSON([]byte(`{"sections": [
		{"name": "A", "subsections": {"name": "B", "content": ["x"], "subsections": {"name": "C"}}}
	]}`))
	require.NoError(t, err)

	list, err := DecodeJSON([]byte(`{"sections": [
		{"name": "A", "subsections": [{"name": "B", "content": ["x"], "subsections": [{"name": "C"}]}]}
	]}`))
	require.NoError(t, err)

	single.Normalize()
	list.Normalize()
	assert.Equal(t, list, single)
	require.Len(t, single.Sections[0].Subsections, 1)
	assert.Equal(t, "C", single.Sections[0].Subsections[0].Subsections[0].Name)
}

func TestDecodeJSON_Defaults(t *testing.T) {
	doc, err := DecodeJSON([]byte(`{"sections": [{"subsections": null}]}`))
	require.NoError(t, err)
	doc.Normalize()

	assert.Equal(t, domain.DefaultTitle, doc.Title)
	assert.Empty(t, doc.Description)
	assert.Equal(t, domain.DefaultSectionName, doc.Sections[0].Name)
	assert.Empty(t, doc.Sections[0].Content)
	assert.Empty(t, doc.Sections[0].Subsections)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	tests := map[string]string{
		"syntax":           `{"title": `,
		"top level array":  `[{"name": "A"}]`,
		"null":             `null`,
		"content not list": `{"sections": [{"content": 12}]}`,
		"content numbers":  `{"sections": [{"content": [1, 2]}]}`,
		"title object":     `{"title": {"a": 1}}`,
		"sections string":  `{"sections": "A"}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	doc, err := DecodeYAML([]byte(`
title: Cave
sections:
  - name: Entrance
    content:
      - It is dark.
    subsections:
      name: Tunnel
      content: [Water drips.]
`))
	require.NoError(t, err)
	doc.Normalize()

	assert.Equal(t, "Cave", doc.Title)
	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Subsections, 1)
	assert.Equal(t, "Tunnel", doc.Sections[0].Subsections[0].Name)
	assert.Equal(t, []string{"Water drips."}, doc.Sections[0].Subsections[0].Content)
}
