package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_PlainOnBuffer(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf, "v1.2.3")

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "v1.2.3")
}

func TestHeaderStyler_PlainOnBuffer(t *testing.T) {
	style := HeaderStyler(&bytes.Buffer{})
	assert.Equal(t, "=== A ===", style("=== A ==="))
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("**bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "bold")
	assert.True(t, strings.Contains(out, "text"))
}
