package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"confirm_prompt": "Next? ",
		"allow_uppercase_confirm": false,
		"extensions": ["JSON", "yaml"],
		"sort_files": false
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Next? ", cfg.ConfirmPrompt)
	assert.False(t, cfg.CaseInsensitiveConfirm)
	assert.False(t, cfg.SortFiles)
	assert.Equal(t, []string{".json", ".yaml"}, cfg.Extensions)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().RestartMessage, cfg.RestartMessage)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
restart_message: "Back to the shelf."
extensions:
  - .md
render_markdown: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Back to the shelf.", cfg.RestartMessage)
	assert.Equal(t, []string{".md"}, cfg.Extensions)
	assert.True(t, cfg.RenderMarkdown)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"confirm_prompt": "from file"}`)
	t.Setenv("STORYVIEW_CONFIRM_PROMPT", "from env")
	t.Setenv("STORYVIEW_EXTENSIONS", ".json,.yml")
	t.Setenv("STORYVIEW_ALLOW_UPPERCASE_CONFIRM", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.ConfirmPrompt)
	assert.Equal(t, []string{".json", ".yml"}, cfg.Extensions)
	assert.False(t, cfg.CaseInsensitiveConfirm)
}

func TestLoad_MarkdownExtensionsKey(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "config.json", `{"markdown_extensions": [".md", "markdown"]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{".md", ".markdown"}, cfg.Extensions)
	})

	t.Run("yaml", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "config.yaml", "markdown_extensions: [.md]\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{".md"}, cfg.Extensions)
	})

	t.Run("extensions wins", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "config.json", `{"extensions": [".yaml"], "markdown_extensions": [".md"]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{".yaml"}, cfg.Extensions)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad json", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"confirm_prompt":`))
		assert.ErrorContains(t, err, "failed to parse config.json")
	})

	t.Run("no extensions", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"extensions": [" "]}`))
		assert.ErrorContains(t, err, "extension")
	})

	t.Run("empty confirm prompt", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.yml", `confirm_prompt: ""`))
		assert.ErrorContains(t, err, "confirm_prompt")
	})
}
