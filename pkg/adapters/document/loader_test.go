package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/storyview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStory(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		doc, err := loader.Load(ctx, writeStory(t, "a.JSON", `{"sections": [{"content": ["x"]}]}`))
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultTitle, doc.Title)
		assert.Equal(t, domain.DefaultSectionName, doc.Sections[0].Name)
	})

	t.Run("yaml", func(t *testing.T) {
		doc, err := loader.Load(ctx, writeStory(t, "a.yml", "title: Y\n"))
		require.NoError(t, err)
		assert.Equal(t, "Y", doc.Title)
	})

	t.Run("markdown", func(t *testing.T) {
		doc, err := loader.Load(ctx, writeStory(t, "a.md", "# H\nbody\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Count())
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeStory(t, "bad.json", `{"sections": [`)
		_, err := loader.Load(ctx, path)
		assert.ErrorIs(t, err, domain.ErrMalformedDocument)

		var malformed *domain.MalformedDocumentError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, path, malformed.Path)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := loader.Load(ctx, writeStory(t, "a.txt", "hi"))
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "gone.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.NotErrorIs(t, err, domain.ErrMalformedDocument)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := loader.Load(cctx, "whatever.json")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoader_CustomDecoder(t *testing.T) {
	loader := NewLoader(WithDecoder(".TXT", func(data []byte, _ string) (*domain.Document, error) {
		return &domain.Document{Title: string(data)}, nil
	}))

	assert.Contains(t, loader.Extensions(), ".txt")

	doc, err := loader.Load(context.Background(), writeStory(t, "notes.txt", "plain"))
	require.NoError(t, err)
	assert.Equal(t, "plain", doc.Title)
}
