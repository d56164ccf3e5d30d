package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/storyview/internal/logging"
	"github.com/aretw0/storyview/pkg/domain"
)

// Decoder turns the bytes of a file into a Document.
// path is informational (error messages, default titles).
type Decoder func(data []byte, path string) (*domain.Document, error)

// Loader reads story files from disk, choosing a Decoder by extension.
type Loader struct {
	decoders map[string]Decoder
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Loader.
type Option func(*Loader)

// WithDecoder registers dec for the given extension (e.g. ".json").
func WithDecoder(ext string, dec Decoder) Option {
	return func(l *Loader) {
		l.decoders[strings.ToLower(ext)] = dec
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader for JSON, YAML and Markdown story files.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		decoders: map[string]Decoder{
			".json":     func(data []byte, _ string) (*domain.Document, error) { return DecodeJSON(data) },
			".yaml":     func(data []byte, _ string) (*domain.Document, error) { return DecodeYAML(data) },
			".yml":      func(data []byte, _ string) (*domain.Document, error) { return DecodeYAML(data) },
			".md":       DecodeMarkdown,
			".markdown": DecodeMarkdown,
		},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Extensions returns the extensions the loader can decode, sorted.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.decoders))
	for ext := range l.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load reads, decodes and normalizes the file at path.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := l.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := dec(data, path)
	if err != nil {
		l.logger.Debug("Document rejected", "path", path, "error", err)
		return nil, &domain.MalformedDocumentError{Path: path, Err: err}
	}
	doc.Normalize()

	l.logger.Debug("Document loaded", "path", path, "sections", doc.Count())
	return doc, nil
}
