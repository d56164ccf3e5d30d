package ports

import (
	"context"

	"github.com/aretw0/storyview/pkg/domain"
)

// DocumentLoader turns a story file into a normalized Document.
type DocumentLoader interface {
	// Load reads and decodes the file at path.
	// Decoding failures are reported as *domain.MalformedDocumentError.
	Load(ctx context.Context, path string) (*domain.Document, error)
}

// Catalog lists the story files of a directory.
type Catalog interface {
	// List returns file names (not paths) in display order.
	// It fails with domain.ErrInvalidDirectory or domain.ErrNoMatchingFiles.
	List(ctx context.Context, dir string) ([]string, error)
}
