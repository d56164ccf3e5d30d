package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/storyview/pkg/domain"
)

// Catalog implements ports.Catalog over the local filesystem.
type Catalog struct {
	Extensions []string
	Sorted     bool
}

// NewCatalog creates a catalog matching the given extensions (case-insensitive).
func NewCatalog(extensions []string, sorted bool) *Catalog {
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		exts = append(exts, strings.ToLower(ext))
	}
	return &Catalog{Extensions: exts, Sorted: sorted}
}

// List returns the names of the regular files in dir that carry a known
// extension. Names keep directory order unless the catalog is sorted.
func (c *Catalog) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDirectory, dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDirectory, err)
	}
	defer f.Close()

	// ReadDir on an open file keeps the order the OS reports.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDirectory, err)
	}

	var names []string
	for _, e := range entries {
		if !c.matches(e.Name()) || !isRegular(dir, e) {
			continue
		}
		names = append(names, e.Name())
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %q", domain.ErrNoMatchingFiles, dir)
	}
	if c.Sorted {
		sort.Strings(names)
	}
	return names, nil
}

func (c *Catalog) matches(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// isRegular follows symlinks, so a link to a story file is listed.
func isRegular(dir string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}
