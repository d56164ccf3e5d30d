package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/storyview/internal/config"
	"github.com/aretw0/storyview/internal/logging"
	"github.com/aretw0/storyview/pkg/domain"
	"github.com/aretw0/storyview/pkg/ports"
)

var (
	errNotNumeric = fmt.Errorf("%w: not a number", domain.ErrInvalidSelection)
	errOutOfRange = fmt.Errorf("%w: out of range", domain.ErrInvalidSelection)
)

// DocumentReader pages through one document.
type DocumentReader interface {
	Read(ctx context.Context, doc *domain.Document) (domain.Result, error)
}

// Deps are the collaborators of the selection loop.
type Deps struct {
	Catalog ports.Catalog
	Loader  ports.DocumentLoader
	Asker   ports.Asker
	Reader  DocumentReader
	Output  io.Writer
	Logger  *slog.Logger
}

// Browser is the selection loop: pick a directory, pick a file, read it, repeat.
type Browser struct {
	cfg  config.Config
	deps Deps
	dir  string
}

// NewBrowser creates a selection loop. If startDir is empty the user is
// asked for a directory first.
func NewBrowser(cfg config.Config, deps Deps, startDir string) *Browser {
	if deps.Output == nil {
		deps.Output = os.Stdout
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	return &Browser{cfg: cfg, deps: deps, dir: startDir}
}

// Run loops until the user quits or input ends.
// A quit request returns nil; it never surfaces as an error.
func (b *Browser) Run(ctx context.Context) error {
	dir := b.dir
	for {
		if dir == "" {
			answer, quit, err := b.deps.Asker.Ask(ctx, b.cfg.DirectoryPrompt+"\n> ")
			if err != nil {
				return err
			}
			if quit {
				b.println(b.cfg.ExitMessage)
				return nil
			}
			dir = answer
		}

		files, err := b.deps.Catalog.List(ctx, dir)
		switch {
		case errors.Is(err, domain.ErrInvalidDirectory):
			b.deps.Logger.Debug("Directory rejected", "dir", dir, "error", err)
			b.println(b.cfg.InvalidDirectoryMessage + "\n")
			dir = ""
			continue
		case errors.Is(err, domain.ErrNoMatchingFiles):
			b.println(b.cfg.NoFilesMessage + "\n")
			dir = ""
			continue
		case err != nil:
			return err
		}

		b.printListing(files)

		choice, quit, err := b.deps.Asker.Ask(ctx, b.cfg.SelectionPrompt)
		if err != nil {
			return err
		}
		if quit {
			b.println(b.cfg.ExitMessage)
			return nil
		}

		index, err := parseSelection(choice, len(files))
		if err != nil {
			b.deps.Logger.Debug("Selection rejected", "input", choice, "error", err)
			if errors.Is(err, errOutOfRange) {
				b.println(b.cfg.OutOfRangeMessage + "\n")
			} else {
				b.println(b.cfg.InvalidInputMessage + "\n")
			}
			continue
		}

		path := filepath.Join(dir, files[index])
		res, err := b.read(ctx, path)
		if err != nil {
			if ctx.Err() != nil || !isRecoverable(err) {
				return err
			}
			b.deps.Logger.Warn("Document skipped", "path", path, "error", err)
			b.println(fmt.Sprintf("Error: %v\n", err))
			continue
		}
		if res == domain.Quit {
			return nil
		}

		b.println("\n" + b.cfg.RestartMessage + "\n")
	}
}

func (b *Browser) read(ctx context.Context, path string) (domain.Result, error) {
	doc, err := b.deps.Loader.Load(ctx, path)
	if err != nil {
		return domain.Stop, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	b.deps.Logger.Info("Reading document", "path", path, "sections", doc.Count())
	return b.deps.Reader.Read(ctx, doc)
}

func (b *Browser) printListing(files []string) {
	for i, name := range files {
		fmt.Fprintf(b.deps.Output, "[%d] : %s\n", i+1, name)
	}
}

func (b *Browser) println(msg string) {
	fmt.Fprintln(b.deps.Output, msg)
}

// parseSelection turns a 1-based answer into an index into a list of n files.
func parseSelection(choice string, n int) (int, error) {
	if choice == "" || strings.TrimFunc(choice, isDigit) != "" {
		return 0, errNotNumeric
	}
	v, err := strconv.Atoi(choice)
	if err != nil {
		// only digits, so the number is too large for int
		return 0, errOutOfRange
	}
	if v < 1 || v > n {
		return 0, errOutOfRange
	}
	return v - 1, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isRecoverable reports load failures that send the user back to the listing.
func isRecoverable(err error) bool {
	return errors.Is(err, domain.ErrMalformedDocument) ||
		errors.Is(err, domain.ErrUnsupportedFormat) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission)
}
