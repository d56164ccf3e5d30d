package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/storyview/internal/config"
	"github.com/aretw0/storyview/internal/presentation/graph"
	"github.com/aretw0/storyview/pkg/adapters/document"
	"github.com/aretw0/storyview/pkg/domain"
)

// RunOptions contains all the configuration for the root command.
type RunOptions struct {
	ConfigPath string
	Dir        string
	Debug      bool
	Markdown   bool
	NoBanner   bool
	Version    string

	// Input and Output default to os.Stdin and os.Stdout.
	Input  io.Reader
	Output io.Writer
}

// Execute loads the configuration and runs the selection loop until the user quits.
func Execute(opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Markdown {
		cfg.RenderMarkdown = true
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	return RunSession(sigCtx, cfg, opts)
}

// Inspect prints the outline of a story file without paging through it.
// With mermaid set, the outline is a Mermaid flowchart instead.
func Inspect(ctx context.Context, path string, mermaid bool, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	doc, err := document.NewLoader().Load(ctx, path)
	if err != nil {
		return err
	}

	if mermaid {
		fmt.Fprint(w, graph.GenerateMermaid(doc))
		return nil
	}

	fmt.Fprintf(w, "# %s (%d sections)\n", doc.Title, doc.Count())
	doc.Walk(func(s domain.Section, depth int) bool {
		fmt.Fprintf(w, "%s- %s (%d lines)\n", strings.Repeat("  ", depth), s.Name, len(s.Content))
		return true
	})
	return nil
}
