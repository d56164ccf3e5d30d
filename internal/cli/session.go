package cli

import (
	"io"
	"os"
	"slices"

	"github.com/aretw0/storyview/internal/config"
	"github.com/aretw0/storyview/internal/presentation/tui"
	"github.com/aretw0/storyview/internal/runtime"
	"github.com/aretw0/storyview/pkg/adapters/document"
	"github.com/aretw0/storyview/pkg/adapters/file"
	"github.com/aretw0/storyview/pkg/runner"
	"golang.org/x/term"
)

// RunSession wires the viewer from cfg and runs it on sigCtx.
// Interruptions (end of input, Ctrl+C) end the session without an error.
func RunSession(sigCtx *SignalContext, cfg config.Config, opts RunOptions) error {
	logger := createLogger(opts.Debug)

	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if !opts.NoBanner && isTerminal(in) {
		tui.PrintBanner(out, opts.Version)
	}

	loader := document.NewLoader(document.WithLogger(logger))
	for _, ext := range undecodable(cfg.Extensions, loader.Extensions()) {
		logger.Warn("Listed extension has no decoder", "extension", ext)
	}

	gate := runner.NewGate(
		runner.NewLineReader(in),
		out,
		runner.WithCaseInsensitive(cfg.CaseInsensitiveConfirm),
		runner.WithGateLogger(logger),
	)

	engineOpts := []runtime.Option{
		runtime.WithOutput(out),
		runtime.WithLogger(logger),
		runtime.WithConfirmPrompt(cfg.ConfirmPrompt),
		runtime.WithStyler(tui.HeaderStyler(out)),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, runtime.WithHooks(createDebugHooks(logger)))
	}
	if cfg.RenderMarkdown {
		engineOpts = append(engineOpts, runtime.WithRenderer(tui.NewRenderer()))
	}

	browser := NewBrowser(cfg, Deps{
		Catalog: file.NewCatalog(cfg.Extensions, cfg.SortFiles),
		Loader:  loader,
		Asker:   gate,
		Reader:  runtime.NewEngine(gate, engineOpts...),
		Output:  out,
		Logger:  logger,
	}, opts.Dir)

	err := browser.Run(sigCtx)
	if err == nil && sigCtx.Err() != nil {
		err = sigCtx.Err()
	}
	logInterruption(out, err, sigCtx.Signal())

	return handleExecutionError(err)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// undecodable returns the configured extensions no decoder handles.
func undecodable(configured, supported []string) []string {
	var out []string
	for _, ext := range configured {
		if !slices.Contains(supported, ext) {
			out = append(out, ext)
		}
	}
	return out
}
