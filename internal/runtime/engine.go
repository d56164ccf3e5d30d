package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/storyview/internal/logging"
	"github.com/aretw0/storyview/pkg/domain"
	"github.com/aretw0/storyview/pkg/ports"
)

// DefaultConfirmPrompt is shown after each section when none is configured.
const DefaultConfirmPrompt = "Continue? (y/n): "

// ContentRenderer transforms the content of a section before display
// (e.g. markdown to ANSI).
type ContentRenderer func(string) (string, error)

// Engine pages through a document tree, one gated section at a time.
type Engine struct {
	gate     ports.Gate
	writer   io.Writer
	logger   *slog.Logger
	hooks    domain.Hooks
	renderer ContentRenderer
	styler   func(string) string
	prompt   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithOutput sets where pages are written (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.writer = w
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers traversal callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRenderer configures the content renderer.
func WithRenderer(renderer ContentRenderer) Option {
	return func(e *Engine) {
		e.renderer = renderer
	}
}

// WithStyler decorates section headers.
func WithStyler(styler func(string) string) Option {
	return func(e *Engine) {
		e.styler = styler
	}
}

// WithConfirmPrompt sets the text shown at each gate.
func WithConfirmPrompt(prompt string) Option {
	return func(e *Engine) {
		if prompt != "" {
			e.prompt = prompt
		}
	}
}

// NewEngine creates an engine that asks gate before leaving each section.
func NewEngine(gate ports.Gate, opts ...Option) *Engine {
	e := &Engine{
		gate:   gate,
		writer: os.Stdout,
		logger: logging.NewNop(),
		styler: func(s string) string { return s },
		prompt: DefaultConfirmPrompt,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Read shows the document title and description, then traverses every
// top-level section in order. The first Stop or Quit ends the document.
func (e *Engine) Read(ctx context.Context, doc *domain.Document) (domain.Result, error) {
	e.renderTitle(doc)

	res, err := e.traverseAll(ctx, doc.Sections, 0)
	if err != nil {
		return res, err
	}
	if res != domain.Quit {
		e.logger.Debug("Document finished", "title", doc.Title, "result", res.String())
	}
	return res, nil
}

// Traverse visits s and its subsections in pre-order.
//
// Advance means every node was confirmed. Stop means the user abandoned the
// document and nothing after the stopping node was rendered. Quit means the
// user asked to leave the program; callers must return it without printing.
func (e *Engine) Traverse(ctx context.Context, s domain.Section) (domain.Result, error) {
	return e.traverse(ctx, s, 0, 0)
}

func (e *Engine) traverseAll(ctx context.Context, sections []domain.Section, depth int) (domain.Result, error) {
	for i, s := range sections {
		res, err := e.traverse(ctx, s, depth, i)
		if err != nil || res != domain.Advance {
			return res, err
		}
	}
	return domain.Advance, nil
}

func (e *Engine) traverse(ctx context.Context, s domain.Section, depth, index int) (domain.Result, error) {
	event := &domain.SectionEvent{Name: s.Name, Depth: depth, Index: index}
	if e.hooks.OnSectionEnter != nil {
		e.hooks.OnSectionEnter(ctx, event)
	}

	e.renderSection(s)

	res, err := e.gate.Confirm(ctx, e.prompt)
	if err != nil {
		return domain.Stop, fmt.Errorf("section %q: %w", s.Name, err)
	}
	if res == domain.Quit {
		return domain.Quit, nil
	}

	if res == domain.Advance {
		res, err = e.traverseAll(ctx, s.Subsections, depth+1)
		if err != nil || res == domain.Quit {
			return res, err
		}
	}

	event.Result = res
	if e.hooks.OnSectionLeave != nil {
		e.hooks.OnSectionLeave(ctx, event)
	}
	return res, nil
}
