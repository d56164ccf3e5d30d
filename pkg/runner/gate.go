package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/storyview/internal/logging"
	"github.com/aretw0/storyview/pkg/domain"
)

// Tokens recognized at every prompt.
const (
	TokenYes      = "y"
	TokenNo       = "n"
	TokenQuit     = "q"
	TokenQuitLong = "quit"
)

// IsQuitToken reports whether input asks to leave the program.
// The check ignores surrounding whitespace and letter case.
func IsQuitToken(input string) bool {
	s := strings.TrimSpace(input)
	return strings.EqualFold(s, TokenQuit) || strings.EqualFold(s, TokenQuitLong)
}

// Classify maps one answer to a Result.
// The quit token is checked before any case normalization; ok is false when
// the answer is not recognized.
func Classify(input string, caseInsensitive bool) (res domain.Result, ok bool) {
	if IsQuitToken(input) {
		return domain.Quit, true
	}
	s := strings.TrimSpace(input)
	if caseInsensitive {
		s = strings.ToLower(s)
	}
	switch s {
	case TokenYes:
		return domain.Advance, true
	case TokenNo:
		return domain.Stop, true
	}
	return domain.Advance, false
}

// Gate implements the confirm-or-quit protocol over a LineReader.
type Gate struct {
	lines           *LineReader
	writer          io.Writer
	caseInsensitive bool
	logger          *slog.Logger
}

// GateOption defines configuration for Gate.
type GateOption func(*Gate)

// WithCaseInsensitive lower-cases answers before matching y/n.
func WithCaseInsensitive(enabled bool) GateOption {
	return func(g *Gate) {
		g.caseInsensitive = enabled
	}
}

// WithGateLogger configures the structured logger.
func WithGateLogger(logger *slog.Logger) GateOption {
	return func(g *Gate) {
		g.logger = logger
	}
}

// NewGate creates a gate reading from lines and prompting on w.
func NewGate(lines *LineReader, w io.Writer, opts ...GateOption) *Gate {
	if lines == nil {
		lines = NewLineReader(nil)
	}
	if w == nil {
		w = os.Stdout
	}
	g := &Gate{
		lines:  lines,
		writer: w,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Confirm prints prompt and reads answers until one is recognized.
// There is no retry limit; the quit token is the only other way out.
func (g *Gate) Confirm(ctx context.Context, prompt string) (domain.Result, error) {
	for {
		line, err := g.read(ctx, prompt)
		if errors.Is(err, errRetry) {
			continue
		}
		if err != nil {
			return domain.Advance, err
		}
		if res, ok := Classify(line, g.caseInsensitive); ok {
			g.logger.Debug("Gate decision", "result", res.String())
			return res, nil
		}
		g.logger.Debug("Unrecognized answer", "input", line)
	}
}

// Ask prints prompt and returns the next answer, honoring the quit token.
func (g *Gate) Ask(ctx context.Context, prompt string) (string, bool, error) {
	for {
		line, err := g.read(ctx, prompt)
		if errors.Is(err, errRetry) {
			continue
		}
		if err != nil {
			return "", false, err
		}
		if IsQuitToken(line) {
			return "", true, nil
		}
		return line, false, nil
	}
}

var errRetry = errors.New("retry prompt")

func (g *Gate) read(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(g.writer, prompt)

	line, err := g.lines.ReadLine(ctx)
	if errors.Is(err, ErrInputTooLarge) || errors.Is(err, ErrInvalidUTF8) {
		fmt.Fprintf(g.writer, "Error: %v. Please try again.\n", err)
		return "", errRetry
	}
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return line, nil
}
