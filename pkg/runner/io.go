package runner

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"sync"
)

// LineReader reads one line at a time from an input stream.
type LineReader struct {
	reader *bufio.Reader

	lines     chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewLineReader creates a reader over r, defaulting to os.Stdin.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		r = os.Stdin
	}
	return &LineReader{reader: bufio.NewReader(r)}
}

func (l *LineReader) initPump() {
	l.startOnce.Do(func() {
		l.lines = make(chan inputResult)
		go l.pump()
	})
}

func (l *LineReader) pump() {
	for {
		text, err := l.reader.ReadString('\n')

		// A final line without a newline is still a line.
		if text != "" {
			l.lines <- inputResult{text: text}
		}

		if err != nil {
			if err != io.EOF {
				l.lines <- inputResult{err: err}
			}
			close(l.lines)
			return
		}
	}
}

// ReadLine blocks until a line is available or ctx is done.
// The returned line is trimmed and sanitized; io.EOF is returned when input ends.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	l.initPump()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return SanitizeInput(strings.TrimSpace(res.text))
	}
}
