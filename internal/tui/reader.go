package tui

import (
	"bufio"
	"io"
	"os"
	"strings"

	"jot.dev/jot/internal/engine"
)

var _ engine.InputReader = (*TerminalReader)(nil)

// TerminalReader reads whitespace-trimmed lines from an input stream.
type TerminalReader struct {
	reader *bufio.Reader
}

// NewTerminalReader reads from stdin.
func NewTerminalReader() *TerminalReader {
	return NewTerminalReaderFrom(os.Stdin)
}

// NewTerminalReaderFrom reads from r.
func NewTerminalReaderFrom(r io.Reader) *TerminalReader {
	return &TerminalReader{reader: bufio.NewReader(r)}
}

// ReadLine reads one line and trims surrounding whitespace. A final
// unterminated line is returned intact; the read after it reports EOF.
func (t *TerminalReader) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
