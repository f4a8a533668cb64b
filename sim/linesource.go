package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrInterrupted reports that the user interrupted interactive input
// (Ctrl-C). It terminates the loop gracefully, not as a failure.
var ErrInterrupted = errors.New("interrupted")

// LineSource supplies interactive input lines. Implementations return
// io.EOF when input is exhausted and ErrInterrupted on user interrupt.
type LineSource interface {
	// ReadLine blocks for the next input line, without the trailing
	// newline.
	ReadLine() (string, error)

	// Close releases the source.
	Close() error
}

// scannerSource reads lines from a plain reader, writing the prompt to
// out before each read. It backs tests and non-terminal input.
type scannerSource struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func newScannerSource(r io.Reader, out io.Writer, prompt string) *scannerSource {
	return &scannerSource{
		scanner: bufio.NewScanner(r),
		out:     out,
		prompt:  prompt,
	}
}

func (s *scannerSource) ReadLine() (string, error) {
	_, _ = fmt.Fprint(s.out, s.prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input line: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scannerSource) Close() error {
	return nil
}
