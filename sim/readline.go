package sim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
)

const interactivePrompt = "llamux> "

// readlineSource reads interactive lines from the terminal with
// history and line editing.
type readlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource opens a terminal-backed line source with history at
// $HOME/.llamasim_history. History is best effort: when the home
// directory is unavailable the source still works, just without it.
func NewReadlineSource() (LineSource, error) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".llamasim_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      interactivePrompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal input: %w", err)
	}

	return &readlineSource{rl: rl}, nil
}

func (s *readlineSource) ReadLine() (string, error) {
	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (s *readlineSource) Close() error {
	return s.rl.Close()
}
