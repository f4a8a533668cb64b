package sim

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// InteractiveMode runs the line-oriented command loop until quit, end
// of input, or interrupt. All three end the loop gracefully; only a
// real read failure returns an error.
func (s *Simulator) InteractiveMode() error {
	s.printf("\n🦙 Llamux Interactive Mode\n")
	s.printf("==========================\n")
	s.printf("This simulates: echo 'prompt' > /proc/llamux/prompt\n")
	s.printf("Type 'status' to see module status\n")
	s.printf("Type 'quit' to exit\n")
	s.printf("\n")

	source := s.source
	if source == nil {
		source = newScannerSource(s.input, s.out, interactivePrompt)
	}
	defer func() { _ = source.Close() }()

	for {
		line, err := source.ReadLine()
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				s.printf("\n🦙 Interrupted!\n")
				return nil
			}
			if errors.Is(err, io.EOF) {
				s.printf("🦙 Putting the llama to sleep...\n")
				return nil
			}
			return fmt.Errorf("interactive mode: %w", err)
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue
		case strings.EqualFold(input, "quit"):
			s.printf("🦙 Putting the llama to sleep...\n")
			return nil
		case strings.EqualFold(input, "status"):
			s.ShowStatus()
		case strings.EqualFold(input, "stats"):
			s.showStats()
		case strings.EqualFold(input, "help"):
			s.showHelp()
		default:
			s.printf("%s\n", s.Generate(input))
			s.printf("\n")
		}
	}
}

// showHelp prints the interactive command list.
func (s *Simulator) showHelp() {
	s.printf("🦙 Llamux Simulator Commands\n")
	s.printf("============================\n")
	s.printf("  status - show module status\n")
	s.printf("  stats  - show inference statistics\n")
	s.printf("  help   - show this message\n")
	s.printf("  quit   - put the llama to sleep\n")
	s.printf("Anything else is sent to the llama as a prompt.\n")
}
