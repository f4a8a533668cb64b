package sim

import (
	"strings"
	"time"
)

// testPrompts are the prompts the batch run exercises.
var testPrompts = []string{
	"Hello llama",
	"What is kernel memory?",
	"Tell me about Llamux",
}

// RunTests generates a response for each of the fixed test prompts and
// prints a summary. No assertions are made; the run is a demo.
func (s *Simulator) RunTests() {
	s.printf("\n🦙 Running Llamux Tests\n")
	s.printf("======================\n")

	for i, prompt := range testPrompts {
		s.printf("\nTest %d: %s\n", i+1, prompt)
		s.printf("%s\n", strings.Repeat("-", 40))
		s.printf("%s\n", s.Generate(prompt))
		s.pacer.Pause(time.Second)
	}

	s.printf("\n✅ All tests completed!\n")
	s.printf("Total inferences: %d\n", s.inferenceCount)
}
