package sim

import (
	"strings"
	"time"

	"github.com/llamux/llamasim/model"
	"github.com/llamux/llamasim/weights"
)

// Token count range for one response.
const (
	minResponseTokens = 5
	maxResponseTokens = 10
)

// Tokenize splits text into lowercase words and prints the reported
// token count, which includes the two specials.
func (s *Simulator) Tokenize(text string) []string {
	words := model.Tokenize(text)
	s.printf("🦙 Llamux: Tokenizing '%s'\n", text)
	s.printf("🦙 Llamux: Prompt tokenized to %d tokens\n", model.TokenCount(words))
	return words
}

// Generate fabricates a response to prompt by sampling 5-10 vocabulary
// words, printing each as it appears. The prompt has no influence on
// the output; only the counters relate the two.
func (s *Simulator) Generate(prompt string) string {
	s.printf("🦙 Llamux: Processing prompt: %s\n", prompt)
	s.pacer.Pause(500 * time.Millisecond)

	words := s.Tokenize(prompt)
	s.promptTokens += model.TokenCount(words)

	s.printf("🦙 Llamux: Running inference...\n")

	numTokens := minResponseTokens + s.rng.Intn(maxResponseTokens-minResponseTokens+1)
	tokens := make([]string, 0, numTokens)
	for i := 0; i < numTokens; i++ {
		s.pacer.Pause(100 * time.Millisecond)
		token := s.vocab[s.rng.Intn(len(s.vocab))]
		tokens = append(tokens, token)
		s.printf("🦙 Llamux: Generated token %d: '%s'\n", i+1, token)
		s.touchWeights()
	}

	s.printf("🦙 Llamux: Generated %d tokens\n", numTokens)
	s.generatedTokens += numTokens
	s.inferenceCount++

	return "🦙 Response: " + strings.Join(tokens, " ")
}

// touchWeights walks every layer's weight blocks for one token, the
// access pattern a real forward pass would have.
func (s *Simulator) touchWeights() {
	if s.cache == nil {
		return
	}
	for layer := 0; layer < s.params.Layers; layer++ {
		s.cache.Touch(layer, weights.BlockAttention)
		s.cache.Touch(layer, weights.BlockFeedForward)
	}
}
