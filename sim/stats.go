package sim

// Statistics is a snapshot of the session's inference counters.
type Statistics struct {
	// Inferences is the number of generated responses.
	Inferences int
	// PromptTokens is the cumulative reported prompt token count,
	// specials included.
	PromptTokens int
	// GeneratedTokens is the cumulative count of sampled output words.
	GeneratedTokens int
}

// TokensPerInference returns the mean response length in tokens.
func (s Statistics) TokensPerInference() float64 {
	if s.Inferences == 0 {
		return 0
	}
	return float64(s.GeneratedTokens) / float64(s.Inferences)
}

// Statistics returns a snapshot of the session counters.
func (s *Simulator) Statistics() Statistics {
	return Statistics{
		Inferences:      s.inferenceCount,
		PromptTokens:    s.promptTokens,
		GeneratedTokens: s.generatedTokens,
	}
}

// showStats prints the inference statistics report, combining the
// session counters with the weight cache counters.
func (s *Simulator) showStats() {
	stats := s.Statistics()

	s.printf("Llamux Inference Statistics\n")
	s.printf("===========================\n")
	s.printf("Total Inferences: %d\n", stats.Inferences)
	s.printf("Prompt Tokens: %d\n", stats.PromptTokens)
	s.printf("Generated Tokens: %d\n", stats.GeneratedTokens)
	s.printf("Tokens/Inference: %.1f\n", stats.TokensPerInference())

	if s.cache == nil {
		return
	}
	cacheStats := s.cache.Stats()
	s.printf("\n")
	s.printf("Weight Cache Performance:\n")
	s.printf("-------------------------\n")
	s.printf("Lookups: %d\n", cacheStats.Lookups)
	s.printf("Hits: %d\n", cacheStats.Hits)
	s.printf("Misses: %d\n", cacheStats.Misses)
	s.printf("Evictions: %d\n", cacheStats.Evictions)
	s.printf("Hit Rate: %.1f%%\n", cacheStats.HitRate())
}
