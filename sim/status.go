package sim

// Version is the reported module version.
const Version = "0.1.0-alpha"

// ShowStatus prints the module status report. Only Initialized and
// Requests Processed reflect session state; everything else comes from
// the hyperparameters.
func (s *Simulator) ShowStatus() {
	initialized := "No"
	if s.modelLoaded {
		initialized = "Yes"
	}

	s.printf("Llamux Kernel Module Status\n")
	s.printf("===========================\n")
	s.printf("Version: %s\n", Version)
	s.printf("Initialized: %s\n", initialized)
	s.printf("Inference Thread: Running\n")
	s.printf("Requests Processed: %d\n", s.inferenceCount)
	s.printf("\n")
	s.printf("Memory Status:\n")
	s.printf("--------------\n")
	s.printf("Reserved Memory: %d MB\n", s.params.ReservedMemoryMB)
	s.printf("Memory Used: %d MB\n", s.params.UsedMemoryMB)
	s.printf("\n")
	s.printf("Model Information:\n")
	s.printf("-----------------\n")
	s.printf("Type: %s\n", s.params.ModelType)
	s.printf("Layers: %d\n", s.params.Layers)
	s.printf("Embedding: %d\n", s.params.EmbeddingDim)
	s.printf("Heads: %d\n", s.params.Heads)
	s.printf("Context: %d tokens\n", s.params.ContextTokens)
	s.printf("Vocabulary: %d tokens\n", s.params.VocabSize)
	s.printf("\n")
	s.printf("Inference Ready: Yes\n")
	s.printf("Temperature: %.2f\n", s.params.Temperature)
	s.printf("Top-K: %d\n", s.params.TopK)
	s.printf("Top-P: %.2f\n", s.params.TopP)
	s.printf("\n")
	s.printf("🦙 Llamux: The OS that thinks!\n")
}
