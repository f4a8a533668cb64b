package sim

import "time"

// Boot prints the scripted kernel boot sequence and marks the model
// loaded. The timestamps advance in sevenths of a second; they are part
// of the script, not wall-clock readings.
func (s *Simulator) Boot() {
	s.printf("🦙 Llamux Kernel Module Simulator\n")
	s.printf("=================================\n")
	s.klog(0, "🦙 Llamux: Waking up the llama...")
	s.pacer.Pause(500 * time.Millisecond)
	s.klog(1, "🦙 Llamux: Memory reservation: %d MB", s.params.ReservedMemoryMB)
	s.pacer.Pause(300 * time.Millisecond)
	s.klog(2, "🦙 Llamux: GGML context initialized")
	s.pacer.Pause(300 * time.Millisecond)
	s.klog(3, "🦙 Llamux: TinyLlama model created")
	s.klog(3, "  - Layers: %d", s.params.Layers)
	s.klog(3, "  - Embedding: %d", s.params.EmbeddingDim)
	s.klog(3, "  - Heads: %d", s.params.Heads)
	s.klog(3, "  - Context: %d tokens", s.params.ContextTokens)
	s.pacer.Pause(500 * time.Millisecond)
	s.klog(4, "🦙 Llamux: Inference thread started")
	s.klog(5, "🦙 Llamux: Ready! The kernel llama awaits your commands.")
	s.printf("\n")

	s.modelLoaded = true
}

// klog prints one kernel-log style line for the given boot step.
func (s *Simulator) klog(step int, format string, args ...interface{}) {
	s.printf("[%10.6f] ", float64(step)/7.0)
	s.printf(format, args...)
	s.printf("\n")
}
