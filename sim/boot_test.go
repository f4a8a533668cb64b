package sim_test

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llamux/llamasim/sim"
)

var _ = Describe("Boot", func() {
	var (
		s     *sim.Simulator
		out   *bytes.Buffer
		pacer *recordingPacer
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		pacer = &recordingPacer{}
		s = sim.NewSimulator(
			sim.WithOutput(out),
			sim.WithPacer(pacer),
		)
	})

	It("should print the full boot script", func() {
		s.Boot()

		want := "🦙 Llamux Kernel Module Simulator\n" +
			"=================================\n" +
			"[  0.000000] 🦙 Llamux: Waking up the llama...\n" +
			"[  0.142857] 🦙 Llamux: Memory reservation: 2048 MB\n" +
			"[  0.285714] 🦙 Llamux: GGML context initialized\n" +
			"[  0.428571] 🦙 Llamux: TinyLlama model created\n" +
			"[  0.428571]   - Layers: 22\n" +
			"[  0.428571]   - Embedding: 2048\n" +
			"[  0.428571]   - Heads: 32\n" +
			"[  0.428571]   - Context: 2048 tokens\n" +
			"[  0.571429] 🦙 Llamux: Inference thread started\n" +
			"[  0.714286] 🦙 Llamux: Ready! The kernel llama awaits your commands.\n" +
			"\n"
		Expect(out.String()).To(Equal(want))
	})

	It("should mark the model loaded", func() {
		Expect(s.ModelLoaded()).To(BeFalse())

		s.Boot()

		Expect(s.ModelLoaded()).To(BeTrue())
	})

	It("should pause between line groups", func() {
		s.Boot()

		Expect(pacer.pauses).To(Equal([]time.Duration{
			500 * time.Millisecond,
			300 * time.Millisecond,
			300 * time.Millisecond,
			500 * time.Millisecond,
		}))
	})

	It("should not touch the inference counter", func() {
		s.Boot()

		Expect(s.InferenceCount()).To(Equal(0))
	})
})

var _ = Describe("ShowStatus", func() {
	var (
		s   *sim.Simulator
		out *bytes.Buffer
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		s = sim.NewSimulator(
			sim.WithOutput(out),
			sim.WithPacer(sim.NopPacer{}),
		)
	})

	It("should print the full status report after boot", func() {
		s.Boot()
		out.Reset()

		s.ShowStatus()

		want := "Llamux Kernel Module Status\n" +
			"===========================\n" +
			"Version: 0.1.0-alpha\n" +
			"Initialized: Yes\n" +
			"Inference Thread: Running\n" +
			"Requests Processed: 0\n" +
			"\n" +
			"Memory Status:\n" +
			"--------------\n" +
			"Reserved Memory: 2048 MB\n" +
			"Memory Used: 637 MB\n" +
			"\n" +
			"Model Information:\n" +
			"-----------------\n" +
			"Type: TinyLlama-1.1B\n" +
			"Layers: 22\n" +
			"Embedding: 2048\n" +
			"Heads: 32\n" +
			"Context: 2048 tokens\n" +
			"Vocabulary: 32000 tokens\n" +
			"\n" +
			"Inference Ready: Yes\n" +
			"Temperature: 0.80\n" +
			"Top-K: 40\n" +
			"Top-P: 0.95\n" +
			"\n" +
			"🦙 Llamux: The OS that thinks!\n"
		Expect(out.String()).To(Equal(want))
	})

	It("should report Initialized: No before boot", func() {
		s.ShowStatus()

		Expect(out.String()).To(ContainSubstring("Initialized: No\n"))
	})

	It("should interpolate the inference count", func() {
		s.Generate("hello")
		out.Reset()

		s.ShowStatus()

		Expect(out.String()).To(ContainSubstring("Requests Processed: 1\n"))
	})
})
