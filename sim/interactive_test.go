package sim_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llamux/llamasim/sim"
)

const interactiveBanner = "\n🦙 Llamux Interactive Mode\n" +
	"==========================\n" +
	"This simulates: echo 'prompt' > /proc/llamux/prompt\n" +
	"Type 'status' to see module status\n" +
	"Type 'quit' to exit\n" +
	"\n"

var _ = Describe("InteractiveMode", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	run := func(input string) *sim.Simulator {
		s := newTestSimulator(9, out, sim.WithInput(strings.NewReader(input)))
		Expect(s.InteractiveMode()).To(Succeed())
		return s
	}

	It("should quit on the quit command", func() {
		run("quit\n")

		Expect(out.String()).To(Equal(interactiveBanner +
			"llamux> 🦙 Putting the llama to sleep...\n"))
	})

	It("should quit regardless of letter case", func() {
		run("QUIT\n")

		Expect(out.String()).To(ContainSubstring("🦙 Putting the llama to sleep...\n"))
	})

	It("should quit on surrounding whitespace", func() {
		run("  Quit  \n")

		Expect(out.String()).To(ContainSubstring("🦙 Putting the llama to sleep...\n"))
	})

	It("should say goodbye at end of input", func() {
		run("")

		Expect(out.String()).To(Equal(interactiveBanner +
			"llamux> 🦙 Putting the llama to sleep...\n"))
	})

	It("should ignore empty lines", func() {
		s := run("\n   \nquit\n")

		Expect(out.String()).To(Equal(interactiveBanner +
			"llamux> llamux> llamux> 🦙 Putting the llama to sleep...\n"))
		Expect(s.InferenceCount()).To(Equal(0))
	})

	It("should show the status report without mutating state", func() {
		s := run("status\nquit\n")

		Expect(out.String()).To(ContainSubstring("Llamux Kernel Module Status\n"))
		Expect(out.String()).To(ContainSubstring("Requests Processed: 0\n"))
		Expect(s.InferenceCount()).To(Equal(0))
		Expect(s.ModelLoaded()).To(BeFalse())
	})

	It("should accept the status command in any case", func() {
		run("STATUS\nquit\n")

		Expect(out.String()).To(ContainSubstring("Llamux Kernel Module Status\n"))
	})

	It("should show inference statistics without mutating state", func() {
		s := run("stats\nquit\n")

		Expect(out.String()).To(ContainSubstring("Llamux Inference Statistics\n"))
		Expect(out.String()).To(ContainSubstring("Total Inferences: 0\n"))
		Expect(out.String()).To(ContainSubstring("Hit Rate: 0.0%\n"))
		Expect(s.InferenceCount()).To(Equal(0))
	})

	It("should show the command list on help", func() {
		s := run("help\nquit\n")

		Expect(out.String()).To(ContainSubstring("🦙 Llamux Simulator Commands\n"))
		Expect(out.String()).To(ContainSubstring("  quit   - put the llama to sleep\n"))
		Expect(s.InferenceCount()).To(Equal(0))
	})

	It("should treat other input as a prompt", func() {
		s := run("tell me something\nquit\n")

		Expect(out.String()).To(ContainSubstring(
			"🦙 Llamux: Processing prompt: tell me something\n"))
		Expect(out.String()).To(ContainSubstring("🦙 Response: "))
		Expect(s.InferenceCount()).To(Equal(1))
	})

	It("should print a blank line after each response", func() {
		run("hello\nquit\n")

		Expect(out.String()).To(MatchRegexp(`🦙 Response: [a-z ]+\n\n`))
	})

	It("should count every prompt", func() {
		s := run("one\ntwo\nthree\nquit\n")

		Expect(s.InferenceCount()).To(Equal(3))
	})

	It("should report the updated count after a prompt", func() {
		run("hello\nstatus\nquit\n")

		Expect(out.String()).To(ContainSubstring("Requests Processed: 1\n"))
	})

	It("should print a notice on interrupt", func() {
		s := newTestSimulator(9, out,
			sim.WithLineSource(&stubSource{lines: []string{"hello"}}))

		Expect(s.InteractiveMode()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("\n🦙 Interrupted!\n"))
		Expect(s.InferenceCount()).To(Equal(1))
	})

	It("should close its line source", func() {
		src := &stubSource{}
		s := newTestSimulator(9, out, sim.WithLineSource(src))

		Expect(s.InteractiveMode()).To(Succeed())
		Expect(src.closed).To(BeTrue())
	})
})

// stubSource plays back fixed lines, then reports an interrupt.
type stubSource struct {
	lines  []string
	closed bool
}

func (s *stubSource) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", sim.ErrInterrupted
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}
