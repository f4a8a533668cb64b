// Package sim provides the Llamux kernel module simulator: a scripted
// boot sequence, a random-vocabulary response generator, and the
// interactive and batch front ends over them.
package sim

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/llamux/llamasim/model"
	"github.com/llamux/llamasim/weights"
)

// Simulator owns the session state and writes every scripted line to
// its output writer. It is not safe for concurrent use; the whole
// program is a single sequential pass.
type Simulator struct {
	params *model.Params
	vocab  []string

	out    io.Writer
	input  io.Reader
	source LineSource
	rng    *rand.Rand
	pacer  Pacer
	cache  *weights.Cache

	// Session state
	modelLoaded     bool
	inferenceCount  int
	promptTokens    int
	generatedTokens int
}

// SimulatorOption is a functional option for configuring the Simulator.
type SimulatorOption func(*Simulator)

// WithOutput sets a custom output writer.
func WithOutput(w io.Writer) SimulatorOption {
	return func(s *Simulator) {
		s.out = w
	}
}

// WithInput sets a custom reader for interactive input. Ignored when a
// LineSource is set.
func WithInput(r io.Reader) SimulatorOption {
	return func(s *Simulator) {
		s.input = r
	}
}

// WithLineSource sets a custom line source for interactive input.
func WithLineSource(src LineSource) SimulatorOption {
	return func(s *Simulator) {
		s.source = src
	}
}

// WithRand sets the random source used for token sampling.
func WithRand(rng *rand.Rand) SimulatorOption {
	return func(s *Simulator) {
		s.rng = rng
	}
}

// WithPacer sets the pacer used for cosmetic output delays.
func WithPacer(p Pacer) SimulatorOption {
	return func(s *Simulator) {
		s.pacer = p
	}
}

// WithParams sets the simulated model hyperparameters.
func WithParams(p *model.Params) SimulatorOption {
	return func(s *Simulator) {
		s.params = p
	}
}

// WithWeightCache sets the simulated weight cache. A nil cache disables
// weight cache bookkeeping.
func WithWeightCache(c *weights.Cache) SimulatorOption {
	return func(s *Simulator) {
		s.cache = c
	}
}

// NewSimulator creates a simulator with default wiring: stdout/stdin,
// time-seeded randomness, real sleeps, default hyperparameters, and a
// default-sized weight cache.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		params: model.DefaultParams(),
		vocab:  model.Vocabulary(),
		out:    os.Stdout,
		input:  os.Stdin,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		pacer:  sleepPacer{},
		cache:  weights.New(weights.DefaultConfig()),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ModelLoaded reports whether the boot sequence has run.
func (s *Simulator) ModelLoaded() bool {
	return s.modelLoaded
}

// InferenceCount returns the number of generated responses.
func (s *Simulator) InferenceCount() int {
	return s.inferenceCount
}

// WeightCache returns the simulated weight cache.
func (s *Simulator) WeightCache() *weights.Cache {
	return s.cache
}

func (s *Simulator) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
