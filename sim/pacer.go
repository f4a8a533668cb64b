package sim

import "time"

// Pacer paces scripted output. The delays are purely cosmetic, so the
// interface exists to let tests and embedders remove them.
type Pacer interface {
	// Pause blocks for the given duration.
	Pause(d time.Duration)
}

// sleepPacer is the default pacer; it really sleeps.
type sleepPacer struct{}

func (sleepPacer) Pause(d time.Duration) {
	time.Sleep(d)
}

// NopPacer is a pacer that never pauses.
type NopPacer struct{}

// Pause returns immediately.
func (NopPacer) Pause(time.Duration) {}
