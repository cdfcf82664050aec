package sim

import "time"

// FixedStep paces simulation ticks at a steady rate independent of the
// frontend's frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 20.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 20
	}
	f.step = time.Second / time.Duration(tps)
}

func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a tick is due now.
func (f *FixedStep) ShouldStep() bool {
	return f.Due(time.Now())
}

// Due reports whether a tick is due at now. At most one tick is reported per
// call; a backlog is capped at one extra interval.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator > 2*f.step {
		f.accumulator = 2 * f.step
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
