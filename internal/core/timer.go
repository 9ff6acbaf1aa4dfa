package core

import "time"

// FixedStep gates simulation updates to a steady wall-clock interval. The
// frontends call ShouldStep once per frame; it grants at most one step per
// call, so a stalled frame never produces a burst of generations.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller with the given step interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the time between granted steps. It is safe to call from
// the main loop; the accumulator is dropped so a shorter interval does not
// release a backlog of steps at once.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	f.step = interval
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval returns the current step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetTPS expresses the interval as ticks per second.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.SetInterval(time.Second / time.Duration(tps))
}

// StepIntervals is the closed set of step intervals the frontends cycle
// through.
var StepIntervals = []time.Duration{
	50 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
	500 * time.Millisecond,
}

// CycleInterval returns the member of StepIntervals delta positions away from
// cur, clamped at the ends. An unknown cur snaps to the nearest member.
func CycleInterval(cur time.Duration, delta int) time.Duration {
	idx := 0
	best := time.Duration(1<<63 - 1)
	for i, iv := range StepIntervals {
		d := iv - cur
		if d < 0 {
			d = -d
		}
		if d < best {
			best = d
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(StepIntervals) {
		idx = len(StepIntervals) - 1
	}
	return StepIntervals[idx]
}

// ShouldStep reports whether the simulation should advance by one tick. The
// accumulator is capped at one interval, so idle stretches (a paused frontend
// skipping calls) grant at most one step on resume instead of a backlog
// drained in back-to-back frames.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
