package common

// Timer accumulates simulated seconds from frame-scale dt values. It replaces
// wall-clock sampling so that state transitions are deterministic.
type Timer struct {
	elapsed float64
}

// Advance adds dt (frame-scale) to the timer.
func (t *Timer) Advance(dt float64) {
	if t == nil || dt <= 0 {
		return
	}
	t.elapsed += Seconds(dt)
}

// Elapsed returns the accumulated seconds.
func (t *Timer) Elapsed() float64 {
	if t == nil {
		return 0
	}
	return t.elapsed
}

// Reset sets the timer back to zero.
func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
}

// Every reports how many whole periods elapsed since the last call and keeps
// the remainder, for fixed-interval ticks such as the level countdown.
func (t *Timer) Every(period float64) int {
	if t == nil || period <= 0 || t.elapsed < period {
		return 0
	}
	n := int(t.elapsed / period)
	t.elapsed -= float64(n) * period
	return n
}
