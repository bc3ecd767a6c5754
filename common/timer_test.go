package common

import "testing"

func TestTimerAdvance(t *testing.T) {
	cases := []struct {
		name string
		dts  []float64
		want float64
	}{
		{"one_second_of_frames", repeat(1, 30), 1},
		{"half_frames", repeat(0.5, 30), 0.5},
		{"negative_ignored", []float64{-5, 30}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var tm Timer
			for _, dt := range c.dts {
				tm.Advance(dt)
			}
			if got := tm.Elapsed(); got < c.want-1e-9 || got > c.want+1e-9 {
				t.Fatalf("expected %.3f seconds, got %.3f", c.want, got)
			}
		})
	}
}

func TestTimerEvery(t *testing.T) {
	var tm Timer
	tm.Advance(TargetRate) // 1s
	if n := tm.Every(0.4); n != 2 {
		t.Fatalf("expected 2 ticks, got %d", n)
	}
	if n := tm.Every(0.4); n != 0 {
		t.Fatalf("expected remainder to stay below the period, got %d ticks", n)
	}
	tm.Advance(TargetRate * 0.3)
	if n := tm.Every(0.4); n != 1 {
		t.Fatalf("expected carry-over tick, got %d", n)
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
