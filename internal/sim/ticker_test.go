package sim

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	fs := NewFixedStep(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}

	t0 := time.Unix(1000, 0)
	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{10 * time.Millisecond, false},
		{49 * time.Millisecond, false},
		{50 * time.Millisecond, true},
		{60 * time.Millisecond, false},
		// a long stall yields at most two catch-up ticks
		{time.Second, true},
		{time.Second, true},
		{time.Second, false},
	}
	for i, s := range steps {
		if got := fs.Due(t0.Add(s.at)); got != s.want {
			t.Errorf("step %d at %v: Due = %v, want %v", i, s.at, got, s.want)
		}
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != 50*time.Millisecond {
		t.Errorf("default interval = %v", fs.Interval())
	}
	fs.SetTPS(100)
	if fs.Interval() != 10*time.Millisecond {
		t.Errorf("interval = %v", fs.Interval())
	}
}
