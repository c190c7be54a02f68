package viewer

import (
	"testing"
	"time"
)

func TestFrameRate(t *testing.T) {
	cases := []struct {
		limit int
		idle  bool
		want  int
	}{
		{144, false, 144},
		{0, false, 0},
		{144, true, idleFPS},
		{0, true, idleFPS},
		{10, true, 10},
	}
	for _, tc := range cases {
		if got := frameRate(tc.limit, tc.idle); got != tc.want {
			t.Errorf("frameRate(%d, %v) = %d, want %d", tc.limit, tc.idle, got, tc.want)
		}
	}
}

func TestPacerUncapped(t *testing.T) {
	var p framePacer
	calls := 0
	start := time.Now()
	for i := 0; i < 100; i++ {
		p.wait(0, func(time.Duration) bool { calls++; return false })
	}
	if calls != 0 {
		t.Errorf("uncapped pacing slept %d times", calls)
	}
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Errorf("uncapped waits took %v", d)
	}
}

func TestPacerCapped(t *testing.T) {
	var p framePacer
	start := time.Now()
	for i := 0; i < 4; i++ {
		p.wait(200, sleepFor)
	}
	// four 5ms frames
	if d := time.Since(start); d < 19*time.Millisecond {
		t.Errorf("capped waits returned after %v", d)
	}
}

func TestPacerSleepLength(t *testing.T) {
	var p framePacer
	var slept time.Duration
	p.wait(idleFPS, func(d time.Duration) bool { slept = d; return false })

	interval := time.Second / idleFPS
	if slept <= 0 || slept > interval-spinWindow {
		t.Errorf("slept %v, want just under %v", slept, interval-spinWindow)
	}
}

func TestPacerWokenEarly(t *testing.T) {
	var p framePacer
	start := time.Now()
	p.wait(1, func(time.Duration) bool { return true })
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Errorf("woken wait still took %v", d)
	}
	if !p.next.IsZero() {
		t.Error("pacing should restart after an early wake")
	}
}

func TestPacerResyncsAfterHitch(t *testing.T) {
	var p framePacer
	p.next = time.Now().Add(-time.Second)

	start := time.Now()
	p.wait(200, sleepFor)
	// one slot, not a burst of catch-up frames
	if d := time.Since(start); d < 4*time.Millisecond {
		t.Errorf("resynced wait returned after %v", d)
	}
}
