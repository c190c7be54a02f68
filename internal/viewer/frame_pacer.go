package viewer

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// idleFPS caps redraws while nothing on screen is changing
const idleFPS = 30

// Sleeps overshoot by roughly this much, so the tail of each wait spins
const spinWindow = 200 * time.Microsecond

// sleeper blocks for up to d and reports whether something woke it early
type sleeper func(d time.Duration) (woken bool)

func sleepFor(d time.Duration) bool {
	time.Sleep(d)
	return false
}

// waitForEvents sleeps inside glfw so a key press or mouse move ends an idle
// frame immediately.
func waitForEvents(d time.Duration) bool {
	start := time.Now()
	glfw.WaitEventsTimeout(d.Seconds())
	return time.Since(start) < d
}

// frameRate returns the frame cap for the next frame; 0 means uncapped.
func frameRate(limit int, idle bool) int {
	if idle && (limit <= 0 || limit > idleFPS) {
		return idleFPS
	}
	return limit
}

// framePacer spaces redraws to a rate that may change every frame.
type framePacer struct {
	next time.Time
}

// wait holds the caller until the next frame slot at rate. A sleeper that
// reports an early wake ends the wait at once and restarts pacing.
func (p *framePacer) wait(rate int, sleep sleeper) {
	if rate <= 0 {
		p.next = time.Time{}
		return
	}
	interval := time.Second / time.Duration(rate)

	now := time.Now()
	// first frame, or a hitch: resync instead of bursting to catch up
	if p.next.IsZero() || now.Sub(p.next) > interval {
		p.next = now
	}
	p.next = p.next.Add(interval)

	if d := time.Until(p.next) - spinWindow; d > 0 && sleep(d) {
		p.next = time.Time{}
		return
	}
	for time.Now().Before(p.next) {
	}
}
