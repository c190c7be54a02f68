package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAndReset(t *testing.T) {
	ResetFrame()

	stop := Track("a")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("a")()
	Track("b")()

	entries := Snapshot()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "a" {
		t.Errorf("expected slowest entry first, got %q", entries[0].Name)
	}
	if entries[0].Calls != 2 {
		t.Errorf("expected 2 calls for a, got %d", entries[0].Calls)
	}

	ResetFrame()
	if got := len(Snapshot()); got != 0 {
		t.Errorf("expected no entries after reset, got %d", got)
	}
}

func TestTopN(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["slow"] = 4200 * time.Microsecond
	frameTotals["fast"] = 2 * time.Millisecond
	frameTotals["tiny"] = 100 * time.Microsecond
	mu.Unlock()
	defer ResetFrame()

	got := TopN(2)
	if got != "slow:4.2ms, fast:2ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if all := TopN(10); strings.Count(all, ",") != 2 {
		t.Errorf("TopN(10) should list every entry, got %q", all)
	}
}
