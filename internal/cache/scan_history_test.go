package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lomasaltas/boxcode/internal/models"
)

func scan(station, code string, valid bool) models.ScanRecord {
	return models.ScanRecord{Station: station, Code: code, IsValid: valid}
}

func TestScanHistory_KeepsNewestFirst(t *testing.T) {
	h := NewScanHistory(3)
	for i := 1; i <= 5; i++ {
		h.Add(scan("L1", fmt.Sprintf("code-%d", i), i%2 == 0))
	}

	recent := h.Recent("L1")
	if len(recent) != 3 {
		t.Fatalf("expected 3 recent scans, got %d", len(recent))
	}
	for i, want := range []string{"code-5", "code-4", "code-3"} {
		if recent[i].Code != want {
			t.Errorf("position %d: expected %s, got %s", i, want, recent[i].Code)
		}
	}

	stats := h.Stats("L1")
	if stats.Validated != 5 || stats.Valid != 2 || stats.Invalid != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestScanHistory_StationsAreIndependent(t *testing.T) {
	h := NewScanHistory(10)
	h.Add(scan("L1", "a", true))
	h.Add(scan("L2", "b", false))

	if got := h.Recent("L1"); len(got) != 1 || got[0].Code != "a" {
		t.Errorf("unexpected L1 history %+v", got)
	}
	if got := h.Stats("L2"); got.Invalid != 1 || got.Valid != 0 {
		t.Errorf("unexpected L2 stats %+v", got)
	}
	if got := h.Recent("L3"); got == nil || len(got) != 0 {
		t.Errorf("expected empty history for unknown station, got %#v", got)
	}
}

func TestScanHistory_RecentIsACopy(t *testing.T) {
	h := NewScanHistory(10)
	h.Add(scan("L1", "a", true))

	got := h.Recent("L1")
	got[0].Code = "changed"
	if h.Recent("L1")[0].Code != "a" {
		t.Error("mutating the returned slice changed the history")
	}
}

func TestScanHistory_Reset(t *testing.T) {
	h := NewScanHistory(10)
	h.Add(scan("L1", "a", true))
	h.Add(scan("L2", "b", true))

	h.Reset("L1")
	if len(h.Recent("L1")) != 0 || h.Stats("L1").Validated != 0 {
		t.Error("expected L1 to be cleared")
	}
	if h.Stats("L2").Validated != 1 {
		t.Error("reset must not touch other stations")
	}
}

func TestScanHistory_ConcurrentSafe(t *testing.T) {
	h := NewScanHistory(5)

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			h.Add(scan("L1", fmt.Sprint(i), true))
			_ = h.Recent("L1")
		}(i)
	}
	wg.Wait()

	if got := h.Stats("L1").Validated; got != n {
		t.Errorf("expected %d scans counted, got %d", n, got)
	}
	if got := len(h.Recent("L1")); got != 5 {
		t.Errorf("expected 5 recent scans, got %d", got)
	}
}
