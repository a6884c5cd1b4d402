package services

import (
	"context"
	"sync"
	"testing"

	"github.com/lomasaltas/boxcode/internal/models"
)

func TestWarningCollector_BasicUsage(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	AddWarning(ctx, models.Warning{Code: models.WarnScanNotPersisted, Message: "test warning 1"})
	AddWarningf(ctx, models.WarnBlankRowSkipped, "row %d is blank", 4)

	warnings := wc.GetWarnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].Code != models.WarnScanNotPersisted {
		t.Errorf("expected code %s, got %s", models.WarnScanNotPersisted, warnings[0].Code)
	}
	if warnings[1].Message != "row 4 is blank" {
		t.Errorf("unexpected message %q", warnings[1].Message)
	}
}

func TestWarningCollector_NoCollectorNoPanic(t *testing.T) {
	AddWarning(context.Background(), models.Warning{Code: models.WarnScanNotPersisted, Message: "dropped"})
}

func TestWarningCollector_EmptyByDefault(t *testing.T) {
	_, wc := NewWarningContext(context.Background())
	if warnings := wc.GetWarnings(); len(warnings) != 0 {
		t.Errorf("expected 0 warnings, got %d", len(warnings))
	}
}

func TestWarningCollector_ConcurrentSafe(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			AddWarning(ctx, models.Warning{Code: models.WarnDuplicateCode, Message: "concurrent warning"})
		}()
	}
	wg.Wait()

	if warnings := wc.GetWarnings(); len(warnings) != n {
		t.Errorf("expected %d warnings, got %d", n, len(warnings))
	}
}
