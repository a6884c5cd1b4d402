package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/lomasaltas/boxcode/internal/models"
)

type warningContextKey struct{}

// WarningCollector accumulates service warnings during a request. Warnings
// never change a result or the status code; they are returned alongside it:
//
//   - W5001 a scan or batch could not be written to the scan log
//   - W6001 a blank row of an uploaded batch file was skipped
//   - W6002 a normalized code appears more than once in one batch
type WarningCollector struct {
	mu       sync.Mutex
	warnings []models.Warning
}

// NewWarningContext returns a context carrying a fresh WarningCollector,
// plus a reference to the collector so the handler can attach warnings to the
// response. The batch handler opens one per upload and BatchService adds the
// W6002 duplicates to the same collector.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{}
	return context.WithValue(ctx, warningContextKey{}, wc), wc
}

// AddWarning appends a warning to the collector in ctx.
// If ctx has no collector, the call is a no-op.
func AddWarning(ctx context.Context, w models.Warning) {
	wc, ok := ctx.Value(warningContextKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, w)
}

// AddWarningf formats the message and adds the warning to ctx.
func AddWarningf(ctx context.Context, code models.WarningCode, format string, args ...any) {
	AddWarning(ctx, models.Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// GetWarnings returns a copy of the collected warnings.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if len(wc.warnings) == 0 {
		return nil
	}
	out := make([]models.Warning, len(wc.warnings))
	copy(out, wc.warnings)
	return out
}
