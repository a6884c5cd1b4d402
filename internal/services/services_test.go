package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lomasaltas/boxcode/internal/boxcode"
	"github.com/lomasaltas/boxcode/internal/cache"
	"github.com/lomasaltas/boxcode/internal/models"
	"github.com/lomasaltas/boxcode/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCode = "1052407320112123"

var testNow = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

// memStore is an in-memory ScanStore
type memStore struct {
	mu      sync.Mutex
	scans   []models.ScanRecord
	failErr error
}

func (m *memStore) Create(_ context.Context, rec *models.ScanRecord) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scans = append(m.scans, *rec)
	return nil
}

func (m *memStore) CreateBatch(_ context.Context, recs []models.ScanRecord) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scans = append(m.scans, recs...)
	return nil
}

func (m *memStore) ListRecent(_ context.Context, station string, limit int) ([]models.ScanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.ScanRecord{}
	for i := len(m.scans) - 1; i >= 0 && len(out) < limit; i-- {
		if m.scans[i].Station == station {
			out = append(out, m.scans[i])
		}
	}
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, id string) (*models.ScanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.scans {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, repository.ErrScanNotFound
}

func (m *memStore) DeleteByStation(_ context.Context, station string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.scans[:0]
	var deleted int64
	for _, r := range m.scans {
		if r.Station == station {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.scans = kept
	return deleted, nil
}

func (m *memStore) Stats(_ context.Context, station string) (models.ScanStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var s models.ScanStats
	for _, r := range m.scans {
		if r.Station != station {
			continue
		}
		s.Validated++
		if r.IsValid {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s, nil
}

func newTestService(store ScanStore) *ValidationService {
	return newValidationService(cache.NewScanHistory(10), store, nil, time.UTC, func() time.Time { return testNow })
}

func TestValidationService_ValidCode(t *testing.T) {
	svc := newTestService(nil)

	resp := svc.Validate(context.Background(), "L1", &models.ValidateRequest{Code: validCode})

	assert.True(t, resp.IsValid)
	assert.True(t, resp.MatchesExpected)
	assert.NotEmpty(t, resp.ScanID)
	assert.Equal(t, "L1", resp.Station)
	assert.Empty(t, resp.Errors)
	assert.Len(t, resp.Readable, 10)
	require.NotNil(t, resp.ParsedData)
	assert.Equal(t, "2024", resp.ParsedData.Year)
	assert.Nil(t, resp.Comparisons)
}

func TestValidationService_InvalidCodeCarriesHelp(t *testing.T) {
	svc := newTestService(nil)

	resp := svc.Validate(context.Background(), "L1", &models.ValidateRequest{Code: "1052407322312123"})

	assert.False(t, resp.IsValid)
	assert.False(t, resp.MatchesExpected)
	assert.Nil(t, resp.ParsedData)
	assert.Empty(t, resp.Readable)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, boxcode.FieldCaliber, resp.Errors[0].Field)
	assert.Contains(t, resp.Errors[0].Message, "NO EXISTE")
	assert.Contains(t, resp.Errors[0].Help, "(NO 23)")
}

func TestValidationService_ExpectedMismatch(t *testing.T) {
	svc := newTestService(nil)

	resp := svc.Validate(context.Background(), "L1", &models.ValidateRequest{
		Code:     validCode,
		Expected: &boxcode.ExpectedParams{Shift: "1"},
	})

	assert.True(t, resp.IsValid)
	assert.False(t, resp.MatchesExpected)
	require.Len(t, resp.Comparisons, 1)
	assert.False(t, resp.Comparisons[0].Matches)
	assert.Equal(t, boxcode.ShiftName("1"), resp.Comparisons[0].ExpectedLabel)
	assert.Equal(t, boxcode.ShiftName("2"), resp.Comparisons[0].ActualLabel)
}

func TestValidationService_AsOfOverridesClock(t *testing.T) {
	svc := newTestService(nil)
	code := "1053007320112123" // year 30

	resp := svc.Validate(context.Background(), "L1", &models.ValidateRequest{Code: code})
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, boxcode.FieldYear, resp.Warnings[0].Field)

	resp = svc.Validate(context.Background(), "L1", &models.ValidateRequest{
		Code: code,
		AsOf: &models.FlexibleDate{Time: time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	assert.Empty(t, resp.Warnings)
}

func TestValidationService_RecordsHistoryAndStore(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	ctx := context.Background()

	svc.Validate(ctx, "L1", &models.ValidateRequest{Code: validCode})
	svc.Validate(ctx, "L1", &models.ValidateRequest{Code: "12345"})

	mem, err := svc.History(ctx, "L1", SourceMemory, 0)
	require.NoError(t, err)
	assert.Equal(t, models.ScanStats{Validated: 2, Valid: 1, Invalid: 1}, mem.Stats)
	require.Len(t, mem.Scans, 2)
	assert.Equal(t, "12345", mem.Scans[0].Code)
	assert.Equal(t, []string{boxcode.FieldLength}, mem.Scans[0].ErrorFields)
	assert.Equal(t, testNow, mem.Scans[0].ScannedAt)

	db, err := svc.History(ctx, "L1", SourceDB, 10)
	require.NoError(t, err)
	assert.Equal(t, SourceDB, db.Source)
	assert.Equal(t, 2, db.Stats.Validated)
	assert.Len(t, db.Scans, 2)
}

func TestValidationService_StoreFailureIsAWarning(t *testing.T) {
	svc := newTestService(&memStore{failErr: errors.New("connection refused")})
	ctx, wc := NewWarningContext(context.Background())

	resp := svc.Validate(ctx, "L1", &models.ValidateRequest{Code: validCode})

	assert.True(t, resp.IsValid)
	warnings := wc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, models.WarnScanNotPersisted, warnings[0].Code)

	mem, err := svc.History(ctx, "L1", SourceMemory, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, mem.Stats.Validated)
}

func TestValidationService_HistoryWithoutStore(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.History(context.Background(), "L1", SourceDB, 10)
	assert.ErrorIs(t, err, ErrHistoryUnavailable)

	_, err = svc.History(context.Background(), "L1", "redis", 10)
	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestValidationService_ResetHistory(t *testing.T) {
	svc := newTestService(nil)
	svc.Validate(context.Background(), "L1", &models.ValidateRequest{Code: validCode})

	deleted, err := svc.ResetHistory(context.Background(), "L1", "")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	mem, err := svc.History(context.Background(), "L1", SourceMemory, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, mem.Stats.Validated)
	assert.Empty(t, mem.Scans)

	_, err = svc.ResetHistory(context.Background(), "L1", SourceDB)
	assert.ErrorIs(t, err, ErrHistoryUnavailable)
	_, err = svc.ResetHistory(context.Background(), "L1", "disk")
	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestValidationService_ResetHistoryFromScanLog(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	ctx := context.Background()
	svc.Validate(ctx, "L1", &models.ValidateRequest{Code: validCode})
	svc.Validate(ctx, "L1", &models.ValidateRequest{Code: "123"})
	svc.Validate(ctx, "L2", &models.ValidateRequest{Code: validCode})

	deleted, err := svc.ResetHistory(ctx, "L1", SourceDB)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	db, err := svc.History(ctx, "L1", SourceDB, 0)
	require.NoError(t, err)
	assert.Empty(t, db.Scans)
	mem, err := svc.History(ctx, "L1", SourceMemory, 0)
	require.NoError(t, err)
	assert.Empty(t, mem.Scans)

	other, err := svc.History(ctx, "L2", SourceDB, 0)
	require.NoError(t, err)
	assert.Len(t, other.Scans, 1)
}

func TestValidationService_HistoryFromScanLogWithoutLimit(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		svc.Validate(ctx, "L1", &models.ValidateRequest{Code: validCode})
	}

	db, err := svc.History(ctx, "L1", SourceDB, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, db.Stats.Validated)
	// falls back to the in-memory history size
	assert.Len(t, db.Scans, 10)

	db, err = svc.History(ctx, "L1", SourceDB, 3)
	require.NoError(t, err)
	assert.Len(t, db.Scans, 3)
}

func TestValidationService_Scan(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	ctx := context.Background()
	resp := svc.Validate(ctx, "L1", &models.ValidateRequest{Code: validCode})

	rec, err := svc.Scan(ctx, resp.ScanID)
	require.NoError(t, err)
	assert.Equal(t, validCode, rec.Code)
	assert.Equal(t, "L1", rec.Station)

	_, err = svc.Scan(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrScanNotFound)

	_, err = newTestService(nil).Scan(ctx, resp.ScanID)
	assert.ErrorIs(t, err, ErrHistoryUnavailable)
}

func TestValidationService_Encode(t *testing.T) {
	svc := newTestService(nil)

	resp, err := svc.Encode(&models.EncodeRequest{
		Operator: 7, Packer: 3, Shift: "2", Caliber: "01", Format: "1", Company: "2", Counter: 123,
		ProducedAt: &models.FlexibleDate{Time: time.Date(2024, 1, 29, 15, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	assert.Equal(t, validCode, resp.Code)
	assert.True(t, resp.Result.IsValid)
	assert.Len(t, resp.Readable, 10)
}

func TestValidationService_EncodeDateInPlantTimezone(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	svc := newValidationService(cache.NewScanHistory(10), nil, nil, santiago, func() time.Time { return testNow })

	// Monday 2024-01-29, ISO week 5, read as local midnight
	day, err := models.ParseFlexibleDate("2024-01-29")
	require.NoError(t, err)

	resp, err := svc.Encode(&models.EncodeRequest{
		Operator: 7, Packer: 3, Shift: "2", Caliber: "01", Format: "1", Company: "2", Counter: 123,
		ProducedAt: &day,
	})
	require.NoError(t, err)
	assert.Equal(t, validCode, resp.Code)

	resp, err = svc.Encode(&models.EncodeRequest{
		Operator: 7, Packer: 3, Caliber: "01", Format: "1", Company: "2", Counter: 123,
		ProducedAt: &day,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Result.Parsed)
	assert.Equal(t, "1", resp.Result.Parsed.DayOfWeek)
	assert.Equal(t, "05", resp.Result.Parsed.WeekOfYear)
	assert.Equal(t, "3", resp.Result.Parsed.Shift)
}

func TestValidationService_EncodeDerivesShift(t *testing.T) {
	svc := newTestService(nil)

	resp, err := svc.Encode(&models.EncodeRequest{
		Operator: 7, Packer: 3, Caliber: "12", Format: "2", Company: "1", Counter: 5,
		ProducedAt: &models.FlexibleDate{Time: time.Date(2024, 1, 29, 23, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Result.Parsed)
	assert.Equal(t, "3", resp.Result.Parsed.Shift)
}

func TestValidationService_EncodeRejectsWideField(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Encode(&models.EncodeRequest{Packer: 12, Shift: "1", Caliber: "01", Format: "1", Company: "1", Counter: 1})
	assert.ErrorIs(t, err, boxcode.ErrFieldWidth)
}

func TestBatchService_KeepsInputOrder(t *testing.T) {
	store := &memStore{}
	batchSvc := NewBatchService(newTestService(store), 4, 100)

	codes := make([]string, 0, 40)
	for i := 1; i <= 40; i++ {
		codes = append(codes, fmt.Sprintf("105240732011%d%03d", 2, i))
	}
	codes[10] = "1052407322312123"

	resp, err := batchSvc.ValidateBatch(context.Background(), "L1", codes, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BatchID)
	assert.Equal(t, models.BatchSummary{Total: 40, Valid: 39, Invalid: 1}, resp.Summary)
	require.Len(t, resp.Results, 40)
	for i, r := range resp.Results {
		assert.Equal(t, codes[i], r.Code, "result %d out of order", i)
	}
	assert.False(t, resp.Results[10].IsValid)

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.scans, 40)
	for _, s := range store.scans {
		require.NotNil(t, s.BatchID)
		assert.Equal(t, resp.BatchID, *s.BatchID)
	}
}

func TestBatchService_ExpectedAndDuplicates(t *testing.T) {
	batchSvc := NewBatchService(newTestService(nil), 2, 100)
	ctx, wc := NewWarningContext(context.Background())

	resp, err := batchSvc.ValidateBatch(ctx, "L1", []string{validCode, "1052-4073-2011-2123", "1052407320112124"},
		&boxcode.ExpectedParams{Company: "3"})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Summary.Mismatch)
	warnings := wc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, models.WarnDuplicateCode, warnings[0].Code)
}

func TestBatchService_Limits(t *testing.T) {
	batchSvc := NewBatchService(newTestService(nil), 2, 3)

	_, err := batchSvc.ValidateBatch(context.Background(), "L1", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = batchSvc.ValidateBatch(context.Background(), "L1", []string{"1", "2", "3", "4"}, nil)
	assert.ErrorIs(t, err, ErrBatchTooLarge)
}

func TestBatchService_CancelledContext(t *testing.T) {
	batchSvc := NewBatchService(newTestService(nil), 1, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batchSvc.ValidateBatch(ctx, "L1", []string{validCode, validCode}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
