package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lomasaltas/boxcode/internal/boxcode"
	"github.com/lomasaltas/boxcode/internal/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyBatch    = errors.New("batch contains no codes")
	ErrBatchTooLarge = errors.New("batch exceeds the maximum size")
)

// BatchService validates many codes at once, e.g. a pallet's worth of scans
type BatchService struct {
	validationSvc *ValidationService
	workers       int
	maxSize       int
}

// NewBatchService creates a new BatchService
func NewBatchService(validationSvc *ValidationService, workers, maxSize int) *BatchService {
	if workers <= 0 {
		workers = 1
	}
	return &BatchService{
		validationSvc: validationSvc,
		workers:       workers,
		maxSize:       maxSize,
	}
}

// ValidateBatch validates codes concurrently and returns the results in input order
func (s *BatchService) ValidateBatch(ctx context.Context, station string, codes []string, expected *boxcode.ExpectedParams) (*models.BatchValidateResponse, error) {
	defer TrackTime("ValidateBatch", time.Now())
	start := time.Now()

	if len(codes) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.maxSize > 0 && len(codes) > s.maxSize {
		return nil, fmt.Errorf("%w: %d codes, limit is %d", ErrBatchTooLarge, len(codes), s.maxSize)
	}

	batchID := uuid.NewString()
	results := make([]models.ValidateResponse, len(codes))
	records := make([]models.ScanRecord, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, code := range codes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, rec := s.validationSvc.evaluate(station, code, expected, nil, &batchID)
			results[i] = *resp
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s cancelled: %w", batchID, err)
	}

	summary := models.BatchSummary{Total: len(results)}
	seen := make(map[string]int, len(results))
	for i, r := range results {
		if r.IsValid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
		if r.IsValid && !r.MatchesExpected {
			summary.Mismatch++
		}
		if r.Code == "" {
			continue
		}
		if first, dup := seen[r.Code]; dup {
			AddWarningf(ctx, models.WarnDuplicateCode, "code %s at position %d repeats position %d", r.Code, i+1, first+1)
		} else {
			seen[r.Code] = i
		}
	}

	for _, rec := range records {
		s.validationSvc.history.Add(rec)
	}
	if store := s.validationSvc.store; store != nil {
		if err := store.CreateBatch(ctx, records); err != nil {
			log.Errorf("Failed to persist batch %s: %v", batchID, err)
			AddWarningf(ctx, models.WarnScanNotPersisted, "batch %s was not written to the scan log", batchID)
		}
	}

	s.validationSvc.metrics.ObserveBatch(len(codes), time.Since(start))
	log.Infof("Batch %s from station %s: %d valid, %d invalid", batchID, station, summary.Valid, summary.Invalid)

	return &models.BatchValidateResponse{
		BatchID: batchID,
		Summary: summary,
		Results: results,
	}, nil
}
