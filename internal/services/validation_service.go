package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lomasaltas/boxcode/internal/boxcode"
	"github.com/lomasaltas/boxcode/internal/cache"
	"github.com/lomasaltas/boxcode/internal/metrics"
	"github.com/lomasaltas/boxcode/internal/models"
	"github.com/lomasaltas/boxcode/internal/util"
	log "github.com/sirupsen/logrus"
)

var (
	ErrHistoryUnavailable = errors.New("scan log is not configured")
	ErrInvalidSource      = errors.New("invalid history source")
)

// History sources
const (
	SourceMemory = "memory"
	SourceDB     = "db"
)

// ScanStore persists scan records. *repository.ScanRepository implements it;
// GetByID reports a missing scan as repository.ErrScanNotFound.
type ScanStore interface {
	Create(ctx context.Context, rec *models.ScanRecord) error
	CreateBatch(ctx context.Context, recs []models.ScanRecord) error
	GetByID(ctx context.Context, id string) (*models.ScanRecord, error)
	ListRecent(ctx context.Context, station string, limit int) ([]models.ScanRecord, error)
	Stats(ctx context.Context, station string) (models.ScanStats, error)
	DeleteByStation(ctx context.Context, station string) (int64, error)
}

// ValidationService validates codes for packing stations and records every scan
type ValidationService struct {
	validator *boxcode.Validator
	history   *cache.ScanHistory
	store     ScanStore
	metrics   *metrics.Recorder
	plantLoc  *time.Location
	now       func() time.Time
}

// NewValidationService creates a new ValidationService.
// store may be nil, in which case scans are only kept in memory.
func NewValidationService(history *cache.ScanHistory, store ScanStore, rec *metrics.Recorder, plantLoc *time.Location) *ValidationService {
	return newValidationService(history, store, rec, plantLoc, time.Now)
}

func newValidationService(history *cache.ScanHistory, store ScanStore, rec *metrics.Recorder, plantLoc *time.Location, now func() time.Time) *ValidationService {
	if plantLoc == nil {
		plantLoc = time.UTC
	}
	return &ValidationService{
		validator: boxcode.NewValidator(boxcode.WithClock(now)),
		history:   history,
		store:     store,
		metrics:   rec,
		plantLoc:  plantLoc,
		now:       now,
	}
}

// Validate validates one code, records the scan and returns the full result
func (s *ValidationService) Validate(ctx context.Context, station string, req *models.ValidateRequest) *models.ValidateResponse {
	resp, rec := s.evaluate(station, req.Code, req.Expected, req.AsOf, nil)

	s.history.Add(rec)
	if s.store != nil {
		if err := s.store.Create(ctx, &rec); err != nil {
			log.Errorf("Failed to persist scan %s: %v", rec.ID, err)
			AddWarningf(ctx, models.WarnScanNotPersisted, "scan %s was not written to the scan log", rec.ID)
		}
	}

	if !resp.IsValid {
		log.Infof("Station %s rejected code %s (%d errors)", station, resp.Code, len(resp.Errors))
	}
	return resp
}

// evaluate runs the validator and builds the response and scan record without
// recording anything.
func (s *ValidationService) evaluate(station, code string, expected *boxcode.ExpectedParams, asOf *models.FlexibleDate, batchID *string) (*models.ValidateResponse, models.ScanRecord) {
	validator := s.validator
	if asOf != nil {
		ref := asOf.Time
		validator = boxcode.NewValidator(boxcode.WithClock(func() time.Time { return ref }))
	}
	res := validator.Validate(code)

	resp := &models.ValidateResponse{
		ScanID:     uuid.NewString(),
		Station:    station,
		Code:       res.Code,
		IsValid:    res.IsValid,
		Errors:     withHelp(res.Errors),
		Warnings:   withHelp(res.Warnings),
		ParsedData: res.Parsed,
	}
	resp.MatchesExpected = res.IsValid
	if res.IsValid {
		resp.Readable = boxcode.FormatReadable(res.Parsed)
		if expected != nil && !expected.IsZero() {
			resp.Comparisons = boxcode.CompareToExpected(res.Parsed, *expected)
			for _, c := range resp.Comparisons {
				if !c.Matches {
					resp.MatchesExpected = false
				}
			}
		}
	}
	s.metrics.ObserveValidation(station, res, resp.Comparisons)

	rec := models.ScanRecord{
		ID:           resp.ScanID,
		Station:      station,
		Code:         res.Code,
		IsValid:      res.IsValid,
		WarningCount: len(res.Warnings),
		BatchID:      batchID,
		ScannedAt:    s.now().UTC(),
	}
	for _, e := range res.Errors {
		rec.ErrorFields = append(rec.ErrorFields, e.Field)
	}
	return resp, rec
}

func withHelp(findings []boxcode.Finding) []models.FindingDTO {
	out := make([]models.FindingDTO, len(findings))
	for i, f := range findings {
		out[i] = models.FindingDTO{Finding: f, Help: boxcode.HelpFor(f)}
	}
	return out
}

// Encode builds a code from the request, taking the date fields (and the shift,
// when omitted) from the production time in the plant timezone
func (s *ValidationService) Encode(req *models.EncodeRequest) (*models.EncodeResponse, error) {
	producedAt := req.ProducedAt.InOr(s.plantLoc, s.now())
	stamp := util.StampAt(producedAt, s.plantLoc)

	shift := req.Shift
	if shift == "" {
		shift = util.ShiftAt(producedAt, s.plantLoc)
	}

	code, err := boxcode.Encode(boxcode.CodeFields{
		DayOfWeek:  stamp.DayOfWeek,
		WeekOfYear: stamp.WeekOfYear,
		Year:       stamp.Year,
		Operator:   req.Operator,
		Packer:     req.Packer,
		Shift:      shift,
		Caliber:    req.Caliber,
		Format:     req.Format,
		Company:    req.Company,
		Counter:    req.Counter,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode code: %w", err)
	}

	res := boxcode.NewValidator(boxcode.WithClock(func() time.Time { return producedAt })).Validate(code)
	return &models.EncodeResponse{
		Code:     code,
		Result:   res,
		Readable: boxcode.FormatReadable(res.Parsed),
	}, nil
}

// History returns a station's recent scans and counters, from memory or from the scan log.
// A limit of zero or less means the in-memory history size.
func (s *ValidationService) History(ctx context.Context, station, source string, limit int) (*models.HistoryResponse, error) {
	switch source {
	case "", SourceMemory:
		scans := s.history.Recent(station)
		if limit > 0 && len(scans) > limit {
			scans = scans[:limit]
		}
		return &models.HistoryResponse{
			Station: station,
			Source:  SourceMemory,
			Stats:   s.history.Stats(station),
			Scans:   scans,
		}, nil
	case SourceDB:
		if s.store == nil {
			return nil, ErrHistoryUnavailable
		}
		if limit <= 0 {
			limit = s.history.Size()
		}
		scans, err := s.store.ListRecent(ctx, station, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list scans: %w", err)
		}
		stats, err := s.store.Stats(ctx, station)
		if err != nil {
			return nil, fmt.Errorf("failed to count scans: %w", err)
		}
		return &models.HistoryResponse{Station: station, Source: SourceDB, Stats: stats, Scans: scans}, nil
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidSource, source)
	}
}

// Scan returns one scan from the scan log
func (s *ValidationService) Scan(ctx context.Context, id string) (*models.ScanRecord, error) {
	if s.store == nil {
		return nil, ErrHistoryUnavailable
	}
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get scan %s: %w", id, err)
	}
	return rec, nil
}

// ResetHistory clears a station's in-memory history and counters. With
// source db the station's rows are also deleted from the scan log, and the
// number of deleted rows is returned.
func (s *ValidationService) ResetHistory(ctx context.Context, station, source string) (int64, error) {
	switch source {
	case "", SourceMemory:
		s.history.Reset(station)
		log.Infof("History reset for station %s", station)
		return 0, nil
	case SourceDB:
		if s.store == nil {
			return 0, ErrHistoryUnavailable
		}
		deleted, err := s.store.DeleteByStation(ctx, station)
		if err != nil {
			return 0, fmt.Errorf("failed to delete scans: %w", err)
		}
		s.history.Reset(station)
		log.Infof("History reset for station %s, %d scans deleted from the scan log", station, deleted)
		return deleted, nil
	default:
		return 0, fmt.Errorf("%w: unknown source %q", ErrInvalidSource, source)
	}
}
