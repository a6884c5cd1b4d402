package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lomasaltas/boxcode/internal/models"
)

var ErrScanNotFound = errors.New("scan not found")

// ScanRepository handles database operations for the scan log
type ScanRepository struct {
	pool *pgxpool.Pool
}

// NewScanRepository creates a new ScanRepository
func NewScanRepository(pool *pgxpool.Pool) *ScanRepository {
	return &ScanRepository{pool: pool}
}

// Create inserts a scan record
func (r *ScanRepository) Create(ctx context.Context, rec *models.ScanRecord) error {
	query := `
		INSERT INTO scan_log (id, station, code, is_valid, error_fields, warning_count, batch_id, scanned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	errorFields := rec.ErrorFields
	if errorFields == nil {
		errorFields = []string{}
	}
	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.Station, rec.Code, rec.IsValid, errorFields, rec.WarningCount, rec.BatchID, rec.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}
	return nil
}

// CreateBatch inserts many scan records in one transaction
func (r *ScanRepository) CreateBatch(ctx context.Context, recs []models.ScanRecord) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rec := range recs {
		errorFields := rec.ErrorFields
		if errorFields == nil {
			errorFields = []string{}
		}
		batch.Queue(`
			INSERT INTO scan_log (id, station, code, is_valid, error_fields, warning_count, batch_id, scanned_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, rec.ID, rec.Station, rec.Code, rec.IsValid, errorFields, rec.WarningCount, rec.BatchID, rec.ScannedAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert scans: %w", err)
	}
	return tx.Commit(ctx)
}

// GetByID retrieves a scan by ID
func (r *ScanRepository) GetByID(ctx context.Context, id string) (*models.ScanRecord, error) {
	query := `
		SELECT id, station, code, is_valid, error_fields, warning_count, batch_id, scanned_at
		FROM scan_log
		WHERE id = $1
	`
	rec := &models.ScanRecord{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.Station, &rec.Code, &rec.IsValid, &rec.ErrorFields, &rec.WarningCount, &rec.BatchID, &rec.ScannedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrScanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return rec, nil
}

// ListRecent retrieves the most recent scans of a station, newest first
func (r *ScanRepository) ListRecent(ctx context.Context, station string, limit int) ([]models.ScanRecord, error) {
	query := `
		SELECT id, station, code, is_valid, error_fields, warning_count, batch_id, scanned_at
		FROM scan_log
		WHERE station = $1
		ORDER BY scanned_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, station, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	scans := []models.ScanRecord{}
	for rows.Next() {
		var rec models.ScanRecord
		if err := rows.Scan(&rec.ID, &rec.Station, &rec.Code, &rec.IsValid, &rec.ErrorFields, &rec.WarningCount, &rec.BatchID, &rec.ScannedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, rec)
	}
	return scans, rows.Err()
}

// Stats counts a station's scans by outcome
func (r *ScanRepository) Stats(ctx context.Context, station string) (models.ScanStats, error) {
	query := `
		SELECT count(*), count(*) FILTER (WHERE is_valid), count(*) FILTER (WHERE NOT is_valid)
		FROM scan_log
		WHERE station = $1
	`
	var s models.ScanStats
	if err := r.pool.QueryRow(ctx, query, station).Scan(&s.Validated, &s.Valid, &s.Invalid); err != nil {
		return models.ScanStats{}, fmt.Errorf("failed to count scans: %w", err)
	}
	return s, nil
}

// DeleteByStation removes every scan of a station
func (r *ScanRepository) DeleteByStation(ctx context.Context, station string) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM scan_log WHERE station = $1`, station)
	if err != nil {
		return 0, fmt.Errorf("failed to delete scans: %w", err)
	}
	return result.RowsAffected(), nil
}
