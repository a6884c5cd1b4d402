package models

import "time"

// ScanRecord is one validated code as seen by a packing station
type ScanRecord struct {
	ID           string    `json:"id"`
	Station      string    `json:"station"`
	Code         string    `json:"code"`
	IsValid      bool      `json:"is_valid"`
	ErrorFields  []string  `json:"error_fields,omitempty"`
	WarningCount int       `json:"warning_count"`
	BatchID      *string   `json:"batch_id,omitempty"`
	ScannedAt    time.Time `json:"scanned_at"`
}

// ScanStats counts scans by outcome
type ScanStats struct {
	Validated int `json:"validated"`
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
}
