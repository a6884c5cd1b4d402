package models

import (
	"github.com/lomasaltas/boxcode/internal/boxcode"
)

// ValidateRequest represents the request body for validating a single code
type ValidateRequest struct {
	Code     string                  `json:"code" binding:"required"`
	Expected *boxcode.ExpectedParams `json:"expected,omitempty"`
	// AsOf overrides the reference date for the year plausibility check
	AsOf *FlexibleDate `json:"as_of,omitempty"`
}

// FindingDTO is a validation finding with its contextual help text
type FindingDTO struct {
	boxcode.Finding
	Help string `json:"help,omitempty"`
}

// ValidateResponse represents the validation result of one code
type ValidateResponse struct {
	ScanID      string                     `json:"scan_id"`
	Station     string                     `json:"station"`
	Code        string                     `json:"code"`
	IsValid     bool                       `json:"is_valid"`
	Errors      []FindingDTO               `json:"errors"`
	Warnings    []FindingDTO               `json:"warnings"`
	ParsedData  *boxcode.ParsedFields      `json:"parsed_data,omitempty"`
	Readable    []boxcode.LabeledValue     `json:"readable,omitempty"`
	Comparisons []boxcode.ComparisonResult `json:"comparisons,omitempty"`
	// MatchesExpected is false when any comparison failed
	MatchesExpected bool      `json:"matches_expected"`
	ServiceWarnings []Warning `json:"service_warnings,omitempty"`
}

// BatchValidateRequest represents the request body for validating many codes at once
type BatchValidateRequest struct {
	Codes    []string                `json:"codes" binding:"required"`
	Expected *boxcode.ExpectedParams `json:"expected,omitempty"`
}

// BatchSummary counts the outcomes of a batch
type BatchSummary struct {
	Total    int `json:"total"`
	Valid    int `json:"valid"`
	Invalid  int `json:"invalid"`
	Mismatch int `json:"mismatch"`
}

// BatchValidateResponse represents the results of a batch, in input order
type BatchValidateResponse struct {
	BatchID  string             `json:"batch_id"`
	Summary  BatchSummary       `json:"summary"`
	Results  []ValidateResponse `json:"results"`
	Warnings []Warning          `json:"warnings,omitempty"`
}

// EncodeRequest represents the request body for building a code. The date
// fields are derived from ProducedAt (or the current time) in the plant timezone,
// as is the shift when it is left empty.
type EncodeRequest struct {
	Operator   int           `json:"operator"`
	Packer     int           `json:"packer" binding:"required"`
	Shift      string        `json:"shift,omitempty"`
	Caliber    string        `json:"caliber" binding:"required"`
	Format     string        `json:"format" binding:"required"`
	Company    string        `json:"company" binding:"required"`
	Counter    int           `json:"counter" binding:"required"`
	ProducedAt *FlexibleDate `json:"produced_at,omitempty"`
}

// EncodeResponse represents a built code and its validation
type EncodeResponse struct {
	Code     string                   `json:"code"`
	Result   boxcode.ValidationResult `json:"result"`
	Readable []boxcode.LabeledValue   `json:"readable,omitempty"`
}

// HelpResponse represents the help text for a finding field
type HelpResponse struct {
	Field string `json:"field"`
	Help  string `json:"help"`
}

// HistoryResponse represents the recent scans of a station
type HistoryResponse struct {
	Station string       `json:"station"`
	Source  string       `json:"source"`
	Stats   ScanStats    `json:"stats"`
	Scans   []ScanRecord `json:"scans"`
}

// ResetHistoryResponse reports a history reset. Deleted counts scan log rows
// and is only non-zero for source db.
type ResetHistoryResponse struct {
	Station string `json:"station"`
	Source  string `json:"source"`
	Deleted int64  `json:"deleted"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
