package models

// WarningCode categorizes service-level warnings.
// These never affect the validity of a code; code findings live in the validation result.
// W5xxx = scan recording, W6xxx = batch input.
type WarningCode string

const (
	WarnScanNotPersisted WarningCode = "W5001" // scan log write failed; scan kept in memory only
	WarnBlankRowSkipped  WarningCode = "W6001" // blank row in an uploaded batch
	WarnDuplicateCode    WarningCode = "W6002" // same normalized code appears more than once in a batch
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
