// Package boxcode parses and validates the 16-digit codes printed on egg boxes
// and carts. Each position of the code carries a production field (date,
// operator, packing line, shift, caliber, format, company and box counter).
//
// Validation runs in two phases. A failure in the structural phase (empty
// input, length, digits only) ends validation with no parsed data.
// Once the code is structurally sound every field rule and every cross-field
// rule runs, so a single call reports all the problems in the code.
//
// The package holds no mutable state and is safe for concurrent use.
package boxcode

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// CodeLength is the number of digits in a normalized box code.
const CodeLength = 16

// ParsedFields holds the fields of a valid code. Year is the four-digit year,
// YearShort the two digits printed in the code.
type ParsedFields struct {
	DayOfWeek  string `json:"day_of_week"`
	WeekOfYear string `json:"week_of_year"`
	Year       string `json:"year"`
	YearShort  string `json:"year_short"`
	Operator   string `json:"operator"`
	Packer     string `json:"packer"`
	Shift      string `json:"shift"`
	Caliber    string `json:"caliber"`
	Format     string `json:"format"`
	Company    string `json:"company"`
	Counter    string `json:"counter"`
}

// ValidationResult is the outcome of validating one code. Parsed is only set
// when IsValid is true.
type ValidationResult struct {
	Code     string        `json:"code"`
	IsValid  bool          `json:"is_valid"`
	Errors   []Finding     `json:"errors"`
	Warnings []Finding     `json:"warnings"`
	Parsed   *ParsedFields `json:"parsed_data,omitempty"`
}

// Validator validates box codes against a clock. The clock only affects the
// year plausibility warning.
type Validator struct {
	now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the time source used for the year check.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// NewValidator creates a Validator that uses time.Now unless overridden.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate validates raw against the current time.
func Validate(raw string) ValidationResult {
	return defaultValidator.Validate(raw)
}

// Validate parses and validates a raw scanned code. Spaces and dashes are ignored.
func (v *Validator) Validate(raw string) ValidationResult {
	code := Normalize(raw)
	result := ValidationResult{
		Code:     code,
		Errors:   []Finding{},
		Warnings: []Finding{},
	}

	if code == "" {
		result.Errors = append(result.Errors, Finding{
			Field:    FieldCode,
			Position: PositionNone,
			Value:    "",
			Message:  "El código no puede estar vacío",
			Severity: SeverityError,
		})
		return result
	}

	result.Errors = append(result.Errors, checkStructure(code)...)
	if len(result.Errors) > 0 {
		return result
	}

	fields := extract(code)
	now := v.now()
	for _, r := range fieldRules {
		value := fields[r.slot]
		msg := r.check(value, now)
		if msg == "" {
			continue
		}
		f := Finding{
			Field:    layout[r.slot].name,
			Position: layout[r.slot].position,
			Value:    value,
			Message:  msg,
			Severity: r.severity,
		}
		if r.severity == SeverityWarning {
			result.Warnings = append(result.Warnings, f)
		} else {
			result.Errors = append(result.Errors, f)
		}
	}
	result.Errors = append(result.Errors, checkCrossFields(fields)...)

	result.IsValid = len(result.Errors) == 0
	if result.IsValid {
		result.Parsed = fields.parsed()
	}
	return result
}

// Normalize strips white space and dashes from a scanned code.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

func checkStructure(code string) []Finding {
	var findings []Finding

	n := utf8.RuneCountInString(code)
	if n != CodeLength {
		findings = append(findings, Finding{
			Field:    FieldLength,
			Position: PositionNone,
			Value:    fmt.Sprint(n),
			Message:  fmt.Sprintf("Código tiene %d dígitos, debe tener %d", n, CodeLength),
			Severity: SeverityError,
		})
	}

	if invalid := invalidChars(code); len(invalid) > 0 {
		list := strings.Join(invalid, ", ")
		findings = append(findings, Finding{
			Field:    FieldCharset,
			Position: PositionNone,
			Value:    list,
			Message:  "El código solo puede contener números. Caracteres inválidos: " + list,
			Severity: SeverityError,
		})
	}
	return findings
}

// invalidChars returns the distinct non-digit characters of s in order of
// first appearance.
func invalidChars(s string) []string {
	var out []string
	seen := make(map[rune]bool)
	for _, r := range s {
		if r >= '0' && r <= '9' || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, string(r))
	}
	return out
}
