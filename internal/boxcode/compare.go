package boxcode

import "strings"

// ExpectedParams are the values an operator expects on the line. Empty fields
// are not compared.
type ExpectedParams struct {
	Shift   string `json:"shift,omitempty"`
	Format  string `json:"format,omitempty"`
	Company string `json:"company,omitempty"`
}

// IsZero reports whether no expectation is set.
func (e ExpectedParams) IsZero() bool {
	return e.Shift == "" && e.Format == "" && e.Company == ""
}

// ComparisonResult is the comparison of one expected field against the code.
type ComparisonResult struct {
	Field         string `json:"field"`
	Expected      string `json:"expected"`
	Actual        string `json:"actual"`
	ExpectedLabel string `json:"expected_label"`
	ActualLabel   string `json:"actual_label"`
	Matches       bool   `json:"matches"`
}

// CompareToExpected compares shift, format and company of a parsed code with
// the operator's expectations. It returns no comparisons for a nil (invalid)
// code.
func CompareToExpected(p *ParsedFields, exp ExpectedParams) []ComparisonResult {
	out := []ComparisonResult{}
	if p == nil {
		return out
	}

	checks := []struct {
		field    string
		expected string
		actual   string
		label    func(string) string
	}{
		{FieldShift, exp.Shift, p.Shift, ShiftName},
		{FieldFormat, exp.Format, p.Format, FormatName},
		{FieldCompany, exp.Company, p.Company, CompanyName},
	}
	for _, c := range checks {
		expected := normalizeExpected(c.expected)
		if expected == "" {
			continue
		}
		out = append(out, ComparisonResult{
			Field:         c.field,
			Expected:      expected,
			Actual:        c.actual,
			ExpectedLabel: c.label(expected),
			ActualLabel:   c.label(c.actual),
			Matches:       expected == c.actual,
		})
	}
	return out
}

// normalizeExpected accepts the zero-padded codes used by the pallet form
// ("02") for the single-digit fields of the box code.
func normalizeExpected(v string) string {
	v = strings.TrimSpace(v)
	if len(v) == 2 && v[0] == '0' {
		return v[1:]
	}
	return v
}
