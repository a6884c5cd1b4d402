package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FlexibleDate accepts RFC3339 timestamps, ISO dates ("2006-01-02") and the
// day-first dates printed on plant paperwork ("02-01-2006").
type FlexibleDate struct {
	time.Time
	// dateOnly is set when the input had no time of day
	dateOnly bool
}

var flexibleLayouts = []string{time.RFC3339, "2006-01-02", "02-01-2006"}

// ParseFlexibleDate parses s with the first layout that accepts it.
func ParseFlexibleDate(s string) (FlexibleDate, error) {
	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FlexibleDate{Time: t, dateOnly: layout != time.RFC3339}, nil
		}
	}
	return FlexibleDate{}, fmt.Errorf("unrecognized date %q", s)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexibleDate) UnmarshalJSON(b []byte) error {
	d, err := ParseFlexibleDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*f = d
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexibleDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Time)
}

// InOr returns the instant in loc, or def when f is nil. A date without a time
// of day is read as midnight in loc rather than midnight UTC.
func (f *FlexibleDate) InOr(loc *time.Location, def time.Time) time.Time {
	if f == nil {
		return def.In(loc)
	}
	if f.dateOnly {
		y, m, d := f.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	return f.In(loc)
}
