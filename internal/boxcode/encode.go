package boxcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrFieldWidth = errors.New("field does not fit its position in the code")

// CodeFields are the inputs for building a code. Year may be given with two or
// four digits. Encode only checks that every field fits its width; the
// resulting code still has to go through Validate.
type CodeFields struct {
	DayOfWeek  int    `json:"day_of_week"`
	WeekOfYear int    `json:"week_of_year"`
	Year       int    `json:"year"`
	Operator   int    `json:"operator"`
	Packer     int    `json:"packer"`
	Shift      string `json:"shift"`
	Caliber    string `json:"caliber"`
	Format     string `json:"format"`
	Company    string `json:"company"`
	Counter    int    `json:"counter"`
}

// Encode renders fields as a 16-digit code.
func Encode(f CodeFields) (string, error) {
	var b strings.Builder
	b.Grow(CodeLength)

	numeric := []struct {
		slot  int
		value int
	}{
		{slotDay, f.DayOfWeek},
		{slotWeek, f.WeekOfYear},
		{slotYear, f.Year % 100},
		{slotOperator, f.Operator},
		{slotPacker, f.Packer},
	}
	for _, n := range numeric {
		s, err := pad(n.slot, n.value)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}

	for _, c := range []struct {
		slot  int
		value string
	}{
		{slotShift, f.Shift},
		{slotCaliber, f.Caliber},
		{slotFormat, f.Format},
		{slotCompany, f.Company},
	} {
		n, err := strconv.Atoi(strings.TrimSpace(c.value))
		if err != nil {
			return "", fmt.Errorf("%s %q: %w", layout[c.slot].name, c.value, ErrFieldWidth)
		}
		s, err := pad(c.slot, n)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}

	s, err := pad(slotCounter, f.Counter)
	if err != nil {
		return "", err
	}
	b.WriteString(s)
	return b.String(), nil
}

func pad(slot, value int) (string, error) {
	width := layout[slot].end - layout[slot].start
	s := fmt.Sprintf("%0*d", width, value)
	if value < 0 || len(s) != width {
		return "", fmt.Errorf("%s %d: %w", layout[slot].name, value, ErrFieldWidth)
	}
	return s, nil
}
