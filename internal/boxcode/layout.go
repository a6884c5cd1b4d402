package boxcode

// Slot indexes into the fixed code layout.
const (
	slotDay = iota
	slotWeek
	slotYear
	slotOperator
	slotPacker
	slotShift
	slotCaliber
	slotFormat
	slotCompany
	slotCounter
	numSlots
)

type slot struct {
	name     string
	position string
	start    int
	end      int
}

// layout maps each field to its character range in the normalized code.
var layout = [numSlots]slot{
	slotDay:      {FieldDay, "0", 0, 1},
	slotWeek:     {FieldWeek, "1-2", 1, 3},
	slotYear:     {FieldYear, "3-4", 3, 5},
	slotOperator: {FieldOperator, "5-6", 5, 7},
	slotPacker:   {FieldPacker, "7", 7, 8},
	slotShift:    {FieldShift, "8", 8, 9},
	slotCaliber:  {FieldCaliber, "9-10", 9, 11},
	slotFormat:   {FieldFormat, "11", 11, 12},
	slotCompany:  {FieldCompany, "12", 12, 13},
	slotCounter:  {FieldCounter, "13-15", 13, 16},
}

type codeFields [numSlots]string

// extract slices a 16-digit code into its fields. The caller guarantees the
// code passed the structural checks.
func extract(code string) codeFields {
	var f codeFields
	for i, s := range layout {
		f[i] = code[s.start:s.end]
	}
	return f
}

func (f codeFields) parsed() *ParsedFields {
	return &ParsedFields{
		DayOfWeek:  f[slotDay],
		WeekOfYear: f[slotWeek],
		Year:       "20" + f[slotYear],
		YearShort:  f[slotYear],
		Operator:   f[slotOperator],
		Packer:     f[slotPacker],
		Shift:      f[slotShift],
		Caliber:    f[slotCaliber],
		Format:     f[slotFormat],
		Company:    f[slotCompany],
		Counter:    f[slotCounter],
	}
}
