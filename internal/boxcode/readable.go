package boxcode

import "strconv"

// LabeledValue is one display row of a parsed code.
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FormatReadable converts parsed fields into the ten display rows shown to the
// operator, in code order. A nil input yields no rows.
func FormatReadable(p *ParsedFields) []LabeledValue {
	if p == nil {
		return []LabeledValue{}
	}

	day := p.DayOfWeek
	if n, err := strconv.Atoi(p.DayOfWeek); err == nil {
		if name := DayName(n); name != "" {
			day = name
		}
	}
	week := p.WeekOfYear
	if n, err := strconv.Atoi(p.WeekOfYear); err == nil {
		week = strconv.Itoa(n)
	}

	return []LabeledValue{
		{"Día", day},
		{"Semana", "Semana " + week},
		{"Año", p.Year},
		{"Operario", "Operario " + p.Operator},
		{"Empacadora", "Empacadora " + p.Packer},
		{"Turno", ShiftName(p.Shift)},
		{"Calibre", CaliberName(p.Caliber)},
		{"Formato", FormatName(p.Format)},
		{"Empresa", CompanyName(p.Company)},
		{"Contador", "Caja #" + p.Counter},
	}
}
