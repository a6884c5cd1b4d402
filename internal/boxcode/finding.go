package boxcode

// Severity distinguishes blocking findings from advisory ones.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding names. These are the keys operators see next to each problem and the
// keys HelpFor is indexed by.
const (
	FieldCode          = "código"
	FieldLength        = "longitud"
	FieldCharset       = "formato"
	FieldDay           = "día de la semana"
	FieldWeek          = "semana del año"
	FieldYear          = "año"
	FieldOperator      = "operario"
	FieldPacker        = "empacadora"
	FieldShift         = "turno"
	FieldCaliber       = "calibre"
	FieldFormat        = "formato"
	FieldCompany       = "empresa"
	FieldCounter       = "contador"
	FieldCaliberFormat = "calibre/formato"
)

// PositionNone marks findings that are not tied to a character position
// (structural checks).
const PositionNone = "-"

// Finding is a single error or warning produced while validating a code.
type Finding struct {
	Field    string   `json:"field"`
	Position string   `json:"position"`
	Value    string   `json:"value"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Structural reports whether the finding came from the length/charset checks.
func (f Finding) Structural() bool {
	return f.Position == PositionNone
}
