package boxcode

import (
	"fmt"
	"strconv"
	"time"
)

// fieldRule checks one field. check returns the finding message, or "" when
// the value is acceptable.
type fieldRule struct {
	slot     int
	severity Severity
	check    func(value string, now time.Time) string
}

// fieldRules run in order over every structurally valid code. Adding a rule is
// a matter of appending a row.
var fieldRules = []fieldRule{
	{slotDay, SeverityError, checkDay},
	{slotWeek, SeverityError, checkWeek},
	{slotYear, SeverityWarning, checkYear},
	{slotOperator, SeverityWarning, checkOperator},
	{slotPacker, SeverityError, checkPacker},
	{slotShift, SeverityError, checkShift},
	{slotCaliber, SeverityError, checkCaliber},
	{slotFormat, SeverityError, checkFormat},
	{slotCompany, SeverityError, checkCompany},
	{slotCounter, SeverityError, checkCounter},
}

// Year tolerance around the current year, in years.
const (
	yearPastTolerance   = 2
	yearFutureTolerance = 5
)

func inRange(value string, lo, hi int) bool {
	n, err := strconv.Atoi(value)
	return err == nil && n >= lo && n <= hi
}

func checkDay(v string, _ time.Time) string {
	if inRange(v, 1, 7) {
		return ""
	}
	return fmt.Sprintf("Día %s es inválido. Debe ser 1-7 (1=Lunes, 7=Domingo)", v)
}

func checkWeek(v string, _ time.Time) string {
	if inRange(v, 1, 53) {
		return ""
	}
	return fmt.Sprintf("Semana %s es inválida. Debe ser 01-53", v)
}

func checkYear(v string, now time.Time) string {
	current := now.Year() % 100
	if inRange(v, current-yearPastTolerance, current+yearFutureTolerance) {
		return ""
	}
	return fmt.Sprintf("Año 20%s parece inusual. Verifique que sea correcto", v)
}

func checkOperator(v string, _ time.Time) string {
	if n, err := strconv.Atoi(v); err == nil && n != 0 {
		return ""
	}
	return fmt.Sprintf("Operario %s es inusual", v)
}

func checkPacker(v string, _ time.Time) string {
	if inRange(v, 1, 9) {
		return ""
	}
	return fmt.Sprintf("Empacadora %s es inválida. Debe ser 1-9", v)
}

func checkShift(v string, _ time.Time) string {
	if _, ok := shiftNames[v]; ok {
		return ""
	}
	return fmt.Sprintf("Turno %s es inválido. Debe ser 1 (Mañana), 2 (Tarde) o 3 (Noche)", v)
}

func checkCaliber(v string, _ time.Time) string {
	if IsValidCaliber(v) {
		return ""
	}
	if nonexistentCalibers[v] {
		return fmt.Sprintf("Calibre %s NO EXISTE. Los válidos son: %s", v, validCaliberSet)
	}
	return fmt.Sprintf("Calibre %s es inválido. Los válidos son: %s", v, validCaliberSet)
}

func checkFormat(v string, _ time.Time) string {
	if _, ok := formatNames[v]; ok {
		return ""
	}
	return fmt.Sprintf("Formato %s es inválido. Debe ser 1 (180u), 2 (100 JUMBO), 3 (Docena) o 4-6 (carros)", v)
}

func checkCompany(v string, _ time.Time) string {
	if _, ok := companyNames[v]; ok {
		return ""
	}
	return fmt.Sprintf("Empresa %s es inválida. Debe ser 1-5", v)
}

func checkCounter(v string, _ time.Time) string {
	if n, err := strconv.Atoi(v); err == nil && n != 0 {
		return ""
	}
	return "Contador no puede ser 000"
}

// crossRule checks a combination of fields. Failures are always errors.
type crossRule func(f codeFields) (msg string, failed bool)

var crossRules = []crossRule{
	jumboInBox180,
	jumboInCart,
}

func jumboInBox180(f codeFields) (string, bool) {
	caliber, format := f[slotCaliber], f[slotFormat]
	if !IsJumbo(caliber) || format != FormatBox180 {
		return "", false
	}
	return fmt.Sprintf("Calibre JUMBO %s no puede usar formato %s (%s). Los calibres JUMBO solo usan formato %s (%s)",
		caliber, format, FormatName(format), FormatBoxJumbo, FormatName(FormatBoxJumbo)), true
}

func jumboInCart(f codeFields) (string, bool) {
	caliber, format := f[slotCaliber], f[slotFormat]
	if !IsJumbo(caliber) || !IsCartFormat(format) {
		return "", false
	}
	return fmt.Sprintf("Calibre JUMBO %s con formato de carro %s (%s) es inusual. Verifique que sea correcto",
		caliber, format, FormatName(format)), true
}

func checkCrossFields(f codeFields) []Finding {
	var findings []Finding
	for _, rule := range crossRules {
		msg, failed := rule(f)
		if !failed {
			continue
		}
		findings = append(findings, Finding{
			Field:    FieldCaliberFormat,
			Position: "9-11",
			Value:    f[slotCaliber] + "/" + f[slotFormat],
			Message:  msg,
			Severity: SeverityError,
		})
	}
	return findings
}
