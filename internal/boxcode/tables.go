package boxcode

import "sort"

// CaliberGroup classifies a caliber by shell color.
type CaliberGroup string

const (
	CaliberWhite   CaliberGroup = "BCO"
	CaliberColor   CaliberGroup = "COLOR"
	CaliberSpecial CaliberGroup = "ESPECIAL"
)

var caliberNames = map[string]string{
	"01": "ESPECIAL BCO",
	"02": "EXTRA BCO",
	"03": "ESPECIAL COLOR",
	"04": "GRANDE BCO",
	"05": "EXTRA COLOR",
	"06": "GRANDE COLOR",
	"07": "MEDIANO BCO",
	"08": "SUCIO / TRIZADO",
	"09": "TERCERA BCO",
	"11": "TERCERA COLOR",
	"12": "JUMBO BCO",
	"13": "MEDIANO COLOR",
	"14": "JUMBO COLOR",
	"15": "CUARTA BCO",
	"16": "CUARTA COLOR",
}

var caliberGroups = map[string]CaliberGroup{
	"01": CaliberWhite, "02": CaliberWhite, "04": CaliberWhite, "07": CaliberWhite,
	"09": CaliberWhite, "12": CaliberWhite, "15": CaliberWhite,
	"03": CaliberColor, "05": CaliberColor, "06": CaliberColor, "11": CaliberColor,
	"13": CaliberColor, "14": CaliberColor, "16": CaliberColor,
	"08": CaliberSpecial,
}

// Calibers that only ship in the 100 JUMBO box.
var jumboCalibers = map[string]bool{"12": true, "14": true}

// Caliber codes reported with a dedicated "does not exist" message.
var nonexistentCalibers = map[string]bool{"10": true, "23": true}

var shiftNames = map[string]string{
	"1": "Mañana (06:00-14:00)",
	"2": "Tarde (14:00-22:00)",
	"3": "Noche (22:00-06:00)",
}

var formatNames = map[string]string{
	"1": "Caja 180 unidades",
	"2": "Caja 100 JUMBO",
	"3": "Caja Docena",
	"4": "Carro Bandejas 20u (2400 huevos)",
	"5": "Carro Bandejas 30u (5400 huevos)",
	"6": "Carro formato especial",
}

var cartFormats = map[string]bool{"4": true, "5": true, "6": true}

var companyNames = map[string]string{
	"1": "Lomas Altas",
	"2": "Santa Marta",
	"3": "Coliumo",
	"4": "El Monte",
	"5": "Libre",
}

var dayNames = [...]string{"", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

const (
	FormatBox180    = "1"
	FormatBoxJumbo  = "2"
	FormatBoxDozen  = "3"
	validCaliberSet = "01, 02, 03, 04, 05, 06, 07, 08, 09, 11, 12, 13, 14, 15, 16"
)

func lookup(table map[string]string, code string) string {
	if name, ok := table[code]; ok {
		return name
	}
	return code
}

// CaliberName returns the grade name for a caliber code, or the code itself if unknown.
func CaliberName(code string) string { return lookup(caliberNames, code) }

// ShiftName returns the shift name with its time window.
func ShiftName(code string) string { return lookup(shiftNames, code) }

// FormatName returns the packaging format name.
func FormatName(code string) string { return lookup(formatNames, code) }

// CompanyName returns the company name.
func CompanyName(code string) string { return lookup(companyNames, code) }

// DayName returns the Spanish weekday name for 1 (Lunes) through 7 (Domingo).
func DayName(day int) string {
	if day < 1 || day > 7 {
		return ""
	}
	return dayNames[day]
}

// IsValidCaliber reports whether code is one of the 15 calibers in use.
func IsValidCaliber(code string) bool {
	_, ok := caliberNames[code]
	return ok
}

// IsJumbo reports whether the caliber belongs to the JUMBO subset.
func IsJumbo(caliber string) bool { return jumboCalibers[caliber] }

// IsCartFormat reports whether the format is a cart/tray format (4-6).
func IsCartFormat(format string) bool { return cartFormats[format] }

// CaliberGroupOf returns the color group of a valid caliber.
func CaliberGroupOf(caliber string) (CaliberGroup, bool) {
	g, ok := caliberGroups[caliber]
	return g, ok
}

// ValidCalibers returns the valid caliber codes in ascending order.
func ValidCalibers() []string {
	return sortedKeys(caliberNames)
}

// JumboCalibers returns the JUMBO caliber codes in ascending order.
func JumboCalibers() []string {
	out := make([]string, 0, len(jumboCalibers))
	for k := range jumboCalibers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CodeName pairs a reference code with its display name. Group is only set
// for calibers.
type CodeName struct {
	Code  string       `json:"code"`
	Name  string       `json:"name"`
	Group CaliberGroup `json:"group,omitempty"`
}

// ReferenceTables is a snapshot of every lookup table used by the validator.
type ReferenceTables struct {
	Calibers      []CodeName `json:"calibers"`
	JumboCalibers []string   `json:"jumbo_calibers"`
	Shifts        []CodeName `json:"shifts"`
	Formats       []CodeName `json:"formats"`
	CartFormats   []string   `json:"cart_formats"`
	Companies     []CodeName `json:"companies"`
	Days          []CodeName `json:"days"`
}

func codeNames(m map[string]string) []CodeName {
	keys := sortedKeys(m)
	out := make([]CodeName, len(keys))
	for i, k := range keys {
		out[i] = CodeName{Code: k, Name: m[k]}
	}
	return out
}

// Reference returns a fresh copy of the reference tables.
func Reference() ReferenceTables {
	calibers := codeNames(caliberNames)
	for i := range calibers {
		calibers[i].Group = caliberGroups[calibers[i].Code]
	}

	days := make([]CodeName, 0, 7)
	for d := 1; d <= 7; d++ {
		days = append(days, CodeName{Code: string(rune('0' + d)), Name: dayNames[d]})
	}
	return ReferenceTables{
		Calibers:      calibers,
		JumboCalibers: JumboCalibers(),
		Shifts:        codeNames(shiftNames),
		Formats:       codeNames(formatNames),
		CartFormats:   []string{"4", "5", "6"},
		Companies:     codeNames(companyNames),
		Days:          days,
	}
}
