package boxcode

var fieldHelp = map[string]string{
	FieldLength:        "El código debe tener exactamente 16 dígitos. Los espacios y guiones se ignoran",
	FieldDay:           "Debe ser 1-7: 1=Lunes, 2=Martes, 3=Miércoles, 4=Jueves, 5=Viernes, 6=Sábado, 7=Domingo",
	FieldWeek:          "Semana ISO del año: 01-53",
	FieldPacker:        "Debe ser 1-9 (no 0)",
	FieldShift:         "Turnos: 1=Mañana (06:00-14:00), 2=Tarde (14:00-22:00), 3=Noche (22:00-06:00)",
	FieldCaliber:       "Válidos: " + validCaliberSet + " (NO 23)",
	FieldFormat:        "Formatos de caja: 1=180 unidades, 2=100 JUMBO, 3=Docena. Formatos de carro: 4=Bandejas 20u, 5=Bandejas 30u, 6=Especial. Calibres JUMBO (12, 14) solo usan formato 2",
	FieldCompany:       "Empresas: 1=Lomas Altas, 2=Santa Marta, 3=Coliumo, 4=El Monte, 5=Libre",
	FieldCounter:       "Número de caja 001-999 (no 000)",
	FieldCaliberFormat: "Calibres JUMBO (12=JUMBO BCO, 14=JUMBO COLOR) solo usan formato 2 (Caja 100 JUMBO)",
}

const charsetHelp = "Solo se permiten dígitos 0-9. Vuelva a escanear la etiqueta"

// HelpFor returns the contextual help for a finding, or "" when the field has
// none.
func HelpFor(f Finding) string {
	// The charset check shares its name with the format field.
	if f.Field == FieldCharset && f.Structural() {
		return charsetHelp
	}
	return fieldHelp[f.Field]
}

// HelpForField returns the help text registered for a field name.
func HelpForField(field string) string {
	return fieldHelp[field]
}
