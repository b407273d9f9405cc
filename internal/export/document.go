package export

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"herdbook/internal/domain/herds"
	"herdbook/internal/domain/views"
)

// Locale define los textos del export (títulos, encabezados, sexo).
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
)

type labels struct {
	title    string
	sheet    string
	baseName string
	headers  []string
	male     string
	female   string
}

var localeLabels = map[Locale]labels{
	LocaleEN: {
		title:    "Livestock inventory",
		sheet:    "Animals",
		baseName: "livestock-inventory",
		headers:  []string{"ID", "Breed", "Age", "Gender", "Weight", "BirthDate", "Pasture"},
		male:     "Male",
		female:   "Female",
	},
	LocaleDE: {
		title:    "Viehbestand",
		sheet:    "Tiere",
		baseName: "viehbestand",
		headers:  []string{"ID", "Rasse", "Alter", "Geschlecht", "Gewicht", "Geburtsdatum", "Weide"},
		male:     "Männlich",
		female:   "Weiblich",
	},
}

// el orden debe coincidir con supportedLocales
var (
	supportedLocales = []Locale{LocaleEN, LocaleDE}
	localeMatcher    = language.NewMatcher([]language.Tag{language.English, language.German})
)

// NegotiateLocale elige el locale a partir de ?lang= y/o Accept-Language.
// Sin coincidencia devuelve inglés.
func NegotiateLocale(prefs ...string) Locale {
	clean := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p = strings.TrimSpace(p); p != "" {
			clean = append(clean, p)
		}
	}
	if len(clean) == 0 {
		return LocaleEN
	}
	_, idx := language.MatchStrings(localeMatcher, clean...)
	if idx < 0 || idx >= len(supportedLocales) {
		return LocaleEN
	}
	return supportedLocales[idx]
}

// Document es la entrada común de todos los writers.
type Document struct {
	Title    string
	Sheet    string
	BaseName string
	Locale   Locale
	Headers  []string
	Rows     []views.ExportRow
}

// Inventory arma el documento "inventario de ganado" con los encabezados del locale.
func Inventory(rows []views.ExportRow, loc Locale) Document {
	l, ok := localeLabels[loc]
	if !ok {
		loc = LocaleEN
		l = localeLabels[LocaleEN]
	}
	return Document{
		Title:    l.title,
		Sheet:    l.sheet,
		BaseName: l.baseName,
		Locale:   loc,
		Headers:  append([]string(nil), l.headers...),
		Rows:     rows,
	}
}

// FileName devuelve el nombre de archivo sugerido para la extensión.
func (d Document) FileName(ext string) string {
	base := d.BaseName
	if base == "" {
		base = localeLabels[LocaleEN].baseName
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}

// GenderLabel traduce el sexo al texto del locale.
func (d Document) GenderLabel(g herds.Gender) string {
	l, ok := localeLabels[d.Locale]
	if !ok {
		l = localeLabels[LocaleEN]
	}
	switch g {
	case herds.GenderMale:
		return l.male
	case herds.GenderFemale:
		return l.female
	default:
		return string(g)
	}
}

// Values devuelve las celdas tipadas de una fila (para hojas de cálculo).
func (d Document) Values(r views.ExportRow) []any {
	return []any{r.ID, r.Breed, r.Age, d.GenderLabel(r.Gender), r.CurrentWeight, formatDate(r.BirthDate), r.Pasture}
}

// Strings devuelve las celdas como texto (csv, pdf).
func (d Document) Strings(r views.ExportRow) []string {
	return []string{
		r.ID,
		r.Breed,
		strconv.Itoa(r.Age),
		d.GenderLabel(r.Gender),
		strconv.FormatFloat(r.CurrentWeight, 'f', -1, 64),
		formatDate(r.BirthDate),
		r.Pasture,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
