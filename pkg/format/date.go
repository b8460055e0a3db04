package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale es el locale usado cuando no se indica otro o no se reconoce.
const DefaultLocale = "en-US"

// layouts aceptados para fechas de la base de datos o de la API.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type dateStyle struct {
	months [12]string
	render func(day int, month string, year int) string
}

var (
	styleEN = dateStyle{
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		render: func(d int, m string, y int) string { return fmt.Sprintf("%s %d, %d", m, d, y) },
	}
	styleES = dateStyle{
		months: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		render: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	}
	styleJA = dateStyle{
		months: [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		render: func(d int, m string, y int) string { return fmt.Sprintf("%d年%s%d日", y, m, d) },
	}
)

// El primer tag es el fallback del matcher.
var dateMatcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.Spanish,
	language.Japanese,
})

var dateStyles = []dateStyle{styleEN, styleES, styleJA}

// DateToLocal formatea una fecha ISO ("2024-01-15" o un datetime RFC3339) en el
// estilo corto del locale: "Jan 15, 2024" para en-US.
// Los instantes con zona horaria se muestran en UTC. Si la fecha no se puede
// interpretar se devuelve tal cual.
func DateToLocal(date, locale string) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}
	st := styleFor(locale)
	return st.render(t.Day(), st.months[t.Month()-1], t.Year())
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func styleFor(locale string) dateStyle {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return styleEN
	}
	_, idx, conf := dateMatcher.Match(tag)
	if conf == language.No {
		return styleEN
	}
	return dateStyles[idx]
}
