package clockface

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"

	"desktop-clock/internal/logger"
)

// Locale holds the names and the date layout for one language.
type Locale struct {
	Tag      language.Tag
	weekdays [7]string
	months   [12]string
	date     func(weekday, month string, day, year int) string
}

// LongDate formats t as weekday, short month, day and year,
// e.g. "Monday, Oct 19, 2026" in American English.
func (l *Locale) LongDate(t time.Time) string {
	return l.date(l.weekdays[t.Weekday()], l.months[t.Month()-1], t.Day(), t.Year())
}

var (
	AmericanEnglish = &Locale{
		Tag:      language.AmericanEnglish,
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		date: func(w, m string, d, y int) string {
			return fmt.Sprintf("%s, %s %d, %d", w, m, d, y)
		},
	}
	BritishEnglish = &Locale{
		Tag:      language.BritishEnglish,
		weekdays: AmericanEnglish.weekdays,
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sept", "Oct", "Nov", "Dec"},
		date: func(w, m string, d, y int) string {
			return fmt.Sprintf("%s %d %s %d", w, d, m, y)
		},
	}
	German = &Locale{
		Tag:      language.German,
		weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		months:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		date: func(w, m string, d, y int) string {
			return fmt.Sprintf("%s, %d. %s %d", w, d, m, y)
		},
	}
	French = &Locale{
		Tag:      language.French,
		weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		months:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		date: func(w, m string, d, y int) string {
			return fmt.Sprintf("%s %d %s %d", w, d, m, y)
		},
	}
	Spanish = &Locale{
		Tag:      language.Spanish,
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		months:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		date: func(w, m string, d, y int) string {
			return fmt.Sprintf("%s, %d %s %d", w, d, m, y)
		},
	}
)

var (
	supported = []*Locale{AmericanEnglish, BritishEnglish, German, French, Spanish}
	matcher   = language.NewMatcher([]language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
	})
)

// Match picks the closest supported locale for the given BCP 47 or POSIX
// names ("de_AT.UTF-8" is accepted). It falls back to American English.
func Match(names ...string) *Locale {
	var tags []language.Tag
	for _, name := range names {
		name, _, _ = strings.Cut(name, ".")
		tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return AmericanEnglish
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return AmericanEnglish
	}
	return supported[idx]
}

// Detect matches the user's system locales.
func Detect() *Locale {
	names, err := locale.GetLocales()
	if err != nil {
		logger.Warn("failed to detect system locale", "err", err)
		return AmericanEnglish
	}
	loc := Match(names...)
	logger.Debug("locale detected", "system", names, "using", loc.Tag)
	return loc
}
