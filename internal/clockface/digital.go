package clockface

import (
	"time"

	"desktop-clock/internal/settings"
)

// Base font sizes of the digital face, in viewport-width units.
const (
	timeFontVW = 4.0
	dateFontVW = 1.2
)

// Digital is the text form of the clock for one tick.
type Digital struct {
	Time       string  `json:"time"`
	Date       string  `json:"date"`
	TimeFontVW float64 `json:"time_font_vw"`
	DateFontVW float64 `json:"date_font_vw"`
}

// FormatTime renders hours and minutes, two digits each, with an AM/PM
// suffix in 12-hour mode.
func FormatTime(t time.Time, format settings.Format) string {
	if format == settings.Format24 {
		return t.Format("15:04")
	}
	return t.Format("03:04 PM")
}

// RenderDigital builds the digital face for t.
func RenderDigital(t time.Time, format settings.Format, size settings.Size, loc *Locale) Digital {
	m := size.Multiplier()
	return Digital{
		Time:       FormatTime(t, format),
		Date:       loc.LongDate(t),
		TimeFontVW: timeFontVW * m,
		DateFontVW: dateFontVW * m,
	}
}
