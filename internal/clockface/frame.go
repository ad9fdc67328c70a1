// Package clockface turns the current time and the clock settings into
// something to show: a raster for the analog face, strings and font sizes
// for the digital one.
package clockface

import (
	"math"
	"time"
)

// Frame is everything derived from one tick. It has no identity beyond the
// tick it was built for.
type Frame struct {
	Hour   int
	Minute int
	Second int

	HourAngle   float64
	MinuteAngle float64
	SecondAngle float64

	Date string
}

// NewFrame builds the frame for t, formatting the date with loc.
func NewFrame(t time.Time, loc *Locale) Frame {
	h, m, s := t.Clock()
	return Frame{
		Hour:        h,
		Minute:      m,
		Second:      s,
		HourAngle:   HourAngle(h, m),
		MinuteAngle: MinuteAngle(m, s),
		SecondAngle: SecondAngle(s),
		Date:        loc.LongDate(t),
	}
}

// Hand angles are in radians, 0 at twelve o'clock, growing clockwise.

// HourAngle includes the fraction of the hour already elapsed.
func HourAngle(hour, minute int) float64 {
	return float64(hour%12)*(math.Pi/6) + float64(minute)*(math.Pi/360)
}

// MinuteAngle includes the fraction of the minute already elapsed.
func MinuteAngle(minute, second int) float64 {
	return float64(minute)*(math.Pi/30) + float64(second)*(math.Pi/1800)
}

func SecondAngle(second int) float64 {
	return float64(second) * (math.Pi / 30)
}
