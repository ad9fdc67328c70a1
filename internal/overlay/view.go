package overlay

import (
	"image"

	"desktop-clock/internal/clockface"
	"desktop-clock/internal/settings"
)

// Point is a pointer position in window (CSS pixel) coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the clock body's bounding box in window coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width &&
		p.Y >= r.Top && p.Y <= r.Top+r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// View is one rendered tick, ready for the frontend.
type View struct {
	ClockType settings.ClockType `json:"clock_type"`
	Palette   clockface.Palette  `json:"palette"`
	Opacity   float64            `json:"opacity"`
	Padding   clockface.Padding  `json:"padding"`

	Digital *clockface.Digital `json:"digital,omitempty"`
	Analog  *AnalogView        `json:"analog,omitempty"`
}

// AnalogView carries the rendered face. Image is filled in by the shell
// from Face when the view is sent.
type AnalogView struct {
	Diameter    int         `json:"diameter"`
	Face        *image.RGBA `json:"-"`
	Image       string      `json:"image,omitempty"`
	Date        string      `json:"date"`
	DateFontRem float64     `json:"date_font_rem"`
}

// Layout is the interaction state the frontend mirrors: where the body
// is and which overlays are open.
type Layout struct {
	Body            Rect  `json:"body"`
	Placed          bool  `json:"placed"`
	Dragging        bool  `json:"dragging"`
	DraggingEnabled bool  `json:"dragging_enabled"`
	MenuOpen        bool  `json:"menu_open"`
	MenuAt          Point `json:"menu_at"`
	ModalOpen       bool  `json:"modal_open"`
	Capture         bool  `json:"capture"`
}
