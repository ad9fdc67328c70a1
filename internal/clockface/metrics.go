package clockface

import "math"

// Proportions of the analog face, as fractions of its diameter. They were
// tuned on a 280px face and hold at every size.
const (
	borderRatio       = 0.028
	innerBorderRatio  = 0.007
	dotRadiusRatio    = 0.021
	markerOffsetRatio = 0.107
	largeMarkerWRatio = 0.021
	largeMarkerHRatio = 0.054
	smallMarkerWRatio = 0.011
	smallMarkerHRatio = 0.036
	smallMarkerInset  = 0.007
	faceInsetRatio    = 0.036
	rimBandRatio      = 0.071
	innerBorderSteps  = 2.5
	innerCornerScale  = 0.9
	glowScale         = 1.5

	hourWidthRatio   = 0.028
	minuteWidthRatio = 0.018
	secondWidthRatio = 0.007

	hourLength   = 0.5
	minuteLength = 0.75
	secondLength = 0.85
)

// Metrics are the pixel dimensions of an analog face of a given diameter.
type Metrics struct {
	Diameter float64
	Radius   float64

	Border      float64
	InnerBorder float64
	FaceInset   float64
	RimBand     float64

	DotRadius float64
	Glow      float64

	MarkerOffset     float64
	LargeMarkerW     float64
	LargeMarkerH     float64
	SmallMarkerW     float64
	SmallMarkerH     float64
	SmallMarkerInset float64

	HourWidth   float64
	MinuteWidth float64
	SecondWidth float64

	HourLength   float64
	MinuteLength float64
	SecondLength float64
}

// MetricsFor computes the face dimensions for diameter d.
func MetricsFor(d int) Metrics {
	df := float64(d)
	r := df / 2
	dot := df * dotRadiusRatio
	return Metrics{
		Diameter: df,
		Radius:   r,

		Border:      df * borderRatio,
		InnerBorder: df * innerBorderRatio,
		FaceInset:   df * faceInsetRatio,
		RimBand:     df * rimBandRatio,

		DotRadius: dot,
		Glow:      dot * glowScale,

		MarkerOffset:     df * markerOffsetRatio,
		LargeMarkerW:     df * largeMarkerWRatio,
		LargeMarkerH:     df * largeMarkerHRatio,
		SmallMarkerW:     df * smallMarkerWRatio,
		SmallMarkerH:     df * smallMarkerHRatio,
		SmallMarkerInset: df * smallMarkerInset,

		HourWidth:   df * hourWidthRatio,
		MinuteWidth: df * minuteWidthRatio,
		SecondWidth: df * secondWidthRatio,

		HourLength:   r * hourLength,
		MinuteLength: r * minuteLength,
		SecondLength: r * secondLength,
	}
}

// DateFontScale is the analog date label size in rem: it follows the face
// up from the medium size and never goes below 0.8.
func DateFontScale(d int) float64 {
	return math.Max(0.8, float64(d)/300)
}

// Padding is the clock body's inner spacing in pixels.
type Padding struct {
	Vertical   float64 `json:"vertical"`
	Horizontal float64 `json:"horizontal"`
}

// AnalogPadding grows with the face, with a floor for the small size.
func AnalogPadding(d int) Padding {
	return Padding{
		Vertical:   math.Max(20, float64(d)*0.08),
		Horizontal: math.Max(30, float64(d)*0.12),
	}
}

// DigitalPadding is fixed.
var DigitalPadding = Padding{Vertical: 25, Horizontal: 45}
