package clockface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"desktop-clock/internal/cache"
	"desktop-clock/internal/settings"
)

var (
	rimStops = []stop{
		{0, rgba(255, 255, 255, 0.05)},
		{1, rgba(255, 255, 255, 0.02)},
	}
	borderStops = []stop{
		{0, rgba(100, 200, 255, 0.6)},
		{0.5, rgba(255, 255, 255, 0.8)},
		{1, rgba(255, 100, 200, 0.6)},
	}

	innerBorderColor = rgba(255, 255, 255, 0.3)
	largeMarkerColor = rgba(255, 255, 255, 0.9)
	smallMarkerColor = rgba(255, 255, 255, 0.5)
	glowColor        = rgba(255, 255, 255, 0.8)
	dotColor         = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	hourHandColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	minuteHandColor  = rgba(100, 200, 255, 0.9)
	secondHandColor  = rgba(255, 64, 129, 0.9)
)

// Analog renders the analog face. The parts that only depend on size and
// roundness are kept in a layer cache; a nil cache renders everything
// every time.
type Analog struct {
	layers *cache.Service
}

// NewAnalog creates an analog renderer backed by layers.
func NewAnalog(layers *cache.Service) *Analog {
	return &Analog{layers: layers}
}

// RenderSettings renders the face for the analog size and roundness in c.
func (a *Analog) RenderSettings(c settings.ClockSettings, f Frame) *image.RGBA {
	return a.Render(c.Diameter(), c.AnalogRoundness, f)
}

// Render returns a new square image of side diameter with the face for f.
func (a *Analog) Render(diameter, roundness int, f Frame) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	a.Draw(dst, roundness, f)
	return dst
}

// Draw repaints all of dst, which must be square, with the face for f.
// Nothing drawn by an earlier call survives.
func (a *Analog) Draw(dst *image.RGBA, roundness int, f Frame) {
	d := dst.Bounds().Dx()
	key := cache.Key{Diameter: d, Roundness: roundness}

	var static *image.RGBA
	if a.layers != nil {
		static = a.layers.GetOrCreate(key, func() *image.RGBA {
			return staticLayer(d, roundness)
		})
	} else {
		static = staticLayer(d, roundness)
	}

	draw.Draw(dst, dst.Bounds(), static, image.Point{}, draw.Src)
	drawDynamic(dst, MetricsFor(d), f)
}

// faceOutline is the rim outline. Its corner scales with the full radius
// while the outline sits FaceInset inside it, so roundness in the high 90s
// already reaches a full circle.
func faceOutline(m Metrics, roundness int) Shape {
	corner := float64(roundness) / 100 * m.Radius
	return RoundedShape(m.Radius, m.Radius, m.Radius-m.FaceInset, corner)
}

// staticLayer paints the rim, both borders and the hour markers.
func staticLayer(d, roundness int) *image.RGBA {
	layer := image.NewRGBA(image.Rect(0, 0, d, d))
	m := MetricsFor(d)
	c := newCanvas(layer)
	centre := Point{m.Radius, m.Radius}
	corner := float64(roundness) / 100 * m.Radius

	face := faceOutline(m, roundness)
	c.fillShape(face, &radialGradient{
		bounds: layer.Bounds(),
		centre: centre,
		r0:     m.Radius - m.RimBand,
		r1:     m.Radius,
		stops:  rimStops,
	})
	c.strokeShape(face, m.Border, &linearGradient{
		bounds: layer.Bounds(),
		p0:     Point{0, 0},
		p1:     Point{m.Diameter, m.Diameter},
		stops:  borderStops,
	})

	inner := RoundedShape(m.Radius, m.Radius, m.Radius-m.Border*innerBorderSteps, corner*innerCornerScale)
	c.strokeShape(inner, m.InnerBorder, image.NewUniform(innerBorderColor))

	large := image.NewUniform(largeMarkerColor)
	small := image.NewUniform(smallMarkerColor)
	for i := 0; i < 12; i++ {
		angle := float64(i) * math.Pi / 6
		if i%3 == 0 {
			top := -(m.Radius - m.MarkerOffset)
			c.rotatedRect(centre, angle, -m.LargeMarkerW/2, top, m.LargeMarkerW/2, top+m.LargeMarkerH, large)
			continue
		}
		top := -(m.Radius - m.MarkerOffset + m.SmallMarkerInset)
		c.rotatedRect(centre, angle, -m.SmallMarkerW/2, top, m.SmallMarkerW/2, top+m.SmallMarkerH, small)
	}
	return layer
}

// drawDynamic paints the glowing pivot and the three hands.
func drawDynamic(dst *image.RGBA, m Metrics, f Frame) {
	centre := Point{m.Radius, m.Radius}

	glow(dst, centre, m.DotRadius, m.Glow/2, glowColor)
	c := newCanvas(dst)
	c.fillShape(RoundedShape(centre.X, centre.Y, m.DotRadius, m.DotRadius), image.NewUniform(dotColor))

	c.line(centre, handTip(centre, f.HourAngle, m.HourLength), m.HourWidth, image.NewUniform(hourHandColor))
	c.line(centre, handTip(centre, f.MinuteAngle, m.MinuteLength), m.MinuteWidth, image.NewUniform(minuteHandColor))
	c.line(centre, handTip(centre, f.SecondAngle, m.SecondLength), m.SecondWidth, image.NewUniform(secondHandColor))
}

// handTip is the far end of a hand of the given length; angle 0 points up.
func handTip(centre Point, angle, length float64) Point {
	return Point{
		X: centre.X + length*math.Sin(angle),
		Y: centre.Y - length*math.Cos(angle),
	}
}
