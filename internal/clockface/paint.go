package clockface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
)

// maxSegment is the longest straight piece an arc is flattened into.
const maxSegment = 1.5

// canvas paints filled polygons onto an RGBA image. Every sub-path of one
// fill shares the rasterizer, so a polygon wound the other way cuts a hole.
type canvas struct {
	dst *image.RGBA
	ras *vector.Rasterizer
}

func newCanvas(dst *image.RGBA) *canvas {
	b := dst.Bounds()
	return &canvas{dst: dst, ras: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (c *canvas) fill(src image.Image, polys ...[]Point) {
	b := c.dst.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	drawn := false
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		c.ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			c.ras.LineTo(float32(p.X), float32(p.Y))
		}
		c.ras.ClosePath()
		drawn = true
	}
	if drawn {
		c.ras.Draw(c.dst, b, src, image.Point{})
	}
}

// fillShape fills the inside of s.
func (c *canvas) fillShape(s Shape, src image.Image) {
	c.fill(src, s.Points(maxSegment))
}

// strokeShape paints a band of width w centred on the outline of s.
func (c *canvas) strokeShape(s Shape, w float64, src image.Image) {
	outer := s.Offset(w / 2)
	inner := s.Offset(-w / 2)
	c.fill(src, outer.Points(maxSegment), reversed(inner.Points(maxSegment)))
}

// line paints a straight stroke from a to b with round caps.
func (c *canvas) line(a, b Point, w float64, src image.Image) {
	c.fill(src, capsule(a, b, float32(w/2)))
}

// rotatedRect paints the rectangle [x0,x1]x[y0,y1], given in a frame
// rotated by angle (clockwise) around centre.
func (c *canvas) rotatedRect(centre Point, angle float64, x0, y0, x1, y1 float64, src image.Image) {
	sin, cos := math32.Sincos(float32(angle))
	at := func(x, y float64) Point {
		fx, fy := float32(x), float32(y)
		return Point{
			X: centre.X + float64(fx*cos-fy*sin),
			Y: centre.Y + float64(fx*sin+fy*cos),
		}
	}
	c.fill(src, []Point{at(x0, y0), at(x1, y0), at(x1, y1), at(x0, y1)})
}

// capsule is the outline of a stroke with round caps: a half circle around
// b, then a half circle around a, wound clockwise on screen.
func capsule(a, b Point, hw float32) []Point {
	dir := math32.Atan2(float32(b.Y-a.Y), float32(b.X-a.X))
	steps := int(math32.Ceil(hw * math32.Pi / maxSegment))
	if steps < 6 {
		steps = 6
	}

	pts := make([]Point, 0, 2*steps+2)
	half := func(c Point, from float32) {
		for i := 0; i <= steps; i++ {
			s, co := math32.Sincos(from + math32.Pi*float32(i)/float32(steps))
			pts = append(pts, Point{c.X + float64(hw*co), c.Y + float64(hw*s)})
		}
	}
	half(b, dir-math32.Pi/2)
	half(a, dir+math32.Pi/2)
	return pts
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// glow draws a blurred disc, the equivalent of a canvas shadow under the
// centre pivot. sigma is the blur size in pixels.
func glow(dst *image.RGBA, centre Point, r, sigma float64, col color.NRGBA) {
	margin := math.Ceil(2 * sigma)
	side := int(math.Ceil(2 * (r + margin)))
	layer := image.NewRGBA(image.Rect(0, 0, side, side))

	half := float64(side) / 2
	newCanvas(layer).fillShape(RoundedShape(half, half, r, r), image.NewUniform(col))
	blurred := blur.Gaussian(layer, sigma)

	origin := image.Pt(int(math.Round(centre.X-half)), int(math.Round(centre.Y-half)))
	rect := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))}
	draw.Draw(dst, rect, blurred, image.Point{}, draw.Over)
}

// stop is one colour stop of a gradient.
type stop struct {
	pos float64
	col color.NRGBA
}

// gradientAt interpolates the stops at t in [0,1]. RGB is blended with
// go-colorful, alpha linearly.
func gradientAt(stops []stop, t float64) color.NRGBA {
	if t <= stops[0].pos {
		return stops[0].col
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.pos {
			continue
		}
		f := (t - a.pos) / (b.pos - a.pos)
		ca, _ := colorful.MakeColor(opaque(a.col))
		cb, _ := colorful.MakeColor(opaque(b.col))
		r, g, bl := ca.BlendRgb(cb, f).Clamped().RGB255()
		alpha := float64(a.col.A) + (float64(b.col.A)-float64(a.col.A))*f
		return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
	}
	return stops[len(stops)-1].col
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

// linearGradient paints along the axis from p0 to p1.
type linearGradient struct {
	bounds image.Rectangle
	p0, p1 Point
	stops  []stop
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *linearGradient) Bounds() image.Rectangle { return g.bounds }

func (g *linearGradient) At(x, y int) color.Color {
	dx, dy := g.p1.X-g.p0.X, g.p1.Y-g.p0.Y
	px, py := float64(x)+0.5-g.p0.X, float64(y)+0.5-g.p0.Y
	t := (px*dx + py*dy) / (dx*dx + dy*dy)
	return gradientAt(g.stops, clamp01(t))
}

// radialGradient paints between two concentric circles.
type radialGradient struct {
	bounds image.Rectangle
	centre Point
	r0, r1 float64
	stops  []stop
}

func (g *radialGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *radialGradient) Bounds() image.Rectangle { return g.bounds }

func (g *radialGradient) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-g.centre.X, float64(y)+0.5-g.centre.Y)
	return gradientAt(g.stops, clamp01((d-g.r0)/(g.r1-g.r0)))
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// rgba builds a non-premultiplied colour from CSS-style components.
func rgba(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}
