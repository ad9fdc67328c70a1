package clockface

import "math"

// ShapeKind is the outline family picked by the corner radius.
type ShapeKind int

const (
	Circle ShapeKind = iota
	Square
	Rounded
)

func (k ShapeKind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Square:
		return "square"
	default:
		return "rounded"
	}
}

// Point is a position in face pixels, y pointing down.
type Point struct {
	X, Y float64
}

// Shape is a closed outline centred on (CX, CY) whose extent is Size in
// each direction, i.e. a circle of radius Size or a square of side 2*Size
// with optional rounded corners.
type Shape struct {
	Kind   ShapeKind
	CX, CY float64
	Size   float64
	Corner float64
}

// RoundedShape picks the outline for the given corner radius: at or above
// size it is a circle, at or below zero an axis-aligned square, and in
// between a square whose corners are quarter circles of radius corner.
func RoundedShape(cx, cy, size, corner float64) Shape {
	s := Shape{CX: cx, CY: cy, Size: size}
	switch {
	case corner >= size:
		s.Kind = Circle
		s.Corner = size
	case corner <= 0:
		s.Kind = Square
	default:
		s.Kind = Rounded
		s.Corner = corner
	}
	return s
}

// FaceShape maps a roundness percentage to an outline of the given radius:
// 100 is a circle, 0 a square, anything between a rounded square with
// corner radius roundness/100 * radius.
func FaceShape(cx, cy, radius float64, roundness int) Shape {
	return RoundedShape(cx, cy, radius, float64(roundness)/100*radius)
}

// Offset grows (d > 0) or shrinks (d < 0) the outline by d on every side.
// Rounded corners grow and shrink with it, collapsing to square corners.
func (s Shape) Offset(d float64) Shape {
	size := s.Size + d
	switch s.Kind {
	case Circle:
		return Shape{Kind: Circle, CX: s.CX, CY: s.CY, Size: size, Corner: size}
	case Square:
		return Shape{Kind: Square, CX: s.CX, CY: s.CY, Size: size}
	default:
		return RoundedShape(s.CX, s.CY, size, s.Corner+d)
	}
}

// Empty reports whether the outline encloses nothing.
func (s Shape) Empty() bool {
	return s.Size <= 0
}

// Points flattens the outline to a closed polygon. Points run clockwise on
// screen, starting at the top edge. Arcs are split so that no segment is
// longer than maxSeg pixels.
func (s Shape) Points(maxSeg float64) []Point {
	if s.Empty() {
		return nil
	}
	if maxSeg <= 0 {
		maxSeg = 2
	}

	x0, y0 := s.CX-s.Size, s.CY-s.Size
	x1, y1 := s.CX+s.Size, s.CY+s.Size

	switch s.Kind {
	case Circle:
		return arc(nil, s.CX, s.CY, s.Size, -math.Pi/2, 3*math.Pi/2, maxSeg, true)
	case Square:
		return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	}

	r := s.Corner
	pts := []Point{{x0 + r, y0}, {x1 - r, y0}}
	pts = arc(pts, x1-r, y0+r, r, -math.Pi/2, 0, maxSeg, false)
	pts = append(pts, Point{x1, y1 - r})
	pts = arc(pts, x1-r, y1-r, r, 0, math.Pi/2, maxSeg, false)
	pts = append(pts, Point{x0 + r, y1})
	pts = arc(pts, x0+r, y1-r, r, math.Pi/2, math.Pi, maxSeg, false)
	pts = append(pts, Point{x0, y0 + r})
	pts = arc(pts, x0+r, y0+r, r, math.Pi, 3*math.Pi/2, maxSeg, false)
	return pts
}

// arc appends the points of an arc from a0 to a1 (clockwise on screen).
// The start point is included only when withStart is set; the end point is
// always included.
func arc(pts []Point, cx, cy, r, a0, a1, maxSeg float64, withStart bool) []Point {
	n := int(math.Ceil(r * (a1 - a0) / maxSeg))
	if n < 4 {
		n = 4
	}
	if withStart {
		pts = append(pts, Point{cx + r*math.Cos(a0), cy + r*math.Sin(a0)})
	}
	for i := 1; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, Point{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}
