package clockface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceShape_Kind(t *testing.T) {
	tests := []struct {
		roundness int
		kind      ShapeKind
		corner    float64
	}{
		{100, Circle, 50},
		{150, Circle, 50},
		{0, Square, 0},
		{-10, Square, 0},
		{50, Rounded, 25},
		{30, Rounded, 15},
	}

	for _, tc := range tests {
		s := FaceShape(100, 100, 50, tc.roundness)
		assert.Equal(t, tc.kind, s.Kind, "roundness %d", tc.roundness)
		assert.InDelta(t, tc.corner, s.Corner, 1e-9, "roundness %d", tc.roundness)
	}
}

func TestShape_SquarePoints(t *testing.T) {
	pts := FaceShape(100, 100, 50, 0).Points(1)

	assert.Equal(t, []Point{{50, 50}, {150, 50}, {150, 150}, {50, 150}}, pts)
}

func TestShape_CirclePoints(t *testing.T) {
	pts := FaceShape(100, 100, 50, 100).Points(1)
	require.NotEmpty(t, pts)

	for _, p := range pts {
		assert.InDelta(t, 50, math.Hypot(p.X-100, p.Y-100), 1e-9)
	}
	assert.InDelta(t, 100, pts[0].X, 1e-9)
	assert.InDelta(t, 50, pts[0].Y, 1e-9)
}

func TestShape_RoundedPoints(t *testing.T) {
	s := FaceShape(100, 100, 50, 50)
	pts := s.Points(1)
	require.NotEmpty(t, pts)

	assert.Equal(t, Point{75, 50}, pts[0])
	assert.Equal(t, Point{125, 50}, pts[1])

	var onArc int
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, 50-1e-9)
		assert.LessOrEqual(t, p.X, 150+1e-9)
		assert.GreaterOrEqual(t, p.Y, 50-1e-9)
		assert.LessOrEqual(t, p.Y, 150+1e-9)

		// top right corner arc
		if p.X > 125 && p.Y < 75 {
			assert.InDelta(t, 25, math.Hypot(p.X-125, p.Y-75), 1e-9)
			onArc++
		}
	}
	assert.Greater(t, onArc, 2)

	// no point may sit in the cut-off corner
	for _, p := range pts {
		assert.False(t, p.X < 60 && p.Y < 60, "point %v in the corner", p)
	}
}

func TestShape_Offset(t *testing.T) {
	s := FaceShape(100, 100, 50, 50)

	grown := s.Offset(5)
	assert.Equal(t, Rounded, grown.Kind)
	assert.InDelta(t, 55, grown.Size, 1e-9)
	assert.InDelta(t, 30, grown.Corner, 1e-9)

	shrunk := s.Offset(-30)
	assert.Equal(t, Square, shrunk.Kind)
	assert.InDelta(t, 20, shrunk.Size, 1e-9)

	circle := FaceShape(0, 0, 10, 100).Offset(-20)
	assert.True(t, circle.Empty())
	assert.Nil(t, circle.Points(1))
}

func TestShapeKind_String(t *testing.T) {
	assert.Equal(t, "circle", Circle.String())
	assert.Equal(t, "square", Square.String())
	assert.Equal(t, "rounded", Rounded.String())
}
