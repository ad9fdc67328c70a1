package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrag_AppliesDeltaToInitialPosition(t *testing.T) {
	d := NewDrag(true)
	d.Place(Point{100, 100})

	require.True(t, d.Press(Point{50, 50}, true))
	assert.Equal(t, Dragging, d.State())

	pos, moved := d.Move(Point{80, 70})
	assert.True(t, moved)
	assert.Equal(t, Point{130, 120}, pos)

	// absolute from the start, not from the previous move
	pos, _ = d.Move(Point{90, 90})
	assert.Equal(t, Point{140, 140}, pos)
	pos, _ = d.Move(Point{80, 70})
	assert.Equal(t, Point{130, 120}, pos)

	assert.True(t, d.Release())
	assert.Equal(t, Idle, d.State())
	assert.Equal(t, Point{130, 120}, d.Position())
}

func TestDrag_StartConditions(t *testing.T) {
	d := NewDrag(true)
	assert.False(t, d.Press(Point{1, 1}, false), "press outside the body")

	d = NewDrag(false)
	assert.False(t, d.Press(Point{1, 1}, true), "dragging disabled")
	assert.Equal(t, Idle, d.State())

	pos, moved := d.Move(Point{40, 40})
	assert.False(t, moved)
	assert.Equal(t, Point{}, pos)
}

func TestDrag_DisabledMidDrag(t *testing.T) {
	d := NewDrag(true)
	require.True(t, d.Press(Point{0, 0}, true))

	d.SetEnabled(false)
	pos, moved := d.Move(Point{10, 5})
	assert.True(t, moved)
	assert.Equal(t, Point{10, 5}, pos)

	assert.True(t, d.Release())
	assert.False(t, d.Press(Point{10, 5}, true))
}

func TestDrag_ReleaseWhenIdle(t *testing.T) {
	d := NewDrag(true)
	assert.False(t, d.Release())
	assert.Equal(t, "idle", d.State().String())
}
