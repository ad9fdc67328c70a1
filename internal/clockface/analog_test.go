package clockface

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desktop-clock/internal/cache"
	"desktop-clock/internal/settings"
)

func testFrame(h, m, s int) Frame {
	return NewFrame(time.Date(2026, time.October, 19, h, m, s, 0, time.UTC), AmericanEnglish)
}

func TestAnalog_RenderSize(t *testing.T) {
	a := NewAnalog(nil)

	for _, d := range []int{150, 300, 500} {
		img := a.Render(d, 100, testFrame(10, 10, 30))
		assert.Equal(t, image.Rect(0, 0, d, d), img.Bounds())
	}
}

func TestAnalog_RenderSettings(t *testing.T) {
	c := settings.Defaults()
	c.AnalogSize = settings.Small

	img := NewAnalog(nil).RenderSettings(c, testFrame(1, 2, 3))
	assert.Equal(t, 150, img.Bounds().Dx())

	c.AnalogSize = settings.Size("gigantic")
	img = NewAnalog(nil).RenderSettings(c, testFrame(1, 2, 3))
	assert.Equal(t, 300, img.Bounds().Dx())
}

func TestAnalog_Idempotent(t *testing.T) {
	a := NewAnalog(nil)
	f := testFrame(4, 20, 45)

	first := a.Render(300, 60, f)
	second := a.Render(300, 60, f)
	assert.Equal(t, first.Pix, second.Pix)

	// a dirty surface is fully repainted
	dirty := image.NewRGBA(image.Rect(0, 0, 300, 300))
	draw.Draw(dirty, dirty.Bounds(), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	a.Draw(dirty, 60, f)
	assert.Equal(t, first.Pix, dirty.Pix)
}

func TestAnalog_CachedMatchesUncached(t *testing.T) {
	layers := cache.New(4)
	cached := NewAnalog(layers)
	plain := NewAnalog(nil)

	for _, roundness := range []int{0, 45, 100} {
		f := testFrame(7, 35, 12)
		want := plain.Render(300, roundness, f)
		assert.Equal(t, want.Pix, cached.Render(300, roundness, f).Pix, "roundness %d", roundness)
		assert.Equal(t, want.Pix, cached.Render(300, roundness, f).Pix, "roundness %d, cached", roundness)
	}

	stats := layers.Stats()
	assert.Equal(t, 3, stats.Size)
	assert.Equal(t, 3, stats.Hits)
	assert.Equal(t, 3, stats.Misses)
}

func TestAnalog_ShapeFollowsRoundness(t *testing.T) {
	a := NewAnalog(nil)
	f := testFrame(0, 0, 0)

	// (10,10) lies on the border band of a square face and outside both
	// the circle and a half-rounded corner.
	alphaAt := func(img *image.RGBA, x, y int) uint8 {
		return img.RGBAAt(x, y).A
	}

	assert.NotZero(t, alphaAt(a.Render(300, 0, f), 10, 10))
	assert.Zero(t, alphaAt(a.Render(300, 50, f), 10, 10))
	assert.Zero(t, alphaAt(a.Render(300, 100, f), 10, 10))

	// the top edge is drawn whatever the roundness
	for _, roundness := range []int{0, 50, 100} {
		assert.NotZero(t, alphaAt(a.Render(300, roundness, f), 150, 10), "roundness %d", roundness)
	}
}

func TestFaceOutline_SaturatesBeforeHundred(t *testing.T) {
	m := MetricsFor(300)

	assert.Equal(t, Square, faceOutline(m, 0).Kind)
	assert.Equal(t, Rounded, faceOutline(m, 50).Kind)
	assert.Equal(t, Rounded, faceOutline(m, 92).Kind)
	assert.Equal(t, Circle, faceOutline(m, 93).Kind)
	assert.Equal(t, Circle, faceOutline(m, 100).Kind)
	assert.InDelta(t, 150-300*0.036, faceOutline(m, 50).Size, 1e-9)
}

func TestAnalog_HandsMove(t *testing.T) {
	a := NewAnalog(cache.New(2))

	before := a.Render(300, 100, testFrame(0, 0, 0))
	after := a.Render(300, 100, testFrame(0, 0, 15))
	require.NotEqual(t, before.Pix, after.Pix)

	// the second hand points at three o'clock, between the pivot and the marker
	assert.NotEqual(t, before.RGBAAt(230, 150), after.RGBAAt(230, 150))
	assert.Equal(t, before.RGBAAt(70, 150), after.RGBAAt(70, 150))
}

func TestAnalog_PivotIsOpaque(t *testing.T) {
	img := NewAnalog(nil).Render(300, 100, testFrame(9, 41, 7))

	assert.Equal(t, uint8(255), img.RGBAAt(150, 150).A)
}
