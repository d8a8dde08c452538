package math3d

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertColor(t *testing.T, want, got Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-6, "r")
	assert.InDelta(t, want.G, got.G, 1e-6, "g")
	assert.InDelta(t, want.B, got.B, 1e-6, "b")
	assert.InDelta(t, want.A, got.A, 1e-6, "a")
}

func TestColorArithmetic(t *testing.T) {
	a := NewColor(0.5, 0.75, 0.25, 1)
	b := NewColor(0.75, 0.5, 0.5, 0.5)

	assertColor(t, NewColor(1, 1, 0.75, 1), a.Add(b))
	assertColor(t, NewColor(0, 0.25, 0, 0.5), a.Sub(b))
	assertColor(t, NewColor(0.375, 0.375, 0.125, 0.5), a.Modulate(b))
	assertColor(t, NewColor(0.5, 0.25, 0.75, 0), a.Negate())
	assertColor(t, NewColor(0.25, 0.375, 0.125, 0.5), a.Scale(0.5))
	assertColor(t, NewColor(0.625, 0.625, 0.375, 0.75), a.Lerp(b, 0.5))
}

func TestColorContrast(t *testing.T) {
	c := NewColor(0.75, 0.25, 0.5, 0.3)

	assertColor(t, NewColor(0.5, 0.5, 0.5, 0.3), c.Contrast(0))
	assertColor(t, c, c.Contrast(1))
	assertColor(t, NewColor(1, 0, 0.5, 0.3), c.Contrast(2))
}

func TestColorSaturation(t *testing.T) {
	c := RGB(1, 0, 0)
	gray := c.Saturation(0)

	assert.InDelta(t, 0.2125, gray.R, 1e-6)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.R, gray.B)
	assertColor(t, c, c.Saturation(1))
	assert.Equal(t, float32(1), gray.A)

	// Luminance weights sum to one, so white stays white.
	assertColor(t, RGB(1, 1, 1), RGB(1, 1, 1).Saturation(0))
}

func TestColorPacking(t *testing.T) {
	c := NewColor(1, 0.5, 0, 1)

	assert.Equal(t, uint32(0xFFFF7F00), c.ARGB())
	assert.Equal(t, uint32(0xFF007FFF), c.ABGR())
	assert.Equal(t, color.RGBA{R: 255, G: 127, B: 0, A: 255}, c.ToRGBA())

	// Out of range components saturate.
	assert.Equal(t, uint32(0x00FF0000), NewColor(2, -1, -0.5, -3).ARGB())
}

func TestColorFromRGBA(t *testing.T) {
	c := ColorFromRGBA(color.RGBA{R: 255, G: 0, B: 51, A: 255})

	assertColor(t, NewColor(1, 0, 0.2, 1), c)
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 51, A: 255}, c.ToRGBA())
}

func TestRect(t *testing.T) {
	r := RectXYWH(10, 20, 30, 40)

	assert.Equal(t, r, RectLTRB(10, 20, 40, 60))
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
	assert.Equal(t, image.Rect(10, 20, 40, 60), r.Image())
	assert.Equal(t, RectXYWH(15, 15, 30, 40), r.Offset(5, -5))
	assert.Equal(t, RectLTRB(8, 17, 42, 63), r.Inflate(4, 6))
}

func TestRectContainsOutside(t *testing.T) {
	r := RectXYWH(0, 0, 10, 5)

	tests := []struct {
		x, y     int
		contains bool
		outside  bool
	}{
		{0, 0, true, false},
		{9, 4, true, false},
		{10, 4, false, false}, // right edge
		{9, 5, false, false},  // bottom edge
		{11, 0, false, true},
		{-1, 2, false, true},
		{3, 6, false, true},
	}

	for _, tc := range tests {
		assert.Equalf(t, tc.contains, r.Contains(tc.x, tc.y), "Contains(%d, %d)", tc.x, tc.y)
		assert.Equalf(t, tc.outside, r.Outside(tc.x, tc.y), "Outside(%d, %d)", tc.x, tc.y)
	}
}

func TestRectIntersects(t *testing.T) {
	r := RectXYWH(0, 0, 10, 10)

	assert.True(t, r.Intersects(RectXYWH(5, 5, 10, 10)))
	assert.True(t, r.Intersects(RectXYWH(2, 2, 2, 2)))
	assert.False(t, r.Intersects(RectXYWH(10, 0, 5, 5)), "touching edges do not overlap")
	assert.False(t, r.Intersects(RectXYWH(-5, 20, 5, 5)))
}
