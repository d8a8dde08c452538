package math3d

import "image/color"

// Color is a linear RGBA color with components nominally in [0, 1].
type Color struct {
	R, G, B, A float32
}

// NewColor creates a color.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// RGB creates an opaque color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// ColorFromRGBA converts an 8-bit color.
func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// Add adds two colors, saturating each component at 1.
func (c Color) Add(o Color) Color {
	return Color{
		min(c.R+o.R, 1),
		min(c.G+o.G, 1),
		min(c.B+o.B, 1),
		min(c.A+o.A, 1),
	}
}

// Sub subtracts o from c, saturating each component at 0.
func (c Color) Sub(o Color) Color {
	return Color{
		max(c.R-o.R, 0),
		max(c.G-o.G, 0),
		max(c.B-o.B, 0),
		max(c.A-o.A, 0),
	}
}

// Contrast scales the distance of each color component from 0.5.
// Alpha is kept.
func (c Color) Contrast(contrast float32) Color {
	return Color{
		0.5 + contrast*(c.R-0.5),
		0.5 + contrast*(c.G-0.5),
		0.5 + contrast*(c.B-0.5),
		c.A,
	}
}

// Saturation interpolates between the color's grayscale luminance (0) and
// the color itself (1); values above 1 oversaturate. Alpha is kept.
func (c Color) Saturation(s float32) Color {
	// BT.709 luminance weights.
	l := c.R*0.2125 + c.G*0.7154 + c.B*0.0721
	return Color{
		l + s*(c.R-l),
		l + s*(c.G-l),
		l + s*(c.B-l),
		c.A,
	}
}

// Lerp linearly interpolates between c and o.
func (c Color) Lerp(o Color, s float32) Color {
	return Color{
		c.R + s*(o.R-c.R),
		c.G + s*(o.G-c.G),
		c.B + s*(o.B-c.B),
		c.A + s*(o.A-c.A),
	}
}

// Modulate multiplies two colors component-wise.
func (c Color) Modulate(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Negate returns 1 - c for every component, alpha included.
func (c Color) Negate() Color {
	return Color{1 - c.R, 1 - c.G, 1 - c.B, 1 - c.A}
}

// Scale multiplies every component by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

func toByte(v float32) uint32 {
	return uint32(Clamp(v, 0, 1) * 255)
}

// ARGB packs the color as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return toByte(c.A)<<24 | toByte(c.R)<<16 | toByte(c.G)<<8 | toByte(c.B)
}

// ABGR packs the color as 0xAABBGGRR.
func (c Color) ABGR() uint32 {
	return toByte(c.A)<<24 | toByte(c.B)<<16 | toByte(c.G)<<8 | toByte(c.R)
}

// ToRGBA converts to an 8-bit, non-premultiplied image/color value.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(toByte(c.R)),
		G: uint8(toByte(c.G)),
		B: uint8(toByte(c.B)),
		A: uint8(toByte(c.A)),
	}
}
