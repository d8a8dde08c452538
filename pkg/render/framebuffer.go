package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/taigrr/dxmath/pkg/math3d"
)

// Framebuffer is a 2D array of pixels that can be rendered to the terminal.
// We use double vertical resolution by using half-block characters (▀▄).
type Framebuffer struct {
	Width  int          // Width in "pixels" (same as terminal columns)
	Height int          // Height in "pixels" (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Bounds returns the drawable area.
func (fb *Framebuffer) Bounds() math3d.Rect {
	return math3d.RectXYWH(0, 0, fb.Width, fb.Height)
}

// Viewport returns a full-framebuffer viewport with the default depth range.
func (fb *Framebuffer) Viewport() math3d.Viewport {
	return math3d.NewViewport(0, 0, uint32(fb.Width), uint32(fb.Height), 0, 1)
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c math3d.Color) {
	px := c.ToRGBA()
	for i := range fb.Pixels {
		fb.Pixels[i] = px
	}
}

// SetPixel sets a pixel at (x, y); writes outside Bounds are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if !fb.Bounds().Contains(x, y) {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if !fb.Bounds().Contains(x, y) {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c math3d.Color) {
	// Both ends past the same edge: nothing to plot.
	b := fb.Bounds()
	if (x0 < b.Left() && x1 < b.Left()) || (x0 >= b.Right() && x1 >= b.Right()) ||
		(y0 < b.Top() && y1 < b.Top()) || (y0 >= b.Bottom() && y1 >= b.Bottom()) {
		return
	}

	px := c.ToRGBA()
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, px)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clip intersects r with the framebuffer bounds.
func (fb *Framebuffer) clip(r math3d.Rect) math3d.Rect {
	b := fb.Bounds()
	if !r.Intersects(b) {
		return math3d.Rect{}
	}
	return math3d.RectLTRB(
		max(r.Left(), b.Left()), max(r.Top(), b.Top()),
		min(r.Right(), b.Right()), min(r.Bottom(), b.Bottom()),
	)
}

// DrawRect draws a filled rectangle.
func (fb *Framebuffer) DrawRect(r math3d.Rect, c math3d.Color) {
	r = fb.clip(r)
	px := c.ToRGBA()
	for y := r.Top(); y < r.Bottom(); y++ {
		row := fb.Pixels[y*fb.Width : (y+1)*fb.Width]
		for x := r.Left(); x < r.Right(); x++ {
			row[x] = px
		}
	}
}

// DrawRectOutline draws a rectangle outline.
func (fb *Framebuffer) DrawRectOutline(r math3d.Rect, c math3d.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	px := c.ToRGBA()
	right, bottom := r.Right()-1, r.Bottom()-1
	// Top and bottom
	for x := r.Left(); x <= right; x++ {
		fb.SetPixel(x, r.Top(), px)
		fb.SetPixel(x, bottom, px)
	}
	// Left and right
	for y := r.Top(); y <= bottom; y++ {
		fb.SetPixel(r.Left(), y, px)
		fb.SetPixel(right, y, px)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds().Image())
	for y := range fb.Height {
		for x := range fb.Width {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
