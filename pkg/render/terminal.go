package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/dxmath/pkg/math3d"
)

// Draw converts the internal framebuffer to terminal cells and draws them on
// the screen.
// The framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(col, topY)),
					Bg: rgbaToColor(fb.GetPixel(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// FramebufferSize returns the framebuffer dimensions that fill a terminal of
// cols x rows cells.
func FramebufferSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Palette
var (
	ColorBlack   = math3d.RGB(0, 0, 0)
	ColorWhite   = math3d.RGB(1, 1, 1)
	ColorRed     = math3d.RGB(1, 0, 0)
	ColorGreen   = math3d.RGB(0, 1, 0)
	ColorBlue    = math3d.RGB(0, 0, 1)
	ColorYellow  = math3d.RGB(1, 1, 0)
	ColorCyan    = math3d.RGB(0, 1, 1)
	ColorMagenta = math3d.RGB(1, 0, 1)
	ColorGray    = math3d.RGB(0.5, 0.5, 0.5)
)
