package math3d

import "image"

// Rect is an integer screen rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H int
}

// RectXYWH creates a rectangle from origin and extent.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{x, y, w, h}
}

// RectLTRB creates a rectangle from its edges.
func RectLTRB(l, t, r, b int) Rect {
	return Rect{l, t, r - l, b - t}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether the rectangles overlap by at least one pixel.
func (r Rect) Intersects(o Rect) bool {
	return min(r.Right(), o.Right()) > max(r.X, o.X) &&
		min(r.Bottom(), o.Bottom()) > max(r.Y, o.Y)
}

// Contains reports whether (x, y) lies inside r; the right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// Outside reports whether (x, y) lies outside r; the right and bottom
// edges count as inside.
func (r Rect) Outside(x, y int) bool {
	return x < r.X || x > r.Right() || y < r.Y || y > r.Bottom()
}

// Inflate grows the rectangle by h horizontally and v vertically, half on
// each side.
func (r Rect) Inflate(h, v int) Rect {
	return RectLTRB(r.X-h/2, r.Y-v/2, r.Right()+h/2, r.Bottom()+v/2)
}

// Offset moves the rectangle by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{r.X + dx, r.Y + dy, r.W, r.H}
}

// Image converts to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}
