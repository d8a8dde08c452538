package math3d

// Viewport is the screen rectangle a projection is mapped onto, in pixels,
// plus the depth range the clip-space z in [0, 1] is mapped to.
type Viewport struct {
	X, Y       uint32
	W, H       uint32
	MinZ, MaxZ float32
}

// NewViewport creates a viewport.
func NewViewport(x, y, w, h uint32, minZ, maxZ float32) Viewport {
	return Viewport{X: x, Y: y, W: w, H: h, MinZ: minZ, MaxZ: maxZ}
}

// Aspect returns W / H.
func (vp Viewport) Aspect() float32 {
	return float32(vp.W) / float32(vp.H)
}

// Rect returns the viewport's screen rectangle.
func (vp Viewport) Rect() Rect {
	return Rect{X: int(vp.X), Y: int(vp.Y), W: int(vp.W), H: int(vp.H)}
}

// Matrix returns the NDC to screen transform: x in [-1, 1] maps to
// [X, X+W], y in [-1, 1] maps to [Y+H, Y] (screen y grows downward) and
// z in [0, 1] maps to [MinZ, MaxZ].
func (vp Viewport) Matrix() Mat4 {
	hw := float32(vp.W) / 2
	hh := float32(vp.H) / 2

	return Mat4{
		hw, 0, 0, 0,
		0, -hh, 0, 0,
		0, 0, vp.MaxZ - vp.MinZ, 0,
		float32(vp.X) + hw, float32(vp.Y) + hh, vp.MinZ, 1,
	}
}

// ScreenToNDC returns the inverse of Matrix, built as the off-center
// orthographic projection of the viewport's rectangle and depth range.
// A zero-sized viewport or MinZ == MaxZ yields non-finite elements.
func (vp Viewport) ScreenToNDC() Mat4 {
	l := float32(vp.X)
	t := float32(vp.Y)
	return OrthoOffCenterLH(l, l+float32(vp.W), t+float32(vp.H), t, vp.MinZ, vp.MaxZ)
}

// Project maps v from object space to screen space: world, view and
// projection are composed with the viewport transform and v is
// transformed as a point, including the perspective divide.
func Project(v Vec3, vp Viewport, projection, view, world Mat4) Vec3 {
	m := world.Mul(view).Mul(projection).Mul(vp.Matrix())
	return v.TransformCoord(m)
}

// Unproject maps v from screen space back to object space. It applies the
// viewport's screen to NDC transform followed by the inverse of the
// world-view-projection composite, so Unproject(Project(p)) == p up to
// rounding for any invertible composite.
func Unproject(v Vec3, vp Viewport, projection, view, world Mat4) Vec3 {
	m := vp.ScreenToNDC().Mul(world.Mul(view).Mul(projection).Inverse())
	return v.TransformCoord(m)
}

// Project is the method form of the package-level Project.
func (vp Viewport) Project(v Vec3, projection, view, world Mat4) Vec3 {
	return Project(v, vp, projection, view, world)
}

// Unproject is the method form of the package-level Unproject.
func (vp Viewport) Unproject(v Vec3, projection, view, world Mat4) Vec3 {
	return Unproject(v, vp, projection, view, world)
}
