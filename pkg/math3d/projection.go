package math3d

import "github.com/chewxy/math32"

// View and projection builders. All of them target the Direct3D clip
// volume: x and y in [-1, 1] and z in [0, 1] after the perspective divide.
// Left-handed variants look down +Z, right-handed variants down -Z.
// None of them validate their inputs; zn == zf or eye == at yield
// non-finite elements.

// LookAtLH creates a left-handed view matrix looking from eye towards at.
func LookAtLH(eye, at, up Vec3) Mat4 {
	return lookAt(eye, at.Sub(eye).Normalize(), up)
}

// LookAtRH creates a right-handed view matrix looking from eye towards at.
func LookAtRH(eye, at, up Vec3) Mat4 {
	return lookAt(eye, eye.Sub(at).Normalize(), up)
}

func lookAt(eye, z, up Vec3) Mat4 {
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// OrthoLH creates a left-handed orthographic projection for a view
// volume of width w and height h centered on the view axis.
func OrthoLH(w, h, zn, zf float32) Mat4 {
	return Mat4{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, 1 / (zf - zn), 0,
		0, 0, zn / (zn - zf), 1,
	}
}

// OrthoRH creates a right-handed orthographic projection.
func OrthoRH(w, h, zn, zf float32) Mat4 {
	return Mat4{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, 1 / (zn - zf), 0,
		0, 0, zn / (zn - zf), 1,
	}
}

// OrthoOffCenterLH creates a left-handed orthographic projection for the
// box [l, r] x [b, t] x [zn, zf]. Passing b > t flips the y axis, which is
// how screen rectangles with a top-left origin are mapped.
func OrthoOffCenterLH(l, r, b, t, zn, zf float32) Mat4 {
	return Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, 1 / (zf - zn), 0,
		(l + r) / (l - r), (t + b) / (b - t), zn / (zn - zf), 1,
	}
}

// OrthoOffCenterRH creates a right-handed orthographic projection for the
// box [l, r] x [b, t] x [-zn, -zf].
func OrthoOffCenterRH(l, r, b, t, zn, zf float32) Mat4 {
	return Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, 1 / (zn - zf), 0,
		(l + r) / (l - r), (t + b) / (b - t), zn / (zn - zf), 1,
	}
}

// PerspectiveLH creates a left-handed perspective projection from the
// width and height of the view volume at the near plane.
func PerspectiveLH(w, h, zn, zf float32) Mat4 {
	return Mat4{
		2 * zn / w, 0, 0, 0,
		0, 2 * zn / h, 0, 0,
		0, 0, zf / (zf - zn), 1,
		0, 0, zn * zf / (zn - zf), 0,
	}
}

// PerspectiveRH creates a right-handed perspective projection from the
// width and height of the view volume at the near plane.
func PerspectiveRH(w, h, zn, zf float32) Mat4 {
	return Mat4{
		2 * zn / w, 0, 0, 0,
		0, 2 * zn / h, 0, 0,
		0, 0, zf / (zn - zf), -1,
		0, 0, zn * zf / (zn - zf), 0,
	}
}

// PerspectiveFovLH creates a left-handed perspective projection.
// fovy is the vertical field of view in radians, aspect is width/height.
func PerspectiveFovLH(fovy, aspect, zn, zf float32) Mat4 {
	yScale := 1 / math32.Tan(fovy/2)
	xScale := yScale / aspect

	return Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, zf / (zf - zn), 1,
		0, 0, -zn * zf / (zf - zn), 0,
	}
}

// PerspectiveFovRH creates a right-handed perspective projection.
func PerspectiveFovRH(fovy, aspect, zn, zf float32) Mat4 {
	yScale := 1 / math32.Tan(fovy/2)
	xScale := yScale / aspect

	return Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, zf / (zn - zf), -1,
		0, 0, zn * zf / (zn - zf), 0,
	}
}

// PerspectiveOffCenterLH creates a left-handed perspective projection
// whose near-plane window is [l, r] x [b, t].
func PerspectiveOffCenterLH(l, r, b, t, zn, zf float32) Mat4 {
	return Mat4{
		2 * zn / (r - l), 0, 0, 0,
		0, 2 * zn / (t - b), 0, 0,
		(l + r) / (l - r), (t + b) / (b - t), zf / (zf - zn), 1,
		0, 0, zn * zf / (zn - zf), 0,
	}
}

// PerspectiveOffCenterRH creates a right-handed perspective projection
// whose near-plane window is [l, r] x [b, t].
func PerspectiveOffCenterRH(l, r, b, t, zn, zf float32) Mat4 {
	return Mat4{
		2 * zn / (r - l), 0, 0, 0,
		0, 2 * zn / (t - b), 0, 0,
		(l + r) / (r - l), (t + b) / (t - b), zf / (zn - zf), -1,
		0, 0, zn * zf / (zn - zf), 0,
	}
}
