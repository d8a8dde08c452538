package math3d

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// mgl32 matrices are column-major and multiply column vectors. Flipping
// both the layout and the convention cancels out, so a Mat4 and the
// mgl32.Mat4 for the same transform hold identical elements.

// MGL returns m as an mgl32 matrix describing the same transform.
func (m Mat4) MGL() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

// Mat4FromMGL converts an mgl32 matrix.
func Mat4FromMGL(m mgl32.Mat4) Mat4 {
	return Mat4(m)
}

// MGL converts to an mgl32 vector.
func (a Vec3) MGL() mgl32.Vec3 {
	return mgl32.Vec3{a.X, a.Y, a.Z}
}

// Vec3FromMGL converts an mgl32 vector.
func Vec3FromMGL(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// MGL converts to an mgl32 vector.
func (v Vec4) MGL() mgl32.Vec4 {
	return mgl32.Vec4{v.X, v.Y, v.Z, v.W}
}

// F32 returns the row-major elements as an x/image matrix.
func (m Mat4) F32() f32.Mat4 {
	return f32.Mat4(m)
}

// F32 converts to an x/image vector.
func (a Vec3) F32() f32.Vec3 {
	return f32.Vec3{a.X, a.Y, a.Z}
}

// Aff3 returns the xy part of m as a 2D affine transform in the
// column-vector form x/image uses: x' = a[0]*x + a[1]*y + a[2].
func (m Mat4) Aff3() f32.Aff3 {
	return f32.Aff3{
		m[0], m[4], m[12],
		m[1], m[5], m[13],
	}
}
