package math3d

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored in row-major order that transforms row
// vectors (v' = v * M), the Direct3D convention.
//
// Memory layout (indices):
// | 0  1  2  3  |
// | 4  5  6  7  |
// | 8  9  10 11 |
// | 12 13 14 15 |
//
// For a transform matrix:
// | Xx Xy Xz 0 |   X,Y,Z = basis vectors (rotation/scale)
// | Yx Yy Yz 0 |   T = translation
// | Zx Zy Zz 0 |
// | Tx Ty Tz 1 |
//
// Because vectors multiply on the left, a.Mul(b) applies a first and b
// second: "rotate then translate" is Rotation.Mul(Translation).
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4 builds a matrix from its sixteen elements given row by row.
func NewMat4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32,
) Mat4 {
	return Mat4{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// Translation creates a translation matrix.
func Translation(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// TranslationV is Translation taking a vector.
func TranslationV(v Vec3) Mat4 {
	return Translation(v.X, v.Y, v.Z)
}

// Scaling creates a scaling matrix.
func Scaling(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// ScalingV is Scaling taking a vector.
func ScalingV(v Vec3) Mat4 {
	return Scaling(v.X, v.Y, v.Z)
}

// RotationX creates a rotation matrix around the X axis.
func RotationX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY creates a rotation matrix around the Y axis.
func RotationY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ creates a rotation matrix around the Z axis.
func RotationZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationAxis creates a rotation matrix around an arbitrary axis. The
// axis is expected to be unit length; it is not normalized here.
func RotationAxis(axis Vec3, angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// RotationYawPitchRoll composes roll about Z, then pitch about X, then
// yaw about Y: RotationZ(roll) * RotationX(pitch) * RotationY(yaw).
func RotationYawPitchRoll(yaw, pitch, roll float32) Mat4 {
	return RotationZ(roll).Mul(RotationX(pitch).Mul(RotationY(yaw)))
}

// Reflect creates a matrix that mirrors space across the plane. The
// plane is normalized first; the caller's value is not modified.
func Reflect(plane Plane) Mat4 {
	p := plane.Normalize()
	a, b, c, d := -2*p.A, -2*p.B, -2*p.C, p.D

	return Mat4{
		a*p.A + 1, b * p.A, c * p.A, 0,
		a * p.B, b*p.B + 1, c * p.B, 0,
		a * p.C, b * p.C, c*p.C + 1, 0,
		a * d, b * d, c * d, 1,
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[row*4+k] * b[k*4+col]
			}
			m[row*4+col] = sum
		}
	}
	return m
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// minors holds the 2x2 sub-determinants of the top two rows (s) and the
// bottom two rows (c) that both Determinant and Inverse expand over.
type minors struct {
	s0, s1, s2, s3, s4, s5 float32
	c0, c1, c2, c3, c4, c5 float32
}

func (m Mat4) minors() minors {
	return minors{
		s0: m[0]*m[5] - m[4]*m[1],
		s1: m[0]*m[6] - m[4]*m[2],
		s2: m[0]*m[7] - m[4]*m[3],
		s3: m[1]*m[6] - m[5]*m[2],
		s4: m[1]*m[7] - m[5]*m[3],
		s5: m[2]*m[7] - m[6]*m[3],

		c5: m[10]*m[15] - m[14]*m[11],
		c4: m[9]*m[15] - m[13]*m[11],
		c3: m[9]*m[14] - m[13]*m[10],
		c2: m[8]*m[15] - m[12]*m[11],
		c1: m[8]*m[14] - m[12]*m[10],
		c0: m[8]*m[13] - m[12]*m[9],
	}
}

func (n minors) det() float32 {
	return n.s0*n.c5 - n.s1*n.c4 + n.s2*n.c3 + n.s3*n.c2 - n.s4*n.c1 + n.s5*n.c0
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float32 {
	return m.minors().det()
}

// Inverse returns the inverse of the matrix, computed as the adjugate
// divided by the determinant.
// Returns identity if the matrix is singular (det=0).
func (m Mat4) Inverse() Mat4 {
	n := m.minors()
	det := n.det()
	if det == 0 {
		return Identity()
	}

	invDet := 1 / det
	var inv Mat4

	inv[0] = (m[5]*n.c5 - m[6]*n.c4 + m[7]*n.c3) * invDet
	inv[1] = (-m[1]*n.c5 + m[2]*n.c4 - m[3]*n.c3) * invDet
	inv[2] = (m[13]*n.s5 - m[14]*n.s4 + m[15]*n.s3) * invDet
	inv[3] = (-m[9]*n.s5 + m[10]*n.s4 - m[11]*n.s3) * invDet

	inv[4] = (-m[4]*n.c5 + m[6]*n.c2 - m[7]*n.c1) * invDet
	inv[5] = (m[0]*n.c5 - m[2]*n.c2 + m[3]*n.c1) * invDet
	inv[6] = (-m[12]*n.s5 + m[14]*n.s2 - m[15]*n.s1) * invDet
	inv[7] = (m[8]*n.s5 - m[10]*n.s2 + m[11]*n.s1) * invDet

	inv[8] = (m[4]*n.c4 - m[5]*n.c2 + m[7]*n.c0) * invDet
	inv[9] = (-m[0]*n.c4 + m[1]*n.c2 - m[3]*n.c0) * invDet
	inv[10] = (m[12]*n.s4 - m[13]*n.s2 + m[15]*n.s0) * invDet
	inv[11] = (-m[8]*n.s4 + m[9]*n.s2 - m[11]*n.s0) * invDet

	inv[12] = (-m[4]*n.c3 + m[5]*n.c1 - m[6]*n.c0) * invDet
	inv[13] = (m[0]*n.c3 - m[1]*n.c1 + m[2]*n.c0) * invDet
	inv[14] = (-m[12]*n.s3 + m[13]*n.s1 - m[14]*n.s0) * invDet
	inv[15] = (m[8]*n.s3 - m[9]*n.s1 + m[10]*n.s0) * invDet

	return inv
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float32 {
	return m[row*4+col]
}

// Set returns a copy of m with the element at (row, col) replaced.
func (m Mat4) Set(row, col int, val float32) Mat4 {
	m[row*4+col] = val
	return m
}

// Row returns row i as a vector.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Col returns column j as a vector.
func (m Mat4) Col(j int) Vec4 {
	return Vec4{m[j], m[4+j], m[8+j], m[12+j]}
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// ApproxEqual reports whether every element of m is within tol of the
// matching element of o.
func (m Mat4) ApproxEqual(o Mat4, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}
