// Package math3d provides the float32 geometry primitives of the dxmath
// pipeline: vectors, planes, 4x4 matrices, view and projection builders,
// and viewport projection.
//
// Matrices operate on row vectors (v' = v * M) and are stored row-major,
// so translation lives in elements 12, 13 and 14 and transforms compose
// left to right in the order they are applied.
package math3d

import "github.com/chewxy/math32"

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Forward returns the left-handed world forward vector (0, 0, 1).
func Forward() Vec3 {
	return Vec3{0, 0, 1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float32 {
	return math32.Sqrt(a.LenSq())
}

// LenSq returns the squared length.
func (a Vec3) LenSq() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (a Vec3) Normalize() Vec3 {
	if a.X == 0 && a.Y == 0 && a.Z == 0 {
		return Vec3{}
	}
	inv := 1 / a.Len()
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by s.
func (a Vec3) Lerp(b Vec3, s float32) Vec3 {
	return Vec3{
		a.X + s*(b.X-a.X),
		a.Y + s*(b.Y-a.Y),
		a.Z + s*(b.Z-a.Z),
	}
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Len()
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Barycentric3 returns the point a + f(b-a) + g(c-a).
func Barycentric3(a, b, c Vec3, f, g float32) Vec3 {
	return Vec3{
		a.X + f*(b.X-a.X) + g*(c.X-a.X),
		a.Y + f*(b.Y-a.Y) + g*(c.Y-a.Y),
		a.Z + f*(b.Z-a.Z) + g*(c.Z-a.Z),
	}
}

// CatmullRom3 interpolates between b and c using a and d as the outer
// control points.
func CatmullRom3(a, b, c, d Vec3, s float32) Vec3 {
	wa, wb, wc, wd := catmullRomWeights(s)
	return a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc)).Add(d.Scale(wd))
}

// Hermite3 performs Hermite spline interpolation from a (tangent t1) to
// b (tangent t2).
func Hermite3(a, t1, b, t2 Vec3, s float32) Vec3 {
	wa, wt1, wb, wt2 := hermiteWeights(s)
	return a.Scale(wa).Add(t1.Scale(wt1)).Add(b.Scale(wb)).Add(t2.Scale(wt2))
}

// Transform transforms the point (x, y, z, 1) by m and returns the
// homogeneous result.
func (a Vec3) Transform(m Mat4) Vec4 {
	return Vec4{
		a.X*m[0] + a.Y*m[4] + a.Z*m[8] + m[12],
		a.X*m[1] + a.Y*m[5] + a.Z*m[9] + m[13],
		a.X*m[2] + a.Y*m[6] + a.Z*m[10] + m[14],
		a.X*m[3] + a.Y*m[7] + a.Z*m[11] + m[15],
	}
}

// TransformCoord transforms the point (x, y, z, 1) by m and projects the
// result back into w = 1. A zero w yields non-finite components.
func (a Vec3) TransformCoord(m Mat4) Vec3 {
	return a.Transform(m).PerspectiveDivide()
}

// TransformNormal transforms the direction (x, y, z, 0) by m; translation
// does not apply. For non-uniform scales pass the inverse transpose.
func (a Vec3) TransformNormal(m Mat4) Vec3 {
	return Vec3{
		a.X*m[0] + a.Y*m[4] + a.Z*m[8],
		a.X*m[1] + a.Y*m[5] + a.Z*m[9],
		a.X*m[2] + a.Y*m[6] + a.Z*m[10],
	}
}
