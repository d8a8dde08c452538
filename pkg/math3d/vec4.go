package math3d

import "github.com/chewxy/math32"

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 creates a new Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns the Vec3 after dividing by W. W == 0 is not
// special-cased.
func (v Vec4) PerspectiveDivide() Vec3 {
	inv := 1 / v.W
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference, W included.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the length.
func (v Vec4) Len() float32 {
	return math32.Sqrt(v.LenSq())
}

// LenSq returns the squared length.
func (v Vec4) LenSq() float32 {
	return v.Dot(v)
}

// Normalize returns the unit vector.
func (v Vec4) Normalize() Vec4 {
	if v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0 {
		return Vec4{}
	}
	return v.Scale(1 / v.Len())
}

// Lerp returns linear interpolation.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Vec4) Lerp(b Vec4, s float32) Vec4 {
	return Vec4{
		a.X + s*(b.X-a.X),
		a.Y + s*(b.Y-a.Y),
		a.Z + s*(b.Z-a.Z),
		a.W + s*(b.W-a.W),
	}
}

// Min returns the component-wise minimum.
//
//nolint:st1016 // a,b naming convention is clearer for component-wise operations
func (a Vec4) Min(b Vec4) Vec4 {
	return Vec4{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z), min(a.W, b.W)}
}

// Max returns the component-wise maximum.
//
//nolint:st1016 // a,b naming convention is clearer for component-wise operations
func (a Vec4) Max(b Vec4) Vec4 {
	return Vec4{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z), max(a.W, b.W)}
}

// Cross4 returns the 4D cross product of three vectors: the vector
// orthogonal to a, b and c.
func Cross4(a, b, c Vec4) Vec4 {
	return Vec4{
		(b.Z*c.W-b.W*c.Z)*a.Y - (b.Y*c.W-b.W*c.Y)*a.Z + (b.Y*c.Z-b.Z*c.Y)*a.W,
		(b.W*c.Z-b.Z*c.W)*a.X - (b.W*c.X-b.X*c.W)*a.Z + (b.Z*c.X-b.X*c.Z)*a.W,
		(b.Y*c.W-b.W*c.Y)*a.X - (b.X*c.W-b.W*c.X)*a.Y + (b.X*c.Y-b.Y*c.X)*a.W,
		(b.Z*c.Y-b.Y*c.Z)*a.X - (b.Z*c.X-b.X*c.Z)*a.Y + (b.Y*c.X-b.X*c.Y)*a.Z,
	}
}

// Barycentric4 returns the point a + f(b-a) + g(c-a).
func Barycentric4(a, b, c Vec4, f, g float32) Vec4 {
	return a.Add(b.Sub(a).Scale(f)).Add(c.Sub(a).Scale(g))
}

// CatmullRom4 interpolates between b and c using a and d as the outer
// control points.
func CatmullRom4(a, b, c, d Vec4, s float32) Vec4 {
	wa, wb, wc, wd := catmullRomWeights(s)
	return a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc)).Add(d.Scale(wd))
}

// Hermite4 performs Hermite spline interpolation.
func Hermite4(a, t1, b, t2 Vec4, s float32) Vec4 {
	wa, wt1, wb, wt2 := hermiteWeights(s)
	return a.Scale(wa).Add(t1.Scale(wt1)).Add(b.Scale(wb)).Add(t2.Scale(wt2))
}

// Transform transforms v by m as a row vector.
func (v Vec4) Transform(m Mat4) Vec4 {
	return Vec4{
		v.X*m[0] + v.Y*m[4] + v.Z*m[8] + v.W*m[12],
		v.X*m[1] + v.Y*m[5] + v.Z*m[9] + v.W*m[13],
		v.X*m[2] + v.Y*m[6] + v.Z*m[10] + v.W*m[14],
		v.X*m[3] + v.Y*m[7] + v.Z*m[11] + v.W*m[15],
	}
}
