package math3d

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// V2 creates a new Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// CCW returns the z component of the cross product of a and b. A positive
// value means b is counterclockwise from a, which is what back-face
// culling in screen space checks.
func (a Vec2) CCW(b Vec2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length of the vector.
func (a Vec2) Len() float32 {
	return math32.Sqrt(a.LenSq())
}

// LenSq returns the squared length.
func (a Vec2) LenSq() float32 {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector; the zero vector stays zero.
func (a Vec2) Normalize() Vec2 {
	if a.X == 0 && a.Y == 0 {
		return Vec2{}
	}
	inv := 1 / a.Len()
	return Vec2{a.X * inv, a.Y * inv}
}

// Lerp returns the linear interpolation between a and b by s.
func (a Vec2) Lerp(b Vec2, s float32) Vec2 {
	return Vec2{a.X + s*(b.X-a.X), a.Y + s*(b.Y-a.Y)}
}

// Min returns the component-wise minimum.
func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{min(a.X, b.X), min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{max(a.X, b.X), max(a.Y, b.Y)}
}

// Barycentric2 returns the point a + f(b-a) + g(c-a).
func Barycentric2(a, b, c Vec2, f, g float32) Vec2 {
	return Vec2{
		a.X + f*(b.X-a.X) + g*(c.X-a.X),
		a.Y + f*(b.Y-a.Y) + g*(c.Y-a.Y),
	}
}

// CatmullRom2 interpolates between b and c using a and d as the outer
// control points.
func CatmullRom2(a, b, c, d Vec2, s float32) Vec2 {
	wa, wb, wc, wd := catmullRomWeights(s)
	return a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc)).Add(d.Scale(wd))
}

// Hermite2 performs Hermite spline interpolation.
func Hermite2(a, t1, b, t2 Vec2, s float32) Vec2 {
	wa, wt1, wb, wt2 := hermiteWeights(s)
	return a.Scale(wa).Add(t1.Scale(wt1)).Add(b.Scale(wb)).Add(t2.Scale(wt2))
}

// Transform transforms the point (x, y, 0, 1) by m.
func (a Vec2) Transform(m Mat4) Vec4 {
	return Vec4{
		a.X*m[0] + a.Y*m[4] + m[12],
		a.X*m[1] + a.Y*m[5] + m[13],
		a.X*m[2] + a.Y*m[6] + m[14],
		a.X*m[3] + a.Y*m[7] + m[15],
	}
}

// TransformCoord transforms the point (x, y, 0, 1) by m and projects the
// result back into w = 1.
func (a Vec2) TransformCoord(m Mat4) Vec2 {
	v := a.Transform(m)
	return Vec2{v.X / v.W, v.Y / v.W}
}

// TransformNormal transforms the direction (x, y, 0, 0) by m.
func (a Vec2) TransformNormal(m Mat4) Vec2 {
	return Vec2{
		a.X*m[0] + a.Y*m[4],
		a.X*m[1] + a.Y*m[5],
	}
}
