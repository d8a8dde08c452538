package math3d

import "github.com/chewxy/math32"

// Plane represents the surface A*x + B*y + C*z + D = 0, where (A, B, C) is
// the normal. Constructors do not normalize; call Normalize when the
// normal must be unit length (signed distances need it).
type Plane struct {
	A, B, C, D float32
}

// NewPlane creates a plane from its four coefficients.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{a, b, c, d}
}

// PlaneFromPointNormal creates the plane through point with the given
// normal.
func PlaneFromPointNormal(point, normal Vec3) Plane {
	return Plane{normal.X, normal.Y, normal.Z, -normal.Dot(point)}
}

// PlaneFromPoints creates the plane through three points. The normal is
// (v1-v0) x (v2-v0), so its length is twice the triangle's area.
func PlaneFromPoints(v0, v1, v2 Vec3) Plane {
	n := v1.Sub(v0).Cross(v2.Sub(v0))
	return PlaneFromPointNormal(v0, n)
}

// Normal returns (A, B, C).
func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

// Vec4 returns the coefficients as a vector.
func (p Plane) Vec4() Vec4 {
	return Vec4{p.A, p.B, p.C, p.D}
}

// Dot returns the dot product of the plane and a 4D vector.
func (p Plane) Dot(v Vec4) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D*v.W
}

// DotCoord returns the dot product of the plane and the point (x, y, z, 1).
// For a normalized plane this is the signed distance to the point.
func (p Plane) DotCoord(v Vec3) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// DotNormal returns the dot product of the plane and the direction
// (x, y, z, 0).
func (p Plane) DotNormal(v Vec3) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z
}

// Normalize rescales all four coefficients by 1/|(A, B, C)| so the normal
// has unit length and the surface is unchanged. A zero normal yields
// non-finite coefficients.
func (p Plane) Normalize() Plane {
	inv := 1 / math32.Sqrt(p.A*p.A+p.B*p.B+p.C*p.C)
	return p.Scale(inv)
}

// Scale multiplies every coefficient by s.
func (p Plane) Scale(s float32) Plane {
	return Plane{p.A * s, p.B * s, p.C * s, p.D * s}
}

// Transform transforms the plane by m. m must be the inverse transpose of
// the matrix that transforms the geometry; this is not computed here.
func (p Plane) Transform(m Mat4) Plane {
	v := p.Vec4().Transform(m)
	return Plane{v.X, v.Y, v.Z, v.W}
}

// IntersectLine returns where the segment p0-p1 crosses the plane by
// interpolating the endpoints' signed distances. When both endpoints are on
// the same side the endpoint closer to the plane is returned instead.
func (p Plane) IntersectLine(p0, p1 Vec3) Vec3 {
	d0 := p.DotCoord(p0)
	d1 := p.DotCoord(p1)

	if d0*d1 <= 0 && d0 != d1 {
		return p0.Lerp(p1, d0/(d0-d1))
	}
	if math32.Abs(d1) < math32.Abs(d0) {
		return p1
	}
	return p0
}
