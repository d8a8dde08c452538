// Package render draws projected geometry into a framebuffer and blits it
// to the terminal.
package render

import (
	"github.com/taigrr/dxmath/pkg/math3d"
)

// Frustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane is normalized and its normal points inward, so DotCoord is
// the signed distance into the volume.
type Frustum struct {
	Planes [6]math3d.Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts frustum planes from a view-projection matrix
// (Gribb/Hartmann). Vectors multiply on the left, so clip coordinate i is
// the dot product with column i. The near plane is z >= 0 rather than
// z >= -w because the clip volume's depth range is [0, 1].
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	x, y, z, w := m.Col(0), m.Col(1), m.Col(2), m.Col(3)

	planes := [6]math3d.Vec4{
		FrustumLeft:   w.Add(x),
		FrustumRight:  w.Sub(x),
		FrustumBottom: w.Add(y),
		FrustumTop:    w.Sub(y),
		FrustumNear:   z,
		FrustumFar:    w.Sub(z),
	}

	var f Frustum
	for i, p := range planes {
		f.Planes[i] = math3d.NewPlane(p.X, p.Y, p.Z, p.W).Normalize()
	}
	return f
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners; bit 0 of the index selects Max.X,
// bit 1 Max.Y and bit 2 Max.Z.
func (b AABB) Corners() [8]math3d.Vec3 {
	var c [8]math3d.Vec3
	for i := range c {
		c[i] = math3d.V3(
			selectComponent(i&1 != 0, b.Max.X, b.Min.X),
			selectComponent(i&2 != 0, b.Max.Y, b.Min.Y),
			selectComponent(i&4 != 0, b.Max.Z, b.Min.Z),
		)
	}
	return c
}

// Transform returns an AABB that bounds the original AABB after transformation.
// This computes a new AABB that contains all 8 transformed corners.
func (b AABB) Transform(m math3d.Mat4) AABB {
	corners := b.Corners()

	transformed := corners[0].TransformCoord(m)
	newMin := transformed
	newMax := transformed

	for _, c := range corners[1:] {
		transformed = c.TransformCoord(m)
		newMin = newMin.Min(transformed)
		newMax = newMax.Max(transformed)
	}

	return AABB{Min: newMin, Max: newMax}
}

// ContainsPoint returns true if the point is inside the AABB.
func (b AABB) ContainsPoint(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectAABB tests if the AABB intersects or is inside the frustum.
// Returns true if any part of the AABB is visible. The test is
// conservative: large boxes near a frustum corner may be reported visible.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		// The corner furthest along the normal; if it is outside, all are.
		pVertex := math3d.V3(
			selectComponent(plane.A >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.B >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.C >= 0, box.Max.Z, box.Min.Z),
		)

		if plane.DotCoord(pVertex) < 0 {
			return false
		}
	}

	return true
}

// ContainsAABB tests if the AABB is completely inside the frustum.
func (f Frustum) ContainsAABB(box AABB) bool {
	for _, plane := range f.Planes {
		nVertex := math3d.V3(
			selectComponent(plane.A >= 0, box.Min.X, box.Max.X),
			selectComponent(plane.B >= 0, box.Min.Y, box.Max.Y),
			selectComponent(plane.C >= 0, box.Min.Z, box.Max.Z),
		)

		if plane.DotCoord(nVertex) < 0 {
			return false
		}
	}

	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for _, plane := range f.Planes {
		if plane.DotCoord(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if a sphere intersects the frustum.
func (f Frustum) IntersectsSphere(center math3d.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DotCoord(center) < -radius {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
