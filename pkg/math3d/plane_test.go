package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaneDotCoord(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := NewPlane(0, 0, 1, 0)

	tests := []struct {
		name     string
		point    Vec3
		expected float32
	}{
		{"origin", V3(0, 0, 0), 0},
		{"in front", V3(0, 0, 5), 5},
		{"behind", V3(0, 0, -3), -3},
		{"offset XY", V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, plane.DotCoord(tc.point), 1e-6)
		})
	}
}

func TestPlaneDotVariants(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)

	assert.InDelta(t, 1+4+9+4, p.DotCoord(V3(1, 2, 3)), 1e-6)
	assert.InDelta(t, 1+4+9, p.DotNormal(V3(1, 2, 3)), 1e-6)
	assert.InDelta(t, 1+4+9+8, p.Dot(V4(1, 2, 3, 2)), 1e-6)
	assert.Equal(t, V3(1, 2, 3), p.Normal())
}

func TestPlaneNormalize(t *testing.T) {
	plane := NewPlane(0, 3, 4, 10).Normalize()

	assert.InDelta(t, 1, plane.Normal().Len(), 1e-6)
	assert.InDelta(t, 0.6, plane.B, 1e-6)
	assert.InDelta(t, 0.8, plane.C, 1e-6)
	// D is scaled too (10/5 = 2)
	assert.InDelta(t, 2, plane.D, 1e-6)
}

func TestPlaneNormalizeKeepsSurface(t *testing.T) {
	raw := PlaneFromPoints(V3(1, 0, 2), V3(3, 1, 2), V3(0, 4, 5))
	n := raw.Normalize()

	for _, p := range []Vec3{V3(1, 0, 2), V3(3, 1, 2), V3(0, 4, 5)} {
		assert.InDelta(t, 0, n.DotCoord(p), 1e-5)
	}
	// Same orientation, unit scale.
	assert.Greater(t, raw.Normal().Dot(n.Normal()), float32(0))
	assert.InDelta(t, raw.DotCoord(V3(7, 7, 7))/raw.Normal().Len(), n.DotCoord(V3(7, 7, 7)), 1e-4)
}

func TestPlaneFromPoints(t *testing.T) {
	// Counter-clockwise in the xy plane viewed from +Z.
	p := PlaneFromPoints(V3(0, 0, 1), V3(1, 0, 1), V3(0, 1, 1))

	assert.Equal(t, V3(0, 0, 1), p.Normal())
	assert.InDelta(t, -1, p.D, 1e-6)
	assert.InDelta(t, 2, p.DotCoord(V3(5, -5, 3)), 1e-6)
}

func TestPlaneFromPointNormal(t *testing.T) {
	p := PlaneFromPointNormal(V3(0, 2, 0), V3(0, 1, 0))

	assert.InDelta(t, 0, p.DotCoord(V3(9, 2, -4)), 1e-6)
	assert.InDelta(t, 3, p.DotCoord(V3(0, 5, 0)), 1e-6)
}

func TestPlaneTransform(t *testing.T) {
	// Moving geometry by +5 in y moves the plane y=0 to y=5.
	move := Translation(0, 5, 0)
	p := NewPlane(0, 1, 0, 0).Transform(move.Inverse().Transpose())

	assert.InDelta(t, 0, p.DotCoord(V3(3, 5, -1)), 1e-6)
	assert.InDelta(t, 1, p.DotCoord(V3(0, 6, 0)), 1e-6)
}

func TestPlaneIntersectLine(t *testing.T) {
	plane := NewPlane(0, 0, 1, 0)

	tests := []struct {
		name   string
		p0, p1 Vec3
		want   Vec3
	}{
		{"straddles", V3(0, 0, -1), V3(0, 0, 3), V3(0, 0, 0)},
		{"straddles reversed", V3(2, 4, 3), V3(2, 0, -1), V3(2, 1, 0)},
		{"oblique", V3(-1, 0, -1), V3(1, 2, 1), V3(0, 1, 0)},
		{"starts on plane", V3(1, 1, 0), V3(1, 1, 4), V3(1, 1, 0)},
		{"ends on plane", V3(1, 1, 4), V3(1, 1, 0), V3(1, 1, 0)},
		{"same side returns nearer end", V3(0, 0, 2), V3(0, 0, 5), V3(0, 0, 2)},
		{"same side behind", V3(0, 0, -7), V3(0, 0, -3), V3(0, 0, -3)},
		{"parallel", V3(0, 0, 1), V3(5, 0, 1), V3(0, 0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertVec3(t, tc.want, plane.IntersectLine(tc.p0, tc.p1), 1e-6)
		})
	}
}
