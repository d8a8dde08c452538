package math3d

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLookAtLH(t *testing.T) {
	view := LookAtLH(V3(0, 0, -5), Zero3(), Up())

	assertVec3(t, V3(0, 0, 5), Zero3().TransformCoord(view), tol)
	assertVec3(t, Zero3(), V3(0, 0, -5).TransformCoord(view), tol)
	// +X stays on the right when looking down +Z.
	assertVec3(t, V3(1, 0, 5), V3(1, 0, 0).TransformCoord(view), tol)
}

func TestLookAtRH(t *testing.T) {
	view := LookAtRH(V3(0, 0, 5), Zero3(), Up())

	assertVec3(t, V3(0, 0, -5), Zero3().TransformCoord(view), tol)
	assertVec3(t, V3(1, 0, -5), V3(1, 0, 0).TransformCoord(view), tol)
}

func TestLookAtRHMatchesMGL(t *testing.T) {
	eye := V3(3, 4, 5)
	at := V3(-1, 0.5, 2)
	want := mgl32.LookAtV(eye.MGL(), at.MGL(), Up().MGL())

	assertMat4(t, Mat4FromMGL(want), LookAtRH(eye, at, Up()), 1e-5)
}

func TestLookAtIsRigid(t *testing.T) {
	for _, view := range []Mat4{
		LookAtLH(V3(2, 3, -4), V3(0, 1, 0), Up()),
		LookAtRH(V3(2, 3, -4), V3(0, 1, 0), Up()),
	} {
		assert.InDelta(t, 1, view.Determinant(), 1e-5)
		// Distances are preserved.
		a, b := V3(1, 2, 3), V3(-4, 0, 7)
		assert.InDelta(t, a.Distance(b), a.TransformCoord(view).Distance(b.TransformCoord(view)), 1e-4)
	}
}

func TestProjectionDepthRange(t *testing.T) {
	const zn, zf = 0.1, 100.0

	tests := []struct {
		name string
		proj Mat4
		near Vec3
		far  Vec3
	}{
		{"PerspectiveFovLH", PerspectiveFovLH(math32.Pi/4, 4.0/3.0, zn, zf), V3(0, 0, zn), V3(0, 0, zf)},
		{"PerspectiveFovRH", PerspectiveFovRH(math32.Pi/4, 4.0/3.0, zn, zf), V3(0, 0, -zn), V3(0, 0, -zf)},
		{"PerspectiveLH", PerspectiveLH(2, 1.5, zn, zf), V3(0, 0, zn), V3(0, 0, zf)},
		{"PerspectiveRH", PerspectiveRH(2, 1.5, zn, zf), V3(0, 0, -zn), V3(0, 0, -zf)},
		{"PerspectiveOffCenterLH", PerspectiveOffCenterLH(-1, 2, -0.5, 1, zn, zf), V3(0, 0, zn), V3(0, 0, zf)},
		{"PerspectiveOffCenterRH", PerspectiveOffCenterRH(-1, 2, -0.5, 1, zn, zf), V3(0, 0, -zn), V3(0, 0, -zf)},
		{"OrthoLH", OrthoLH(10, 8, zn, zf), V3(0, 0, zn), V3(0, 0, zf)},
		{"OrthoRH", OrthoRH(10, 8, zn, zf), V3(0, 0, -zn), V3(0, 0, -zf)},
		{"OrthoOffCenterLH", OrthoOffCenterLH(-3, 5, -1, 2, zn, zf), V3(0, 0, zn), V3(0, 0, zf)},
		{"OrthoOffCenterRH", OrthoOffCenterRH(-3, 5, -1, 2, zn, zf), V3(0, 0, -zn), V3(0, 0, -zf)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, 0, tc.near.TransformCoord(tc.proj).Z, 1e-5, "near plane")
			assert.InDelta(t, 1, tc.far.TransformCoord(tc.proj).Z, 1e-5, "far plane")
		})
	}
}

func TestProjectionEdges(t *testing.T) {
	const zn, zf = 0.5, 20.0
	const l, r, b, top = -1.0, 3.0, -2.0, 0.5

	tests := []struct {
		name string
		proj Mat4
		in   Vec3
		want Vec3
	}{
		{"PerspectiveLH corner", PerspectiveLH(4, 2, zn, zf), V3(2, 1, zn), V3(1, 1, 0)},
		{"PerspectiveRH corner", PerspectiveRH(4, 2, zn, zf), V3(2, -1, -zn), V3(1, -1, 0)},
		{"PerspectiveOffCenterLH min", PerspectiveOffCenterLH(l, r, b, top, zn, zf), V3(l, b, zn), V3(-1, -1, 0)},
		{"PerspectiveOffCenterLH max", PerspectiveOffCenterLH(l, r, b, top, zn, zf), V3(r, top, zn), V3(1, 1, 0)},
		{"PerspectiveOffCenterRH min", PerspectiveOffCenterRH(l, r, b, top, zn, zf), V3(l, b, -zn), V3(-1, -1, 0)},
		{"PerspectiveOffCenterRH max", PerspectiveOffCenterRH(l, r, b, top, zn, zf), V3(r, top, -zn), V3(1, 1, 0)},
		{"OrthoLH corner", OrthoLH(4, 2, zn, zf), V3(2, -1, zf), V3(1, -1, 1)},
		{"OrthoRH corner", OrthoRH(4, 2, zn, zf), V3(-2, 1, -zf), V3(-1, 1, 1)},
		{"OrthoOffCenterLH min", OrthoOffCenterLH(l, r, b, top, zn, zf), V3(l, b, zn), V3(-1, -1, 0)},
		{"OrthoOffCenterLH max", OrthoOffCenterLH(l, r, b, top, zn, zf), V3(r, top, zf), V3(1, 1, 1)},
		{"OrthoOffCenterRH min", OrthoOffCenterRH(l, r, b, top, zn, zf), V3(l, b, -zn), V3(-1, -1, 0)},
		{"OrthoOffCenterRH max", OrthoOffCenterRH(l, r, b, top, zn, zf), V3(r, top, -zf), V3(1, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertVec3(t, tc.want, tc.in.TransformCoord(tc.proj), 1e-5)
		})
	}
}

func TestOrthoOffCenterFlippedY(t *testing.T) {
	// Top-left origin: screen row 0 maps to +1.
	m := OrthoOffCenterLH(0, 800, 600, 0, 0, 1)

	assertVec3(t, V3(-1, 1, 0), V3(0, 0, 0).TransformCoord(m), 1e-5)
	assertVec3(t, V3(1, -1, 1), V3(800, 600, 1).TransformCoord(m), 1e-5)
}

func TestPerspectiveFovMatchesMGLScale(t *testing.T) {
	fovy := DegToRad(60)
	aspect := float32(16.0 / 9.0)
	gl := mgl32.Perspective(fovy, aspect, 0.1, 100)

	for _, m := range []Mat4{
		PerspectiveFovLH(fovy, aspect, 0.1, 100),
		PerspectiveFovRH(fovy, aspect, 0.1, 100),
	} {
		assert.InDelta(t, gl[0], m[0], 1e-5)
		assert.InDelta(t, gl[5], m[5], 1e-5)
	}
}

func TestPerspectiveHandednessMirror(t *testing.T) {
	lh := PerspectiveFovLH(1, 1.25, 0.3, 40)
	rh := PerspectiveFovRH(1, 1.25, 0.3, 40)
	p := V3(0.4, -0.2, 7)

	// A right-handed camera sees the mirror image in z.
	assertVec3(t, p.TransformCoord(lh), V3(p.X, p.Y, -p.Z).TransformCoord(rh), 1e-5)
}
