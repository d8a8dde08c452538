package math3d

import (
	"testing"

	"github.com/chewxy/math32"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translation(1, 2, 3)
	m2 := RotationY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkVec4Transform(b *testing.B) {
	m := RotationY(0.5).Mul(Translation(1, 2, 3))
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = v.Transform(m)
	}
}

func BenchmarkVec3TransformCoord(b *testing.B) {
	m := RotationY(0.5).Mul(Translation(1, 2, 3))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.TransformCoord(m)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := Scaling(2, 2, 2).Mul(RotationY(0.5)).Mul(Translation(1, 2, 3))

	for b.Loop() {
		_ = m.Inverse()
	}
}

func BenchmarkMat4Determinant(b *testing.B) {
	m := Scaling(2, 2, 2).Mul(RotationY(0.5)).Mul(Translation(1, 2, 3))

	for b.Loop() {
		_ = m.Determinant()
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkPerspectiveFovLH(b *testing.B) {
	for b.Loop() {
		_ = PerspectiveFovLH(math32.Pi/3, 1.333, 0.1, 100.0)
	}
}

func BenchmarkLookAtLH(b *testing.B) {
	eye := V3(0, 0, -10)
	target := V3(0, 0, 0)
	up := V3(0, 1, 0)

	for b.Loop() {
		_ = LookAtLH(eye, target, up)
	}
}

func BenchmarkProject(b *testing.B) {
	// Full pipeline as the wireframe renderer runs it per vertex.
	vp := NewViewport(0, 0, 800, 600, 0, 1)
	view := LookAtLH(V3(0, 0, -10), V3(0, 0, 0), V3(0, 1, 0))
	proj := PerspectiveFovLH(math32.Pi/3, vp.Aspect(), 0.1, 100.0)
	world := RotationYawPitchRoll(0.3, 0.2, 0.1)

	for b.Loop() {
		_ = Project(V3(1, 2, 3), vp, proj, view, world)
	}
}

func BenchmarkUnproject(b *testing.B) {
	vp := NewViewport(0, 0, 800, 600, 0, 1)
	view := LookAtLH(V3(0, 0, -10), V3(0, 0, 0), V3(0, 1, 0))
	proj := PerspectiveFovLH(math32.Pi/3, vp.Aspect(), 0.1, 100.0)
	world := Identity()

	for b.Loop() {
		_ = Unproject(V3(400, 300, 0.5), vp, proj, view, world)
	}
}
