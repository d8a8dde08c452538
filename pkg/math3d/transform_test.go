package math3d

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestTransformation2D(t *testing.T) {
	tests := []struct {
		name           string
		scalingCenter  Vec2
		scale          Vec2
		rotationCenter Vec2
		angle          float32
		translation    Vec2
		in, want       Vec2
	}{
		{"identity", V2(0, 0), V2(1, 1), V2(0, 0), 0, V2(0, 0), V2(3, 4), V2(3, 4)},
		{"scale about center", V2(1, 1), V2(2, 2), V2(0, 0), 0, V2(0, 0), V2(2, 2), V2(3, 3)},
		{"rotate about center", V2(0, 0), V2(1, 1), V2(1, 0), math32.Pi / 2, V2(0, 0), V2(2, 0), V2(1, 1)},
		{"translate", V2(0, 0), V2(1, 1), V2(0, 0), 0, V2(-1, 5), V2(1, 1), V2(0, 6)},
		{"scale then rotate", V2(0, 0), V2(2, 1), V2(0, 0), math32.Pi / 2, V2(0, 0), V2(1, 0), V2(0, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Transformation2D(tc.scalingCenter, tc.scale, tc.rotationCenter, tc.angle, tc.translation)
			got := tc.in.TransformCoord(m)
			assert.InDelta(t, tc.want.X, got.X, 1e-5)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-5)

			// Same transform through the x/image affine form.
			a := m.Aff3()
			assert.InDelta(t, tc.want.X, a[0]*tc.in.X+a[1]*tc.in.Y+a[2], 1e-5)
			assert.InDelta(t, tc.want.Y, a[3]*tc.in.X+a[4]*tc.in.Y+a[5], 1e-5)
		})
	}
}

func TestTransformation2DKeepsZ(t *testing.T) {
	m := Transformation2D(V2(1, 2), V2(3, 4), V2(-1, 0), 0.7, V2(5, 6))
	assert.InDelta(t, 9, V3(1, 1, 9).TransformCoord(m).Z, 1e-5)
}

func TestTransformationMatches2D(t *testing.T) {
	m2 := Transformation2D(V2(1, 2), V2(3, 0.5), V2(-1, 4), 0.9, V2(2, -3))
	m3 := Transformation(V3(1, 2, 0), V3(3, 0.5, 1), V3(-1, 4, 0), V3(0, 0, 1), 0.9, V3(2, -3, 0))

	assertMat4(t, m2, m3, 1e-5)
}

func TestTransformation(t *testing.T) {
	// Scale by 2 about (0,0,1), rotate a quarter turn about the x axis
	// through the origin, then move up.
	m := Transformation(V3(0, 0, 1), V3(2, 2, 2), Zero3(), V3(1, 0, 0), math32.Pi/2, V3(0, 10, 0))

	// (0,0,2) -> scaled (0,0,3) -> rotated (0,-3,0) -> (0,7,0)
	assertVec3(t, V3(0, 7, 0), V3(0, 0, 2).TransformCoord(m), 1e-5)
}

func TestCompose(t *testing.T) {
	assertMat4(t, Translation(1, 2, 3), Compose(V3(1, 1, 1), 0, 0, 0, V3(1, 2, 3)), 0)

	m := Compose(V3(2, 2, 2), math32.Pi/2, 0, 0, V3(0, 0, 5))
	// Scale, yaw +X to -Z, translate.
	assertVec3(t, V3(0, 0, 3), V3(1, 0, 0).TransformCoord(m), 1e-5)
}
