package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/dxmath/pkg/math3d"
	"github.com/taigrr/dxmath/pkg/models"
)

// newTestRasterizer looks down +Z from (0, 0, -10) into a 40x40 buffer.
func newTestRasterizer() (*Rasterizer, *Framebuffer) {
	cam := NewCamera(40, 40)
	fb := NewFramebuffer(40, 40)
	return NewRasterizer(cam, fb), fb
}

// facingTriangle returns a triangle in the plane z whose normal points
// towards -Z, i.e. at the default camera.
func facingTriangle(size, z float32, c math3d.Color) Triangle {
	return Triangle{V: [3]Vertex{
		{Position: math3d.V3(-size, -size, z), Color: c},
		{Position: math3d.V3(0, size, z), Color: c},
		{Position: math3d.V3(size, -size, z), Color: c},
	}}
}

func countColor(fb *Framebuffer, c math3d.Color) int {
	want := c.ToRGBA()
	n := 0
	for _, p := range fb.Pixels {
		if p == want {
			n++
		}
	}
	return n
}

func TestRasterizerDepthOrder(t *testing.T) {
	nearTri := facingTriangle(2, 0, ColorRed)
	farTri := facingTriangle(4, 3, ColorBlue)

	tests := []struct {
		name  string
		order []Triangle
	}{
		{"near first", []Triangle{nearTri, farTri}},
		{"far first", []Triangle{farTri, nearTri}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, fb := newTestRasterizer()
			for _, tri := range tc.order {
				r.DrawTriangle(tri)
			}

			if got := fb.GetPixel(20, 20); got != ColorRed.ToRGBA() {
				t.Errorf("center = %v, want the near triangle", got)
			}
			// Below the near triangle only the far one covers the screen.
			if got := fb.GetPixel(20, 29); got != ColorBlue.ToRGBA() {
				t.Errorf("pixel (20, 29) = %v, want the far triangle", got)
			}
			if d := r.Depth(20, 20); d <= 0 || d >= r.Depth(20, 29) {
				t.Errorf("depth at center = %v, at (20, 29) = %v", d, r.Depth(20, 29))
			}
		})
	}
}

func TestRasterizerClearDepth(t *testing.T) {
	r, fb := newTestRasterizer()
	r.DrawTriangle(facingTriangle(2, 0, ColorRed))

	r.ClearDepth()
	if d := r.Depth(20, 20); d != math32.MaxFloat32 {
		t.Errorf("depth after ClearDepth = %v", d)
	}

	r.DrawTriangle(facingTriangle(2, 3, ColorBlue))
	if got := fb.GetPixel(20, 20); got != ColorBlue.ToRGBA() {
		t.Errorf("center = %v, want the far triangle after ClearDepth", got)
	}
}

func TestRasterizerVertexColors(t *testing.T) {
	r, fb := newTestRasterizer()
	r.DrawTriangle(Triangle{V: [3]Vertex{
		{Position: math3d.V3(-2, -2, 0), Color: ColorRed},
		{Position: math3d.V3(0, 2, 0), Color: ColorGreen},
		{Position: math3d.V3(2, -2, 0), Color: ColorBlue},
	}})

	// Near the centroid every vertex contributes.
	c := fb.GetPixel(20, 22)
	if c.R < 40 || c.G < 40 || c.B < 40 {
		t.Errorf("centroid = %v, want a mix of all three", c)
	}

	// Next to the red corner red dominates.
	c = fb.GetPixel(14, 26)
	if c.A == 0 || c.R <= c.G || c.R <= c.B {
		t.Errorf("pixel by the red corner = %v", c)
	}
}

func TestRasterizerRejects(t *testing.T) {
	back := facingTriangle(2, 0, ColorRed)
	back.V[1], back.V[2] = back.V[2], back.V[1]

	offscreen := facingTriangle(2, 0, ColorRed)
	for i := range offscreen.V {
		offscreen.V[i].Position.X += 50
	}

	tests := []struct {
		name string
		tri  Triangle
	}{
		{"behind camera", facingTriangle(2, -20, ColorRed)},
		{"beyond far plane", facingTriangle(2, 2000, ColorRed)},
		{"back facing", back},
		{"off screen", offscreen},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, fb := newTestRasterizer()
			r.DrawTriangle(tc.tri)
			if n := countLit(fb); n != 0 {
				t.Errorf("%d pixels drawn", n)
			}
		})
	}

	r, fb := newTestRasterizer()
	r.DisableBackfaceCulling = true
	r.DrawTriangle(back)
	if countLit(fb) == 0 {
		t.Error("back face not drawn with culling disabled")
	}
}

func TestRasterizerClipsNearPlane(t *testing.T) {
	r, fb := newTestRasterizer()

	// One corner is behind the eye.
	r.DrawTriangle(Triangle{V: [3]Vertex{
		{Position: math3d.V3(0, 2, -30), Color: ColorWhite},
		{Position: math3d.V3(-2, -2, 5), Color: ColorWhite},
		{Position: math3d.V3(2, -2, 5), Color: ColorWhite},
	}})

	if countLit(fb) == 0 {
		t.Fatal("nothing drawn")
	}
	for i, d := range r.depth {
		if d != math32.MaxFloat32 && (d < 0 || d > 1) {
			t.Fatalf("depth[%d] = %v, outside the viewport depth range", i, d)
		}
	}
}

func TestRasterizerLineDepth(t *testing.T) {
	r, fb := newTestRasterizer()
	r.DrawTriangle(facingTriangle(2, 0, ColorRed))

	r.DrawLine3D(math3d.V3(-1, -0.5, 5), math3d.V3(1, -0.5, 5), ColorWhite)
	if n := countColor(fb, ColorWhite); n != 0 {
		t.Errorf("%d pixels of a line behind the triangle drawn", n)
	}

	r.DrawLine3D(math3d.V3(-1, -0.5, -2), math3d.V3(1, -0.5, -2), ColorWhite)
	if countColor(fb, ColorWhite) == 0 {
		t.Error("line in front of the triangle not drawn")
	}
}

func TestRasterizerDrawMesh(t *testing.T) {
	r, fb := newTestRasterizer()
	cube := models.NewCube(2)

	if !r.DrawMesh(cube, math3d.RotationY(0.5), ColorGreen) {
		t.Fatal("cube at the origin was culled")
	}
	c := fb.GetPixel(20, 20)
	if c.A == 0 || c.G == 0 || c.R != 0 || c.B != 0 {
		t.Errorf("center = %v, want shaded green", c)
	}
	if fb.GetPixel(0, 0).A != 0 {
		t.Error("cube filled the screen corner")
	}

	fb.Clear(math3d.Color{})
	r.ClearDepth()
	if r.DrawMesh(cube, math3d.Translation(0, 0, -50), ColorGreen) {
		t.Error("cube behind the camera was not culled")
	}
	if n := countLit(fb); n != 0 {
		t.Errorf("%d pixels drawn for a culled mesh", n)
	}
}

func TestRasterizerDrawMeshHidden(t *testing.T) {
	cube := models.NewCube(2)
	world := math3d.RotationYawPitchRoll(0.5, 0.4, 0)

	w, _, wfb := newTestWireframe()
	w.DrawMesh(cube, world, ColorGreen)
	all := countColor(wfb, ColorGreen)

	r, fb := newTestRasterizer()
	if !r.DrawMeshHidden(cube, world, ColorBlack, ColorGreen) {
		t.Fatal("cube at the origin was culled")
	}
	visible := countColor(fb, ColorGreen)
	if visible == 0 {
		t.Fatal("no edges drawn")
	}
	if visible >= all {
		t.Errorf("hidden-line drew %d edge pixels, wireframe %d; back edges were not hidden", visible, all)
	}
}

func BenchmarkRasterizerDrawMesh(b *testing.B) {
	r, fb := newTestRasterizer()
	cube := models.NewCube(2)
	world := math3d.RotationY(0.5)

	for b.Loop() {
		fb.Clear(ColorBlack)
		r.ClearDepth()
		r.DrawMesh(cube, world, ColorGreen)
	}
}
