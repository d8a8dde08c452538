package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/dxmath/pkg/math3d"
	"github.com/taigrr/dxmath/pkg/models"
)

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// DrawLine3D draws a world-space segment. The segment is clipped against
// the camera frustum before projection, so lines that pass behind the eye
// are drawn correctly.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, c math3d.Color) {
	p1, p2, ok := clipSegment(w.camera.Frustum(), p1, p2)
	if !ok {
		return
	}

	proj := w.camera.ProjectionMatrix()
	view := w.camera.ViewMatrix()
	world := math3d.Identity()

	s1 := w.camera.Viewport.Project(p1, proj, view, world)
	s2 := w.camera.Viewport.Project(p2, proj, view, world)

	w.fb.DrawLine(pixel(s1.X), pixel(s1.Y), pixel(s2.X), pixel(s2.Y), c)
}

// clipSegment trims p1-p2 to the inside of every frustum plane. ok is false
// when nothing is left.
func clipSegment(f Frustum, p1, p2 math3d.Vec3) (math3d.Vec3, math3d.Vec3, bool) {
	for _, plane := range f.Planes {
		d1 := plane.DotCoord(p1)
		d2 := plane.DotCoord(p2)
		switch {
		case d1 < 0 && d2 < 0:
			return p1, p2, false
		case d1 < 0:
			p1 = plane.IntersectLine(p1, p2)
		case d2 < 0:
			p2 = plane.IntersectLine(p1, p2)
		}
	}
	return p1, p2, true
}

func pixel(v float32) int {
	return int(math32.Floor(v))
}

// DrawMesh draws every triangle edge of mesh placed by world. It returns
// false without drawing when the mesh bounds are outside the frustum.
func (w *Wireframe) DrawMesh(mesh *models.Mesh, world math3d.Mat4, c math3d.Color) bool {
	bounds := NewAABB(mesh.Bounds()).Transform(world)
	if !w.camera.Frustum().IntersectAABB(bounds) {
		return false
	}

	positions := make([]math3d.Vec3, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position.TransformCoord(world)
	}

	for _, e := range mesh.Edges() {
		w.DrawLine3D(positions[e[0]], positions[e[1]], c)
	}
	return true
}

// DrawNormals draws each vertex normal of mesh as a segment of the given
// length.
func (w *Wireframe) DrawNormals(mesh *models.Mesh, world math3d.Mat4, length float32, c math3d.Color) {
	normalMat := world.Inverse().Transpose()
	for _, v := range mesh.Vertices {
		p := v.Position.TransformCoord(world)
		n := v.Normal.TransformNormal(normalMat).Normalize()
		w.DrawLine3D(p, p.Add(n.Scale(length)), c)
	}
}

// DrawBox draws the twelve edges of box placed by world.
func (w *Wireframe) DrawBox(box AABB, world math3d.Mat4, c math3d.Color) {
	corners := box.Corners()
	for i := range corners {
		corners[i] = corners[i].TransformCoord(world)
	}

	// Corners that differ in exactly one bit share an edge.
	for i := range 8 {
		for _, bit := range [3]int{1, 2, 4} {
			if j := i | bit; j != i {
				w.DrawLine3D(corners[i], corners[j], c)
			}
		}
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float32) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)  // Z axis
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step float32, c math3d.Color) {
	if step <= 0 {
		return
	}
	half := size / 2
	n := int(size / step)
	for i := 0; i <= n; i++ {
		v := -half + float32(i)*step
		w.DrawLine3D(math3d.V3(v, 0, -half), math3d.V3(v, 0, half), c)
		w.DrawLine3D(math3d.V3(-half, 0, v), math3d.V3(half, 0, v), c)
	}
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float32, c math3d.Color) {
	h := size / 2
	w.DrawLine3D(pos.Add(math3d.V3(-h, 0, 0)), pos.Add(math3d.V3(h, 0, 0)), c)
	w.DrawLine3D(pos.Add(math3d.V3(0, -h, 0)), pos.Add(math3d.V3(0, h, 0)), c)
	w.DrawLine3D(pos.Add(math3d.V3(0, 0, -h)), pos.Add(math3d.V3(0, 0, h)), c)
}
