package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/dxmath/pkg/math3d"
	"github.com/taigrr/dxmath/pkg/models"
)

// Vertex is a world-space triangle corner.
type Vertex struct {
	Position math3d.Vec3
	Color    math3d.Color
}

// Triangle is a world-space triangle to be rasterized.
type Triangle struct {
	V [3]Vertex
}

// Rasterizer fills triangles into a framebuffer through a depth buffer.
// Depth is the viewport z returned by Viewport.Project, so it lies in
// [MinZ, MaxZ] and smaller values are nearer the eye.
type Rasterizer struct {
	camera *Camera
	fb     *Framebuffer
	depth  []float32

	DisableBackfaceCulling bool // If true, render both sides of triangles

	// DepthBias lets lines lying on a surface pass the depth test.
	DepthBias float32

	// Ambient is the light level of surfaces facing away from the eye.
	Ambient float32
}

// NewRasterizer creates a rasterizer drawing into fb.
func NewRasterizer(camera *Camera, fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{
		camera:    camera,
		fb:        fb,
		DepthBias: 1e-3,
		Ambient:   0.3,
	}
	r.Resize()
	return r
}

// Resize resizes the depth buffer to match the framebuffer.
func (r *Rasterizer) Resize() {
	if r.fb == nil {
		r.depth = nil
		return
	}
	r.depth = make([]float32, r.fb.Width*r.fb.Height)
	r.ClearDepth()
}

// ClearDepth resets the depth buffer (call before each frame).
func (r *Rasterizer) ClearDepth() {
	n := len(r.depth)
	if n == 0 {
		return
	}
	// Copy-doubling fill
	r.depth[0] = math32.MaxFloat32
	for i := 1; i < n; i *= 2 {
		copy(r.depth[i:], r.depth[:i])
	}
}

// Depth returns the stored depth at (x, y), or math32.MaxFloat32 when
// nothing has been drawn there.
func (r *Rasterizer) Depth(x, y int) float32 {
	if x < 0 || x >= r.fb.Width || y < 0 || y >= r.fb.Height {
		return math32.MaxFloat32
	}
	return r.depth[y*r.fb.Width+x]
}

// DrawTriangle rasterizes a single triangle, interpolating vertex colors.
// Triangles are clipped to the camera frustum first, so corners behind the
// eye are handled.
func (r *Rasterizer) DrawTriangle(tri Triangle) {
	if !r.DisableBackfaceCulling && !r.facesEye(tri) {
		return
	}

	poly := clipPolygon(r.camera.Frustum(), tri.V[:])
	if len(poly) < 3 {
		return
	}

	proj := r.camera.ProjectionMatrix()
	view := r.camera.ViewMatrix()
	world := math3d.Identity()

	screen := make([]math3d.Vec3, len(poly))
	for i, v := range poly {
		screen[i] = r.camera.Viewport.Project(v.Position, proj, view, world)
	}

	// The clipped polygon is convex, so a fan covers it.
	for i := 1; i < len(poly)-1; i++ {
		r.fill(
			[3]math3d.Vec3{screen[0], screen[i], screen[i+1]},
			[3]math3d.Color{poly[0].Color, poly[i].Color, poly[i+1].Color},
		)
	}
}

// facesEye reports whether the normal (v1-v0)×(v2-v0) of tri points
// towards the camera.
func (r *Rasterizer) facesEye(tri Triangle) bool {
	p := math3d.PlaneFromPoints(tri.V[0].Position, tri.V[1].Position, tri.V[2].Position)
	return p.DotCoord(r.camera.Eye) > 0
}

// fill draws one screen-space triangle. s holds viewport x, y and depth.
func (r *Rasterizer) fill(s [3]math3d.Vec3, c [3]math3d.Color) {
	area := edge(s[0], s[1], s[2].X, s[2].Y)
	if area == 0 {
		return
	}

	minX := max(0, int(math32.Floor(min(s[0].X, s[1].X, s[2].X))))
	maxX := min(r.fb.Width-1, int(math32.Ceil(max(s[0].X, s[1].X, s[2].X))))
	minY := max(0, int(math32.Floor(min(s[0].Y, s[1].Y, s[2].Y))))
	maxY := min(r.fb.Height-1, int(math32.Ceil(max(s[0].Y, s[1].Y, s[2].Y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5

			// Barycentric weights of s[1] and s[2]
			f := edge(s[2], s[0], px, py) / area
			g := edge(s[0], s[1], px, py) / area
			if f < 0 || g < 0 || f+g > 1 {
				continue
			}

			z := math3d.Barycentric3(s[0], s[1], s[2], f, g).Z
			i := y*r.fb.Width + x
			if z >= r.depth[i] {
				continue
			}
			r.depth[i] = z
			r.fb.SetPixel(x, y, barycentricColor(c, f, g).ToRGBA())
		}
	}
}

// edge is twice the signed area of (a, b, p).
func edge(a, b math3d.Vec3, px, py float32) float32 {
	return (b.X-a.X)*(py-a.Y) - (b.Y-a.Y)*(px-a.X)
}

func barycentricColor(c [3]math3d.Color, f, g float32) math3d.Color {
	rgb := math3d.Barycentric3(
		math3d.V3(c[0].R, c[0].G, c[0].B),
		math3d.V3(c[1].R, c[1].G, c[1].B),
		math3d.V3(c[2].R, c[2].G, c[2].B),
		f, g,
	)
	a := c[0].A + f*(c[1].A-c[0].A) + g*(c[2].A-c[0].A)
	return math3d.NewColor(rgb.X, rgb.Y, rgb.Z, a)
}

// clipPolygon clips a convex polygon against every frustum plane
// (Sutherland-Hodgman). Colors are interpolated along cut edges.
func clipPolygon(f Frustum, in []Vertex) []Vertex {
	out := in
	for _, plane := range f.Planes {
		if len(out) == 0 {
			return nil
		}
		src := out
		out = make([]Vertex, 0, len(src)+1)
		prev := src[len(src)-1]
		dPrev := plane.DotCoord(prev.Position)
		for _, cur := range src {
			dCur := plane.DotCoord(cur.Position)
			if (dPrev < 0) != (dCur < 0) {
				out = append(out, lerpVertex(prev, cur, dPrev/(dPrev-dCur)))
			}
			if dCur >= 0 {
				out = append(out, cur)
			}
			prev, dPrev = cur, dCur
		}
	}
	return out
}

func lerpVertex(a, b Vertex, s float32) Vertex {
	return Vertex{
		Position: a.Position.Lerp(b.Position, s),
		Color:    a.Color.Lerp(b.Color, s),
	}
}

// DrawLine3D draws a world-space segment, skipping pixels that lie behind
// already rasterized surfaces.
func (r *Rasterizer) DrawLine3D(p1, p2 math3d.Vec3, c math3d.Color) {
	p1, p2, ok := clipSegment(r.camera.Frustum(), p1, p2)
	if !ok {
		return
	}

	proj := r.camera.ProjectionMatrix()
	view := r.camera.ViewMatrix()
	world := math3d.Identity()

	s1 := r.camera.Viewport.Project(p1, proj, view, world)
	s2 := r.camera.Viewport.Project(p2, proj, view, world)

	d := s2.Sub(s1)
	steps := int(math32.Ceil(max(math32.Abs(d.X), math32.Abs(d.Y))))
	rgba := c.ToRGBA()
	for i := 0; i <= steps; i++ {
		var t float32
		if steps > 0 {
			t = float32(i) / float32(steps)
		}
		p := s1.Lerp(s2, t)
		x, y := pixel(p.X), pixel(p.Y)
		if p.Z > r.Depth(x, y)+r.DepthBias {
			continue
		}
		r.fb.SetPixel(x, y, rgba)
	}
}

// transformMesh returns the world-space positions and normals of mesh.
func transformMesh(mesh *models.Mesh, world math3d.Mat4) (positions, normals []math3d.Vec3) {
	normalMat := world.Inverse().Transpose()
	positions = make([]math3d.Vec3, len(mesh.Vertices))
	normals = make([]math3d.Vec3, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position.TransformCoord(world)
		normals[i] = v.Normal.TransformNormal(normalMat).Normalize()
	}
	return positions, normals
}

// visible reports whether the mesh bounds placed by world touch the frustum.
func (r *Rasterizer) visible(mesh *models.Mesh, world math3d.Mat4) bool {
	bounds := NewAABB(mesh.Bounds()).Transform(world)
	return r.camera.Frustum().IntersectAABB(bounds)
}

// DrawMesh fills mesh placed by world with base, lit by a light at the
// eye. It returns false without drawing when the mesh is culled.
func (r *Rasterizer) DrawMesh(mesh *models.Mesh, world math3d.Mat4, base math3d.Color) bool {
	if !r.visible(mesh, world) {
		return false
	}

	positions, normals := transformMesh(mesh, world)
	colors := make([]math3d.Color, len(positions))
	for i, p := range positions {
		toEye := r.camera.Eye.Sub(p).Normalize()
		intensity := r.Ambient + (1-r.Ambient)*max(0, normals[i].Dot(toEye))
		colors[i] = base.Modulate(math3d.RGB(intensity, intensity, intensity))
	}

	for _, f := range mesh.Faces {
		var tri Triangle
		for k, vi := range f.V {
			tri.V[k] = Vertex{Position: positions[vi], Color: colors[vi]}
		}
		r.DrawTriangle(tri)
	}
	return true
}

// DrawMeshHidden draws the edges of mesh placed by world, hiding those
// behind its own faces. Faces are filled with fill, usually the background.
func (r *Rasterizer) DrawMeshHidden(mesh *models.Mesh, world math3d.Mat4, fill, line math3d.Color) bool {
	if !r.visible(mesh, world) {
		return false
	}

	positions, _ := transformMesh(mesh, world)
	for _, f := range mesh.Faces {
		r.DrawTriangle(Triangle{V: [3]Vertex{
			{positions[f.V[0]], fill},
			{positions[f.V[1]], fill},
			{positions[f.V[2]], fill},
		}})
	}
	for _, e := range mesh.Edges() {
		r.DrawLine3D(positions[e[0]], positions[e[1]], line)
	}
	return true
}
