// Package models provides triangle meshes and glTF loading into math3d
// types.
package models

import (
	"github.com/taigrr/dxmath/pkg/math3d"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Vertex holds the per-vertex attributes.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
}

// Face is a triangle as three indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// NewCube creates an axis-aligned cube of edge length size centered on the
// origin, wound clockwise when viewed from outside (front-facing for a
// left-handed camera).
func NewCube(size float32) *Mesh {
	h := size / 2
	m := NewMesh("cube")

	// Corner i has +X when bit 0 is set, +Y for bit 1, +Z for bit 2.
	for i := range 8 {
		p := math3d.V3(-h, -h, -h)
		if i&1 != 0 {
			p.X = h
		}
		if i&2 != 0 {
			p.Y = h
		}
		if i&4 != 0 {
			p.Z = h
		}
		m.Vertices = append(m.Vertices, Vertex{Position: p})
	}

	quads := [6][4]int{
		{0, 2, 3, 1}, // -Z
		{4, 5, 7, 6}, // +Z
		{0, 4, 6, 2}, // -X
		{1, 3, 7, 5}, // +X
		{0, 1, 5, 4}, // -Y
		{2, 6, 7, 3}, // +Y
	}
	for _, q := range quads {
		m.Faces = append(m.Faces,
			Face{V: [3]int{q[0], q[1], q[2]}},
			Face{V: [3]int{q[0], q[2], q[3]}},
		)
	}

	m.CalculateSmoothNormals()
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Bounds returns the axis-aligned bounding box.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateSmoothNormals sets every vertex normal to the normalized sum of
// the normals of the faces that share it. Larger faces weigh more.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	for _, f := range m.Faces {
		p := math3d.PlaneFromPoints(
			m.Vertices[f.V[0]].Position,
			m.Vertices[f.V[1]].Position,
			m.Vertices[f.V[2]].Position,
		)
		n := p.Normal()
		for _, vi := range f.V {
			m.Vertices[vi].Normal = m.Vertices[vi].Normal.Add(n)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Transform applies a transformation matrix to all vertices. Normals are
// transformed by the inverse transpose so they stay perpendicular under
// non-uniform scaling.
func (m *Mesh) Transform(mat math3d.Mat4) {
	normalMat := mat.Inverse().Transpose()
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = v.Position.TransformCoord(mat)
		v.Normal = v.Normal.TransformNormal(normalMat).Normalize()
	}
	m.CalculateBounds()
}

// Normalize centers the mesh on the origin and scales it uniformly so its
// largest dimension is size.
func (m *Mesh) Normalize(size float32) {
	m.CalculateBounds()
	dims := m.Size()
	maxDim := max(dims.X, dims.Y, dims.Z)
	if maxDim == 0 {
		return
	}
	s := size / maxDim
	m.Transform(math3d.TranslationV(m.Center().Negate()).Mul(math3d.Scaling(s, s, s)))
}

// Edges returns every undirected triangle edge once, in order of first
// appearance, as pairs of vertex indices with the smaller index first.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(m.Faces)*3/2)
	edges := make([][2]int, 0, len(m.Faces)*3/2)

	for _, f := range m.Faces {
		for k := range 3 {
			a, b := f.V[k], f.V[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]Vertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
