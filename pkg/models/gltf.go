package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/dxmath/pkg/math3d"
)

// ErrNodeCycle is returned for documents whose node hierarchy is not a tree.
var ErrNodeCycle = errors.New("node hierarchy contains a cycle")

// GLTFLoader loads GLTF/GLB files into a single Mesh with every node
// transform already applied.
type GLTFLoader struct {
	// LeftHanded mirrors Z so the right-handed glTF scene keeps its
	// appearance under left-handed view and projection matrices.
	LeftHanded bool
	// CalculateNormals fills in smooth normals when the file has none.
	CalculateNormals bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		LeftHanded:       true,
		CalculateNormals: true,
	}
}

// LoadGLB loads a GLTF or GLB file with the default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := l.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// FromDocument flattens the document's default scene into one mesh.
// Documents without nodes contribute every mesh untransformed.
func (l *GLTFLoader) FromDocument(doc *gltf.Document) (*Mesh, error) {
	b := &meshBuilder{doc: doc, mesh: NewMesh(""), hasNormals: true}

	root := math3d.Identity()
	if l.LeftHanded {
		root = math3d.Scaling(1, 1, -1)
	}

	if len(doc.Nodes) == 0 {
		for i := range doc.Meshes {
			if err := b.addMesh(i, root); err != nil {
				return nil, err
			}
		}
	} else {
		visiting := make(map[int]bool)
		for _, n := range rootNodes(doc) {
			if err := b.addNode(n, root, visiting); err != nil {
				return nil, err
			}
		}
	}

	if l.CalculateNormals && !b.hasNormals {
		b.mesh.CalculateSmoothNormals()
	}
	b.mesh.CalculateBounds()

	return b.mesh, nil
}

// rootNodes returns the nodes of the default scene, falling back to the
// first scene and then to every node that is nobody's child.
func rootNodes(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	if len(doc.Scenes) > 0 {
		return doc.Scenes[0].Nodes
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}

	var roots []int
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots
}

type meshBuilder struct {
	doc        *gltf.Document
	mesh       *Mesh
	hasNormals bool
}

func (b *meshBuilder) addNode(idx int, parent math3d.Mat4, visiting map[int]bool) error {
	if idx < 0 || idx >= len(b.doc.Nodes) {
		return fmt.Errorf("node %d out of range", idx)
	}
	if visiting[idx] {
		return fmt.Errorf("node %d: %w", idx, ErrNodeCycle)
	}
	visiting[idx] = true
	defer delete(visiting, idx)

	node := b.doc.Nodes[idx]
	world := NodeTransform(node).Mul(parent)

	if node.Mesh != nil {
		if err := b.addMesh(*node.Mesh, world); err != nil {
			return fmt.Errorf("node %q: %w", node.Name, err)
		}
	}

	for _, child := range node.Children {
		if err := b.addNode(child, world, visiting); err != nil {
			return err
		}
	}
	return nil
}

func (b *meshBuilder) addMesh(idx int, world math3d.Mat4) error {
	if idx < 0 || idx >= len(b.doc.Meshes) {
		return fmt.Errorf("mesh %d out of range", idx)
	}
	m := b.doc.Meshes[idx]

	normalMat := world.Inverse().Transpose()
	// A mirroring transform turns the winding inside out.
	flip := world.Determinant() < 0

	for i, prim := range m.Primitives {
		if err := b.addPrimitive(prim, world, normalMat, flip); err != nil {
			return fmt.Errorf("mesh %q primitive %d: %w", m.Name, i, err)
		}
	}
	return nil
}

func (b *meshBuilder) addPrimitive(prim *gltf.Primitive, world, normalMat math3d.Mat4, flip bool) error {
	switch prim.Mode {
	case gltf.PrimitiveTriangles, gltf.PrimitiveTriangleStrip, gltf.PrimitiveTriangleFan:
	default:
		// Skip non-triangle primitives (lines, points, etc)
		return nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := modeler.ReadPosition(b.doc, b.accessor(posIdx), nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(b.doc, b.accessor(normIdx), nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}
	if len(normals) < len(positions) {
		b.hasNormals = false
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(b.doc, b.accessor(*prim.Indices), nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	base := len(b.mesh.Vertices)
	for i, p := range positions {
		v := Vertex{Position: math3d.V3(p[0], p[1], p[2]).TransformCoord(world)}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math3d.V3(n[0], n[1], n[2]).TransformNormal(normalMat).Normalize()
		}
		b.mesh.Vertices = append(b.mesh.Vertices, v)
	}

	for _, tri := range triangulate(prim.Mode, indices) {
		for _, vi := range tri {
			if int(vi) >= len(positions) {
				return fmt.Errorf("index %d out of range for %d vertices", vi, len(positions))
			}
		}
		if flip {
			tri[1], tri[2] = tri[2], tri[1]
		}
		b.mesh.Faces = append(b.mesh.Faces, Face{V: [3]int{
			base + int(tri[0]),
			base + int(tri[1]),
			base + int(tri[2]),
		}})
	}
	return nil
}

func (b *meshBuilder) accessor(idx int) *gltf.Accessor {
	if idx < 0 || idx >= len(b.doc.Accessors) {
		return nil
	}
	return b.doc.Accessors[idx]
}

// triangulate expands strips and fans into a triangle list with a
// consistent winding.
func triangulate(mode gltf.PrimitiveMode, idx []uint32) [][3]uint32 {
	var tris [][3]uint32
	switch mode {
	case gltf.PrimitiveTriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				tris = append(tris, [3]uint32{idx[i], idx[i+1], idx[i+2]})
			} else {
				tris = append(tris, [3]uint32{idx[i+1], idx[i], idx[i+2]})
			}
		}
	case gltf.PrimitiveTriangleFan:
		for i := 1; i+1 < len(idx); i++ {
			tris = append(tris, [3]uint32{idx[0], idx[i], idx[i+1]})
		}
	default:
		for i := 0; i+2 < len(idx); i += 3 {
			tris = append(tris, [3]uint32{idx[i], idx[i+1], idx[i+2]})
		}
	}
	return tris
}

// NodeTransform returns the node's local transform. glTF stores column-major
// matrices for column vectors, which is element for element the row-major
// row-vector layout of math3d.Mat4. A node carries either a matrix or
// translation, rotation and scale; zero values mean "unset".
func NodeTransform(n *gltf.Node) math3d.Mat4 {
	var zero [16]float64
	if n.Matrix != zero && n.Matrix != gltf.DefaultMatrix {
		var m math3d.Mat4
		for i, v := range n.Matrix {
			m[i] = float32(v)
		}
		return m
	}

	s := math3d.Identity()
	if n.Scale != [3]float64{} {
		s = math3d.Scaling(float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2]))
	}

	r := QuatRotation(
		float32(n.Rotation[0]), float32(n.Rotation[1]),
		float32(n.Rotation[2]), float32(n.Rotation[3]),
	)

	t := math3d.Translation(
		float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2]),
	)

	return s.Mul(r).Mul(t)
}

// QuatRotation converts the unit quaternion (x, y, z, w) to a rotation
// matrix through its axis and angle. The quaternion is normalized first;
// a zero or identity quaternion yields the identity.
func QuatRotation(x, y, z, w float32) math3d.Mat4 {
	l := math32.Sqrt(x*x + y*y + z*z + w*w)
	if l == 0 {
		return math3d.Identity()
	}
	x, y, z, w = x/l, y/l, z/l, w/l

	s := math32.Sqrt(1 - math3d.Clamp(w*w, 0, 1))
	if s < 1e-6 {
		return math3d.Identity()
	}

	angle := 2 * math32.Acos(math3d.Clamp(w, -1, 1))
	return math3d.RotationAxis(math3d.V3(x/s, y/s, z/s), angle)
}
