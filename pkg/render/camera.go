package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/dxmath/pkg/math3d"
)

// Handedness selects which family of view and projection builders the
// camera uses.
type Handedness int

const (
	// LeftHanded looks down +Z (the Direct3D default).
	LeftHanded Handedness = iota
	// RightHanded looks down -Z.
	RightHanded
)

func (h Handedness) String() string {
	if h == RightHanded {
		return "rh"
	}
	return "lh"
}

// Camera is a look-at camera with a perspective projection onto a
// viewport.
type Camera struct {
	Eye    math3d.Vec3
	Target math3d.Vec3
	Up     math3d.Vec3

	// Projection parameters
	FOV        float32 // Vertical field of view in radians
	Near       float32
	Far        float32
	Handedness Handedness

	Viewport math3d.Viewport

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	frustum        Frustum
	viewDirty      bool
	projDirty      bool
}

// NewCamera creates a left-handed camera ten units behind the origin,
// rendering into a width x height viewport.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Eye:       math3d.V3(0, 0, -10),
		Target:    math3d.Zero3(),
		Up:        math3d.Up(),
		FOV:       math32.Pi / 3, // 60 degrees
		Near:      0.1,
		Far:       1000,
		Viewport:  math3d.NewViewport(0, 0, uint32(width), uint32(height), 0, 1),
		viewDirty: true,
		projDirty: true,
	}
}

// SetEye moves the camera without changing what it looks at.
func (c *Camera) SetEye(eye math3d.Vec3) {
	c.Eye = eye
	c.viewDirty = true
}

// SetTarget sets the point the camera looks at.
func (c *Camera) SetTarget(target math3d.Vec3) {
	c.Target = target
	c.viewDirty = true
}

// SetUp sets the up hint used to orient the view.
func (c *Camera) SetUp(up math3d.Vec3) {
	c.Up = up
	c.viewDirty = true
}

// SetFOV sets the vertical field of view (in radians).
func (c *Camera) SetFOV(fov float32) {
	c.FOV = fov
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// SetHandedness switches between the left- and right-handed builders.
func (c *Camera) SetHandedness(h Handedness) {
	c.Handedness = h
	c.viewDirty = true
	c.projDirty = true
}

// SetViewport sets the screen rectangle; the aspect ratio follows it.
func (c *Camera) SetViewport(vp math3d.Viewport) {
	c.Viewport = vp
	c.projDirty = true
}

// Resize is SetViewport for a full-screen viewport of the given size.
func (c *Camera) Resize(width, height int) {
	c.SetViewport(math3d.NewViewport(0, 0, uint32(width), uint32(height), c.Viewport.MinZ, c.Viewport.MaxZ))
}

// Forward returns the unit viewing direction.
func (c *Camera) Forward() math3d.Vec3 {
	return c.Target.Sub(c.Eye).Normalize()
}

// Right returns the unit vector pointing to the right of the screen in
// world space.
func (c *Camera) Right() math3d.Vec3 {
	return c.ViewMatrix().Col(0).Vec3()
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	c.update()
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	c.update()
	return c.projMatrix
}

// ViewProjectionMatrix returns View * Projection.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	c.update()
	return c.viewProjMatrix
}

func (c *Camera) update() {
	if !c.viewDirty && !c.projDirty {
		return
	}

	if c.viewDirty {
		if c.Handedness == RightHanded {
			c.viewMatrix = math3d.LookAtRH(c.Eye, c.Target, c.Up)
		} else {
			c.viewMatrix = math3d.LookAtLH(c.Eye, c.Target, c.Up)
		}
		c.viewDirty = false
	}

	if c.projDirty {
		aspect := c.Viewport.Aspect()
		if c.Handedness == RightHanded {
			c.projMatrix = math3d.PerspectiveFovRH(c.FOV, aspect, c.Near, c.Far)
		} else {
			c.projMatrix = math3d.PerspectiveFovLH(c.FOV, aspect, c.Near, c.Far)
		}
		c.projDirty = false
	}

	c.viewProjMatrix = c.viewMatrix.Mul(c.projMatrix)
	c.frustum = NewFrustumFromMatrix(c.viewProjMatrix)
}

// Frustum returns the current view frustum in world space.
func (c *Camera) Frustum() Frustum {
	c.update()
	return c.frustum
}

// MoveForward moves eye and target along the viewing direction.
func (c *Camera) MoveForward(distance float32) {
	d := c.Forward().Scale(distance)
	c.Eye = c.Eye.Add(d)
	c.Target = c.Target.Add(d)
	c.viewDirty = true
}

// MoveRight moves eye and target sideways.
func (c *Camera) MoveRight(distance float32) {
	d := c.Right().Scale(distance)
	c.Eye = c.Eye.Add(d)
	c.Target = c.Target.Add(d)
	c.viewDirty = true
}

// Orbit places the eye at distance from the target. At yaw = pitch = 0 the
// camera sits on the side of the target it looks into the scene from:
// -Z for a left-handed camera, +Z for a right-handed one. Positive pitch
// raises the eye.
func (c *Camera) Orbit(yaw, pitch, distance float32) {
	// Pitch is limited to avoid flipping over the poles.
	const maxPitch = math32.Pi/2 - 0.01
	pitch = math3d.Clamp(pitch, -maxPitch, maxPitch)

	back := math3d.V3(0, 0, -distance)
	if c.Handedness == RightHanded {
		back = math3d.V3(0, 0, distance)
		pitch = -pitch
	}

	offset := back.TransformNormal(math3d.RotationYawPitchRoll(yaw, pitch, 0))
	c.Eye = c.Target.Add(offset)
	c.viewDirty = true
}

// WorldToScreen projects a world point into viewport pixels. The returned
// Z is the viewport depth. visible is false for points behind the camera
// or outside the view volume.
func (c *Camera) WorldToScreen(p math3d.Vec3) (screen math3d.Vec3, visible bool) {
	if p.Transform(c.ViewProjectionMatrix()).W <= 0 {
		return math3d.Vec3{}, false
	}

	screen = c.Viewport.Project(p, c.ProjectionMatrix(), c.ViewMatrix(), math3d.Identity())

	vp := c.Viewport
	visible = screen.X >= float32(vp.X) && screen.X <= float32(vp.X+vp.W) &&
		screen.Y >= float32(vp.Y) && screen.Y <= float32(vp.Y+vp.H) &&
		screen.Z >= vp.MinZ && screen.Z <= vp.MaxZ
	return screen, visible
}

// ScreenToWorld maps viewport pixel (x, y) at viewport depth z back into
// world space.
func (c *Camera) ScreenToWorld(x, y, z float32) math3d.Vec3 {
	return c.Viewport.Unproject(math3d.V3(x, y, z), c.ProjectionMatrix(), c.ViewMatrix(), math3d.Identity())
}

// PickRay returns the world-space ray through viewport pixel (x, y),
// starting on the near plane.
func (c *Camera) PickRay(x, y float32) (origin, dir math3d.Vec3) {
	origin = c.ScreenToWorld(x, y, c.Viewport.MinZ)
	far := c.ScreenToWorld(x, y, c.Viewport.MaxZ)
	return origin, far.Sub(origin).Normalize()
}
