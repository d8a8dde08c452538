// wireview - Terminal Wireframe Viewer
// View GLB/GLTF meshes as wireframes, hidden-line drawings or shaded
// solids in your terminal.
//
// Controls:
//
//	Mouse drag  - Orbit the camera (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll the model
//	Space       - Apply random impulse
//	R           - Reset view
//	H           - Toggle left/right-handed matrices
//	N           - Toggle vertex normals
//	B           - Toggle bounding box
//	G           - Toggle grid and axes
//	X           - Cycle wire, hidden-line and solid modes
//	?           - Toggle HUD overlay
//	+/-         - Adjust zoom
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/chewxy/math32"
	"github.com/taigrr/dxmath/pkg/math3d"
	"github.com/taigrr/dxmath/pkg/models"
	"github.com/taigrr/dxmath/pkg/render"
)

var (
	targetFPS   = flag.Int("fps", 60, "Target FPS")
	bgColor     = flag.String("bg", "30,30,40", "Background color (R,G,B)")
	fgColor     = flag.String("fg", "0,255,128", "Wireframe color (R,G,B)")
	rightHanded = flag.Bool("rh", false, "Use right-handed view and projection matrices")
	fovDeg      = flag.Float64("fov", 60, "Vertical field of view in degrees")
	showNormals = flag.Bool("normals", false, "Draw vertex normals")
	snapshot    = flag.String("snapshot", "", "Render one frame to this PNG file and exit")
	snapSize    = flag.String("size", "320x240", "Snapshot size (WxH)")
	renderMode  = flag.String("mode", "wire", "Render mode: wire, hidden or solid")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wireview - Terminal Wireframe Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wireview [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model a unit cube is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll model\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  H           - Toggle handedness\n")
		fmt.Fprintf(os.Stderr, "  N/B/G       - Toggle normals, bounds, grid\n")
		fmt.Fprintf(os.Stderr, "  X           - Cycle render mode\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelPath string) error {
	if *targetFPS <= 0 {
		return fmt.Errorf("invalid -fps %d", *targetFPS)
	}
	mode, err := parseRenderMode(*renderMode)
	if err != nil {
		return err
	}
	bg, err := parseColor(*bgColor)
	if err != nil {
		return fmt.Errorf("parse -bg: %w", err)
	}
	fg, err := parseColor(*fgColor)
	if err != nil {
		return fmt.Errorf("parse -fg: %w", err)
	}

	mesh, err := loadMesh(modelPath, *rightHanded)
	if err != nil {
		return err
	}

	view := NewViewState()
	view.Background = bg
	view.Foreground = fg
	view.ShowNormals = *showNormals
	view.Mode = mode
	if *rightHanded {
		view.Handedness = render.RightHanded
	}

	if *snapshot != "" {
		var w, h int
		if _, err := fmt.Sscanf(*snapSize, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			return fmt.Errorf("invalid -size %q", *snapSize)
		}
		return saveSnapshot(mesh, view, *snapshot, w, h)
	}

	return runInteractive(mesh, view)
}

// loadMesh loads modelPath, or returns a cube when it is empty, scaled to
// fit a 2 unit box around the origin.
func loadMesh(modelPath string, rightHanded bool) (*models.Mesh, error) {
	var mesh *models.Mesh
	if modelPath == "" {
		mesh = models.NewCube(2)
	} else {
		loader := models.NewGLTFLoader()
		loader.LeftHanded = !rightHanded
		m, err := loader.Load(modelPath)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		mesh = m
	}
	mesh.Normalize(2)
	return mesh, nil
}

func parseColor(s string) (math3d.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return math3d.Color{}, err
	}
	return math3d.ColorFromRGBA(color.RGBA{r, g, b, 255}), nil
}

// RenderMode selects how the mesh is drawn.
type RenderMode int

const (
	ModeWire   RenderMode = iota // every triangle edge
	ModeHidden                   // edges not hidden by the mesh's own faces
	ModeSolid                    // filled, lit from the eye
)

var renderModeNames = [...]string{"wire", "hidden", "solid"}

func (m RenderMode) String() string {
	return renderModeNames[m]
}

// Next returns the mode after m, wrapping around.
func (m RenderMode) Next() RenderMode {
	return (m + 1) % RenderMode(len(renderModeNames))
}

func parseRenderMode(s string) (RenderMode, error) {
	for i, name := range renderModeNames {
		if s == name {
			return RenderMode(i), nil
		}
	}
	return ModeWire, fmt.Errorf("invalid -mode %q", s)
}

// Scene owns the camera, framebuffer and renderers for one view.
type Scene struct {
	Mesh   *models.Mesh
	Camera *render.Camera
	FB     *render.Framebuffer
	wire   *render.Wireframe
	raster *render.Rasterizer
}

// NewScene creates a scene rendering into a width x height framebuffer.
func NewScene(mesh *models.Mesh, width, height int) *Scene {
	s := &Scene{Mesh: mesh, Camera: render.NewCamera(width, height)}
	s.Resize(width, height)
	return s
}

// Resize replaces the framebuffer and updates the camera viewport.
func (s *Scene) Resize(width, height int) {
	s.FB = render.NewFramebuffer(width, height)
	s.Camera.Resize(width, height)
	s.wire = render.NewWireframe(s.Camera, s.FB)
	s.raster = render.NewRasterizer(s.Camera, s.FB)
}

// Render draws one frame and reports whether the mesh survived culling.
func (s *Scene) Render(ctl *OrbitControl, view *ViewState) bool {
	cam := s.Camera
	cam.SetHandedness(view.Handedness)
	cam.SetFOV(math3d.DegToRad(view.FOV))
	cam.SetClipPlanes(0.1, 100)
	cam.Orbit(float32(ctl.Yaw.Angle), float32(ctl.Pitch.Angle), float32(ctl.Distance))

	world := math3d.RotationZ(float32(ctl.Roll.Angle))

	s.FB.Clear(view.Background)

	if view.ShowGrid {
		s.wire.DrawGrid(4, 0.5, render.ColorGray)
		s.wire.DrawAxes(1.5)
	}

	var visible bool
	switch view.Mode {
	case ModeHidden:
		s.raster.ClearDepth()
		visible = s.raster.DrawMeshHidden(s.Mesh, world, view.Background, view.Foreground)
	case ModeSolid:
		s.raster.ClearDepth()
		visible = s.raster.DrawMesh(s.Mesh, world, view.Foreground)
	default:
		visible = s.wire.DrawMesh(s.Mesh, world, view.Foreground)
	}

	if view.ShowBounds {
		s.wire.DrawBox(render.NewAABB(s.Mesh.Bounds()), world, render.ColorYellow)
	}
	if view.ShowNormals && visible {
		s.wire.DrawNormals(s.Mesh, world, 0.2, render.ColorMagenta)
	}
	return visible
}

func saveSnapshot(mesh *models.Mesh, view *ViewState, path string, width, height int) error {
	scene := NewScene(mesh, width, height)
	ctl := NewOrbitControl(*targetFPS, float64(view.Distance))
	ctl.Yaw.Angle = 0.6
	ctl.Pitch.Angle = 0.4
	scene.Render(ctl, view)
	if err := scene.FB.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func runInteractive(mesh *models.Mesh, view *ViewState) error {
	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	fbWidth, fbHeight := render.FramebufferSize(width, height)
	scene := NewScene(mesh, fbWidth, fbHeight)
	hud := NewHUD(filepath.Base(mesh.Name), mesh.TriangleCount())
	orbit := NewOrbitControl(*targetFPS, float64(view.Distance))

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	input := &InputState{}

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()
	events := term.Events()

	for {
		// Drain pending input before drawing the frame.
	drain:
		for {
			select {
			case <-ctx.Done():
				cleanup()
				return nil
			case ev, ok := <-events:
				if !ok {
					// Input closed; keep rendering until a signal arrives.
					events = nil
					continue
				}
				if sz, ok := ev.(uv.WindowSizeEvent); ok {
					width, height = sz.Width, sz.Height
					term.Erase()
					term.Resize(width, height)
					scene.Resize(render.FramebufferSize(width, height))
					continue
				}
				if quit := input.Handle(ev, orbit, view); quit {
					cancel()
				}
			default:
				break drain
			}
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		input.Apply(orbit, dt)

		// Update springs (harmonica handles timing internally)
		orbit.Update(float64(view.Distance))

		hud.Visible = scene.Render(orbit, view)
		scene.FB.Draw(term, term.Bounds())
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, view, scene.Camera, input)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// InputState accumulates keyboard torque and mouse drag state between
// frames.
type InputState struct {
	pitch, yaw, roll float64

	mouseDown              bool
	lastMouseX, lastMouseY int
	// Last pointer position in terminal cells
	MouseX, MouseY int
}

const torqueStrength = 3.0

// Handle applies one terminal event. It returns true when the user asked
// to quit.
func (in *InputState) Handle(ev uv.Event, rot *OrbitControl, view *ViewState) bool {
	switch ev := ev.(type) {
	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "ctrl+c"):
			return true
		case ev.MatchString("q"):
			in.roll = -torqueStrength
		case ev.MatchString("e"):
			in.roll = torqueStrength
		case ev.MatchString("r"):
			rot.Reset()
			view.Distance = defaultDistance
		case ev.MatchString("w", "up"):
			in.pitch = torqueStrength
		case ev.MatchString("s", "down"):
			in.pitch = -torqueStrength
		case ev.MatchString("a", "left"):
			in.yaw = -torqueStrength
		case ev.MatchString("d", "right"):
			in.yaw = torqueStrength
		case ev.MatchString("space"):
			rot.ApplyImpulse(
				(rand.Float64()-0.5)*1.5,
				(rand.Float64()-0.5)*1.5,
				(rand.Float64()-0.5)*1.5,
			)
		case ev.MatchString("+", "="):
			view.Zoom(-0.5)
		case ev.MatchString("-", "_"):
			view.Zoom(0.5)
		case ev.MatchString("h"):
			if view.Handedness == render.LeftHanded {
				view.Handedness = render.RightHanded
			} else {
				view.Handedness = render.LeftHanded
			}
		case ev.MatchString("n"):
			view.ShowNormals = !view.ShowNormals
		case ev.MatchString("b"):
			view.ShowBounds = !view.ShowBounds
		case ev.MatchString("g"):
			view.ShowGrid = !view.ShowGrid
		case ev.MatchString("x"):
			view.Mode = view.Mode.Next()
		case ev.MatchString("?"), ev.MatchString("shift+/"):
			view.ShowHUD = !view.ShowHUD
		}

	case uv.KeyReleaseEvent:
		switch {
		case ev.MatchString("w", "up", "s", "down"):
			in.pitch = 0
		case ev.MatchString("a", "left", "d", "right"):
			in.yaw = 0
		case ev.MatchString("q", "e"):
			in.roll = 0
		}

	case uv.MouseClickEvent:
		in.mouseDown = true
		in.lastMouseX, in.lastMouseY = ev.X, ev.Y

	case uv.MouseReleaseEvent:
		in.mouseDown = false

	case uv.MouseMotionEvent:
		in.MouseX, in.MouseY = ev.X, ev.Y
		if in.mouseDown {
			dx := ev.X - in.lastMouseX
			dy := ev.Y - in.lastMouseY
			rot.ApplyImpulse(float64(dy)*0.03, float64(dx)*0.03, 0)
			in.lastMouseX, in.lastMouseY = ev.X, ev.Y
		}

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			view.Zoom(-0.5)
		case uv.MouseWheelDown:
			view.Zoom(0.5)
		}
	}
	return false
}

// Apply feeds held-key torque into the rotation and decays it (key release
// events are unreliable).
func (in *InputState) Apply(rot *OrbitControl, dt float64) {
	rot.ApplyImpulse(in.pitch*dt, in.yaw*dt, in.roll*dt)
	in.pitch *= 0.9
	in.yaw *= 0.9
	in.roll *= 0.9
}

const (
	defaultDistance = 5
	minDistance     = 1.5
	maxDistance     = 20
)

// ViewState holds all view-related settings (UI state, not library code)
type ViewState struct {
	Handedness render.Handedness
	Mode       RenderMode
	FOV        float32 // degrees
	Distance   float32

	Background math3d.Color
	Foreground math3d.Color

	ShowNormals bool
	ShowBounds  bool
	ShowGrid    bool
	ShowHUD     bool
}

// NewViewState creates default view state
func NewViewState() *ViewState {
	return &ViewState{
		FOV:        float32(*fovDeg),
		Distance:   defaultDistance,
		Background: math3d.RGB(0.12, 0.12, 0.16),
		Foreground: math3d.RGB(0, 1, 0.5),
		ShowGrid:   true,
	}
}

// Zoom moves the camera towards or away from the model.
func (v *ViewState) Zoom(delta float32) {
	v.Distance = math3d.Clamp(v.Distance+delta, minDistance, maxDistance)
}

// HUD renders an overlay with model info and controls
type HUD struct {
	filename  string
	polyCount int
	fps       float64
	fpsFrames int
	fpsTime   time.Time

	// Visible is false while the mesh is culled.
	Visible bool
}

// NewHUD creates a new HUD
func NewHUD(filename string, polyCount int) *HUD {
	return &HUD{
		filename:  filename,
		polyCount: polyCount,
		fpsTime:   time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, view *ViewState, cam *render.Camera, in *InputState) {
	// ANSI escape codes for positioning and styling
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	// Helper to position cursor
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !view.ShowHUD {
		return
	}

	// Top left: FPS
	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	// Top middle: filename
	titleStr := fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.filename, reset)
	titleCol := max((width-len(h.filename)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + titleStr)

	// Top right: polygon count
	polyStr := fmt.Sprintf("%s%s%s %d tris %s", bgBlack, fgCyan, bold, h.polyCount, reset)
	polyCol := max(width-12, 1)
	fmt.Print(moveTo(1, polyCol) + polyStr)

	// Bottom left: matrices in use
	culled := ""
	if !h.Visible {
		culled = " (culled)"
	}
	modeStr := fmt.Sprintf("%s%s %s %s fov %.0f° dist %.1f%s %s",
		bgBlack, fgWhite, view.Mode, view.Handedness, view.FOV, view.Distance, culled, reset)
	fmt.Print(moveTo(height, 1) + modeStr)

	// Bottom right: pick ray under the pointer, where it meets the y=0 plane
	hit, ok := groundHit(cam, in.MouseX, in.MouseY*2)
	hint := fmt.Sprintf("%s%s%s no ground hit %s", bgBlack, dim, fgYellow, reset)
	if ok {
		hint = fmt.Sprintf("%s%s%s (%.2f, %.2f) %s", bgBlack, dim, fgYellow, hit.X, hit.Z, reset)
	}
	hintCol := max(width-22, 1)
	fmt.Print(moveTo(height, hintCol) + hint)
}

// groundHit intersects the pick ray through framebuffer pixel (x, y) with
// the y=0 plane.
func groundHit(cam *render.Camera, x, y int) (math3d.Vec3, bool) {
	origin, dir := cam.PickRay(float32(x)+0.5, float32(y)+0.5)
	if math32.Abs(dir.Y) < 1e-6 {
		return math3d.Vec3{}, false
	}
	ground := math3d.PlaneFromPointNormal(math3d.Zero3(), math3d.Up())
	far := origin.Add(dir.Scale(cam.Far))
	if ground.DotCoord(origin)*ground.DotCoord(far) > 0 {
		return math3d.Vec3{}, false
	}
	return ground.IntersectLine(origin, far), true
}
