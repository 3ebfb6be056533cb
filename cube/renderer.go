// Package cube renders a single colored cube into a GL ES 2 context.
//
// A Renderer carries all of the state for one surface.  The host creates it,
// forwards window and pointer events to it and calls Init, RenderFrame and
// Terminate from the goroutine that owns the GL context.  A Renderer is not
// safe for concurrent use.
package cube

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/bmatsuo/mobile-gl-cube/mat4"

	"golang.org/x/mobile/gl"
)

var (
	// ErrNotInitialized is returned by RenderFrame when Init has not
	// succeeded since the last Terminate.
	ErrNotInitialized = errors.New("cube: render pipeline not initialized")

	// ErrNoSurface is returned by Init when the window size is unknown.
	ErrNoSurface = errors.New("cube: window size not set")
)

// Depth range of the orthographic view.
const (
	viewNear = -1
	viewFar  = 100
)

// State is a stage in the life of a Renderer.
type State int

const (
	Uninitialized State = iota
	Initialized
	Rendering
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Rendering:
		return "rendering"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Point is a pair of coordinates, pixels or degrees depending on use.
type Point struct {
	X, Y float32
}

// Renderer draws the cube and tracks the interaction state that orients it.
type Renderer struct {
	cfg   Config
	glctx gl.Context
	state State

	model mat4.Matrix
	view  mat4.Matrix
	mvp   mat4.Matrix

	anglePoint  Point
	curPoint    Point
	prevPoint   Point
	pointerDown bool

	width          int
	height         int
	windowRotation int

	shaders      shaderProgram
	vertexBuffer gl.Buffer
	mvpUniform   gl.Uniform
}

// NewRenderer returns an uninitialized Renderer using cfg.
func NewRenderer(cfg Config) *Renderer {
	r := &Renderer{cfg: cfg}
	r.model.Identity()
	r.view.Identity()
	r.mvp.Identity()
	return r
}

// State returns the current stage of r.
func (r *Renderer) State() State {
	return r.state
}

// Config returns the configuration r was created with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Init compiles the shader program, uploads the cube and computes the view
// projection from the current window size.  Any GL objects left by an
// earlier Init are released first.  On failure nothing created by Init
// remains and r is left uninitialized.
func (r *Renderer) Init(glctx gl.Context) (err error) {
	r.release()
	r.glctx = glctx
	r.state = Uninitialized

	defer func() {
		if err != nil {
			r.release()
			err = fmt.Errorf("cube: render pipeline failed to initialize: %w", err)
		}
	}()

	if r.width <= 0 || r.height <= 0 {
		return ErrNoSurface
	}

	r.anglePoint = Point{X: r.cfg.InitialAngleX, Y: r.cfg.InitialAngleY}

	r.shaders, err = compileAndLink(glctx, vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	r.mvpUniform = glctx.GetUniformLocation(r.shaders.program, mvpUniformName)

	r.view.Identity()
	r.vertexBuffer = uploadStaticMesh(glctx, cubeVertexData)

	err = r.UpdateProjection()
	if err != nil {
		return err
	}

	glctx.Enable(gl.DEPTH_TEST)

	r.state = Initialized
	glog.Infof("[cube]initialized %dx%d", r.width, r.height)
	glog.V(1).Infof("[cube]view = %v", &r.view)
	return nil
}

// UpdateProjection recomputes the view from the current window size so that
// the wider axis spans [-aspect, aspect] and the narrower [-1, 1].  Init calls
// it; hosts whose surface changes shape afterwards call it again.
func (r *Renderer) UpdateProjection() error {
	if r.width <= 0 || r.height <= 0 {
		return ErrNoSurface
	}
	w, h := float32(r.width), float32(r.height)
	if r.width > r.height {
		aspect := w / h
		return r.view.Ortho(-aspect, aspect, -1, 1, viewNear, viewFar)
	}
	aspect := h / w
	return r.view.Ortho(-1, 1, -aspect, aspect, viewNear, viewFar)
}

// RenderFrame draws one frame.  It returns ErrNotInitialized, without
// touching the context, unless Init has succeeded.
func (r *Renderer) RenderFrame() error {
	switch r.state {
	case Uninitialized, Terminated:
		return ErrNotInitialized
	case Initialized:
		r.state = Rendering
	}
	glctx := r.glctx

	x, y, w, h := r.Viewport()
	glctx.Viewport(x, y, w, h)

	cr, cg, cb, ca := rgba(r.cfg.Background)
	glctx.ClearColor(cr, cg, cb, ca)
	glctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.model.Identity()
	r.model.RotateXYZ(r.anglePoint.X, r.anglePoint.Y, float32(r.windowRotation))
	r.mvp.Mul(&r.view, &r.model)

	glctx.UseProgram(r.shaders.program)

	glctx.BindBuffer(gl.ARRAY_BUFFER, r.vertexBuffer)
	glctx.VertexAttribPointer(positionAttrib, coordsPerVertex, gl.FLOAT, false, vertexStride, 0)
	glctx.EnableVertexAttribArray(positionAttrib)
	glctx.VertexAttribPointer(colorAttrib, colorsPerVertex, gl.FLOAT, false, vertexStride, colorOffset)
	glctx.EnableVertexAttribArray(colorAttrib)

	glctx.UniformMatrix4fv(r.mvpUniform, r.mvp[:])

	glctx.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount)

	glctx.DisableVertexAttribArray(positionAttrib)
	glctx.DisableVertexAttribArray(colorAttrib)
	return nil
}

// Terminate releases the shaders, program and vertex buffer.  It is safe to
// call more than once.
func (r *Renderer) Terminate() {
	if r.state == Uninitialized && r.glctx == nil {
		return
	}
	r.release()
	r.state = Terminated
	glog.Infof("[cube]terminated")
}

func (r *Renderer) release() {
	if r.glctx == nil {
		return
	}
	r.shaders.release(r.glctx)
	if r.vertexBuffer.Value != 0 {
		r.glctx.DeleteBuffer(r.vertexBuffer)
		r.vertexBuffer = gl.Buffer{}
	}
	r.mvpUniform = gl.Uniform{}
}

// Viewport returns the viewport for the current window size.  Width and
// height trade places when the window is rotated a quarter turn.
func (r *Renderer) Viewport() (x, y, width, height int) {
	switch r.windowRotation {
	case 90, 270:
		return 0, 0, r.height, r.width
	default:
		return 0, 0, r.width, r.height
	}
}

// Model returns the model matrix of the last frame.
func (r *Renderer) Model() mat4.Matrix { return r.model }

// View returns the projection computed by Init.
func (r *Renderer) View() mat4.Matrix { return r.view }

// MVP returns the matrix uploaded for the last frame.
func (r *Renderer) MVP() mat4.Matrix { return r.mvp }
