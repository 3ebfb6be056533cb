//go:build darwin || linux || windows
// +build darwin linux windows

// Package nativegl lets a native host that owns a GL ES surface draw the cube.
// It is meant to be built with gomobile bind.
//
// The host calls InitializeGL, RenderFrameGL and TerminateGL from its GL
// thread, with the GL context current, and forwards window and touch events
// through the remaining methods from the same thread.
//
//	view := nativegl.NewGLView()
//	view.UpdateWindowSize(1920, 1080)
//	// on the GL thread
//	view.InitializeGL()
//	for visible {
//		view.RenderFrameGL()
//	}
//	view.TerminateGL()
package nativegl

import (
	"strings"

	"github.com/golang/glog"

	"github.com/bmatsuo/mobile-gl-cube/cube"

	"golang.org/x/mobile/gl"
)

// GLView renders the cube into a surface owned by the host.
type GLView struct {
	r      *cube.Renderer
	glctx  gl.Context
	worker gl.Worker
}

// NewGLView returns a GLView using the default configuration.
func NewGLView() *GLView {
	return newGLView(cube.DefaultConfig())
}

// NewGLViewConfig returns a GLView configured by the YAML document config.
func NewGLViewConfig(config string) (*GLView, error) {
	cfg, err := cube.ParseConfig(strings.NewReader(config))
	if err != nil {
		return nil, err
	}
	return newGLView(cfg), nil
}

func newGLView(cfg cube.Config) *GLView {
	return &GLView{r: cube.NewRenderer(cfg)}
}

// InitializeGL prepares the shaders, vertex buffer and projection.  The
// window size must be known.
func (v *GLView) InitializeGL() error {
	if v.glctx == nil {
		v.glctx, v.worker = gl.NewContext()
	}
	var err error
	v.do(func() {
		err = v.r.Init(v.glctx)
	})
	if err != nil {
		glog.Errorf("[nativegl]%v", err)
	}
	return err
}

// RenderFrameGL draws one frame.  It returns 1 when a frame was drawn and 0
// otherwise.
func (v *GLView) RenderFrameGL() int {
	var err error
	v.do(func() {
		err = v.r.RenderFrame()
	})
	if err != nil {
		return 0
	}
	return 1
}

// TerminateGL deletes the GL objects created by InitializeGL.
func (v *GLView) TerminateGL() {
	v.do(v.r.Terminate)
}

// UpdateTouchEventState records whether the surface is being touched.
func (v *GLView) UpdateTouchEventState(down bool) {
	v.r.SetPointerActive(down)
}

// UpdateTouchPosition moves the touch point, turning the cube while the
// surface is touched.
func (v *GLView) UpdateTouchPosition(x, y int) {
	v.r.UpdatePointerPosition(float32(x), float32(y))
}

// RotationCube turns the cube by y degrees about x and x degrees about y.
func (v *GLView) RotationCube(x, y int) {
	v.r.Rotate(float32(x), float32(y))
}

// UpdateWindowSize records the surface size in pixels.
func (v *GLView) UpdateWindowSize(width, height int) {
	v.r.SetWindowSize(width, height)
}

// UpdateWindowRotationAngle records the window rotation, one of 0, 90, 180
// or 270 degrees.
func (v *GLView) UpdateWindowRotationAngle(angle int) {
	v.r.SetWindowRotationAngle(angle)
}

// do runs f on its own goroutine while executing the GL calls it queues on
// the calling thread, which has the host's context current.
func (v *GLView) do(f func()) {
	if v.worker == nil {
		f()
		return
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	workAvailable := v.worker.WorkAvailable()
	for {
		select {
		case <-workAvailable:
			v.worker.DoWork()
		case <-done:
			return
		}
	}
}
