//go:build darwin || linux || windows
// +build darwin linux windows

// Glcube draws a cube with one color per face that can be turned by dragging
// or with the arrow keys.
//
// Build it as an Android APK with the gomobile tool.
//
//	$ gomobile build github.com/bmatsuo/mobile-gl-cube/glcube
//
// Or run it on the desktop.
//
//	$ go install github.com/bmatsuo/mobile-gl-cube/glcube && glcube -logtostderr
//
// Settings are read from the glcube.yml asset when it exists.
package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/bmatsuo/mobile-gl-cube/cube"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

const configPath = "glcube.yml"

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := loadConfig(configPath)
	if err != nil {
		glog.Errorf("[glcube]config %s: %v", configPath, err)
		cfg = cube.DefaultConfig()
	}

	app.Main(func(a app.App) {
		h := newHost(cube.NewRenderer(cfg))
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ := e.DrawContext.(gl.Context)
					h.onStart(glctx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					h.onStop()
				}
			case size.Event:
				h.onSize(e)
			case paint.Event:
				if h.glctx == nil || e.External {
					// As we are actively painting as fast as
					// we can (usually 60 FPS), skip any paint
					// events sent by the system.
					continue
				}

				if !h.onPaint() {
					continue
				}
				a.Publish()
				// Drive the animation by preparing to paint the next frame
				// after this one is shown.
				a.Send(paint.Event{})
			case touch.Event:
				h.onTouch(e)
			case key.Event:
				h.onKey(e)
			}
		}
	})
}

// host forwards app events to a cube.Renderer.
type host struct {
	r      *cube.Renderer
	glctx  gl.Context
	sz     size.Event
	failed bool

	images *glutil.Images
	fps    *debug.FPS
}

func newHost(r *cube.Renderer) *host {
	return &host{r: r}
}

func (h *host) onStart(glctx gl.Context) {
	h.glctx = glctx
	h.failed = false
	if h.r.Config().ShowFPS {
		h.images = glutil.NewImages(glctx)
		h.fps = debug.NewFPS(h.images)
	}
}

func (h *host) onStop() {
	h.r.Terminate()
	if h.fps != nil {
		h.fps.Release()
		h.images.Release()
		h.fps, h.images = nil, nil
	}
	h.glctx = nil
}

// onSize forwards the surface size.  x/mobile surfaces are already in the
// current orientation, so the window is never reported as rotated and the
// projection follows the new shape.
func (h *host) onSize(e size.Event) {
	h.sz = e
	h.r.SetWindowSize(e.WidthPx, e.HeightPx)
	h.r.SetWindowRotationAngle(0)
	glog.Infof("[glcube]size %dx%d orientation=%v", e.WidthPx, e.HeightPx, e.Orientation)

	switch h.r.State() {
	case cube.Initialized, cube.Rendering:
		err := h.r.UpdateProjection()
		if err != nil {
			glog.Errorf("[glcube]projection: %v", err)
		}
	}
}

// onPaint initializes the renderer once the surface size is known and draws
// a frame.  It reports whether anything was drawn.
func (h *host) onPaint() bool {
	if h.failed {
		return false
	}
	switch h.r.State() {
	case cube.Uninitialized, cube.Terminated:
		if h.sz.WidthPx == 0 || h.sz.HeightPx == 0 {
			return false
		}
		err := h.r.Init(h.glctx)
		if err != nil {
			glog.Errorf("[glcube]%v", err)
			h.failed = true
			return false
		}
	}

	err := h.r.RenderFrame()
	if err != nil {
		glog.Errorf("[glcube]frame: %v", err)
		return false
	}
	if h.fps != nil {
		h.fps.Draw(h.sz)
	}
	return true
}

func (h *host) onTouch(e touch.Event) {
	switch e.Type {
	case touch.TypeBegin:
		h.r.UpdatePointerPosition(e.X, e.Y)
		h.r.SetPointerActive(true)
	case touch.TypeMove:
		h.r.UpdatePointerPosition(e.X, e.Y)
	case touch.TypeEnd:
		h.r.UpdatePointerPosition(e.X, e.Y)
		h.r.SetPointerActive(false)
	}
}

func (h *host) onKey(e key.Event) {
	if e.Direction != key.DirPress && e.Direction != key.DirNone {
		return
	}
	step := h.r.Config().KeyStep
	switch e.Code {
	case key.CodeUpArrow:
		h.r.Rotate(0, step)
	case key.CodeDownArrow:
		h.r.Rotate(0, -step)
	case key.CodeLeftArrow:
		h.r.Rotate(-step, 0)
	case key.CodeRightArrow:
		h.r.Rotate(step, 0)
	}
}
