//go:build darwin || linux || windows
// +build darwin linux windows

package nativegl

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/bmatsuo/mobile-gl-cube/cube"
)

func TestTouchForwarding(t *testing.T) {
	v := NewGLView()
	v.UpdateTouchPosition(10, 10)
	v.UpdateTouchEventState(true)
	v.UpdateTouchPosition(15, 20)
	v.UpdateTouchEventState(false)
	v.UpdateTouchPosition(40, 40)

	assert.Equal(t, cube.Point{X: 10, Y: 5}, v.r.AnglePoint())
	assert.Equal(t, cube.Point{X: 40, Y: 40}, v.r.PrevPoint())
}

func TestRotationCube(t *testing.T) {
	v := NewGLView()
	v.RotationCube(0, 1)
	v.RotationCube(-1, 0)
	assert.Equal(t, cube.Point{X: 1, Y: -1}, v.r.AnglePoint())
}

func TestWindowForwarding(t *testing.T) {
	v := NewGLView()
	v.UpdateWindowSize(1920, 1080)
	v.UpdateWindowRotationAngle(90)

	w, h := v.r.WindowSize()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	x, y, vw, vh := v.r.Viewport()
	assert.Equal(t, [4]int{0, 0, 1080, 1920}, [4]int{x, y, vw, vh})
}

func TestRenderFrameBeforeInitialize(t *testing.T) {
	v := NewGLView()
	assert.Equal(t, 0, v.RenderFrameGL())
	v.TerminateGL()
	assert.Equal(t, cube.Uninitialized, v.r.State())
}

func TestNewGLViewConfig(t *testing.T) {
	v, err := NewGLViewConfig("key_step: 2\nwrap_angles: true\n")
	assert.Equal(t, nil, err)
	assert.Equal(t, float32(2), v.r.Config().KeyStep)
	assert.Equal(t, true, v.r.Config().WrapAngles)

	_, err = NewGLViewConfig("key_step: -1\n")
	assert.NotEqual(t, nil, err)
}
