package cube

import "math"

// SetPointerActive records whether a pointer is pressed.
func (r *Renderer) SetPointerActive(down bool) {
	r.pointerDown = down
}

// PointerActive reports whether a pointer is pressed.
func (r *Renderer) PointerActive() bool {
	return r.pointerDown
}

// UpdatePointerPosition moves the pointer to (x, y).  While the pointer is
// pressed vertical motion turns the cube about x and horizontal motion about
// y, one degree per pixel.  The position is remembered either way so a drag
// starts without a jump.
func (r *Renderer) UpdatePointerPosition(x, y float32) {
	r.curPoint = Point{X: x, Y: y}
	if r.pointerDown {
		r.Rotate(r.curPoint.X-r.prevPoint.X, r.curPoint.Y-r.prevPoint.Y)
	}
	r.prevPoint = r.curPoint
}

// Rotate turns the cube by dy degrees about x and dx degrees about y.
func (r *Renderer) Rotate(dx, dy float32) {
	r.anglePoint.X += dy
	r.anglePoint.Y += dx
	if r.cfg.WrapAngles {
		r.anglePoint.X = wrapDegrees(r.anglePoint.X)
		r.anglePoint.Y = wrapDegrees(r.anglePoint.Y)
	}
}

func wrapDegrees(a float32) float32 {
	return float32(math.Mod(float64(a), 360))
}

// AnglePoint returns the accumulated rotation angles in degrees.
func (r *Renderer) AnglePoint() Point {
	return r.anglePoint
}

// PrevPoint returns the last pointer position.
func (r *Renderer) PrevPoint() Point {
	return r.prevPoint
}

// SetWindowSize records the drawable size in pixels.  The projection is only
// recomputed by Init.
func (r *Renderer) SetWindowSize(width, height int) {
	r.width = width
	r.height = height
}

// WindowSize returns the drawable size in pixels.
func (r *Renderer) WindowSize() (width, height int) {
	return r.width, r.height
}

// SetWindowRotationAngle records the window orientation in degrees, one of 0,
// 90, 180 or 270.  Other values are stored but lay out the viewport as 0 does.
func (r *Renderer) SetWindowRotationAngle(angle int) {
	r.windowRotation = angle
}

// WindowRotationAngle returns the window orientation in degrees.
func (r *Renderer) WindowRotationAngle() int {
	return r.windowRotation
}
