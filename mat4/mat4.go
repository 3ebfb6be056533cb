// Package mat4 implements the small amount of 4x4 matrix math needed to
// position a model for a GL ES vertex shader.
//
// A Matrix is stored in column-major order, element (row, col) at index
// col*4+row, so that it can be handed to gl.Context.UniformMatrix4fv without
// any reordering.  This differs from f32.Mat4 in golang.org/x/mobile/exp/f32
// whose vectors are rows; Mat4 and SetMat4 convert between the two.
package mat4

import (
	"errors"
	"math"

	"golang.org/x/mobile/exp/f32"
)

// ErrDegenerateVolume is returned by Ortho when a clipping volume has zero
// extent along some axis.
var ErrDegenerateVolume = errors.New("mat4: degenerate projection volume")

// pi is the low order approximation of PI that rotation angles are converted
// with.
const pi = 3.141592

// Matrix is a 4x4 matrix in column-major order.
type Matrix [16]float32

// Identity returns the identity matrix.
func Identity() Matrix {
	var m Matrix
	m.Identity()
	return m
}

// Identity sets m to the identity matrix.
func (m *Matrix) Identity() {
	*m = Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul stores a*b in m.  Either argument may be m itself.
func (m *Matrix) Mul(a, b *Matrix) {
	var tmp Matrix
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for i := 0; i < 4; i++ {
				sum += a[i*4+row] * b[col*4+i]
			}
			tmp[col*4+row] = sum
		}
	}
	*m = tmp
}

// RotateXYZ post-multiplies m by a rotation built from the Euler angles ax, ay
// and az, given in degrees.  Calling it repeatedly composes rotations onto the
// existing orientation.
func (m *Matrix) RotateXYZ(ax, ay, az float32) {
	rx := 2 * pi * ax / 360
	ry := 2 * pi * ay / 360
	rz := 2 * pi * az / 360

	sx, cx := sincos(rx)
	sy, cy := sincos(ry)
	sz, cz := sincos(rz)

	basis := Identity()
	basis[0] = cy*cz - sx*sy*sz
	basis[1] = cz*sx*sy + cy*sz
	basis[2] = -cx * sy

	basis[4] = -cx * sz
	basis[5] = cx * cz
	basis[6] = sx

	basis[8] = cz*sy + cy*sx*sz
	basis[9] = -cy*cz*sx + sy*sz
	basis[10] = cx * cy

	m.Mul(m, &basis)
}

// sincos is exact to float32 precision.  f32.Sin and f32.Cos are table
// lookups and are off by as much as 1e-3.
func sincos(rad float32) (sin, cos float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}

// Ortho sets m to an orthographic projection of the box bounded by the given
// clipping planes, as glOrtho does.  If the box is degenerate m is left
// unchanged and ErrDegenerateVolume is returned.
func (m *Matrix) Ortho(left, right, bottom, top, near, far float32) error {
	dx := right - left
	dy := top - bottom
	dz := far - near
	if dx == 0 || dy == 0 || dz == 0 {
		return ErrDegenerateVolume
	}
	*m = Matrix{
		2 / dx, 0, 0, 0,
		0, 2 / dy, 0, 0,
		0, 0, -2 / dz, 0,
		-(right + left) / dx, -(top + bottom) / dy, -(far + near) / dz, 1,
	}
	return nil
}

// Transform returns m*v.
func (m *Matrix) Transform(v f32.Vec4) f32.Vec4 {
	var u f32.Vec4
	for row := 0; row < 4; row++ {
		u[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return u
}

// Mat4 returns m as an f32.Mat4, whose vectors are the rows of m.
func (m *Matrix) Mat4() f32.Mat4 {
	return f32.Mat4{
		{m[0], m[4], m[8], m[12]},
		{m[1], m[5], m[9], m[13]},
		{m[2], m[6], m[10], m[14]},
		{m[3], m[7], m[11], m[15]},
	}
}

// SetMat4 sets m from the row vectors of src.
func (m *Matrix) SetMat4(src *f32.Mat4) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[col*4+row] = src[row][col]
		}
	}
}

func (m *Matrix) String() string {
	rows := m.Mat4()
	return rows.String()
}
