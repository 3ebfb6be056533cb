package cube

import (
	"encoding/binary"
	colour "image/color"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"
)

func init() {
	computeCubeVertexData()
}

const (
	coordsPerVertex = 3
	colorsPerVertex = 3
	floatsPerVertex = coordsPerVertex + colorsPerVertex
	bytesPerFloat   = 4

	vertexStride = floatsPerVertex * bytesPerFloat
	colorOffset  = coordsPerVertex * bytesPerFloat

	verticesPerFace = 3 * 2
	cubeFaceCount   = 6
	cubeVertexCount = verticesPerFace * cubeFaceCount
)

// cubePositions holds two triangles for each face, in the same face order as
// cubeFaceColors.
var cubePositions = [cubeVertexCount][coordsPerVertex]float32{
	// front
	{0.5, 0.5, 0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
	{-0.5, -0.5, 0.5},
	// left
	{-0.5, 0.5, 0.5},
	{-0.5, -0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{-0.5, 0.5, 0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, -0.5},
	// top
	{-0.5, 0.5, 0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, 0.5, 0.5},
	{0.5, 0.5, 0.5},
	{0.5, 0.5, -0.5},
	// right
	{0.5, 0.5, -0.5},
	{0.5, -0.5, 0.5},
	{0.5, -0.5, -0.5},
	{0.5, 0.5, -0.5},
	{0.5, 0.5, 0.5},
	{0.5, -0.5, 0.5},
	// back
	{-0.5, 0.5, -0.5},
	{0.5, -0.5, -0.5},
	{-0.5, -0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{0.5, 0.5, -0.5},
	{0.5, -0.5, -0.5},
	// bottom
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, 0.5},
	{-0.5, -0.5, 0.5},
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{0.5, -0.5, 0.5},
}

var cubeFaceColors = [cubeFaceCount]colour.RGBA{
	{R: 0, G: 0, B: 255, A: 255},   // front, blue
	{R: 0, G: 255, B: 0, A: 255},   // left, green
	{R: 255, G: 0, B: 0, A: 255},   // top, red
	{R: 255, G: 255, B: 0, A: 255}, // right, yellow
	{R: 0, G: 255, B: 255, A: 255}, // back, cyan
	{R: 255, G: 0, B: 255, A: 255}, // bottom, magenta
}

// cubeVertices interleaves position and color, xyzrgb, for each vertex.
var cubeVertices [floatsPerVertex * cubeVertexCount]float32

var cubeVertexData []byte

func computeCubeVertices() {
	for i, p := range cubePositions {
		r, g, b, _ := rgba(cubeFaceColors[i/verticesPerFace])
		v := cubeVertices[floatsPerVertex*i : floatsPerVertex*(i+1)]
		v[0], v[1], v[2] = p[0], p[1], p[2]
		v[3], v[4], v[5] = r, g, b
	}
}

func computeCubeVertexData() {
	computeCubeVertices()
	cubeVertexData = f32.Bytes(binary.LittleEndian, cubeVertices[:]...)
}

// rgba returns the components of c scaled to [0, 1].
func rgba(c colour.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	const scale = float32(uint16(0xffff))
	return float32(cr) / scale, float32(cg) / scale, float32(cb) / scale, float32(ca) / scale
}

// uploadStaticMesh copies data into a new array buffer which is left bound.
func uploadStaticMesh(glctx gl.Context, data []byte) gl.Buffer {
	buf := glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, buf)
	glctx.BufferData(gl.ARRAY_BUFFER, data, gl.STATIC_DRAW)
	return buf
}
