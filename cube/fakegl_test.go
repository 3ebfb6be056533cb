package cube

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// fakeGL records the calls made by a Renderer.  Methods it does not override
// panic through the nil embedded Context.
type fakeGL struct {
	gl.Context

	calls  []string
	nextID uint32

	shaders  map[uint32]bool
	types    map[uint32]gl.Enum
	programs map[uint32]bool
	buffers  map[uint32]bool

	failCompile gl.Enum
	failLink    bool

	attribs    map[string]gl.Attrib
	bufferData []byte
	usage      gl.Enum
	enabled    map[gl.Enum]bool
	viewport   [4]int
	clearColor [4]float32
	uniform    []float32
	pointers   map[gl.Attrib][3]int // size, stride, offset
	draws      [][3]int             // mode, first, count
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaders:  map[uint32]bool{},
		types:    map[uint32]gl.Enum{},
		programs: map[uint32]bool{},
		buffers:  map[uint32]bool{},
		attribs:  map[string]gl.Attrib{},
		enabled:  map[gl.Enum]bool{},
		pointers: map[gl.Attrib][3]int{},
	}
}

func (f *fakeGL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) id() uint32 {
	f.nextID++
	return f.nextID
}

// live returns the number of GL objects that have not been deleted.
func (f *fakeGL) live() int {
	return len(f.shaders) + len(f.programs) + len(f.buffers)
}

func (f *fakeGL) reset() {
	f.calls = nil
	f.draws = nil
	f.uniform = nil
}

func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{Value: f.id()}
	f.shaders[s.Value] = true
	f.types[s.Value] = ty
	f.record("CreateShader")
	return s
}

func (f *fakeGL) ShaderSource(s gl.Shader, src string) { f.record("ShaderSource") }
func (f *fakeGL) CompileShader(s gl.Shader)            { f.record("CompileShader") }

func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && f.failCompile != 0 && f.types[s.Value] == f.failCompile {
		return 0
	}
	return 1
}

func (f *fakeGL) GetShaderInfoLog(s gl.Shader) string { return "bad shader" }

func (f *fakeGL) DeleteShader(s gl.Shader) {
	delete(f.shaders, s.Value)
	f.record("DeleteShader")
}

func (f *fakeGL) CreateProgram() gl.Program {
	p := gl.Program{Init: true, Value: f.id()}
	f.programs[p.Value] = true
	f.record("CreateProgram")
	return p
}

func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) { f.record("AttachShader") }

func (f *fakeGL) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.attribs[name] = a
	f.record("BindAttribLocation %s", name)
}

func (f *fakeGL) LinkProgram(p gl.Program) { f.record("LinkProgram") }

func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && f.failLink {
		return 0
	}
	return 1
}

func (f *fakeGL) GetProgramInfoLog(p gl.Program) string { return "bad link" }

func (f *fakeGL) DeleteProgram(p gl.Program) {
	delete(f.programs, p.Value)
	f.record("DeleteProgram")
}

func (f *fakeGL) UseProgram(p gl.Program) { f.record("UseProgram") }

func (f *fakeGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{Value: 7}
}

func (f *fakeGL) CreateBuffer() gl.Buffer {
	b := gl.Buffer{Value: f.id()}
	f.buffers[b.Value] = true
	f.record("CreateBuffer")
	return b
}

func (f *fakeGL) BindBuffer(target gl.Enum, b gl.Buffer) { f.record("BindBuffer") }

func (f *fakeGL) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.bufferData = src
	f.usage = usage
	f.record("BufferData")
}

func (f *fakeGL) DeleteBuffer(b gl.Buffer) {
	delete(f.buffers, b.Value)
	f.record("DeleteBuffer")
}

func (f *fakeGL) Enable(cap gl.Enum) { f.enabled[cap] = true }

func (f *fakeGL) Viewport(x, y, width, height int) {
	f.viewport = [4]int{x, y, width, height}
	f.record("Viewport")
}

func (f *fakeGL) ClearColor(red, green, blue, alpha float32) {
	f.clearColor = [4]float32{red, green, blue, alpha}
}

func (f *fakeGL) Clear(mask gl.Enum) { f.record("Clear %d", mask) }

func (f *fakeGL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.pointers[dst] = [3]int{size, stride, offset}
	f.record("VertexAttribPointer %d", dst.Value)
}

func (f *fakeGL) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray %d", a.Value)
}
func (f *fakeGL) DisableVertexAttribArray(a gl.Attrib) {
	f.record("DisableVertexAttribArray %d", a.Value)
}

func (f *fakeGL) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	f.uniform = append([]float32(nil), src...)
	f.record("UniformMatrix4fv %d", dst.Value)
}

func (f *fakeGL) DrawArrays(mode gl.Enum, first, count int) {
	f.draws = append(f.draws, [3]int{int(mode), first, count})
	f.record("DrawArrays")
}
