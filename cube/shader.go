package cube

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// Attribute slots bound before the program is linked.
var (
	positionAttrib = gl.Attrib{Value: 0}
	colorAttrib    = gl.Attrib{Value: 1}
)

const mvpUniformName = "mvpMatrix"

const vertexShader = `#version 100

attribute vec4 vPosition;
attribute vec3 inColor;
uniform mat4 mvpMatrix;

varying vec3 outColor;

void main() {
	outColor = inColor;
	gl_Position = mvpMatrix * vPosition;
}`

const fragmentShader = `#version 100
precision mediump float;

varying vec3 outColor;

void main() {
	gl_FragColor = vec4(outColor, 1.0);
}`

// ShaderCompileError is returned when a shader stage fails to compile.
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("cube: %s shader compile: %s", e.Stage, e.Log)
}

// ShaderLinkError is returned when the shader program fails to link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("cube: program link: %s", e.Log)
}

// shaderProgram holds the GL objects making up the linked program.  The
// shaders stay attached until release so that their deletion is explicit.
type shaderProgram struct {
	vertex   gl.Shader
	fragment gl.Shader
	program  gl.Program
}

func (sp *shaderProgram) release(glctx gl.Context) {
	if sp.vertex.Value != 0 {
		glctx.DeleteShader(sp.vertex)
	}
	if sp.fragment.Value != 0 {
		glctx.DeleteShader(sp.fragment)
	}
	if sp.program.Value != 0 {
		glctx.DeleteProgram(sp.program)
	}
	*sp = shaderProgram{}
}

// compileAndLink builds a program from the given sources, binds the position
// and color attribute slots, links it and makes it current.  On failure every
// object created along the way is deleted.
func compileAndLink(glctx gl.Context, vertexSrc, fragmentSrc string) (sp shaderProgram, err error) {
	defer func() {
		if err != nil {
			sp.release(glctx)
		}
	}()

	sp.vertex, err = compileShader(glctx, gl.VERTEX_SHADER, "vertex", vertexSrc)
	if err != nil {
		return sp, err
	}
	sp.fragment, err = compileShader(glctx, gl.FRAGMENT_SHADER, "fragment", fragmentSrc)
	if err != nil {
		return sp, err
	}

	sp.program = glctx.CreateProgram()
	if sp.program.Value == 0 {
		return sp, fmt.Errorf("cube: no programs available")
	}
	glctx.AttachShader(sp.program, sp.vertex)
	glctx.AttachShader(sp.program, sp.fragment)
	glctx.BindAttribLocation(sp.program, positionAttrib, "vPosition")
	glctx.BindAttribLocation(sp.program, colorAttrib, "inColor")
	glctx.LinkProgram(sp.program)
	if glctx.GetProgrami(sp.program, gl.LINK_STATUS) == 0 {
		return sp, &ShaderLinkError{Log: glctx.GetProgramInfoLog(sp.program)}
	}
	glctx.UseProgram(sp.program)
	return sp, nil
}

func compileShader(glctx gl.Context, ty gl.Enum, stage, src string) (gl.Shader, error) {
	shader := glctx.CreateShader(ty)
	if shader.Value == 0 {
		return shader, fmt.Errorf("cube: could not create %s shader", stage)
	}
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(shader)
		glctx.DeleteShader(shader)
		return gl.Shader{}, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}
