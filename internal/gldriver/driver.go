// Package gldriver implements shader.Driver on top of OpenGL 3.3 core.
package gldriver

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/gokgl/pkg/shader"
)

var glShaders = map[shader.Kind]uint32{
	shader.Vertex:   gl.VERTEX_SHADER,
	shader.Fragment: gl.FRAGMENT_SHADER,
}

// Driver forwards to the GL context current on the calling thread.
type Driver struct{}

var _ shader.Driver = (*Driver)(nil)

// New loads the GL function pointers. A context must be current.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Driver{}, nil
}

// Version reports the GL_VERSION string of the current context.
func (d *Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Driver) CreateShader(kind shader.Kind) uint32 {
	return gl.CreateShader(glShaders[kind])
}

func (d *Driver) ShaderSource(id uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
}

func (d *Driver) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (d *Driver) ShaderCompiled(id uint32) bool {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ShaderInfoLog(id uint32, maxLen int) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	n := boundedLength(logLength, maxLen)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(id, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(program, id uint32) {
	gl.AttachShader(program, id)
}

func (d *Driver) DetachShader(program, id uint32) {
	gl.DetachShader(program, id)
}

func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (d *Driver) ProgramValidated(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ProgramInfoLog(program uint32, maxLen int) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	n := boundedLength(logLength, maxLen)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// boundedLength clamps the driver-reported log length (which includes the
// terminating NUL) to maxLen bytes of text.
func boundedLength(logLength int32, maxLen int) int32 {
	if logLength <= 0 {
		return 0
	}
	if maxLen >= 0 && int(logLength) > maxLen+1 {
		return int32(maxLen + 1)
	}
	return logLength
}
