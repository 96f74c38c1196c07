package renderer

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/gokgl/pkg/geometry"
	"github.com/kjkrol/gokgl/pkg/shader"
)

type Config struct {
	ClearColor color.Color
	Logger     *slog.Logger
}

// Renderer draws one uploaded mesh with the current program, one draw call
// per frame. It must be used from the thread owning the GL context.
type Renderer struct {
	driver  shader.Driver
	logger  *slog.Logger
	clear   [4]float32
	program *shader.Program

	vao       uint32
	vbo       uint32
	ebo       uint32
	drawCount int32
	indexed   bool
}

func New(d shader.Driver, mesh geometry.Mesh, conf Config) (*Renderer, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	logger := conf.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{
		driver:    d,
		logger:    logger,
		clear:     colorToFloat(conf.ClearColor),
		drawCount: int32(mesh.DrawCount()),
		indexed:   mesh.Indexed(),
	}
	r.upload(mesh)
	logger.Debug("mesh uploaded", "vertices", mesh.VertexCount(), "indices", len(mesh.Indices))
	return r, nil
}

func (r *Renderer) upload(mesh geometry.Mesh) {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, int32(mesh.Components), gl.FLOAT, false, int32(mesh.Stride()), 0)

	if mesh.Indexed() {
		gl.GenBuffers(1, &r.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
}

// SetProgram makes p the program used for drawing and returns the previous
// one, which the caller still owns.
func (r *Renderer) SetProgram(p *shader.Program) *shader.Program {
	prev := r.program
	r.program = p
	if p != nil {
		p.Use(r.driver)
	}
	return prev
}

func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Render() {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if r.program == nil || !r.program.Linked {
		return
	}

	r.program.Use(r.driver)
	gl.BindVertexArray(r.vao)
	if r.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, r.drawCount, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, r.drawCount)
	}
	gl.BindVertexArray(0)
}

// Close releases the buffers and the current program.
func (r *Renderer) Close() {
	if r.program != nil {
		r.program.Release(r.driver)
		r.program = nil
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}
