// Package geometry holds the fixed shapes drawn by the demos.
package geometry

import (
	"errors"
	"fmt"
)

// Mesh is interleaved vertex data with an optional index buffer.
// Components is the number of floats per vertex, all of them bound to
// attribute location 0.
type Mesh struct {
	Vertices   []float32
	Components int
	Indices    []uint32
}

// Triangle is three 2D positions in clip space.
func Triangle() Mesh {
	return Mesh{
		Vertices: []float32{
			-0.5, -0.5,
			0.0, 0.5,
			0.5, -0.5,
		},
		Components: 2,
	}
}

// Quad is four 2D corners drawn as two triangles through an index buffer.
func Quad() Mesh {
	return Mesh{
		Vertices: []float32{
			-0.5, -0.5,
			0.5, -0.5,
			0.5, 0.5,
			-0.5, 0.5,
		},
		Components: 2,
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}

func (m Mesh) VertexCount() int {
	if m.Components <= 0 {
		return 0
	}
	return len(m.Vertices) / m.Components
}

func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// DrawCount is the element count passed to the draw call.
func (m Mesh) DrawCount() int {
	if m.Indexed() {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Stride is the byte distance between consecutive vertices.
func (m Mesh) Stride() int {
	return m.Components * 4
}

func (m Mesh) Validate() error {
	if m.Components < 1 || m.Components > 4 {
		return fmt.Errorf("geometry: components must be in [1,4], got %d", m.Components)
	}
	if len(m.Vertices) == 0 {
		return errors.New("geometry: no vertices")
	}
	if len(m.Vertices)%m.Components != 0 {
		return fmt.Errorf("geometry: %d floats is not a multiple of %d components", len(m.Vertices), m.Components)
	}
	if m.DrawCount()%3 != 0 {
		return fmt.Errorf("geometry: %d elements do not form whole triangles", m.DrawCount())
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("geometry: index %d at %d out of range [0,%d)", idx, i, n)
		}
	}
	return nil
}
