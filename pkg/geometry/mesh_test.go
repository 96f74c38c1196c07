package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/gokgl/pkg/geometry"
)

func TestShapes(t *testing.T) {
	tests := []struct {
		name      string
		mesh      geometry.Mesh
		vertices  int
		drawCount int
		indexed   bool
	}{
		{"triangle", geometry.Triangle(), 3, 3, false},
		{"quad", geometry.Quad(), 4, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.mesh.Validate())
			assert.Equal(t, tt.vertices, tt.mesh.VertexCount())
			assert.Equal(t, tt.drawCount, tt.mesh.DrawCount())
			assert.Equal(t, tt.indexed, tt.mesh.Indexed())
			assert.Equal(t, 8, tt.mesh.Stride())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh geometry.Mesh
	}{
		{"no components", geometry.Mesh{Vertices: []float32{0, 0, 0}}},
		{"too many components", geometry.Mesh{Vertices: make([]float32, 15), Components: 5}},
		{"empty", geometry.Mesh{Components: 2}},
		{"ragged", geometry.Mesh{Vertices: make([]float32, 7), Components: 2}},
		{"partial triangle", geometry.Mesh{Vertices: make([]float32, 8), Components: 2}},
		{"index out of range", geometry.Mesh{Vertices: make([]float32, 6), Components: 2, Indices: []uint32{0, 1, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.mesh.Validate())
		})
	}
}
