package wgsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/gokgl/pkg/shader/wgsl"
)

const solidRed = `
@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

const vertexOnly = `
@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 0.0, 1.0);
}
`

func TestTranslate(t *testing.T) {
	src, err := wgsl.Translate(solidRed, wgsl.Options{Validate: true})
	require.NoError(t, err)

	assert.Contains(t, src.Vertex, "#version 330 core")
	assert.Contains(t, src.Fragment, "#version 330 core")
	assert.Contains(t, src.Vertex, "gl_Position")
	assert.NotContains(t, src.Fragment, "gl_Position")
}

func TestTranslateNamedEntries(t *testing.T) {
	src, err := wgsl.Translate(solidRed, wgsl.Options{VertexEntry: "vs_main", FragmentEntry: "fs_main"})
	require.NoError(t, err)
	assert.NotEmpty(t, src.Vertex)
	assert.NotEmpty(t, src.Fragment)
}

func TestTranslateMissingEntry(t *testing.T) {
	tests := []struct {
		name   string
		source string
		opts   wgsl.Options
	}{
		{"no fragment stage", vertexOnly, wgsl.Options{}},
		{"unknown vertex entry", solidRed, wgsl.Options{VertexEntry: "main"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wgsl.Translate(tt.source, tt.opts)
			assert.ErrorIs(t, err, wgsl.ErrNoEntryPoint)
		})
	}
}

func TestTranslateSyntaxError(t *testing.T) {
	_, err := wgsl.Translate("@vertex fn vs_main( -> {", wgsl.Options{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, wgsl.ErrNoEntryPoint)
}
