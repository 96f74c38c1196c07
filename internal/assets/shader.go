// Package assets loads shader documents from disk in either supported format.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kjkrol/gokgl/pkg/shader"
	"github.com/kjkrol/gokgl/pkg/shader/wgsl"
)

type ShaderOptions struct {
	VertexEntry   string
	FragmentEntry string
}

// LoadShader reads a "#shader" document, or translates a .wgsl module.
func LoadShader(path string, opts ShaderOptions) (shader.Source, error) {
	if !strings.EqualFold(filepath.Ext(path), ".wgsl") {
		return shader.ParseFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return shader.Source{}, fmt.Errorf("%w: %w", shader.ErrFileUnreadable, err)
	}
	src, err := wgsl.Translate(string(data), wgsl.Options{
		VertexEntry:   opts.VertexEntry,
		FragmentEntry: opts.FragmentEntry,
		Validate:      true,
	})
	if err != nil {
		return shader.Source{}, fmt.Errorf("load shader %q: %w", path, err)
	}
	return src, nil
}
