// Package wgsl turns a WGSL module with a vertex and a fragment entry point
// into the GLSL 330 sources the shader builder consumes.
package wgsl

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"

	"github.com/kjkrol/gokgl/pkg/shader"
)

var ErrNoEntryPoint = errors.New("wgsl: entry point not found")

type Options struct {
	// VertexEntry and FragmentEntry name the entry points to translate.
	// Empty picks the first entry point of that stage.
	VertexEntry   string
	FragmentEntry string
	// Validate runs naga's IR validation before code generation.
	Validate bool
}

// Translate parses source and emits one GLSL source per stage.
func Translate(source string, opts Options) (shader.Source, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return shader.Source{}, fmt.Errorf("wgsl: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return shader.Source{}, fmt.Errorf("wgsl: lower: %w", err)
	}
	if opts.Validate {
		issues, err := naga.Validate(module)
		if err != nil {
			return shader.Source{}, fmt.Errorf("wgsl: validate: %w", err)
		}
		if len(issues) > 0 {
			return shader.Source{}, fmt.Errorf("wgsl: validation failed: %w", &issues[0])
		}
	}

	vertexEntry, err := entryPoint(module, ir.StageVertex, opts.VertexEntry)
	if err != nil {
		return shader.Source{}, err
	}
	fragmentEntry, err := entryPoint(module, ir.StageFragment, opts.FragmentEntry)
	if err != nil {
		return shader.Source{}, err
	}

	vertex, err := emit(module, vertexEntry)
	if err != nil {
		return shader.Source{}, err
	}
	fragment, err := emit(module, fragmentEntry)
	if err != nil {
		return shader.Source{}, err
	}
	return shader.Source{Vertex: vertex, Fragment: fragment}, nil
}

func entryPoint(module *ir.Module, stage ir.ShaderStage, name string) (string, error) {
	for _, ep := range module.EntryPoints {
		if ep.Stage != stage {
			continue
		}
		if name == "" || ep.Name == name {
			return ep.Name, nil
		}
	}
	kind := shader.Vertex
	if stage == ir.StageFragment {
		kind = shader.Fragment
	}
	if name == "" {
		return "", fmt.Errorf("%w: no %s stage", ErrNoEntryPoint, kind)
	}
	return "", fmt.Errorf("%w: %s entry %q", ErrNoEntryPoint, kind, name)
}

func emit(module *ir.Module, entry string) (string, error) {
	opts := glsl.DefaultOptions()
	opts.LangVersion = glsl.Version330
	opts.EntryPoint = entry
	code, _, err := glsl.Compile(module, opts)
	if err != nil {
		return "", fmt.Errorf("wgsl: %s: %w", entry, err)
	}
	return code, nil
}
