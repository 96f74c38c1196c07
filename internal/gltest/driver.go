// Package gltest provides an in-memory shader.Driver for tests. It checks a
// small subset of GLSL: a leading #version directive, balanced braces, a main
// function, and matching vertex outputs for every fragment input at link time.
package gltest

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/kjkrol/gokgl/pkg/shader"
)

var (
	mainRe = regexp.MustCompile(`void\s+main\s*\(`)
	// "out vec3 color;" / "in vec3 color;" without a layout qualifier
	varyingRe = regexp.MustCompile(`(?m)^\s*(in|out)\s+\w+\s+(\w+)\s*;`)
)

type shaderObject struct {
	kind     shader.Kind
	source   string
	compiled bool
	log      string
	deleted  bool
}

type programObject struct {
	attached  map[uint32]bool
	linked    bool
	validated bool
	log       string
	deleted   bool
}

// Driver records every call and keeps objects in maps keyed by handle.
type Driver struct {
	// LogSuffix is appended to every failure log, e.g. to exceed the log cap.
	LogSuffix string
	// FailValidation makes ValidateProgram reject every program.
	FailValidation bool

	Calls []string

	next     uint32
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject
	current  uint32
}

func NewDriver() *Driver {
	return &Driver{
		shaders:  make(map[uint32]*shaderObject),
		programs: make(map[uint32]*programObject),
	}
}

func (d *Driver) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Driver) alloc() uint32 {
	d.next++
	return d.next
}

func (d *Driver) CreateShader(kind shader.Kind) uint32 {
	id := d.alloc()
	d.shaders[id] = &shaderObject{kind: kind}
	d.record("CreateShader(%s)=%d", kind, id)
	return id
}

func (d *Driver) ShaderSource(id uint32, source string) {
	d.record("ShaderSource(%d)", id)
	if s, ok := d.shaders[id]; ok {
		s.source = source
	}
}

func (d *Driver) CompileShader(id uint32) {
	d.record("CompileShader(%d)", id)
	s, ok := d.shaders[id]
	if !ok {
		return
	}
	if msg := check(s.source); msg != "" {
		s.compiled = false
		s.log = msg + d.LogSuffix
		return
	}
	s.compiled = true
	s.log = ""
}

func (d *Driver) ShaderCompiled(id uint32) bool {
	s, ok := d.shaders[id]
	return ok && s.compiled
}

func (d *Driver) ShaderInfoLog(id uint32, maxLen int) string {
	s, ok := d.shaders[id]
	if !ok {
		return ""
	}
	return clip(s.log, maxLen)
}

func (d *Driver) DeleteShader(id uint32) {
	d.record("DeleteShader(%d)", id)
	if s, ok := d.shaders[id]; ok {
		s.deleted = true
	}
}

func (d *Driver) CreateProgram() uint32 {
	id := d.alloc()
	d.programs[id] = &programObject{attached: make(map[uint32]bool)}
	d.record("CreateProgram()=%d", id)
	return id
}

func (d *Driver) AttachShader(program, id uint32) {
	d.record("AttachShader(%d,%d)", program, id)
	if p, ok := d.programs[program]; ok {
		p.attached[id] = true
	}
}

func (d *Driver) DetachShader(program, id uint32) {
	d.record("DetachShader(%d,%d)", program, id)
	if p, ok := d.programs[program]; ok {
		delete(p.attached, id)
	}
}

func (d *Driver) LinkProgram(program uint32) {
	d.record("LinkProgram(%d)", program)
	p, ok := d.programs[program]
	if !ok {
		return
	}
	p.linked, p.validated, p.log = false, false, ""

	var vertex, fragment *shaderObject
	for id := range p.attached {
		s := d.shaders[id]
		if s == nil || !s.compiled {
			p.log = fmt.Sprintf("error: attached shader %d is not compiled%s", id, d.LogSuffix)
			return
		}
		switch s.kind {
		case shader.Vertex:
			vertex = s
		case shader.Fragment:
			fragment = s
		}
	}
	if vertex == nil || fragment == nil {
		p.log = "error: program needs a vertex and a fragment shader" + d.LogSuffix
		return
	}

	outputs := varyings(vertex.source, "out")
	for _, name := range sortedKeys(varyings(fragment.source, "in")) {
		if !outputs[name] {
			p.log = fmt.Sprintf("error: fragment shader input '%s' has no matching vertex output%s", name, d.LogSuffix)
			return
		}
	}
	p.linked = true
}

func (d *Driver) ProgramLinked(program uint32) bool {
	p, ok := d.programs[program]
	return ok && p.linked
}

func (d *Driver) ValidateProgram(program uint32) {
	d.record("ValidateProgram(%d)", program)
	p, ok := d.programs[program]
	if !ok {
		return
	}
	if d.FailValidation {
		p.validated = false
		p.log = "error: program is not valid in the current state" + d.LogSuffix
		return
	}
	p.validated = p.linked
}

func (d *Driver) ProgramValidated(program uint32) bool {
	p, ok := d.programs[program]
	return ok && p.validated
}

func (d *Driver) ProgramInfoLog(program uint32, maxLen int) string {
	p, ok := d.programs[program]
	if !ok {
		return ""
	}
	return clip(p.log, maxLen)
}

func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram(%d)", program)
	d.current = program
}

func (d *Driver) DeleteProgram(program uint32) {
	d.record("DeleteProgram(%d)", program)
	if p, ok := d.programs[program]; ok {
		p.deleted = true
	}
}

// Count returns how many recorded calls start with prefix.
func (d *Driver) Count(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// LiveShaders returns the number of shader objects not yet deleted.
func (d *Driver) LiveShaders() int {
	n := 0
	for _, s := range d.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

// LivePrograms returns the number of program objects not yet deleted.
func (d *Driver) LivePrograms() int {
	n := 0
	for _, p := range d.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

// Attached returns the shaders still attached to program.
func (d *Driver) Attached(program uint32) int {
	if p, ok := d.programs[program]; ok {
		return len(p.attached)
	}
	return 0
}

func (d *Driver) CurrentProgram() uint32 {
	return d.current
}

func check(source string) string {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return "0:1(1): error: empty shader source"
	}
	if !strings.HasPrefix(trimmed, "#version") {
		return "0:1(1): error: #version directive must come first"
	}
	depth := 0
	for i, line := range strings.Split(source, "\n") {
		for _, r := range line {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
				if depth < 0 {
					return fmt.Sprintf("0:%d(1): error: syntax error, unexpected '}'", i+1)
				}
			}
		}
	}
	if depth != 0 {
		return "0:1(1): error: syntax error, unexpected end of file"
	}
	if !mainRe.MatchString(source) {
		return "error: no definition of main()"
	}
	return ""
}

func varyings(source, qualifier string) map[string]bool {
	names := make(map[string]bool)
	for _, m := range varyingRe.FindAllStringSubmatch(source, -1) {
		if m[1] == qualifier {
			names[m[2]] = true
		}
	}
	return names
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func clip(log string, maxLen int) string {
	if maxLen >= 0 && len(log) > maxLen {
		return log[:maxLen]
	}
	return log
}
