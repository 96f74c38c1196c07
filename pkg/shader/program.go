package shader

import (
	"errors"
	"log/slog"
)

// Program is a linked vertex+fragment pair owned by the caller.
type Program struct {
	Handle    uint32
	Linked    bool
	Validated bool
	Log       string
}

func (p *Program) Use(d Driver) {
	d.UseProgram(p.Handle)
}

// Release deletes the driver object. Calling it again is a no-op.
func (p *Program) Release(d Driver) {
	if p == nil || p.Handle == 0 {
		return
	}
	d.DeleteProgram(p.Handle)
	p.Handle = 0
	p.Linked = false
	p.Validated = false
}

type Option func(*Builder)

func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithValidation runs ValidateProgram after a successful link.
func WithValidation(enabled bool) Option {
	return func(b *Builder) {
		b.validate = enabled
	}
}

// WithStateHook reports every state a build passes through.
func WithStateHook(hook func(State)) Option {
	return func(b *Builder) {
		b.hook = hook
	}
}

// Builder compiles and links programs against one driver.
type Builder struct {
	driver   Driver
	logger   *slog.Logger
	validate bool
	hook     func(State)
}

func NewBuilder(d Driver, opts ...Option) *Builder {
	b := &Builder{
		driver: d,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Driver() Driver {
	return b.driver
}

// BuildProgram is NewBuilder(d).Build(vertexSource, fragmentSource).
func BuildProgram(d Driver, vertexSource, fragmentSource string) (*Program, error) {
	return NewBuilder(d).Build(vertexSource, fragmentSource)
}

// Build compiles both stages and links them into a program.
//
// A compile failure deletes the program and returns a *CompileError with a
// nil program. A link or validation failure returns the program together
// with a *LinkError or *ValidateError; the caller owns and must release it.
// Both units are released exactly once on every path.
func (b *Builder) Build(vertexSource, fragmentSource string) (*Program, error) {
	d := b.driver
	program := &Program{Handle: d.CreateProgram()}
	b.enter(StateCreated)

	var units []*Unit
	defer func() {
		for _, u := range units {
			u.Release(d)
		}
	}()

	stages := []struct {
		kind      Kind
		source    string
		compiling State
		compiled  State
	}{
		{Vertex, vertexSource, StateVertexCompiling, StateVertexCompiled},
		{Fragment, fragmentSource, StateFragmentCompiling, StateFragmentCompiled},
	}
	for _, stage := range stages {
		b.enter(stage.compiling)
		u, err := CompileUnit(d, stage.kind, stage.source)
		if u != nil {
			units = append(units, u)
		}
		if err != nil {
			b.enter(StateCompileFailed)
			b.logger.Error("shader compile failed", "kind", stage.kind, "log", u.logOrEmpty())
			program.Release(d)
			return nil, err
		}
		b.enter(stage.compiled)
	}

	for _, u := range units {
		d.AttachShader(program.Handle, u.Handle)
	}
	b.enter(StateLinking)
	d.LinkProgram(program.Handle)
	program.Linked = d.ProgramLinked(program.Handle)
	for _, u := range units {
		d.DetachShader(program.Handle, u.Handle)
	}

	if !program.Linked {
		program.Log = truncateLog(d.ProgramInfoLog(program.Handle, MaxLogLength))
		b.enter(StateLinkFailed)
		b.logger.Error("shader program link failed", "program", program.Handle, "log", program.Log)
		return program, &LinkError{Log: program.Log}
	}
	b.enter(StateLinked)

	if !b.validate {
		return program, nil
	}
	b.enter(StateValidating)
	d.ValidateProgram(program.Handle)
	program.Validated = d.ProgramValidated(program.Handle)
	if !program.Validated {
		program.Log = truncateLog(d.ProgramInfoLog(program.Handle, MaxLogLength))
		b.enter(StateValidationFailed)
		b.logger.Error("shader program validation failed", "program", program.Handle, "log", program.Log)
		return program, &ValidateError{Log: program.Log}
	}
	b.enter(StateValidated)
	return program, nil
}

func (b *Builder) enter(s State) {
	b.logger.Debug("shader build", "state", s)
	if b.hook != nil {
		b.hook(s)
	}
}

func (u *Unit) logOrEmpty() string {
	if u == nil {
		return ""
	}
	return u.Log
}

// IsBuildFailure reports whether err came from compiling, linking or
// validating a program rather than from the caller's inputs.
func IsBuildFailure(err error) bool {
	var (
		compileErr  *CompileError
		linkErr     *LinkError
		validateErr *ValidateError
	)
	return errors.As(err, &compileErr) || errors.As(err, &linkErr) || errors.As(err, &validateErr)
}
