package hotreload

import (
	"log/slog"

	"github.com/kjkrol/gokgl/pkg/shader"
)

// Target receives a freshly built program and hands back the one it replaces.
type Target interface {
	SetProgram(p *shader.Program) *shader.Program
}

// Reloader rebuilds a program from its source and swaps it into the target.
// It must run on the thread owning the GL context.
type Reloader struct {
	builder *shader.Builder
	load    func() (shader.Source, error)
	target  Target
	logger  *slog.Logger
}

func NewReloader(b *shader.Builder, load func() (shader.Source, error), target Target, logger *slog.Logger) *Reloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reloader{
		builder: b,
		load:    load,
		target:  target,
		logger:  logger,
	}
}

// Reload swaps in the new program only when it builds cleanly; otherwise the
// failed program is released and the target keeps its current one.
func (r *Reloader) Reload() error {
	src, err := r.load()
	if err != nil {
		r.logger.Warn("shader reload skipped", "err", err)
		return err
	}

	d := r.builder.Driver()
	p, err := r.builder.Build(src.Vertex, src.Fragment)
	if err != nil {
		p.Release(d)
		r.logger.Warn("shader build failed, keeping current program", "err", err)
		return err
	}

	prev := r.target.SetProgram(p)
	prev.Release(d)
	r.logger.Info("shader program loaded", "program", p.Handle)
	return nil
}
