package shader

import "fmt"

type Status int

const (
	StatusPending Status = iota
	StatusCompiled
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCompiled:
		return "compiled"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Unit is a single compiled stage. The handle stays valid after a failed
// compile, as drivers still allocate the object; it must be released either way.
type Unit struct {
	Kind   Kind
	Handle uint32
	Source string
	Status Status
	Log    string
}

// CompileUnit compiles source as a stage of the given kind. On failure the
// unit is returned together with a *CompileError carrying the bounded log.
func CompileUnit(d Driver, kind Kind, source string) (*Unit, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	u := &Unit{
		Kind:   kind,
		Handle: d.CreateShader(kind),
		Source: source,
	}
	d.ShaderSource(u.Handle, source)
	d.CompileShader(u.Handle)

	if !d.ShaderCompiled(u.Handle) {
		u.Status = StatusFailed
		u.Log = truncateLog(d.ShaderInfoLog(u.Handle, MaxLogLength))
		return u, &CompileError{Kind: kind, Log: u.Log}
	}
	u.Status = StatusCompiled
	return u, nil
}

// Release deletes the driver object. Calling it again is a no-op.
func (u *Unit) Release(d Driver) {
	if u == nil || u.Handle == 0 {
		return
	}
	d.DeleteShader(u.Handle)
	u.Handle = 0
}
