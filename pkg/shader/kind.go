package shader

// Kind identifies a shader stage.
type Kind int

const (
	KindNone Kind = iota
	Vertex
	Fragment
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "none"
	}
}

func (k Kind) valid() bool {
	return k == Vertex || k == Fragment
}
