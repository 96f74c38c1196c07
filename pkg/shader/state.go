package shader

// State is a step of a single program build.
type State int

const (
	StateCreated State = iota
	StateVertexCompiling
	StateVertexCompiled
	StateFragmentCompiling
	StateFragmentCompiled
	StateCompileFailed
	StateLinking
	StateLinked
	StateLinkFailed
	StateValidating
	StateValidated
	StateValidationFailed
)

var stateNames = [...]string{
	StateCreated:           "created",
	StateVertexCompiling:   "vertex-compiling",
	StateVertexCompiled:    "vertex-compiled",
	StateFragmentCompiling: "fragment-compiling",
	StateFragmentCompiled:  "fragment-compiled",
	StateCompileFailed:     "compile-failed",
	StateLinking:           "linking",
	StateLinked:            "linked",
	StateLinkFailed:        "link-failed",
	StateValidating:        "validating",
	StateValidated:         "validated",
	StateValidationFailed:  "validation-failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
