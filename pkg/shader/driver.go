package shader

// Driver is the graphics context the pipeline runs against. Every call goes
// to the context current on the calling thread, so a Driver must only be
// used from the goroutine that owns that context.
type Driver interface {
	CreateShader(kind Kind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most maxLen bytes of the compile log.
	ShaderInfoLog(shader uint32, maxLen int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ValidateProgram(program uint32)
	ProgramValidated(program uint32) bool
	// ProgramInfoLog returns at most maxLen bytes of the link or validation log.
	ProgramInfoLog(program uint32, maxLen int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
}
