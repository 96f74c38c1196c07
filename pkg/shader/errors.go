package shader

import (
	"errors"
	"fmt"
)

// MaxLogLength caps every diagnostic log read back from the driver.
const MaxLogLength = 1024

var (
	ErrFileUnreadable = errors.New("shader: file unreadable")
	ErrUnknownKind    = errors.New("shader: unknown stage kind")
)

// CompileError reports a shader unit that failed to compile.
type CompileError struct {
	Kind Kind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s compile error: %s", e.Kind, e.Log)
}

// LinkError reports a program that failed to link. The program handle
// returned alongside it is still valid and must be released.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader: link error: %s", e.Log)
}

// ValidateError reports a linked program rejected by validation.
type ValidateError struct {
	Log string
}

func (e *ValidateError) Error() string {
	return fmt.Sprintf("shader: validation error: %s", e.Log)
}

func truncateLog(log string) string {
	if len(log) > MaxLogLength {
		log = log[:MaxLogLength]
	}
	// drivers pad with NULs when the buffer is larger than the message
	for i := 0; i < len(log); i++ {
		if log[i] == 0 {
			return log[:i]
		}
	}
	return log
}
