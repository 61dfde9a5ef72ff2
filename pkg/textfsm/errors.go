package textfsm

import (
	"errors"
	"fmt"
)

// Sentinel errors for the compile-failure taxonomy. Wrap a *CompileError
// around one of these; callers classify with errors.Is.
var (
	// ErrMalformedValue indicates a Value declaration that could not be
	// parsed, including invalid regex fragments and bad value names.
	ErrMalformedValue = errors.New("malformed value declaration")
	// ErrDuplicateValue indicates a Value name declared more than once.
	ErrDuplicateValue = errors.New("duplicate value name")
	// ErrUndefinedValue indicates a ${NAME} reference with no declaration.
	ErrUndefinedValue = errors.New("undefined value reference")
	// ErrUnknownOption indicates a Value option outside Required/Filldown/List.
	ErrUnknownOption = errors.New("unknown value option")
	// ErrMalformedRule indicates a rule line that could not be parsed.
	ErrMalformedRule = errors.New("malformed rule")
	// ErrDuplicateState indicates a state declared more than once.
	ErrDuplicateState = errors.New("duplicate state")
	// ErrUnknownState indicates a rule transition to an undeclared state.
	ErrUnknownState = errors.New("unknown state")
	// ErrMissingStartState indicates a template with no Start state.
	ErrMissingStartState = errors.New("missing Start state")
)

// CompileError reports a template compilation failure with the source line
// that caused it. Line is 1-based; zero means the failure is not tied to a
// single line (e.g. a missing Start state).
type CompileError struct {
	Line int
	Text string
	Err  error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("template line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("template: %v", e.Err)
}

// Unwrap allows errors.Is and errors.As to reach the sentinel.
func (e *CompileError) Unwrap() error {
	return e.Err
}

func compileError(line int, text string, err error) *CompileError {
	return &CompileError{Line: line, Text: text, Err: err}
}
