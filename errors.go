// errors.go — the closed set of evaluation error kinds.
//
// Every failure is returned as a value up the call chain; nothing in the
// core panics or recovers. Each kind is a small struct implementing error
// so callers can dispatch with errors.As. An error aborts the smallest
// enclosing Eval/Apply call and bubbles unmodified to the caller.
package rulsp

import "fmt"

// TypeMismatchError reports an accessor or application invoked on a value
// of the wrong variant. Actual carries the tagged rendering of the real
// value for diagnostics.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// NotCallableError reports an application whose target resolved to a
// non-function value. Target keeps the original operator rendering.
type NotCallableError struct {
	Target string
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("not callable: %s", e.Target)
}

// UndefinedSymbolError reports a lookup that exhausted the environment chain.
type UndefinedSymbolError struct {
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("undefined symbol: %s", e.Name)
}

// InvalidArgumentError reports a malformed special-form invocation or a
// host-function contract violation.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Msg
}

// LoadError wraps a failure while loading a bootstrap script. Form is the
// plain rendering of the top-level form that failed, empty when the script
// did not even read.
type LoadError struct {
	Form string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Form == "" {
		return fmt.Sprintf("load error: %v", e.Err)
	}
	return fmt.Sprintf("load error in %s: %v", e.Form, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
