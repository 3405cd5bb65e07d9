// Package ice defines internal compiler errors: conditions that mean the
// compiler itself is broken, never the user's program. They are not part of
// any diagnostic taxonomy and should be treated as unrecoverable defects.
package ice

import "fmt"

// InternalError reports a violated compiler invariant.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal compiler error: " + e.Msg
}

// Errorf builds an InternalError from a format string.
func Errorf(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
