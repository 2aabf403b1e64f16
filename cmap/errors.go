package cmap

import (
	"fmt"

	"github.com/pkg/errors"
)

// Violation is the one error taxonomy an operator ever raises: a violated
// precondition. Operators never return an error — they panic with a
// *Violation instead, since a precondition violation is a programmer error
// to surface immediately rather than a recoverable condition to propagate.
// Only the queries Map.IsValid and Map.IsInsertableCell2InCell3 return an
// error, since they are queries rather than operators.
type Violation struct {
	Op      string
	Message string
	cause   error
}

func (v *Violation) Error() string {
	if v.cause != nil {
		return fmt.Sprintf("dcmap: %s: %s: %v", v.Op, v.Message, v.cause)
	}
	return fmt.Sprintf("dcmap: %s: %s", v.Op, v.Message)
}

func (v *Violation) Unwrap() error { return v.cause }

// assertf panics with a *Violation if cond is false. Every operator's
// precondition check funnels through this single helper so the panic value
// is always the same concrete type.
func assertf(cond bool, op, format string, args ...interface{}) {
	if cond {
		return
	}
	panic(&Violation{Op: op, Message: fmt.Sprintf(format, args...)})
}

// wrapf builds a *Violation around an already-diagnosed cause, used where
// the precondition check itself produced a descriptive error (e.g. a failed
// path validation) that is worth preserving instead of flattening into a
// plain message.
func wrapf(cause error, op, format string, args ...interface{}) *Violation {
	return &Violation{Op: op, Message: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}
