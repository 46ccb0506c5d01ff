// Package errs defines the error taxonomy of spec.md §7. Every error the
// optimizer returns to a caller carries one of these Kinds, wrapped with
// github.com/pkg/errors so callers retain a stack trace via errors.Cause
// while still being able to switch on Kind.
package errs

import "github.com/pkg/errors"

// Kind classifies why an operation failed.
type Kind int

const (
	// InputInvalid: empty buildings, malformed bounds, weights all zero,
	// oversized footprint. Raised before any work starts.
	InputInvalid Kind = iota
	// EvaluationFault: an objective or constraint misbehaved (e.g. a
	// numerical singularity). The caller treats the score as worst and
	// continues; this Kind exists for the log record, not for propagation.
	EvaluationFault
	// ChainFault: a parallel SA chain failed to complete. Recovered by a
	// sequential re-run; only total failure of the fallback propagates.
	ChainFault
	// OptimizerFault: no SA chain succeeded, or GA reached zero evaluable
	// individuals.
	OptimizerFault
	// DeadlineReached: the caller's deadline fired.
	DeadlineReached
)

func (k Kind) String() string {
	switch k {
	case InputInvalid:
		return "InputInvalid"
	case EvaluationFault:
		return "EvaluationFault"
	case ChainFault:
		return "ChainFault"
	case OptimizerFault:
		return "OptimizerFault"
	case DeadlineReached:
		return "DeadlineReached"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with a Kind from the spec's taxonomy.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Kind.String() + ": " + e.msg + ": " + e.err.Error()
	}
	return e.Kind.String() + ": " + e.msg
}

func (e *Error) Unwrap() error { return e.err }

// New builds a Kind-tagged error with a message, stack-traced via
// github.com/pkg/errors.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, msg: msg, err: errors.New(msg)}
}

// Wrap attaches a Kind to an existing error, preserving it as the cause.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, msg: msg, err: errors.Wrap(err, msg)}
}

// Is reports whether err (or any error it wraps) carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ae, ok := err.(*Error); ok {
			e = ae
			if e.Kind == kind {
				return true
			}
			err = errors.Unwrap(err)
			continue
		}
		err = errors.Unwrap(err)
	}
	return false
}
