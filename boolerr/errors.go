// Package boolerr defines the pipeline's three error categories:
// programmer errors, geometric inconsistencies, and classification
// ambiguity. Each stage returns a plain Go error; callers that need
// to distinguish categories type-assert against ArgumentError /
// InvariantError / AmbiguityError. The structured types carry
// per-instance coordinate context, which a bare sentinel cannot.
package boolerr

import "fmt"

// ArgumentError reports a programmer error: a null input, an
// out-of-range index, or a negative count. These are never
// recoverable and name the offending parameter.
type ArgumentError struct {
	Stage string
	Param string
	Msg   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("gomesh3d: %s: invalid argument %q: %s", e.Stage, e.Param, e.Msg)
}

// NewArgumentError constructs an ArgumentError.
func NewArgumentError(stage, param, msg string) *ArgumentError {
	return &ArgumentError{Stage: stage, Param: param, Msg: msg}
}

// InvariantError reports a geometric inconsistency: a non-manifold
// assembly result, a PSLG self-crossing without an explicit vertex,
// an unfindable ear, a non-positive triangle area, an area-sum
// mismatch, and so on. These are not recoverable; they indicate the
// configured epsilons are inadequate for the input, or that an
// upstream stage produced inconsistent data.
type InvariantError struct {
	Stage   string
	Msg     string
	Context map[string]any
}

func (e *InvariantError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("gomesh3d: %s: invariant violated: %s", e.Stage, e.Msg)
	}
	return fmt.Sprintf("gomesh3d: %s: invariant violated: %s (context: %v)", e.Stage, e.Msg, e.Context)
}

// NewInvariantError constructs an InvariantError with optional
// coordinate/diagnostic context.
func NewInvariantError(stage, msg string, context map[string]any) *InvariantError {
	return &InvariantError{Stage: stage, Msg: msg, Context: context}
}

// AmbiguityError reports that a classification retry budget was
// exhausted. Callers that reach this have already retried with fresh
// ray directions up to the configured bound.
type AmbiguityError struct {
	Stage   string
	Retries int
	Msg     string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("gomesh3d: %s: classification ambiguity unresolved after %d retries: %s", e.Stage, e.Retries, e.Msg)
}

// NewAmbiguityError constructs an AmbiguityError.
func NewAmbiguityError(stage string, retries int, msg string) *AmbiguityError {
	return &AmbiguityError{Stage: stage, Retries: retries, Msg: msg}
}
