package propcheck

import "errors"

// ErrDiscard is the sentinel a predicate returns to request that the
// current evaluation is discarded instead of counted. The loop recovers it
// locally and turns it into a discard, it never surfaces to the caller.
var ErrDiscard = errors.New("propcheck: evaluation discarded")

// discardSignal is the panic payload used by Discard.
type discardSignal struct{}

// Discard aborts the current evaluation with the discard sentinel. It is
// meant for predicate shapes that cannot return ErrDiscard directly, the
// loop recovers exactly this signal and converts it into the discard
// branch.
func Discard() {
	panic(discardSignal{})
}

// Asserting selects what counts as a discard or a success for a given
// predicate-result type T, and how success and failure are signalled to the
// caller as a report value R.
//
// The check loop is written against this interface only, so supporting a
// new predicate-result type requires a new strategy implementation, never a
// loop change.
type Asserting[T, R any] interface {
	// Discard reports whether the evaluation result requests a discard.
	Discard(result T) bool

	// Succeed classifies the evaluation result as success or failure,
	// returning the failure cause when there is one.
	Succeed(result T) (ok bool, cause error)

	// Succeeded produces the report value of a passed check.
	Succeeded(pos Position) R

	// Failed produces the report value of a failed or exhausted check from
	// the rendered message, the original cause, any labels and the run id of
	// the check.
	Failed(message string, cause error, labels []string, pos Position, runID string) R
}

// CheckFailedError is the structured error signalling a failed or exhausted
// property check. Message contains the full rendered report including the
// reproducing argument values. RunID matches the check_id attribute of the
// engine's log lines, so a failure can be correlated with its run.
type CheckFailedError struct {
	Message string
	Cause   error
	Labels  []string
	Pos     Position
	RunID   string
}

func (e *CheckFailedError) Error() string {
	return e.Message
}

// Unwrap exposes the original failure cause to errors.Is and errors.As.
func (e *CheckFailedError) Unwrap() error {
	return e.Cause
}

// PlainAsserting classifies raw predicate results: any result is a success
// unless it is a non-nil error, in which case the check fails with that
// error as cause. The ErrDiscard sentinel requests a discard. Failure is
// signalled by returning a *CheckFailedError, success by a nil error.
type PlainAsserting[T any] struct{}

func (PlainAsserting[T]) Discard(result T) bool {
	err, ok := any(result).(error)
	return ok && errors.Is(err, ErrDiscard)
}

func (PlainAsserting[T]) Succeed(result T) (bool, error) {
	if err, ok := any(result).(error); ok && err != nil {
		return false, err
	}
	return true, nil
}

func (PlainAsserting[T]) Succeeded(Position) error {
	return nil
}

func (PlainAsserting[T]) Failed(message string, cause error, labels []string, pos Position, runID string) error {
	return &CheckFailedError{Message: message, Cause: cause, Labels: labels, Pos: pos, RunID: runID}
}

// FutureAsserting applies the plain classification rules to predicates that
// complete asynchronously. It is the strategy expected by the AsyncCheck
// functions, which deliver the error produced by Failed through the failed
// completion of the returned future.
type FutureAsserting[T any] struct {
	PlainAsserting[T]
}
