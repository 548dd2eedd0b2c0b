package propcheck

import (
	"errors"
	"fmt"

	"propcheck/rng"
)

// evaluation is the outcome of generating one argument tuple and applying
// the predicate to it. err is non-nil when the predicate panicked, with the
// discard sentinel panic already converted back into ErrDiscard.
type evaluation[T any] struct {
	args   []PropertyArgument
	result T
	err    error
}

// iterationFunc produces one evaluation at the given size, threading the
// random state. Edge-case pools live in the closure and are threaded across
// calls by the closure itself.
type iterationFunc[T any] func(size int, r rng.Rand) (evaluation[T], rng.Rand)

// runCheck drives the generate-evaluate-classify loop until a terminal
// classification is reached.
//
// Each iteration takes the next pre-planned size (or a random one once the
// plan is consumed), evaluates the predicate on a freshly generated tuple
// and classifies the outcome through the asserting strategy. The loop
// terminates with Success when succeeded reaches MinSuccessful, with
// Exhausted when discarded reaches MaxDiscarded, and with Failure on the
// first failing or panicking evaluation. There is no other exit path.
func runCheck[T, R any](
	asserting Asserting[T, R],
	params Parameters,
	names []string,
	r rng.Rand,
	iter iterationFunc[T],
) PropertyCheckResult {
	var (
		succeeded int
		discarded int
		ev        evaluation[T]
	)
	maxDiscarded := params.MaxDiscarded()

	sizes, r := planSizes(params.MinSize, params.MaxSize(), r)

	for {
		var size int
		if len(sizes) > 0 {
			size, sizes = sizes[0], sizes[1:]
		} else {
			size, r = r.ChooseInt(params.MinSize, params.MaxSize())
		}

		ev, r = iter(size, r)

		switch {
		case isDiscard(ev.err) || (ev.err == nil && asserting.Discard(ev.result)):
			discarded++
			if discarded >= maxDiscarded {
				return PropertyCheckResult{
					Status:    CheckExhausted,
					Succeeded: succeeded,
					Discarded: discarded,
					Names:     names,
					Args:      ev.args,
				}
			}

		case ev.err != nil:
			return failureResult(succeeded, discarded, ev.err, names, ev.args)

		default:
			ok, cause := asserting.Succeed(ev.result)
			if !ok {
				return failureResult(succeeded, discarded, cause, names, ev.args)
			}
			succeeded++
			if succeeded >= params.MinSuccessful {
				return PropertyCheckResult{
					Status:    CheckSuccess,
					Succeeded: succeeded,
					Discarded: discarded,
					Names:     names,
					Args:      ev.args,
				}
			}
		}
	}
}

func failureResult(succeeded, discarded int, cause error, names []string, args []PropertyArgument) PropertyCheckResult {
	return PropertyCheckResult{
		Status:    CheckFailure,
		Succeeded: succeeded,
		Discarded: discarded,
		Cause:     cause,
		Names:     names,
		Args:      args,
	}
}

// isDiscard reports whether the recovered evaluation error is the discard
// sentinel. Only the sentinel is matched, any other error class is a
// failure.
func isDiscard(err error) bool {
	return err != nil && errors.Is(err, ErrDiscard)
}

// protect evaluates the predicate, capturing panics as failure causes
// instead of propagating them. A Discard panic is converted back into the
// sentinel error.
func protect[T any](apply func() T) (result T, err error) {
	defer func() {
		if p := recover(); p != nil {
			switch v := p.(type) {
			case discardSignal:
				err = ErrDiscard
			case error:
				err = v
			default:
				err = fmt.Errorf("property function panicked: %v", p)
			}
		}
	}()
	return apply(), nil
}
