package propcheck

import (
	"context"
	"errors"

	"propcheck/generator"
	"propcheck/rng"
)

// The AsyncCheck functions run the same generate-evaluate-classify contract
// as the Check functions over predicates that produce their result
// asynchronously. Each returned future is awaited before the next
// evaluation is scheduled, so no two iterations of one check ever run
// concurrently. The whole loop runs in a single goroutine, the returned
// future fails with the error the asserting strategy signals (a
// *CheckFailedError for FutureAsserting) or completes once the required
// number of successful evaluations is reached.
//
// The context bounds every await. Cancelling it fails the returned future
// with a report carrying the context error as cause, abandoning the check
// without sharing any partial state.

// errNilFuture reports a predicate that returned no future at all.
var errNilFuture = errors.New("propcheck: property returned a nil future")

// awaitEvaluation starts one asynchronous evaluation and blocks until it
// resolves or ctx is done. Panics while starting the evaluation are
// captured the same way the synchronous path captures them.
func awaitEvaluation[T any](ctx context.Context, start func() *Future[T]) (T, error) {
	fut, err := protect(start)
	if err != nil {
		var zero T
		return zero, err
	}
	if fut == nil {
		var zero T
		return zero, errNilFuture
	}
	return fut.Await(ctx)
}

// resolve delivers the strategy's report value through the check's own
// future.
func resolve(out *Future[struct{}], err error) {
	if err != nil {
		out.Fail(err)
		return
	}
	out.Complete(struct{}{})
}

// AsyncCheck1 runs an asynchronous property check over one generated
// argument.
func AsyncCheck1[A, T any](
	ctx context.Context,
	asserting Asserting[T, error],
	genA generator.Generator[A],
	property func(A) *Future[T],
	opts ...CheckOption,
) *Future[struct{}] {
	cfg := newCheckConfig(opts...)
	out := NewFuture[struct{}]()
	if err := cfg.params.Validate(); err != nil {
		out.Fail(invalidParameters(asserting, cfg, err))
		return out
	}
	go func() {
		r := cfg.rand()
		maxEdges := cfg.params.maxEdges()

		var edgesA []A
		edgesA, r = genA.InitEdges(maxEdges, r)

		iter := func(size int, r rng.Rand) (evaluation[T], rng.Rand) {
			sp := cfg.sizeParam(size)
			var a A
			a, edgesA, r = genA.Next(sp, edgesA, r)
			args := []PropertyArgument{
				{Label: cfg.nameAt(0), Value: a},
			}
			result, err := awaitEvaluation(ctx, func() *Future[T] { return property(a) })
			return evaluation[T]{args: args, result: result, err: err}, r
		}

		resolve(out, report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg))
	}()
	return out
}

// AsyncCheck2 runs an asynchronous property check over two generated
// arguments.
func AsyncCheck2[A, B, T any](
	ctx context.Context,
	asserting Asserting[T, error],
	genA generator.Generator[A],
	genB generator.Generator[B],
	property func(A, B) *Future[T],
	opts ...CheckOption,
) *Future[struct{}] {
	cfg := newCheckConfig(opts...)
	out := NewFuture[struct{}]()
	if err := cfg.params.Validate(); err != nil {
		out.Fail(invalidParameters(asserting, cfg, err))
		return out
	}
	go func() {
		r := cfg.rand()
		maxEdges := cfg.params.maxEdges()

		var edgesA []A
		var edgesB []B
		edgesA, r = genA.InitEdges(maxEdges, r)
		edgesB, r = genB.InitEdges(maxEdges, r)

		iter := func(size int, r rng.Rand) (evaluation[T], rng.Rand) {
			sp := cfg.sizeParam(size)
			var a A
			var b B
			a, edgesA, r = genA.Next(sp, edgesA, r)
			b, edgesB, r = genB.Next(sp, edgesB, r)
			args := []PropertyArgument{
				{Label: cfg.nameAt(0), Value: a},
				{Label: cfg.nameAt(1), Value: b},
			}
			result, err := awaitEvaluation(ctx, func() *Future[T] { return property(a, b) })
			return evaluation[T]{args: args, result: result, err: err}, r
		}

		resolve(out, report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg))
	}()
	return out
}

// AsyncCheck3 runs an asynchronous property check over three generated
// arguments.
func AsyncCheck3[A, B, C, T any](
	ctx context.Context,
	asserting Asserting[T, error],
	genA generator.Generator[A],
	genB generator.Generator[B],
	genC generator.Generator[C],
	property func(A, B, C) *Future[T],
	opts ...CheckOption,
) *Future[struct{}] {
	cfg := newCheckConfig(opts...)
	out := NewFuture[struct{}]()
	if err := cfg.params.Validate(); err != nil {
		out.Fail(invalidParameters(asserting, cfg, err))
		return out
	}
	go func() {
		r := cfg.rand()
		maxEdges := cfg.params.maxEdges()

		var edgesA []A
		var edgesB []B
		var edgesC []C
		edgesA, r = genA.InitEdges(maxEdges, r)
		edgesB, r = genB.InitEdges(maxEdges, r)
		edgesC, r = genC.InitEdges(maxEdges, r)

		iter := func(size int, r rng.Rand) (evaluation[T], rng.Rand) {
			sp := cfg.sizeParam(size)
			var a A
			var b B
			var c C
			a, edgesA, r = genA.Next(sp, edgesA, r)
			b, edgesB, r = genB.Next(sp, edgesB, r)
			c, edgesC, r = genC.Next(sp, edgesC, r)
			args := []PropertyArgument{
				{Label: cfg.nameAt(0), Value: a},
				{Label: cfg.nameAt(1), Value: b},
				{Label: cfg.nameAt(2), Value: c},
			}
			result, err := awaitEvaluation(ctx, func() *Future[T] { return property(a, b, c) })
			return evaluation[T]{args: args, result: result, err: err}, r
		}

		resolve(out, report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg))
	}()
	return out
}

// AsyncCheck4 runs an asynchronous property check over four generated
// arguments.
func AsyncCheck4[A, B, C, D, T any](
	ctx context.Context,
	asserting Asserting[T, error],
	genA generator.Generator[A],
	genB generator.Generator[B],
	genC generator.Generator[C],
	genD generator.Generator[D],
	property func(A, B, C, D) *Future[T],
	opts ...CheckOption,
) *Future[struct{}] {
	cfg := newCheckConfig(opts...)
	out := NewFuture[struct{}]()
	if err := cfg.params.Validate(); err != nil {
		out.Fail(invalidParameters(asserting, cfg, err))
		return out
	}
	go func() {
		r := cfg.rand()
		maxEdges := cfg.params.maxEdges()

		var edgesA []A
		var edgesB []B
		var edgesC []C
		var edgesD []D
		edgesA, r = genA.InitEdges(maxEdges, r)
		edgesB, r = genB.InitEdges(maxEdges, r)
		edgesC, r = genC.InitEdges(maxEdges, r)
		edgesD, r = genD.InitEdges(maxEdges, r)

		iter := func(size int, r rng.Rand) (evaluation[T], rng.Rand) {
			sp := cfg.sizeParam(size)
			var a A
			var b B
			var c C
			var d D
			a, edgesA, r = genA.Next(sp, edgesA, r)
			b, edgesB, r = genB.Next(sp, edgesB, r)
			c, edgesC, r = genC.Next(sp, edgesC, r)
			d, edgesD, r = genD.Next(sp, edgesD, r)
			args := []PropertyArgument{
				{Label: cfg.nameAt(0), Value: a},
				{Label: cfg.nameAt(1), Value: b},
				{Label: cfg.nameAt(2), Value: c},
				{Label: cfg.nameAt(3), Value: d},
			}
			result, err := awaitEvaluation(ctx, func() *Future[T] { return property(a, b, c, d) })
			return evaluation[T]{args: args, result: result, err: err}, r
		}

		resolve(out, report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg))
	}()
	return out
}

// AsyncCheck5 runs an asynchronous property check over five generated
// arguments.
func AsyncCheck5[A, B, C, D, E, T any](
	ctx context.Context,
	asserting Asserting[T, error],
	genA generator.Generator[A],
	genB generator.Generator[B],
	genC generator.Generator[C],
	genD generator.Generator[D],
	genE generator.Generator[E],
	property func(A, B, C, D, E) *Future[T],
	opts ...CheckOption,
) *Future[struct{}] {
	cfg := newCheckConfig(opts...)
	out := NewFuture[struct{}]()
	if err := cfg.params.Validate(); err != nil {
		out.Fail(invalidParameters(asserting, cfg, err))
		return out
	}
	go func() {
		r := cfg.rand()
		maxEdges := cfg.params.maxEdges()

		var edgesA []A
		var edgesB []B
		var edgesC []C
		var edgesD []D
		var edgesE []E
		edgesA, r = genA.InitEdges(maxEdges, r)
		edgesB, r = genB.InitEdges(maxEdges, r)
		edgesC, r = genC.InitEdges(maxEdges, r)
		edgesD, r = genD.InitEdges(maxEdges, r)
		edgesE, r = genE.InitEdges(maxEdges, r)

		iter := func(size int, r rng.Rand) (evaluation[T], rng.Rand) {
			sp := cfg.sizeParam(size)
			var a A
			var b B
			var c C
			var d D
			var e E
			a, edgesA, r = genA.Next(sp, edgesA, r)
			b, edgesB, r = genB.Next(sp, edgesB, r)
			c, edgesC, r = genC.Next(sp, edgesC, r)
			d, edgesD, r = genD.Next(sp, edgesD, r)
			e, edgesE, r = genE.Next(sp, edgesE, r)
			args := []PropertyArgument{
				{Label: cfg.nameAt(0), Value: a},
				{Label: cfg.nameAt(1), Value: b},
				{Label: cfg.nameAt(2), Value: c},
				{Label: cfg.nameAt(3), Value: d},
				{Label: cfg.nameAt(4), Value: e},
			}
			result, err := awaitEvaluation(ctx, func() *Future[T] { return property(a, b, c, d, e) })
			return evaluation[T]{args: args, result: result, err: err}, r
		}

		resolve(out, report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg))
	}()
	return out
}

// AsyncCheck6 runs an asynchronous property check over six generated
// arguments.
func AsyncCheck6[A, B, C, D, E, F, T any](
	ctx context.Context,
	asserting Asserting[T, error],
	genA generator.Generator[A],
	genB generator.Generator[B],
	genC generator.Generator[C],
	genD generator.Generator[D],
	genE generator.Generator[E],
	genF generator.Generator[F],
	property func(A, B, C, D, E, F) *Future[T],
	opts ...CheckOption,
) *Future[struct{}] {
	cfg := newCheckConfig(opts...)
	out := NewFuture[struct{}]()
	if err := cfg.params.Validate(); err != nil {
		out.Fail(invalidParameters(asserting, cfg, err))
		return out
	}
	go func() {
		r := cfg.rand()
		maxEdges := cfg.params.maxEdges()

		var edgesA []A
		var edgesB []B
		var edgesC []C
		var edgesD []D
		var edgesE []E
		var edgesF []F
		edgesA, r = genA.InitEdges(maxEdges, r)
		edgesB, r = genB.InitEdges(maxEdges, r)
		edgesC, r = genC.InitEdges(maxEdges, r)
		edgesD, r = genD.InitEdges(maxEdges, r)
		edgesE, r = genE.InitEdges(maxEdges, r)
		edgesF, r = genF.InitEdges(maxEdges, r)

		iter := func(size int, r rng.Rand) (evaluation[T], rng.Rand) {
			sp := cfg.sizeParam(size)
			var a A
			var b B
			var c C
			var d D
			var e E
			var f F
			a, edgesA, r = genA.Next(sp, edgesA, r)
			b, edgesB, r = genB.Next(sp, edgesB, r)
			c, edgesC, r = genC.Next(sp, edgesC, r)
			d, edgesD, r = genD.Next(sp, edgesD, r)
			e, edgesE, r = genE.Next(sp, edgesE, r)
			f, edgesF, r = genF.Next(sp, edgesF, r)
			args := []PropertyArgument{
				{Label: cfg.nameAt(0), Value: a},
				{Label: cfg.nameAt(1), Value: b},
				{Label: cfg.nameAt(2), Value: c},
				{Label: cfg.nameAt(3), Value: d},
				{Label: cfg.nameAt(4), Value: e},
				{Label: cfg.nameAt(5), Value: f},
			}
			result, err := awaitEvaluation(ctx, func() *Future[T] { return property(a, b, c, d, e, f) })
			return evaluation[T]{args: args, result: result, err: err}, r
		}

		resolve(out, report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg))
	}()
	return out
}
