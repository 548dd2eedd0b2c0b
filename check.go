package propcheck

import (
	"fmt"

	"github.com/google/uuid"

	"propcheck/generator"
	"propcheck/logging"
	"propcheck/rng"
)

// checkConfig collects everything a single check invocation needs besides
// the generators and the predicate. Read only once built.
type checkConfig struct {
	params     Parameters
	names      []string
	labels     []string
	prettifier Prettifier
	logger     logging.Logger
	pos        Position
	posSet     bool
	seed       int64
	seedSet    bool
	runID      string
}

func newCheckConfig(opts ...CheckOption) *checkConfig {
	cfg := &checkConfig{
		params:     DefaultParameters(),
		prettifier: DefaultPrettifier(),
		logger:     logging.NoOpLogger{},
		runID:      uuid.NewString(),
	}
	for _, opt := range opts {
		switch t := opt.(type) {
		case paramsOption:
			cfg.params = t.params
		case namesOption:
			cfg.names = t.names
		case labelsOption:
			cfg.labels = append(cfg.labels, t.labels...)
		case prettifierOption:
			cfg.prettifier = t.prettifier
		case loggerOption:
			cfg.logger = t.logger
		case positionOption:
			cfg.pos = t.pos
			cfg.posSet = true
		case seedOption:
			cfg.seed = t.seed
			cfg.seedSet = true
		}
	}
	if !cfg.posSet {
		// Frames: callerPosition, newCheckConfig, CheckN, user code.
		cfg.pos = callerPosition(3)
	}
	cfg.logger.Debug("property check started",
		"check_id", cfg.runID, "min_successful", cfg.params.MinSuccessful, "position", cfg.pos.String())
	return cfg
}

// rand returns the initial random state of the check: seeded when WithSeed
// was given, otherwise derived from the process-wide default seed.
func (cfg *checkConfig) rand() rng.Rand {
	if cfg.seedSet {
		return rng.New(cfg.seed)
	}
	return rng.Default()
}

func (cfg *checkConfig) sizeParam(size int) generator.SizeParam {
	return generator.SizeParam{
		MinSize:   cfg.params.MinSize,
		SizeRange: cfg.params.SizeRange,
		Size:      size,
	}
}

// nameAt returns the configured name of the argument at position i, or the
// empty string when the position is unnamed.
func (cfg *checkConfig) nameAt(i int) string {
	if i < len(cfg.names) {
		return cfg.names[i]
	}
	return ""
}

// CheckOption configures a single check invocation.
type CheckOption interface{}

type paramsOption struct{ params Parameters }

// WithParameters uses the provided parameters instead of
// DefaultParameters.
func WithParameters(params Parameters) CheckOption {
	return paramsOption{params: params}
}

type namesOption struct{ names []string }

// WithNames labels the generated arguments positionally. Unnamed positions
// are reported with an index based name.
func WithNames(names ...string) CheckOption {
	return namesOption{names: names}
}

type labelsOption struct{ labels []string }

// WithLabels attaches labels that are included in a failure report.
func WithLabels(labels ...string) CheckOption {
	return labelsOption{labels: labels}
}

type prettifierOption struct{ prettifier Prettifier }

// WithPrettifier renders argument values with the provided prettifier
// instead of DefaultPrettifier.
func WithPrettifier(prettifier Prettifier) CheckOption {
	return prettifierOption{prettifier: prettifier}
}

type loggerOption struct{ logger logging.Logger }

// WithLogger emits engine debug logging to the provided logger. The default
// discards all messages.
func WithLogger(logger logging.Logger) CheckOption {
	return loggerOption{logger: logger}
}

type positionOption struct{ pos Position }

// WithPosition reports failures against the provided call-site position
// instead of the position the check was started from.
func WithPosition(pos Position) CheckOption {
	return positionOption{pos: pos}
}

type seedOption struct{ seed int64 }

// WithSeed makes the check deterministic by seeding its random state.
func WithSeed(seed int64) CheckOption {
	return seedOption{seed: seed}
}

// report turns the terminal result of the loop into the report value of the
// bound asserting strategy.
func report[T, R any](asserting Asserting[T, R], res PropertyCheckResult, cfg *checkConfig) R {
	res.Labels = cfg.labels
	switch res.Status {
	case CheckSuccess:
		cfg.logger.Debug("property check succeeded",
			"check_id", cfg.runID, "succeeded", res.Succeeded, "discarded", res.Discarded)
		return asserting.Succeeded(cfg.pos)
	case CheckExhausted:
		cfg.logger.Debug("property check exhausted",
			"check_id", cfg.runID, "succeeded", res.Succeeded, "discarded", res.Discarded)
		return asserting.Failed(exhaustedMessage(res), res.Cause, res.Labels, cfg.pos, cfg.runID)
	default:
		cfg.logger.Debug("property check failed",
			"check_id", cfg.runID, "succeeded", res.Succeeded, "cause", res.Cause)
		return asserting.Failed(failureMessage(res, cfg.prettifier, cfg.pos, nil), res.Cause, res.Labels, cfg.pos, cfg.runID)
	}
}

// invalidParameters routes a configuration error through the strategy's
// failure signal without running any evaluation.
func invalidParameters[T, R any](asserting Asserting[T, R], cfg *checkConfig, err error) R {
	return asserting.Failed(fmt.Sprintf("invalid check parameters: %v", err), err, cfg.labels, cfg.pos, cfg.runID)
}

// Check1 runs a property check over one generated argument. The predicate
// result is classified by the provided asserting strategy and the
// strategy's report type is returned: a nil/non-nil error for
// PlainAsserting, a Fact for FactAsserting.
func Check1[A, T, R any](
	asserting Asserting[T, R],
	genA generator.Generator[A],
	property func(A) T,
	opts ...CheckOption,
) R {
	cfg := newCheckConfig(opts...)
	if err := cfg.params.Validate(); err != nil {
		return invalidParameters(asserting, cfg, err)
	}
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
		result, err := protect(func() T { return property(a) })
		return evaluation[T]{args: args, result: result, err: err}, r
	}

	return report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg)
}

// Check2 runs a property check over two generated arguments.
func Check2[A, B, T, R any](
	asserting Asserting[T, R],
	genA generator.Generator[A],
	genB generator.Generator[B],
	property func(A, B) T,
	opts ...CheckOption,
) R {
	cfg := newCheckConfig(opts...)
	if err := cfg.params.Validate(); err != nil {
		return invalidParameters(asserting, cfg, err)
	}
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
		result, err := protect(func() T { return property(a, b) })
		return evaluation[T]{args: args, result: result, err: err}, r
	}

	return report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg)
}

// Check3 runs a property check over three generated arguments.
func Check3[A, B, C, T, R any](
	asserting Asserting[T, R],
	genA generator.Generator[A],
	genB generator.Generator[B],
	genC generator.Generator[C],
	property func(A, B, C) T,
	opts ...CheckOption,
) R {
	cfg := newCheckConfig(opts...)
	if err := cfg.params.Validate(); err != nil {
		return invalidParameters(asserting, cfg, err)
	}
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
		result, err := protect(func() T { return property(a, b, c) })
		return evaluation[T]{args: args, result: result, err: err}, r
	}

	return report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg)
}

// Check4 runs a property check over four generated arguments.
func Check4[A, B, C, D, T, R any](
	asserting Asserting[T, R],
	genA generator.Generator[A],
	genB generator.Generator[B],
	genC generator.Generator[C],
	genD generator.Generator[D],
	property func(A, B, C, D) T,
	opts ...CheckOption,
) R {
	cfg := newCheckConfig(opts...)
	if err := cfg.params.Validate(); err != nil {
		return invalidParameters(asserting, cfg, err)
	}
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
		result, err := protect(func() T { return property(a, b, c, d) })
		return evaluation[T]{args: args, result: result, err: err}, r
	}

	return report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg)
}

// Check5 runs a property check over five generated arguments.
func Check5[A, B, C, D, E, T, R any](
	asserting Asserting[T, R],
	genA generator.Generator[A],
	genB generator.Generator[B],
	genC generator.Generator[C],
	genD generator.Generator[D],
	genE generator.Generator[E],
	property func(A, B, C, D, E) T,
	opts ...CheckOption,
) R {
	cfg := newCheckConfig(opts...)
	if err := cfg.params.Validate(); err != nil {
		return invalidParameters(asserting, cfg, err)
	}
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
		result, err := protect(func() T { return property(a, b, c, d, e) })
		return evaluation[T]{args: args, result: result, err: err}, r
	}

	return report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg)
}

// Check6 runs a property check over six generated arguments.
func Check6[A, B, C, D, E, F, T, R any](
	asserting Asserting[T, R],
	genA generator.Generator[A],
	genB generator.Generator[B],
	genC generator.Generator[C],
	genD generator.Generator[D],
	genE generator.Generator[E],
	genF generator.Generator[F],
	property func(A, B, C, D, E, F) T,
	opts ...CheckOption,
) R {
	cfg := newCheckConfig(opts...)
	if err := cfg.params.Validate(); err != nil {
		return invalidParameters(asserting, cfg, err)
	}
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
		result, err := protect(func() T { return property(a, b, c, d, e, f) })
		return evaluation[T]{args: args, result: result, err: err}, r
	}

	return report(asserting, runCheck(asserting, cfg.params, cfg.names, r, iter), cfg)
}
