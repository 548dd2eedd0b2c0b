package propcheck

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propcheck/generator"
)

func TestCheck1SucceedsAfterMinSuccessful(t *testing.T) {
	calls := 0
	err := Check1(PlainAsserting[error]{}, generator.Const(0), func(x int) error {
		calls++
		if x != 0 {
			return fmt.Errorf("expected 0, got %d", x)
		}
		return nil
	}, WithParameters(Parameters{MinSuccessful: 3, MaxDiscardedFactor: 1.0}))

	require.NoError(t, err)
	assert.Equal(t, 3, calls, "loop must evaluate the predicate exactly MinSuccessful times")
}

func TestCheck1AlwaysDiscardingExhausts(t *testing.T) {
	params := Parameters{MinSuccessful: 3, MaxDiscardedFactor: 2.0}
	calls := 0
	err := Check1(PlainAsserting[error]{}, generator.Const(0), func(int) error {
		calls++
		return ErrDiscard
	}, WithParameters(params))

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, failed.Message, "exhausted")
	assert.Contains(t, failed.Message, "discarding 6 evaluations")
	assert.Equal(t, params.MaxDiscarded(), calls)
}

func TestCheck1FailureReportsArguments(t *testing.T) {
	err := Check1(PlainAsserting[error]{}, generator.Const(7), func(x int) error {
		return fmt.Errorf("%d is not zero", x)
	}, WithParameters(Parameters{MinSuccessful: 5, MaxDiscardedFactor: 1.0}))

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, failed.Message, "Succeeded 0 times before failure.")
	assert.Contains(t, failed.Message, "arg0 = 7")
	assert.ErrorContains(t, failed.Cause, "7 is not zero")
}

func TestCheck2FailureCarriesBothArguments(t *testing.T) {
	err := Check2(PlainAsserting[error]{},
		generator.Const(4),
		generator.Const(5),
		func(x, y int) error {
			if x+y == 10 {
				return nil
			}
			return fmt.Errorf("%d+%d != 10", x, y)
		},
		WithParameters(Parameters{MinSuccessful: 3, MaxDiscardedFactor: 1.0}),
		WithNames("x", "y"),
	)

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, failed.Message, "x = 4")
	assert.Contains(t, failed.Message, "y = 5")
	assert.Contains(t, failed.Message, "Succeeded 0 times before failure.")
}

func TestCheck1PanicIsCapturedAsFailure(t *testing.T) {
	err := Check1(PlainAsserting[error]{}, generator.Const(0), func(int) error {
		panic("kaboom")
	}, WithParameters(Parameters{MinSuccessful: 3, MaxDiscardedFactor: 1.0}))

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	assert.ErrorContains(t, failed.Cause, "kaboom")
}

func TestCheck1DiscardPanicIsDiscarded(t *testing.T) {
	calls := 0
	err := Check1(PlainAsserting[error]{}, generator.Const(0), func(int) error {
		calls++
		if calls%2 == 1 {
			Discard()
		}
		return nil
	}, WithParameters(Parameters{MinSuccessful: 3, MaxDiscardedFactor: 5.0}))

	assert.NoError(t, err)
}

func TestCheck1InvalidParametersFailEagerly(t *testing.T) {
	calls := 0
	err := Check1(PlainAsserting[error]{}, generator.Const(0), func(int) error {
		calls++
		return nil
	}, WithParameters(Parameters{MinSuccessful: 0, MaxDiscardedFactor: 1.0}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid check parameters")
	assert.Zero(t, calls, "no evaluation may run with invalid parameters")
}

func TestCheck1SeedMakesFailureReproducible(t *testing.T) {
	run := func() error {
		return Check1(PlainAsserting[error]{}, generator.IntRange(0, 1000), func(x int) error {
			if x > 500 {
				return fmt.Errorf("too large: %d", x)
			}
			return nil
		}, WithParameters(Parameters{MinSuccessful: 100, MaxDiscardedFactor: 1.0}), WithSeed(1234))
	}

	first := run()
	second := run()
	if first == nil {
		require.NoError(t, second)
		return
	}
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestCheck1ConsumesEdgeCasesFirst(t *testing.T) {
	// MinSuccessful 10 seeds 10/5 = 2 edge cases, the int generator front
	// loads 0 and 1.
	var seen []int
	err := Check1(PlainAsserting[error]{}, generator.Int(), func(x int) error {
		seen = append(seen, x)
		return nil
	}, WithParameters(Parameters{MinSuccessful: 10, MaxDiscardedFactor: 1.0}))

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(seen), 2)
	assert.Equal(t, []int{0, 1}, seen[:2])
}

func TestCheck3Through6RunToSuccess(t *testing.T) {
	params := Parameters{MinSuccessful: 5, MaxDiscardedFactor: 1.0}

	err := Check3(PlainAsserting[error]{},
		generator.Const(1), generator.Const(2), generator.Const(3),
		func(a, b, c int) error {
			if a+b+c != 6 {
				return errors.New("bad sum")
			}
			return nil
		}, WithParameters(params))
	assert.NoError(t, err)

	err = Check4(PlainAsserting[error]{},
		generator.Const(1), generator.Const(2), generator.Const(3), generator.Const(4),
		func(a, b, c, d int) error {
			if a+b+c+d != 10 {
				return errors.New("bad sum")
			}
			return nil
		}, WithParameters(params))
	assert.NoError(t, err)

	err = Check5(PlainAsserting[error]{},
		generator.Const(1), generator.Const(2), generator.Const(3), generator.Const(4), generator.Const(5),
		func(a, b, c, d, e int) error {
			if a+b+c+d+e != 15 {
				return errors.New("bad sum")
			}
			return nil
		}, WithParameters(params))
	assert.NoError(t, err)

	err = Check6(PlainAsserting[error]{},
		generator.Const(1), generator.Const(2), generator.Const(3), generator.Const(4), generator.Const(5), generator.Const(6),
		func(a, b, c, d, e, f int) error {
			if a+b+c+d+e+f != 21 {
				return errors.New("bad sum")
			}
			return nil
		}, WithParameters(params))
	assert.NoError(t, err)
}

func TestCheck6FailureHasSixArguments(t *testing.T) {
	err := Check6(PlainAsserting[error]{},
		generator.Const(1), generator.Const(2), generator.Const(3), generator.Const(4), generator.Const(5), generator.Const(6),
		func(a, b, c, d, e, f int) error {
			return errors.New("always fails")
		},
		WithParameters(Parameters{MinSuccessful: 3, MaxDiscardedFactor: 1.0}),
	)

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	for i := 0; i < 6; i++ {
		assert.Contains(t, failed.Message, fmt.Sprintf("arg%d = %d", i, i+1))
	}
}

func TestCheck1FactVariant(t *testing.T) {
	fact := Check1(FactAsserting{}, generator.Const(0), func(x int) Fact {
		if x == 0 {
			return Yes("x is zero")
		}
		return No("x is not zero", nil)
	}, WithParameters(Parameters{MinSuccessful: 3, MaxDiscardedFactor: 1.0}))

	assert.True(t, fact.IsYes())
	assert.Equal(t, "Property check succeeded.", fact.Message)
}

func TestCheck1FactVariantFailureIsNo(t *testing.T) {
	boom := errors.New("boom")
	fact := Check1(FactAsserting{}, generator.Const(3), func(x int) Fact {
		return No("x is not zero", boom)
	}, WithParameters(Parameters{MinSuccessful: 3, MaxDiscardedFactor: 1.0}), WithNames("x"))

	require.True(t, fact.IsNo())
	assert.Contains(t, fact.Message, "x = 3")
	assert.Equal(t, boom, fact.Cause)
}

func TestCheck1FactVariantVacuousDiscards(t *testing.T) {
	params := Parameters{MinSuccessful: 3, MaxDiscardedFactor: 1.0}
	calls := 0
	fact := Check1(FactAsserting{}, generator.Const(0), func(int) Fact {
		calls++
		return VacuousYes("precondition failed")
	}, WithParameters(params))

	require.True(t, fact.IsNo(), "an exhausted fact check reports no")
	assert.Contains(t, fact.Message, "exhausted")
	assert.Equal(t, params.MaxDiscarded(), calls)
}

func TestCheck1LabelsAppearInFailureReport(t *testing.T) {
	err := Check1(PlainAsserting[error]{}, generator.Const(1), func(int) error {
		return errors.New("nope")
	},
		WithParameters(Parameters{MinSuccessful: 1, MaxDiscardedFactor: 1.0}),
		WithLabels("even result", "small input"),
	)

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, failed.Message, "Labels: even result, small input")
	assert.Equal(t, []string{"even result", "small input"}, failed.Labels)
}

func TestCheck1PositionInFailureReport(t *testing.T) {
	err := Check1(PlainAsserting[error]{}, generator.Const(1), func(int) error {
		return errors.New("nope")
	},
		WithParameters(Parameters{MinSuccessful: 1, MaxDiscardedFactor: 1.0}),
		WithPosition(Position{File: "mytest.go", Line: 99}),
	)

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, failed.Message, "Location: mytest.go:99")
	assert.Equal(t, Position{File: "mytest.go", Line: 99}, failed.Pos)
}

// captureLogger records log calls so tests can inspect messages and
// attributes.
type captureLogger struct {
	entries []logEntry
}

type logEntry struct {
	msg  string
	args []any
}

func (e logEntry) attr(key string) any {
	for i := 0; i+1 < len(e.args); i += 2 {
		if e.args[i] == key {
			return e.args[i+1]
		}
	}
	return nil
}

func (l *captureLogger) record(msg string, args ...any) {
	l.entries = append(l.entries, logEntry{msg: msg, args: args})
}

func (l *captureLogger) Debug(msg string, args ...any) { l.record(msg, args...) }
func (l *captureLogger) Info(msg string, args ...any)  { l.record(msg, args...) }
func (l *captureLogger) Warn(msg string, args ...any)  { l.record(msg, args...) }
func (l *captureLogger) Error(msg string, args ...any) { l.record(msg, args...) }

func (l *captureLogger) find(msg string) (logEntry, bool) {
	for _, e := range l.entries {
		if e.msg == msg {
			return e, true
		}
	}
	return logEntry{}, false
}

func TestCheck1RunIDCorrelatesLogsAndError(t *testing.T) {
	logger := &captureLogger{}
	err := Check1(PlainAsserting[error]{}, generator.Const(1), func(int) error {
		return errors.New("nope")
	},
		WithParameters(Parameters{MinSuccessful: 1, MaxDiscardedFactor: 1.0}),
		WithLogger(logger),
	)

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	require.NotEmpty(t, failed.RunID)

	start, ok := logger.find("property check started")
	require.True(t, ok, "a debug line must be emitted at check start")
	assert.Equal(t, failed.RunID, start.attr("check_id"))

	term, ok := logger.find("property check failed")
	require.True(t, ok, "a debug line must be emitted at termination")
	assert.Equal(t, failed.RunID, term.attr("check_id"))
}

func TestCheck1LogsStartAndTerminationOnSuccess(t *testing.T) {
	logger := &captureLogger{}
	err := Check1(PlainAsserting[error]{}, generator.Const(0), func(int) error {
		return nil
	},
		WithParameters(Parameters{MinSuccessful: 2, MaxDiscardedFactor: 1.0}),
		WithLogger(logger),
	)

	require.NoError(t, err)
	start, ok := logger.find("property check started")
	require.True(t, ok)
	term, ok := logger.find("property check succeeded")
	require.True(t, ok)
	assert.Equal(t, start.attr("check_id"), term.attr("check_id"))
	assert.NotEmpty(t, start.attr("check_id"))
}

func TestCheck1ExhaustedErrorCarriesRunID(t *testing.T) {
	err := Check1(PlainAsserting[error]{}, generator.Const(0), func(int) error {
		return ErrDiscard
	}, WithParameters(Parameters{MinSuccessful: 2, MaxDiscardedFactor: 1.0}))

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	assert.NotEmpty(t, failed.RunID)
}

func TestCheck1DefaultPositionPointsAtCaller(t *testing.T) {
	err := Check1(PlainAsserting[error]{}, generator.Const(1), func(int) error {
		return errors.New("nope")
	}, WithParameters(Parameters{MinSuccessful: 1, MaxDiscardedFactor: 1.0}))

	require.Error(t, err)
	var failed *CheckFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "check_test.go", failed.Pos.File)
}
