package propcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactConstructors(t *testing.T) {
	yes := Yes("holds")
	assert.True(t, yes.IsYes())
	assert.False(t, yes.IsNo())
	assert.False(t, yes.IsVacuousYes())
	assert.Equal(t, "holds", yes.String())

	boom := errors.New("boom")
	no := No("does not hold", boom)
	assert.True(t, no.IsNo())
	assert.False(t, no.IsYes())
	assert.Equal(t, boom, no.Cause)

	vac := VacuousYes("precondition failed")
	assert.True(t, vac.IsYes())
	assert.True(t, vac.IsVacuousYes())
	assert.False(t, vac.IsNo())
}

func TestFactAssertingClassification(t *testing.T) {
	var strategy FactAsserting

	assert.False(t, strategy.Discard(Yes("ok")))
	assert.False(t, strategy.Discard(No("bad", nil)))
	assert.True(t, strategy.Discard(VacuousYes("skip")))

	ok, cause := strategy.Succeed(Yes("ok"))
	assert.True(t, ok)
	assert.NoError(t, cause)

	boom := errors.New("boom")
	ok, cause = strategy.Succeed(No("bad", boom))
	assert.False(t, ok)
	assert.Equal(t, boom, cause)
}

func TestFactAssertingSignals(t *testing.T) {
	var strategy FactAsserting

	yes := strategy.Succeeded(Position{})
	assert.True(t, yes.IsYes())
	assert.Equal(t, "Property check succeeded.", yes.Message)

	boom := errors.New("boom")
	no := strategy.Failed("rendered report", boom, []string{"l"}, Position{}, "run-1")
	assert.True(t, no.IsNo())
	assert.Equal(t, "rendered report", no.Message)
	assert.Equal(t, boom, no.Cause)
}

func TestPlainAssertingClassification(t *testing.T) {
	var strategy PlainAsserting[error]

	assert.True(t, strategy.Discard(ErrDiscard))
	assert.False(t, strategy.Discard(nil))
	assert.False(t, strategy.Discard(errors.New("other")))

	ok, cause := strategy.Succeed(nil)
	assert.True(t, ok)
	assert.NoError(t, cause)

	boom := errors.New("boom")
	ok, cause = strategy.Succeed(boom)
	assert.False(t, ok)
	assert.Equal(t, boom, cause)
}

func TestPlainAssertingNonErrorResultsAlwaysSucceed(t *testing.T) {
	var strategy PlainAsserting[string]

	assert.False(t, strategy.Discard("anything"))
	ok, cause := strategy.Succeed("anything")
	assert.True(t, ok)
	assert.NoError(t, cause)
}

func TestPlainAssertingSignals(t *testing.T) {
	var strategy PlainAsserting[error]

	assert.NoError(t, strategy.Succeeded(Position{}))

	boom := errors.New("boom")
	err := strategy.Failed("rendered report", boom, []string{"l"}, Position{File: "f.go", Line: 1}, "run-1")
	var failed *CheckFailedError
	assert.ErrorAs(t, err, &failed)
	assert.Equal(t, "rendered report", failed.Message)
	assert.Equal(t, "rendered report", failed.Error())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"l"}, failed.Labels)
	assert.Equal(t, Position{File: "f.go", Line: 1}, failed.Pos)
	assert.Equal(t, "run-1", failed.RunID)
}
