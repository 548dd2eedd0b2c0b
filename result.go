package propcheck

// CheckStatus classifies the terminal state of a property check.
type CheckStatus int

const (
	// CheckSuccess means the property was validated the required number of
	// times.
	CheckSuccess CheckStatus = iota
	// CheckFailure means the property failed or the predicate raised an
	// unexpected error.
	CheckFailure
	// CheckExhausted means too many evaluations were discarded before the
	// required number of successes was reached.
	CheckExhausted
)

func (s CheckStatus) String() string {
	switch s {
	case CheckSuccess:
		return "SUCCESS"
	case CheckFailure:
		return "FAILURE"
	case CheckExhausted:
		return "EXHAUSTED"
	}
	return "UNKNOWN"
}

// PropertyArgument records a value that was fed to the predicate at one
// position. An empty Label marks the argument as unlabeled, the reporter
// then falls back to an index based name.
type PropertyArgument struct {
	Label string
	Value any
}

// HasLabel reports whether the argument carries an explicit name.
func (a PropertyArgument) HasLabel() bool {
	return a.Label != ""
}

// PropertyCheckResult is the terminal value of one check invocation. It is
// immutable once produced.
//
// Args always holds exactly one entry per predicate parameter, in parameter
// order, describing the tuple of the final evaluation.
type PropertyCheckResult struct {
	Status    CheckStatus
	Succeeded int
	Discarded int
	Cause     error
	Names     []string
	Args      []PropertyArgument
	Labels    []string
}
