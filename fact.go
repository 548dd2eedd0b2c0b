package propcheck

// Fact is a ternary predicate result: yes, no, or vacuous yes. A vacuous
// yes means the property held only because its precondition did not, such
// evaluations are discarded rather than counted.
type Fact struct {
	value   bool
	vacuous bool

	// Message describes the fact. For a no produced by a check it contains
	// the full rendered failure report.
	Message string
	// Cause carries the underlying error of a no, when there is one.
	Cause error
}

// Yes returns a positive fact.
func Yes(message string) Fact {
	return Fact{value: true, Message: message}
}

// No returns a negative fact with an optional underlying cause.
func No(message string, cause error) Fact {
	return Fact{Message: message, Cause: cause}
}

// VacuousYes returns a positive fact that only holds vacuously.
func VacuousYes(message string) Fact {
	return Fact{value: true, vacuous: true, Message: message}
}

// IsYes reports whether the fact is positive, vacuous or not.
func (f Fact) IsYes() bool {
	return f.value
}

// IsNo reports whether the fact is negative.
func (f Fact) IsNo() bool {
	return !f.value
}

// IsVacuousYes reports whether the fact is positive but vacuous.
func (f Fact) IsVacuousYes() bool {
	return f.value && f.vacuous
}

func (f Fact) String() string {
	return f.Message
}

// FactAsserting classifies ternary Fact results: a vacuous yes discards, a
// yes succeeds and a no fails with the fact's cause. Success and failure
// are signalled by producing Fact values rather than errors, so a failing
// check never panics and never returns an error, it returns a no.
type FactAsserting struct{}

func (FactAsserting) Discard(result Fact) bool {
	return result.IsVacuousYes()
}

func (FactAsserting) Succeed(result Fact) (bool, error) {
	if result.IsYes() {
		return true, nil
	}
	return false, result.Cause
}

func (FactAsserting) Succeeded(Position) Fact {
	return Yes(successMessage)
}

func (FactAsserting) Failed(message string, cause error, labels []string, pos Position, runID string) Fact {
	return No(message, cause)
}
