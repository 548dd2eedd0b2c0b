// Package propcheck is a property-based check-execution engine: given a
// predicate over one to six generated arguments, it drives a
// generate-evaluate-classify loop until the predicate has been validated
// enough times, discarded too often, or has failed, and renders a
// structured report.
//
// Value generation is an external capability consumed through the
// generator.Generator interface. The engine owns size scheduling, edge-case
// pool threading, random-state threading, outcome classification and
// reporting. How success and failure are signalled is selected by an
// Asserting strategy: PlainAsserting returns a nil or *CheckFailedError
// error, FactAsserting produces Fact values, and the AsyncCheck functions
// deliver the outcome through a Future.
//
// All state of a check (random state, edge pools, counters) is local to the
// invocation and threaded explicitly, so any number of checks may run
// concurrently without sharing anything.
package propcheck
