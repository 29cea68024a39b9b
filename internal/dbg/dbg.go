// Package dbg provides invariant-checking and tracing helpers shared by the
// core packages.
//
// Assert is always active: the invariants it guards (hash-consing identity,
// canonical-tree shape, Swiss-table occupancy) are the kind of programming
// errors that the specification classifies as InvariantViolation, and those
// must never silently slip through in a release build. Log is gated behind
// the "mimirtrace" build tag because it walks the call stack on every
// invocation and is only meant for interactive debugging of the encoder and
// the Swiss table.
package dbg

import (
	"fmt"

	"github.com/timandy/routine"
)

// Assert panics with an error carrying enough context to locate the violated
// invariant if cond is false.
//
// Callers should only use Assert for conditions that, if violated, indicate
// a bug in the core itself (broken hash-consing, a malformed canonical tree,
// a Swiss-table probe that failed to terminate) — never for malformed external
// input, which must be reported as a MalformedInput error instead.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(&InvariantViolation{Message: fmt.Sprintf(format, args...)})
	}
}

// InvariantViolation is the panic value raised by Assert.
//
// It is exported so that a caller operating multiple independent problems
// concurrently (§5) can recover it at the goroutine boundary and attribute
// the failure, rather than letting a single corrupted repository take down
// unrelated work.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return "mimir: internal invariant violation: " + e.Message
}

// GoroutineID returns an identifier for the calling goroutine.
//
// The single-writer discipline in §5 requires that a repository, pool or
// hash map never observe interleaved mutations from two goroutines. No
// owner records or checks a GoroutineID; the discipline is left to callers.
func GoroutineID() int64 {
	return routine.Goid()
}
