package ensure

import "errors"

// ErrConstructionRejected is returned when ensuring a graph into a
// property wrapper fails because the graph does not currently satisfy
// that property (spec-level error kind 3).
var ErrConstructionRejected = errors.New("ensure: construction rejected, graph does not satisfy property")

// ErrInvariantViolation is returned when a mutation on an already-ensured
// graph would break one of its active properties; the graph is left
// unchanged (spec-level error kind 2).
var ErrInvariantViolation = errors.New("ensure: mutation would violate an active property")
