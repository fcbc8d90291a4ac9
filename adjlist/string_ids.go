package adjlist

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/graphene/graph"
)

// UUIDIDFn mints a fresh string vertex identity on every call, ignoring
// the zero-based index (the uuid generator provides uniqueness directly).
// This is the default identity generator used by NewString.
func UUIDIDFn(_ int) string {
	return uuid.New().String()
}

// NewString constructs an AdjList[string, Vw, Ew, D] whose fresh vertex
// identities are minted by google/uuid rather than by the caller, for
// the common case of string-keyed graphs.
func NewString[Vw any, Ew any, D graph.Directedness]() *AdjList[string, Vw, Ew, D] {
	return New[string, Vw, Ew, D](UUIDIDFn)
}
