package ensure

// Pair composes two payload items: "the payload of a stacked wrapper is
// the pair (this level's payload, next level's payload)" (spec.md §3).
// No wrapper in property/ uses it yet: VertexInGraph keeps its N pinned
// vertices in a plain slice.
type Pair[A any, B any] struct {
	First  A
	Second B
}
