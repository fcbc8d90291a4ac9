package ensure

// Base is the trivial ensurement (Rule 1): every concrete graph G is
// ensured as itself at the empty property level. Base embeds G
// anonymously, so Base[G] satisfies every capability interface G does --
// it is a zero-cost wrapper, present only so that "the empty property
// level" is a nameable type symmetric with every property wrapper in
// property/, which also embed their inner graph the same way.
type Base[G any] struct {
	G
}

// Ensure wraps g at the empty property level. It never fails: the
// identity ensurer validates every input.
func Ensure[G any](g G) Base[G] {
	return Base[G]{G: g}
}

// Release peels the Base wrapper back to the bare graph. Since Base
// carries no payload, this is the whole of release_all for a stack whose
// only layer was Base.
func (b Base[G]) Release() G {
	return b.G
}
