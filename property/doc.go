// Package property is the C5 layer: one type per named mathematical
// property a graph can be statically known to satisfy. Every wrapper
// here follows the three rules ensure.Base establishes (validated
// wrapping, payload threading, unwrapping) by embedding its inner graph
// G anonymously and overriding only the methods its property constrains
// -- every other capability of G, including capabilities added by
// deeper layers, is inherited unchanged through Go's method promotion.
//
// Stacking two wrappers (property.Connected[property.Unique[G, ...], ...])
// is real generic type nesting: the resulting type asserts the
// conjunction of both properties, and any function whose signature
// demands either accepts it, with no runtime property registry.
package property
