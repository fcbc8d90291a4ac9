// Package ensure implements the property framework's base case and
// payload composition (C3 in the design): Rule 1 (any concrete graph is
// trivially ensured as itself), and the two error kinds a validate
// predicate or a mutation contract can fail with.
//
// Rule 2 (a wrapper declares Ensured/payload/validate/ensure_unchecked)
// and Rule 3 (release is the inverse) are realized per property in the
// property package rather than once generically here: Go has no
// higher-kinded generics, so "ensure_all" and "release_all" cannot be
// written once over an arbitrary wrapper stack without erasing the
// static type of each layer. See SPEC_FULL.md §5 (C3) and DESIGN.md for
// why that tradeoff was made deliberately rather than by omission.
package ensure
