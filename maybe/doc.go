// Package maybe provides the optional-value container: a two-variant type
// holding either exactly one value (Just) or nothing (None).
//
// Failure is data here, not control flow. None is absorbing under Bind and
// Filter: once a step in a chain produces None, every downstream
// continuation is skipped and the whole chain evaluates to None. Callers
// recover by pattern matching (Get), by supplying a default (GetOrElse,
// OrElse), or by eliminating both variants at once (Fold).
//
// Comprehension-style chains are written as nested Bind calls with a final
// Map; see the package monad documentation for the desugaring rules.
package maybe
