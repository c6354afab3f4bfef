package helper

// Unit is a type alias for the empty struct, used where a computation has
// nothing meaningful to return (e.g. state.Put).
type Unit = struct{}

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument unchanged. It is the left and right identity
// of Comp.
func Iden[A any](a A) A {
	return a
}

// ConstOf returns a function that ignores its argument and always yields a.
func ConstOf[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Thunk wraps a value so it can be passed where a deferred computation is
// expected.
func Thunk[A any](a A) func() A {
	return func() A {
		return a
	}
}
