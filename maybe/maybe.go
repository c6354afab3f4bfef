package maybe

import "fmt"

// Maybe is a two-variant container: JustOf yields the variant holding
// exactly one value, NoneOf yields the absent variant. A value is always in
// exactly one of the two states; the zero value is None.
type Maybe[A any] struct {
	value A
	just  bool
}

// JustOf returns the present variant holding value.
func JustOf[A any](value A) Maybe[A] {
	return Maybe[A]{value: value, just: true}
}

// NoneOf returns the absent variant. The type parameter only pins the
// element type so the result unifies with JustOf values in the same chain.
func NoneOf[A any]() Maybe[A] {
	return Maybe[A]{}
}

// Pure lifts a plain value into the container with no other effect.
// It is JustOf under the name the capability contract uses.
func Pure[A any](value A) Maybe[A] {
	return JustOf(value)
}

// FromOk adapts the Go (value, ok) idiom: ok selects Just, otherwise None.
func FromOk[A any](value A, ok bool) Maybe[A] {
	if !ok {
		return NoneOf[A]()
	}
	return JustOf(value)
}

// IsJust reports whether the container holds a value.
func (ma Maybe[A]) IsJust() bool { return ma.just }

// IsNone reports whether the container is absent.
func (ma Maybe[A]) IsNone() bool { return !ma.just }

// Get is the pattern-matching extraction: the held value and whether it is
// present.
func (ma Maybe[A]) Get() (A, bool) {
	return ma.value, ma.just
}

// MustGet extracts the held value and panics on None. Use only where
// absence is a bug.
func (ma Maybe[A]) MustGet() A {
	if !ma.just {
		panic(fmt.Errorf("maybe: MustGet on None"))
	}
	return ma.value
}

// GetOrElse extracts the held value, or fallback on None.
func (ma Maybe[A]) GetOrElse(fallback A) A {
	if !ma.just {
		return fallback
	}
	return ma.value
}

// OrElse keeps ma when present, otherwise yields other.
func (ma Maybe[A]) OrElse(other Maybe[A]) Maybe[A] {
	if ma.just {
		return ma
	}
	return other
}

// Filter collapses Just to None when the predicate rejects the held value.
// None is absorbing: the predicate is never invoked on it.
func (ma Maybe[A]) Filter(pred func(A) bool) Maybe[A] {
	if !ma.just || pred(ma.value) {
		return ma
	}
	return NoneOf[A]()
}

// String implements fmt.Stringer for readable test output.
func (ma Maybe[A]) String() string {
	if !ma.just {
		return "None"
	}
	return fmt.Sprintf("Just(%v)", ma.value)
}

// Bind sequences a computation: feeds the held value into f, which decides
// the next container. None short-circuits — f is never invoked and no
// effect of f can occur.
func Bind[A, B any](ma Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !ma.just {
		return NoneOf[B]()
	}
	return f(ma.value)
}

// Map applies a pure function to the held value. Implemented directly, but
// observably equal to Bind(ma, a => Pure(f(a))).
func Map[A, B any](ma Maybe[A], f func(A) B) Maybe[B] {
	if !ma.just {
		return NoneOf[B]()
	}
	return JustOf(f(ma.value))
}

// Then sequences two computations discarding the first result. The second
// step is a thunk so that None still short-circuits without evaluating it.
func Then[A, B any](ma Maybe[A], next func() Maybe[B]) Maybe[B] {
	if !ma.just {
		return NoneOf[B]()
	}
	return next()
}

// Flatten collapses one level of nesting.
func Flatten[A any](mma Maybe[Maybe[A]]) Maybe[A] {
	if !mma.just {
		return NoneOf[A]()
	}
	return mma.value
}

// Fold eliminates the container: onJust for the present variant, onNone for
// the absent one.
func Fold[A, B any](ma Maybe[A], onJust func(A) B, onNone func() B) B {
	if !ma.just {
		return onNone()
	}
	return onJust(ma.value)
}

// Equals compares two containers given equality on the element type.
// Two Nones are equal regardless of how they were produced.
func Equals[A any](ma, mb Maybe[A], eq func(A, A) bool) bool {
	if ma.just != mb.just {
		return false
	}
	if !ma.just {
		return true
	}
	return eq(ma.value, mb.value)
}
