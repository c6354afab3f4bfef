// Package state provides the state-passing container: a wrapper around a
// pure transition function from an input state to an (output state, result)
// pair. Combinators thread a single state value left to right through a
// chain of steps without any shared mutable variable; the container itself
// is an immutable value and may be re-run with different initial states.
//
// Transition functions must be deterministic and side-effect-free: calling
// one twice with the same input state must yield the same output pair.
// That is a precondition of every combinator here, not something they check.
package state

// State wraps a pure transition function S -> (S, A).
type State[S, A any] func(S) (S, A)

// Of wraps a raw transition function. The function must be pure.
func Of[S, A any](transition func(S) (S, A)) State[S, A] {
	return transition
}

// Pure lifts a plain value: the transition passes the state through
// untouched and yields the value.
func Pure[S, A any](value A) State[S, A] {
	return func(s S) (S, A) {
		return s, value
	}
}

// Bind sequences two stateful steps. Given an initial state, it runs ma
// first, then feeds the intermediate result into f and runs the resulting
// step on the intermediate state. Threading is strictly sequential: the
// state produced by step i is the state consumed by step i+1, and the two
// transitions are never reordered.
func Bind[S, A, B any](ma State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (S, B) {
		s2, a := ma(s)
		return f(a)(s2)
	}
}

// Map applies a pure function to the result of a step. The state threading
// is untouched; observably equal to Bind(ma, a => Pure(f(a))).
func Map[S, A, B any](ma State[S, A], f func(A) B) State[S, B] {
	return func(s S) (S, B) {
		s2, a := ma(s)
		return s2, f(a)
	}
}

// Then sequences two steps discarding the first result. State still flows
// through both, in order.
func Then[S, A, B any](ma State[S, A], mb State[S, B]) State[S, B] {
	return func(s S) (S, B) {
		s2, _ := ma(s)
		return mb(s2)
	}
}

// Run is the terminal operation: applies the composed transition to an
// initial state and returns the (final state, result) pair. The container
// is just a function, so running it again with the same initial state
// yields the identical pair.
func (m State[S, A]) Run(initial S) (S, A) {
	return m(initial)
}

// Eval runs the computation and keeps only the result.
func (m State[S, A]) Eval(initial S) A {
	_, a := m(initial)
	return a
}

// Exec runs the computation and keeps only the final state.
func (m State[S, A]) Exec(initial S) S {
	s, _ := m(initial)
	return s
}
