package state

import "github.com/k70suK3-k06a7ash1/monadic-go/shared/helper"

// Get yields the current state as the result, leaving it unchanged.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Put replaces the state unconditionally, ignoring the incoming one.
func Put[S any](next S) State[S, helper.Unit] {
	return func(_ S) (S, helper.Unit) {
		return next, helper.Unit{}
	}
}

// Modify applies a pure update function to the state.
func Modify[S any](f func(S) S) State[S, helper.Unit] {
	return func(s S) (S, helper.Unit) {
		return f(s), helper.Unit{}
	}
}

// Inspect reads the state through a view function without mutating it.
func Inspect[S, A any](view func(S) A) State[S, A] {
	return func(s S) (S, A) {
		return s, view(s)
	}
}
