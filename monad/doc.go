// Package monad defines the capability contract shared by the container
// types in this repository: the optional-value container (package maybe)
// and the state-passing container (package state).
//
// # The contract
//
// A monad instance is a single-type-parameter container M together with two
// primitive operations and one derived operation:
//
//	Pure(a)      lift a plain value into the container, with no other effect
//	Bind(ma, f)  sequence a computation: feed the contained value into f,
//	             which produces the next container
//	Map(ma, f)   derived: Bind(ma, func(a) { return Pure(f(a)) })
//
// Go has no higher-kinded type parameters, so the contract cannot be a
// single generic interface ranging over container kinds. Instead each
// instance package provides the operations as package-level generic
// functions over its own concrete type:
//
//	maybe.Pure, maybe.Bind, maybe.Map
//	state.Pure, state.Bind, state.Map
//
// An instance may implement Map directly instead of going through Bind, as
// both instance packages here do, but the two formulations must be
// observably equivalent. The law predicates in this package make that
// requirement executable.
//
// # The laws
//
// Every instance must satisfy, for all values and functions of fitting type:
//
//	left identity:   Bind(Pure(a), f)      ≡ f(a)
//	right identity:  Bind(ma, Pure)        ≡ ma
//	associativity:   Bind(Bind(ma, f), g)  ≡ Bind(ma, func(a) { return Bind(f(a), g) })
//	map via bind:    Map(ma, f)            ≡ Bind(ma, func(a) { return Pure(f(a)) })
//
// "≡" means observably equal: equal under pattern matching for the
// optional-value container, equal (state, result) pairs under Run for the
// state-passing container.
//
// # Comprehension desugaring
//
// Languages with comprehension syntax desugar a block of bindings into
// nested Bind calls with a final Map:
//
//	for { a <- ma; b <- f(a); if p(a, b) } yield g(a, b)
//
// becomes, in this repository:
//
//	maybe.Bind(ma, func(a A) maybe.Maybe[C] {
//	    return maybe.Map(f(a).Filter(func(b B) bool { return p(a, b) }),
//	        func(b B) C { return g(a, b) })
//	})
//
// Evaluation is strictly left to right. The moment any step (or an
// interposed filter) produces the absent variant, no downstream function
// runs: continuations passed to Bind are simply never invoked.
package monad
