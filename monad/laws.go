package monad

// Executable forms of the contract laws. Go cannot quantify over the
// container kind, so each instance passes its own Pure/Bind/Map as function
// values together with an observational equality. The instance test suites
// call these over randomized inputs.

// LeftIdentity reports whether Bind(Pure(a), f) ≡ f(a).
func LeftIdentity[A, MA, MB any](
	pure func(A) MA,
	bind func(MA, func(A) MB) MB,
	eq func(MB, MB) bool,
	a A,
	f func(A) MB,
) bool {
	return eq(bind(pure(a), f), f(a))
}

// RightIdentity reports whether Bind(ma, Pure) ≡ ma.
func RightIdentity[A, MA any](
	pure func(A) MA,
	bind func(MA, func(A) MA) MA,
	eq func(MA, MA) bool,
	ma MA,
) bool {
	return eq(bind(ma, pure), ma)
}

// Associativity reports whether Bind(Bind(ma, f), g) ≡ Bind(ma, a => Bind(f(a), g)).
// The three bind parameters are the same operation at the three element
// types the law mentions.
func Associativity[A, B, MA, MB, MC any](
	bindAB func(MA, func(A) MB) MB,
	bindBC func(MB, func(B) MC) MC,
	bindAC func(MA, func(A) MC) MC,
	eq func(MC, MC) bool,
	ma MA,
	f func(A) MB,
	g func(B) MC,
) bool {
	left := bindBC(bindAB(ma, f), g)
	right := bindAC(ma, func(a A) MC { return bindBC(f(a), g) })
	return eq(left, right)
}

// MapViaBind reports whether the instance's direct Map agrees with the
// derived form Bind(ma, a => Pure(f(a))).
func MapViaBind[A, B, MA, MB any](
	pure func(B) MB,
	bind func(MA, func(A) MB) MB,
	mapped func(MA, func(A) B) MB,
	eq func(MB, MB) bool,
	ma MA,
	f func(A) B,
) bool {
	derived := bind(ma, func(a A) MB { return pure(f(a)) })
	return eq(mapped(ma, f), derived)
}
