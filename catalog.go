package arith

// NewCatalog returns the rewrite-rule catalog. The catalog is built once
// at startup, validated during construction, and immutable thereafter;
// pass it explicitly to consumers rather than holding it in a global.
func NewCatalog() []*Rule {
	return []*Rule{
		// a + b => b + a
		NewRule("commute-add",
			"(+ ?wo ?wa ?sa ?a ?wb ?sb ?b)",
			"(+ ?wo ?wb ?sb ?b ?wa ?sa ?a)",
			nil),

		// a * b => b * a
		NewRule("commute-mul",
			"(* ?wo ?wa ?sa ?a ?wb ?sb ?b)",
			"(* ?wo ?wb ?sb ?b ?wa ?sa ?a)",
			nil),

		// (a << b) << c => a << (b + c)
		//
		// b, c and (b + c) are all unsigned: a wrapped (b + c) would
		// always shift to zero. The value being shifted keeps its sign.
		// The merged amount width is max(wb, wc) + 1 so the sum cannot
		// wrap.
		NewRule("merge-left-shift",
			"(<< ?wo ?wab ?sa (<< ?wab ?wa ?sa ?a ?wb unsign ?b) ?wc unsign ?c)",
			"(<< ?wo ?wa ?sa ?a (max+1 ?wb ?wc) unsign (+ (max+1 ?wb ?wc) ?wb unsign ?b ?wc unsign ?c))",
			&Condition{
				// wab >= wo: the intermediate shift must be at least as
				// wide as the final output or collapsing the two shifts
				// loses truncation.
				Params: []string{"wo", "wab"},
				Test:   func(w []Width) bool { return w[1] >= w[0] },
			}),

		// a << (b + c) => (a << b) << c
		//
		// The intermediate value width is set to the minimum that cannot
		// overflow.
		NewRule("unmerge-left-shift",
			"(<< ?wo ?wa ?sa ?a ?wbc unsign (+ ?wbc ?wb unsign ?b ?wc unsign ?c))",
			"(<< ?wo (wlsh ?wa ?wb) ?sa (<< (wlsh ?wa ?wb) ?wa ?sa ?a ?wb unsign ?b) ?wc unsign ?c)",
			&Condition{
				// wbc >= max(wb, wc) + 1: the combined amount could not
				// itself have wrapped, so the split is lossless.
				Params: []string{"wbc", "wb", "wc"},
				Test:   func(w []Width) bool { return w[0] >= MaxPlus1(w[1], w[2]) },
			}),

		// a * 2 <=> a + a
		NewRule("mult-to-add",
			"(* ?wo ?wa ?sa ?a ?wb ?sb 2)",
			"(+ ?wo ?wa ?sa ?a ?wa ?sa ?a)",
			&Condition{
				// (!sb && wb > 1) || (sb && wb > 2) || (wo <= wb): the
				// literal 2 must be representable at its declared
				// width/sign, or the output truncates to no wider than
				// the multiplier. The three disjuncts are each
				// load-bearing; do not simplify.
				Params: []string{"wb", "sb", "wo"},
				Test: func(w []Width) bool {
					return (w[1] == 0 && w[0] > 1) || (w[1] == 1 && w[0] > 2) || w[2] <= w[0]
				},
			}),

		// (a * b) << c => (a << c) * b
		//
		// All signs are forced to unsigned. The reassociated
		// intermediate width is set to the minimum that cannot overflow.
		NewRule("left-shift-mult",
			"(<< ?wo ?wab unsign (* ?wab ?wa unsign ?a ?wb unsign ?b) ?wc unsign ?c)",
			"(* ?wo (wlsh ?wa ?wc) unsign (<< (wlsh ?wa ?wc) ?wa unsign ?a ?wc unsign ?c) ?wb unsign ?b)",
			&Condition{
				// Both evaluation orders must be overflow-free:
				// lhs: wab >= wa + wb and wo >= wab + maxshift(wc);
				// rhs follows from the same bounds with the derived
				// intermediate width.
				Params: []string{"wab", "wa", "wb", "wo", "wc"},
				Test: func(w []Width) bool {
					return MulNoOverflow(w[0], w[1], w[2]) && ShiftNoOverflow(w[3], w[0], w[4])
				},
			}),
	}
}
