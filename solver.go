package arith

// SolverRule is a rewrite in the form consumed by the saturation engine:
// a searchable left-hand pattern plus an applier that, given one match,
// decides whether to fire and performs the insert-and-union. The applier
// carries the side-condition guard, so the engine needs no knowledge of
// conditions.
type SolverRule struct {
	Name string
	LHS  Pattern
	RHS  Pattern

	// Apply fires the rewrite for a single substitution at eclass and
	// reports whether it fired. A guard failure, including a condition
	// variable with no resolvable constant, is a non-firing, not an
	// error.
	Apply func(g Graph, eclass EClassID, subst Substitution) bool
}

// SolverRules converts the rule into external rewrite records. An
// unconditional rule exports a single direct rewrite; a conditional rule
// exports a rewrite whose applier resolves the condition variables
// through the graph's constant lookup and fires only if every variable
// resolves and the condition holds.
func (r *Rule) SolverRules() []SolverRule {
	if r.cond == nil {
		rhs := r.rhsDerived
		return []SolverRule{{
			Name: r.name,
			LHS:  r.lhs,
			RHS:  rhs,
			Apply: func(g Graph, eclass EClassID, subst Substitution) bool {
				g.InsertAndUnion(rhs, subst, eclass)
				return true
			},
		}}
	}

	cond := r.cond
	rule := r
	return []SolverRule{{
		Name: r.name,
		LHS:  r.lhs,
		RHS:  r.rhsDerived,
		Apply: func(g Graph, eclass EClassID, subst Substitution) bool {
			values := make([]Width, len(cond.Params))
			for i, name := range cond.Params {
				id, ok := subst[name]
				if !ok {
					return false
				}
				v, ok := g.ResolveConst(id)
				if !ok {
					return false
				}
				values[i] = v
			}
			if !cond.Test(values) {
				return false
			}
			g.InsertAndUnion(rule.rhsDerived, subst, eclass)
			return true
		},
	}}
}

// ToSolverRuleSet flattens every rule's exported records in catalog
// order. Order affects the solver's exploration, not soundness.
func ToSolverRuleSet(catalog []*Rule) []SolverRule {
	var rules []SolverRule
	for _, r := range catalog {
		rules = append(rules, r.SolverRules()...)
	}
	return rules
}
