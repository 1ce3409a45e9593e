package arith

// Condition is a side condition gating a rewrite on concrete width and
// sign values extracted from the graph. Params lists the variable names
// the predicate reads, in exactly the order Test expects its argument
// slice; keeping the two in one record means the pairing cannot drift.
type Condition struct {
	Params []string
	Test   func(w []Width) bool
}

// Rule pairs a left-hand pattern with a right-hand pattern whose width
// slots are derived from the match. Rules are immutable after
// construction and safe for concurrent use.
type Rule struct {
	name string

	// most general lhs pattern
	lhs Pattern

	// rhs pattern with all widths derived from the lhs
	rhsDerived Pattern

	// side condition, nil if the rewrite is unconditional
	cond *Condition
}

// NewRule parses the textual patterns, verifies their width consistency,
// and returns an immutable rule. Rules are authored at build time, so
// malformed pattern text or a width inconsistency panics.
func NewRule(name, lhs, rhsDerived string, cond *Condition) *Rule {
	l := MustParsePattern(lhs)
	if err := CheckWidthConsistency(l); err != nil {
		panic(name + ": " + err.Error())
	}
	r := MustParsePattern(rhsDerived)
	if err := CheckWidthConsistency(r); err != nil {
		panic(name + ": " + err.Error())
	}
	return &Rule{name: name, lhs: l, rhsDerived: r, cond: cond}
}

// Name returns the rule name.
func (r *Rule) Name() string { return r.name }

// Patterns returns the left-hand pattern and the derived right-hand
// pattern. Callers must not modify them.
func (r *Rule) Patterns() (lhs, rhsDerived Pattern) {
	return r.lhs, r.rhsDerived
}

// Condition returns the rule's side condition, or nil if unconditional.
func (r *Rule) Condition() *Condition { return r.cond }

// EvalCondition applies the side condition to values, which must be in
// the same order as the condition's Params. Unconditional rules always
// return true.
func (r *Rule) EvalCondition(values []Width) bool {
	if r.cond == nil {
		return true
	}
	assert(len(values) == len(r.cond.Params),
		"rule %s: condition expects %d values, got %d", r.name, len(r.cond.Params), len(values))
	return r.cond.Test(values)
}

// EvalConditionAssignment evaluates the side condition against a named
// assignment. A required variable missing from the assignment means the
// condition cannot be proven and evaluates to false; this is not an
// error.
func (r *Rule) EvalConditionAssignment(assign Assignment) bool {
	if r.cond == nil {
		return true
	}
	values := make([]Width, len(r.cond.Params))
	for i, name := range r.cond.Params {
		v, ok := assign[name]
		if !ok {
			return false
		}
		values[i] = v
	}
	return r.cond.Test(values)
}
