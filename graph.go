package arith

// EClassID identifies an equivalence class in a graph. IDs are opaque to
// this package; only the graph that issued one can interpret it.
type EClassID uint32

// Substitution binds pattern variable names to equivalence classes.
// Produced by Graph.Search; consumed, never mutated, by this package.
type Substitution map[string]EClassID

// SearchResult holds every substitution under which a pattern matches a
// single equivalence class.
type SearchResult struct {
	EClass EClassID
	Substs []Substitution
}

// Graph is the contract this package requires from an equality
// saturation engine. The engine owns equivalence classes, congruence
// closure, and matching; this package only authors the rules.
//
// Search and ResolveConst must not mutate the graph. Callers are
// responsible for not interleaving them with a mutating saturation step.
type Graph interface {
	// Search returns every equivalence class containing a match of p,
	// with all substitutions found at that class.
	Search(p Pattern) []SearchResult

	// ResolveConst returns the constant value annotated on an
	// equivalence class, if the graph's constant-folding analysis has
	// derived one. Width constants resolve to their value; sign
	// constants resolve to 0 (unsigned) or 1 (signed).
	ResolveConst(id EClassID) (Width, bool)

	// InsertAndUnion instantiates p under subst, inserts it, and unions
	// the resulting class with target.
	InsertAndUnion(p Pattern, subst Substitution, target EClassID)
}

// Assignment maps pattern variable names to concrete constant values.
// Partial: variables whose class has no known constant are absent.
type Assignment map[string]Width

// ExtractAssignment resolves every variable of pattern through subst and
// the graph's constant lookup. Variables with no resolvable constant are
// simply left out; extraction never fails and never mutates the graph.
func ExtractAssignment(g Graph, subst Substitution, pattern Pattern) Assignment {
	assign := make(Assignment)
	for _, name := range PatternVars(pattern) {
		id, ok := subst[name]
		if !ok {
			continue
		}
		if v, ok := g.ResolveConst(id); ok {
			assign[name] = v
		}
	}
	return assign
}
