package arith

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Match describes one place a rule's left-hand side matched, together
// with the constant values that could be extracted and whether the side
// condition held. Matches are diagnostic records, never persisted.
type Match struct {
	EClass     EClassID
	Assign     Assignment
	CondResult bool
}

// FindMatches searches the graph for every instance of the rule's
// left-hand side and reports one Match per substitution, carrying its
// extracted assignment and the condition result for that assignment.
//
// This answers "why did (or didn't) this rule fire here" without
// mutating the graph. It re-extracts constants per substitution, so keep
// it off the saturation hot path.
func (r *Rule) FindMatches(g Graph) []Match {
	var matches []Match
	for _, result := range g.Search(r.lhs) {
		for _, subst := range result.Substs {
			assign := ExtractAssignment(g, subst, r.lhs)
			matches = append(matches, Match{
				EClass:     result.EClass,
				Assign:     assign,
				CondResult: r.EvalConditionAssignment(assign),
			})
		}
	}
	return matches
}

// DumpMatches writes a verbose rendering of matches to w for debugging.
func DumpMatches(w io.Writer, matches []Match) {
	spew.Fdump(w, matches)
}
