package egraph

import (
	"fmt"

	"github.com/arithlab/arith"
)

// Search returns every class containing a match of p, with all
// substitutions found there. It never mutates the graph, so it may run
// concurrently with other readers; callers must not interleave it with a
// saturation step.
func (g *EGraph) Search(p arith.Pattern) []arith.SearchResult {
	var results []arith.SearchResult
	for i := range g.parents {
		id := arith.EClassID(i)
		if g.find(id) != id {
			continue
		}
		if substs := g.match(p, id, arith.Substitution{}); len(substs) > 0 {
			results = append(results, arith.SearchResult{EClass: id, Substs: substs})
		}
	}
	return results
}

// match returns every extension of subst under which p matches class id.
func (g *EGraph) match(p arith.Pattern, id arith.EClassID, subst arith.Substitution) []arith.Substitution {
	id = g.find(id)

	switch p := p.(type) {
	case *arith.VarPattern:
		if bound, ok := subst[p.Name]; ok {
			if g.find(bound) == id {
				return []arith.Substitution{subst}
			}
			return nil
		}
		next := cloneSubst(subst)
		next[p.Name] = id
		return []arith.Substitution{next}

	case *arith.ConstPattern:
		for _, n := range g.class(id).nodes {
			if n.op == opNum && n.val == p.Value {
				return []arith.Substitution{subst}
			}
		}
		return nil

	case *arith.SignPattern:
		for _, n := range g.class(id).nodes {
			if n.op == opSign && n.val == arith.Width(p.Sign) {
				return []arith.Substitution{subst}
			}
		}
		return nil

	case *arith.BinaryPattern:
		return g.matchNodes(id, p.Op.String(), subst,
			p.OutWidth, p.WidthA, p.SignA, p.A, p.WidthB, p.SignB, p.B)

	case *arith.WidthOpPattern:
		return g.matchNodes(id, p.Op.String(), subst, p.A, p.B)

	default:
		panic("unreachable")
	}
}

// matchNodes matches the slot patterns against the children of every
// node in class id carrying the given operator tag.
func (g *EGraph) matchNodes(id arith.EClassID, op string, subst arith.Substitution, slots ...arith.Pattern) []arith.Substitution {
	var out []arith.Substitution
	for _, n := range g.class(id).nodes {
		if n.op != op || len(n.kids) != len(slots) {
			continue
		}
		substs := []arith.Substitution{subst}
		for i, slot := range slots {
			var next []arith.Substitution
			for _, s := range substs {
				next = append(next, g.match(slot, n.kids[i], s)...)
			}
			if substs = next; len(substs) == 0 {
				break
			}
		}
		out = append(out, substs...)
	}
	return out
}

// InsertAndUnion instantiates p under subst, inserts it into the graph,
// and unions the result with target. The graph needs a Rebuild before
// the next search.
func (g *EGraph) InsertAndUnion(p arith.Pattern, subst arith.Substitution, target arith.EClassID) {
	g.union(g.instantiate(p, subst), target)
}

// instantiate adds the concrete expression obtained by substituting
// every variable of p through subst.
func (g *EGraph) instantiate(p arith.Pattern, subst arith.Substitution) arith.EClassID {
	switch p := p.(type) {
	case *arith.VarPattern:
		id, ok := subst[p.Name]
		if !ok {
			panic(fmt.Sprintf("egraph: unbound pattern variable ?%s", p.Name))
		}
		return g.find(id)
	case *arith.ConstPattern:
		return g.Num(p.Value)
	case *arith.SignPattern:
		return g.SignConst(p.Sign)
	case *arith.WidthOpPattern:
		return g.add(enode{op: p.Op.String(), kids: []arith.EClassID{
			g.instantiate(p.A, subst),
			g.instantiate(p.B, subst),
		}})
	case *arith.BinaryPattern:
		return g.add(enode{op: p.Op.String(), kids: []arith.EClassID{
			g.instantiate(p.OutWidth, subst),
			g.instantiate(p.WidthA, subst),
			g.instantiate(p.SignA, subst),
			g.instantiate(p.A, subst),
			g.instantiate(p.WidthB, subst),
			g.instantiate(p.SignB, subst),
			g.instantiate(p.B, subst),
		}})
	default:
		panic("unreachable")
	}
}

func cloneSubst(s arith.Substitution) arith.Substitution {
	next := make(arith.Substitution, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	return next
}
