// Package egraph implements a small equality-saturation engine for
// width-annotated bit-vector expressions. It provides the graph service
// the arith package exports its rewrite rules to: hash-consed e-nodes,
// union-find over equivalence classes, congruence rebuilding, and a
// constant analysis that annotates classes holding known width or sign
// values.
package egraph

import (
	"fmt"
	"strings"

	"github.com/arithlab/arith"
	"github.com/benbjohnson/immutable"
)

// Ensure graph implements the rule engine's contract.
var _ arith.Graph = (*EGraph)(nil)

// Leaf and operator tags for e-nodes. Binary arithmetic tags reuse the
// pattern-syntax spelling so instantiated patterns and ground
// expressions hash identically.
const (
	opNum  = "num"
	opSign = "sign"
	opSym  = "sym"
)

// enode is an operator applied to equivalence-class children, or a leaf.
type enode struct {
	op   string
	val  arith.Width // numeric value for num & sign leaves
	name string      // symbol name for sym leaves
	kids []arith.EClassID
}

// key returns the hash-cons key for the node. Children must already be
// canonical.
func (n *enode) key() string {
	var sb strings.Builder
	sb.WriteString(n.op)
	switch n.op {
	case opNum, opSign:
		fmt.Fprintf(&sb, ":%d", n.val)
	case opSym:
		sb.WriteString(":")
		sb.WriteString(n.name)
	}
	for _, k := range n.kids {
		fmt.Fprintf(&sb, ",%d", k)
	}
	return sb.String()
}

// eclass is the per-class state: the nodes it contains and the constant
// value the analysis has derived for it, if any.
type eclass struct {
	nodes    []enode
	constVal *arith.Width
}

// EGraph partitions expressions into equivalence classes. The zero value
// is not usable; call New.
type EGraph struct {
	parents []arith.EClassID
	classes []*eclass

	// hash-cons table from node key to class. Immutable so diagnostic
	// readers can hold a snapshot while the graph moves on.
	memo *immutable.SortedMap

	nnodes int
	unions int
}

// New returns an empty graph.
func New() *EGraph {
	return &EGraph{memo: immutable.NewSortedMap(&stringComparer{})}
}

// NumClasses returns the number of live equivalence classes.
func (g *EGraph) NumClasses() int {
	n := 0
	for id := range g.parents {
		if g.find(arith.EClassID(id)) == arith.EClassID(id) {
			n++
		}
	}
	return n
}

// NumNodes returns the number of e-nodes in the graph.
func (g *EGraph) NumNodes() int { return g.nnodes }

// Classes returns the ids of all live equivalence classes in ascending
// order.
func (g *EGraph) Classes() []arith.EClassID {
	var ids []arith.EClassID
	for i := range g.parents {
		if id := arith.EClassID(i); g.find(id) == id {
			ids = append(ids, id)
		}
	}
	return ids
}

// Find returns the canonical class for id.
func (g *EGraph) Find(id arith.EClassID) arith.EClassID { return g.find(id) }

// find walks to the union-find root. It never path-compresses so that
// read-only queries stay read-only.
func (g *EGraph) find(id arith.EClassID) arith.EClassID {
	for g.parents[id] != id {
		id = g.parents[id]
	}
	return id
}

func (g *EGraph) class(id arith.EClassID) *eclass {
	return g.classes[g.find(id)]
}

// Num returns the class holding the numeric constant v.
func (g *EGraph) Num(v arith.Width) arith.EClassID {
	return g.add(enode{op: opNum, val: v})
}

// SignConst returns the class holding the sign tag s.
func (g *EGraph) SignConst(s arith.Sign) arith.EClassID {
	return g.add(enode{op: opSign, val: arith.Width(s)})
}

// Symbol returns the class holding the free symbol name.
func (g *EGraph) Symbol(name string) arith.EClassID {
	return g.add(enode{op: opSym, name: name})
}

// BinOp returns the class for a binary arithmetic operation with the
// canonical seven-slot shape: output width, then width, sign, and
// operand for each side. Width and sign leaves are interned on the way.
func (g *EGraph) BinOp(op arith.BinaryOp, wo arith.Width, wa arith.Width, sa arith.Sign, a arith.EClassID, wb arith.Width, sb arith.Sign, b arith.EClassID) arith.EClassID {
	return g.add(enode{op: op.String(), kids: []arith.EClassID{
		g.Num(wo),
		g.Num(wa), g.SignConst(sa), a,
		g.Num(wb), g.SignConst(sb), b,
	}})
}

// add hash-conses node into the graph and returns its class.
func (g *EGraph) add(n enode) arith.EClassID {
	for i, k := range n.kids {
		n.kids[i] = g.find(k)
	}

	// Width operations over known constants fold to their value rather
	// than staying symbolic; derived widths always land on the same
	// class a literal width would.
	if v, ok := g.foldWidthOp(&n); ok {
		return g.Num(v)
	}

	if id, ok := g.memo.Get(n.key()); ok {
		return g.find(id.(arith.EClassID))
	}

	id := arith.EClassID(len(g.parents))
	g.parents = append(g.parents, id)
	cls := &eclass{nodes: []enode{n}}
	if n.op == opNum || n.op == opSign {
		v := n.val
		cls.constVal = &v
	}
	g.classes = append(g.classes, cls)
	g.memo = g.memo.Set(n.key(), id)
	g.nnodes++
	return id
}

// foldWidthOp evaluates a max+1 or wlsh node whose children both carry
// known constants.
func (g *EGraph) foldWidthOp(n *enode) (arith.Width, bool) {
	var f func(a, b arith.Width) arith.Width
	switch n.op {
	case arith.MAXP1.String():
		f = arith.MaxPlus1
	case arith.WLSH.String():
		f = arith.LeftShiftWidth
	default:
		return 0, false
	}
	a := g.class(n.kids[0]).constVal
	b := g.class(n.kids[1]).constVal
	if a == nil || b == nil {
		return 0, false
	}
	return f(*a, *b), true
}

// ResolveConst returns the constant value annotated on a class, if the
// analysis has derived one.
func (g *EGraph) ResolveConst(id arith.EClassID) (arith.Width, bool) {
	if v := g.class(id).constVal; v != nil {
		return *v, true
	}
	return 0, false
}

// union merges the classes of a & b and reports whether they were
// distinct. The graph needs a Rebuild before the next search.
func (g *EGraph) union(a, b arith.EClassID) bool {
	a, b = g.find(a), g.find(b)
	if a == b {
		return false
	}
	if b < a {
		a, b = b, a
	}
	g.parents[b] = a
	ca, cb := g.classes[a], g.classes[b]
	ca.nodes = append(ca.nodes, cb.nodes...)
	if ca.constVal == nil {
		ca.constVal = cb.constVal
	}
	g.classes[b] = nil
	g.unions++
	return true
}

// Rebuild restores congruence after unions: nodes whose children merged
// are recanonicalized and classes that now hold identical nodes are
// merged, repeating until a fixed point.
func (g *EGraph) Rebuild() {
	for {
		unions := g.unions

		// Recanonicalize children and drop nodes made duplicate within
		// their own class.
		for i := range g.parents {
			id := arith.EClassID(i)
			if g.find(id) != id {
				continue
			}
			cls := g.classes[id]
			kept := make([]enode, 0, len(cls.nodes))
			seen := make(map[string]struct{}, len(cls.nodes))
			for _, n := range cls.nodes {
				for j, k := range n.kids {
					n.kids[j] = g.find(k)
				}
				key := n.key()
				if _, ok := seen[key]; ok {
					g.nnodes--
					continue
				}
				seen[key] = struct{}{}
				kept = append(kept, n)
			}
			cls.nodes = kept
		}

		// Re-intern every node; identical nodes in distinct classes
		// witness a congruence and force a union. A union here may move
		// nodes into an already visited class, which the next round
		// picks up.
		memo := immutable.NewSortedMap(&stringComparer{})
		for i := range g.parents {
			id := arith.EClassID(i)
			if g.find(id) != id {
				continue
			}
			for _, n := range g.classes[id].nodes {
				key := n.key()
				if other, ok := memo.Get(key); ok {
					g.union(id, other.(arith.EClassID))
				} else {
					memo = memo.Set(key, id)
				}
			}
		}
		g.memo = memo

		if g.unions == unions {
			return
		}
	}
}

// stringComparer compares two strings. Implements immutable.Comparer.
type stringComparer struct{}

// Compare returns -1 if a is less than b, returns 1 if a is greater than
// b, and returns 0 if a is equal to b. Panics if a or b is not a string.
func (c *stringComparer) Compare(a, b interface{}) int {
	return strings.Compare(a.(string), b.(string))
}
