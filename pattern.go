package arith

import "fmt"

// Pattern represents an expression template matched against an
// equivalence graph. Leaves are pattern variables or literal constants;
// interior nodes are operators of fixed arity.
type Pattern interface {
	fmt.Stringer
	pattern()
}

func (*BinaryPattern) pattern()  {}
func (*WidthOpPattern) pattern() {}
func (*VarPattern) pattern()     {}
func (*ConstPattern) pattern()   {}
func (*SignPattern) pattern()    {}

// BinaryOp represents a binary arithmetic pattern operation.
type BinaryOp int

// BinaryPattern operations.
const (
	ADD BinaryOp = iota
	MUL
	SHL
)

var binaryOps = [...]string{
	ADD: "+",
	MUL: "*",
	SHL: "<<",
}

// String returns the string representation of the operation.
func (op BinaryOp) String() string {
	if op >= 0 && op < BinaryOp(len(binaryOps)) && binaryOps[op] != "" {
		return binaryOps[op]
	}
	return fmt.Sprintf("BinaryOp<%d>", op)
}

// WidthOp represents a width-computation pattern operation. Width
// operations appear only in derived right-hand sides, where they compute
// output widths from widths matched on the left-hand side.
type WidthOp int

// WidthOpPattern operations.
const (
	MAXP1 WidthOp = iota
	WLSH
)

var widthOps = [...]string{
	MAXP1: "max+1",
	WLSH:  "wlsh",
}

// String returns the string representation of the operation.
func (op WidthOp) String() string {
	if op >= 0 && op < WidthOp(len(widthOps)) && widthOps[op] != "" {
		return widthOps[op]
	}
	return fmt.Sprintf("WidthOp<%d>", op)
}

// BinaryPattern represents a binary arithmetic operation with explicit
// width and sign slots threaded alongside each operand:
//
//	(op outWidth widthA signA exprA widthB signB exprB)
//
// This seven-slot shape is the defining convention of the pattern
// language and is what the width-consistency check enforces.
type BinaryPattern struct {
	Op       BinaryOp
	OutWidth Pattern
	WidthA   Pattern
	SignA    Pattern
	A        Pattern
	WidthB   Pattern
	SignB    Pattern
	B        Pattern
}

// String returns the string representation of the pattern.
func (p *BinaryPattern) String() string {
	return fmt.Sprintf("(%s %s %s %s %s %s %s %s)",
		p.Op, p.OutWidth, p.WidthA, p.SignA, p.A, p.WidthB, p.SignB, p.B)
}

// WidthOpPattern represents a two-operand width computation.
type WidthOpPattern struct {
	Op WidthOp
	A  Pattern
	B  Pattern
}

// String returns the string representation of the pattern.
func (p *WidthOpPattern) String() string {
	return fmt.Sprintf("(%s %s %s)", p.Op, p.A, p.B)
}

// VarPattern represents a pattern variable standing for an unknown
// sub-expression, width, or sign. The name does not include the
// question-mark prefix used in the textual syntax.
type VarPattern struct {
	Name string
}

// String returns the string representation of the variable.
func (p *VarPattern) String() string {
	return "?" + p.Name
}

// ConstPattern represents a literal numeric constant.
type ConstPattern struct {
	Value Width
}

// String returns the string representation of the constant.
func (p *ConstPattern) String() string {
	return fmt.Sprintf("%d", p.Value)
}

// SignPattern represents a literal sign tag.
type SignPattern struct {
	Sign Sign
}

// String returns the string representation of the sign.
func (p *SignPattern) String() string {
	return p.Sign.String()
}

// PatternVars returns the names of all variables in p, in first
// occurrence order during a preorder walk, without duplicates.
func PatternVars(p Pattern) []string {
	var names []string
	seen := make(map[string]struct{})
	WalkPattern(p, func(p Pattern) {
		if v, ok := p.(*VarPattern); ok {
			if _, ok := seen[v.Name]; !ok {
				seen[v.Name] = struct{}{}
				names = append(names, v.Name)
			}
		}
	})
	return names
}

// WalkPattern invokes fn for every node in p in preorder.
func WalkPattern(p Pattern, fn func(Pattern)) {
	fn(p)
	switch p := p.(type) {
	case *BinaryPattern:
		WalkPattern(p.OutWidth, fn)
		WalkPattern(p.WidthA, fn)
		WalkPattern(p.SignA, fn)
		WalkPattern(p.A, fn)
		WalkPattern(p.WidthB, fn)
		WalkPattern(p.SignB, fn)
		WalkPattern(p.B, fn)
	case *WidthOpPattern:
		WalkPattern(p.A, fn)
		WalkPattern(p.B, fn)
	}
}

// PatternsEqual returns true if a & b are structurally identical.
func PatternsEqual(a, b Pattern) bool {
	switch a := a.(type) {
	case *BinaryPattern:
		b, ok := b.(*BinaryPattern)
		return ok && a.Op == b.Op &&
			PatternsEqual(a.OutWidth, b.OutWidth) &&
			PatternsEqual(a.WidthA, b.WidthA) &&
			PatternsEqual(a.SignA, b.SignA) &&
			PatternsEqual(a.A, b.A) &&
			PatternsEqual(a.WidthB, b.WidthB) &&
			PatternsEqual(a.SignB, b.SignB) &&
			PatternsEqual(a.B, b.B)
	case *WidthOpPattern:
		b, ok := b.(*WidthOpPattern)
		return ok && a.Op == b.Op && PatternsEqual(a.A, b.A) && PatternsEqual(a.B, b.B)
	case *VarPattern:
		b, ok := b.(*VarPattern)
		return ok && a.Name == b.Name
	case *ConstPattern:
		b, ok := b.(*ConstPattern)
		return ok && a.Value == b.Value
	case *SignPattern:
		b, ok := b.(*SignPattern)
		return ok && a.Sign == b.Sign
	default:
		panic("unreachable")
	}
}
