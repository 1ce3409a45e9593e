// Package arith implements width- and sign-aware algebraic rewrite rules
// over bit-vector expressions for hardware equivalence checking.
//
// Every arithmetic operator in the pattern language carries its output
// width and per-operand width/sign as explicit pattern slots. A Rule
// pairs a left-hand pattern with a right-hand pattern whose widths are
// derived from the match, optionally guarded by a side condition over
// concrete widths. Rules are exported to an equality-saturation engine
// through the Graph interface; the egraph subpackage provides one.
package arith

import "fmt"

// Width is the bit count of a bit-vector value.
// Zero-width values are invalid in well-formed programs.
type Width uint

// Sign marks a bit-vector operand as unsigned or signed.
//
// The numeric values matter: sign constants resolve through the same
// constant lookup as widths, so condition predicates see Unsigned as 0
// and Signed as 1.
type Sign uint8

// Sign values.
const (
	Unsigned Sign = 0
	Signed   Sign = 1
)

// String returns the pattern-syntax spelling of the sign.
func (s Sign) String() string {
	if s == Signed {
		return "sign"
	}
	return "unsign"
}

// Standard widths.
const (
	WidthBool = 1
	Width8    = 8
	Width16   = 16
	Width32   = 32
	Width64   = 64
)

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
