package arith

import "fmt"

// CheckWidthConsistency verifies that the input and output widths of
// operations in a pattern tree are consistent: wherever an operand of a
// binary arithmetic node is itself a binary arithmetic node, the width
// slot declared for that operand must be identical to the output-width
// slot declared by the operand itself.
//
// The check is purely local, one parent/child comparison per operand
// edge. Variables and constants impose no constraint since their widths
// are only known at match time.
func CheckWidthConsistency(p Pattern) error {
	var err error
	WalkPattern(p, func(node Pattern) {
		if err != nil {
			return
		}
		bin, ok := node.(*BinaryPattern)
		if !ok {
			return
		}
		if e := checkOperandWidth(bin, bin.WidthA, bin.A); e != nil {
			err = e
		} else if e := checkOperandWidth(bin, bin.WidthB, bin.B); e != nil {
			err = e
		}
	})
	return err
}

// checkOperandWidth compares a declared operand width slot against the
// operand's own output width, if the operand declares one.
func checkOperandWidth(parent *BinaryPattern, declared, operand Pattern) error {
	child, ok := operand.(*BinaryPattern)
	if !ok {
		return nil
	}
	if !PatternsEqual(declared, child.OutWidth) {
		return fmt.Errorf("in `%s`, subexpression `%s` has inconsistent width: %s != %s",
			parent, child, declared, child.OutWidth)
	}
	return nil
}
