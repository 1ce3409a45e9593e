package arith

// MaxPlus1 returns the minimum width that can hold the sum of two values
// of the given widths without wraparound, accounting for the carry bit.
func MaxPlus1(wa, wb Width) Width {
	if wa > wb {
		return wa + 1
	}
	return wb + 1
}

// LeftShiftWidth returns the minimum width that can hold a value of width
// wv shifted left by the maximum amount representable in ws bits.
func LeftShiftWidth(wv, ws Width) Width {
	return wv + (1 << ws) - 1
}

// AddNoOverflow reports whether an addition with the given output and
// operand widths can never overflow.
func AddNoOverflow(wo, wa, wb Width) bool {
	return wo >= MaxPlus1(wa, wb)
}

// MulNoOverflow reports whether a multiplication with the given output
// and operand widths can never overflow.
func MulNoOverflow(wo, wa, wb Width) bool {
	return wo >= wa+wb
}

// ShiftNoOverflow reports whether a left shift with the given output
// width, value width, and shift-amount width can never overflow.
func ShiftNoOverflow(wo, wv, ws Width) bool {
	return wo >= LeftShiftWidth(wv, ws)
}
