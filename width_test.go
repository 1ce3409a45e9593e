package arith_test

import (
	"testing"

	"github.com/arithlab/arith"
)

func TestMaxPlus1(t *testing.T) {
	if w := arith.MaxPlus1(4, 7); w != 8 {
		t.Fatalf("unexpected width: %d", w)
	}
	if w := arith.MaxPlus1(7, 4); w != 8 {
		t.Fatalf("unexpected width: %d", w)
	}
	if w := arith.MaxPlus1(5, 5); w != 6 {
		t.Fatalf("unexpected width: %d", w)
	}
}

func TestLeftShiftWidth(t *testing.T) {
	// Shifting a 16-bit value by a 2-bit amount needs 16 + 3 bits.
	if w := arith.LeftShiftWidth(16, 2); w != 19 {
		t.Fatalf("unexpected width: %d", w)
	}
	if w := arith.LeftShiftWidth(1, 1); w != 2 {
		t.Fatalf("unexpected width: %d", w)
	}
	if w := arith.LeftShiftWidth(8, 8); w != 263 {
		t.Fatalf("unexpected width: %d", w)
	}
}

// The predicates must agree exactly with their defining inequalities
// over all small widths.
func TestAddNoOverflow_Exhaustive(t *testing.T) {
	for wa := arith.Width(1); wa <= 8; wa++ {
		for wb := arith.Width(1); wb <= 8; wb++ {
			for wo := arith.Width(1); wo <= 20; wo++ {
				max := wa
				if wb > max {
					max = wb
				}
				if got, want := arith.AddNoOverflow(wo, wa, wb), wo >= max+1; got != want {
					t.Fatalf("AddNoOverflow(%d, %d, %d) = %v, want %v", wo, wa, wb, got, want)
				}
			}
		}
	}
}

func TestMulNoOverflow_Exhaustive(t *testing.T) {
	for wa := arith.Width(1); wa <= 8; wa++ {
		for wb := arith.Width(1); wb <= 8; wb++ {
			for wo := arith.Width(1); wo <= 20; wo++ {
				if got, want := arith.MulNoOverflow(wo, wa, wb), wo >= wa+wb; got != want {
					t.Fatalf("MulNoOverflow(%d, %d, %d) = %v, want %v", wo, wa, wb, got, want)
				}
			}
		}
	}
}

func TestShiftNoOverflow_Exhaustive(t *testing.T) {
	for wv := arith.Width(1); wv <= 8; wv++ {
		for ws := arith.Width(1); ws <= 8; ws++ {
			maxShift := arith.Width(1<<ws) - 1
			for wo := arith.Width(1); wo <= wv+maxShift+4; wo++ {
				if got, want := arith.ShiftNoOverflow(wo, wv, ws), wo >= wv+maxShift; got != want {
					t.Fatalf("ShiftNoOverflow(%d, %d, %d) = %v, want %v", wo, wv, ws, got, want)
				}
			}
		}
	}
}
