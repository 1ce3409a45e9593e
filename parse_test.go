package arith_test

import (
	"strings"
	"testing"

	"github.com/arithlab/arith"
	"github.com/google/go-cmp/cmp"
)

func TestParsePattern(t *testing.T) {
	t.Run("Var", func(t *testing.T) {
		if diff := cmp.Diff(
			&arith.VarPattern{Name: "wo"},
			arith.MustParsePattern("?wo"),
		); diff != "" {
			t.Fatal(diff)
		}
	})
	t.Run("Const", func(t *testing.T) {
		if diff := cmp.Diff(
			&arith.ConstPattern{Value: 2},
			arith.MustParsePattern("2"),
		); diff != "" {
			t.Fatal(diff)
		}
	})
	t.Run("Sign", func(t *testing.T) {
		if diff := cmp.Diff(
			&arith.SignPattern{Sign: arith.Unsigned},
			arith.MustParsePattern("unsign"),
		); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff(
			&arith.SignPattern{Sign: arith.Signed},
			arith.MustParsePattern("sign"),
		); diff != "" {
			t.Fatal(diff)
		}
	})
	t.Run("Binary", func(t *testing.T) {
		if diff := cmp.Diff(
			&arith.BinaryPattern{
				Op:       arith.ADD,
				OutWidth: &arith.VarPattern{Name: "wo"},
				WidthA:   &arith.VarPattern{Name: "wa"},
				SignA:    &arith.VarPattern{Name: "sa"},
				A:        &arith.VarPattern{Name: "a"},
				WidthB:   &arith.VarPattern{Name: "wb"},
				SignB:    &arith.VarPattern{Name: "sb"},
				B:        &arith.VarPattern{Name: "b"},
			},
			arith.MustParsePattern("(+ ?wo ?wa ?sa ?a ?wb ?sb ?b)"),
		); diff != "" {
			t.Fatal(diff)
		}
	})
	t.Run("WidthOp", func(t *testing.T) {
		if diff := cmp.Diff(
			&arith.WidthOpPattern{
				Op: arith.MAXP1,
				A:  &arith.VarPattern{Name: "wb"},
				B:  &arith.VarPattern{Name: "wc"},
			},
			arith.MustParsePattern("(max+1 ?wb ?wc)"),
		); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("ErrUnknownOperator", func(t *testing.T) {
		if _, err := arith.ParsePattern("(- ?wo ?wa ?sa ?a ?wb ?sb ?b)"); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("ErrOperandCount", func(t *testing.T) {
		if _, err := arith.ParsePattern("(+ ?wo ?wa)"); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("ErrTrailing", func(t *testing.T) {
		if _, err := arith.ParsePattern("?a ?b"); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("ErrBadAtom", func(t *testing.T) {
		if _, err := arith.ParsePattern("bogus"); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("ErrEmpty", func(t *testing.T) {
		if _, err := arith.ParsePattern(""); err == nil {
			t.Fatal("expected error")
		}
	})
}

// Every catalog pattern must print back to the text it was authored as.
func TestPattern_String_RoundTrip(t *testing.T) {
	for _, rule := range arith.NewCatalog() {
		lhs, rhs := rule.Patterns()
		for _, p := range []arith.Pattern{lhs, rhs} {
			reparsed, err := arith.ParsePattern(p.String())
			if err != nil {
				t.Fatalf("%s: reparse %q: %s", rule.Name(), p, err)
			}
			if !arith.PatternsEqual(p, reparsed) {
				t.Fatalf("%s: round trip mismatch: %s", rule.Name(), p)
			}
		}
	}
}

func TestPatternVars(t *testing.T) {
	p := arith.MustParsePattern("(<< ?wo ?wab ?sa (<< ?wab ?wa ?sa ?a ?wb unsign ?b) ?wc unsign ?c)")
	if diff := cmp.Diff(
		[]string{"wo", "wab", "sa", "wa", "a", "wb", "b", "wc", "c"},
		arith.PatternVars(p),
	); diff != "" {
		t.Fatal(diff)
	}
}

func TestPattern_String(t *testing.T) {
	s := "(<< ?wo ?wa ?sa ?a (max+1 ?wb ?wc) unsign (+ (max+1 ?wb ?wc) ?wb unsign ?b ?wc unsign ?c))"
	if got := arith.MustParsePattern(s).String(); got != s {
		t.Fatalf("unexpected string: %s", got)
	}
	if !strings.Contains(arith.MustParsePattern("(wlsh ?wa 2)").String(), "wlsh") {
		t.Fatal("expected wlsh operator in string form")
	}
}
