package arith_test

import (
	"strings"
	"testing"

	"github.com/arithlab/arith"
)

// Every shipped rule must pass the width-consistency check on both of
// its patterns.
func TestCheckWidthConsistency_Catalog(t *testing.T) {
	for _, rule := range arith.NewCatalog() {
		lhs, rhs := rule.Patterns()
		if err := arith.CheckWidthConsistency(lhs); err != nil {
			t.Fatalf("%s lhs: %s", rule.Name(), err)
		}
		if err := arith.CheckWidthConsistency(rhs); err != nil {
			t.Fatalf("%s rhs: %s", rule.Name(), err)
		}
	}
}

func TestCheckWidthConsistency_Violation(t *testing.T) {
	t.Run("OperandA", func(t *testing.T) {
		// The inner shift declares output width ?wab but the outer node
		// declares its first operand at ?wrong.
		p := arith.MustParsePattern("(<< ?wo ?wrong ?sa (<< ?wab ?wa ?sa ?a ?wb unsign ?b) ?wc unsign ?c)")
		err := arith.CheckWidthConsistency(p)
		if err == nil {
			t.Fatal("expected error")
		} else if !strings.Contains(err.Error(), "?wrong != ?wab") {
			t.Fatalf("unexpected error: %s", err)
		}
	})
	t.Run("OperandB", func(t *testing.T) {
		p := arith.MustParsePattern("(+ ?wo ?wa ?sa ?a ?wrong ?sb (+ ?wbc ?wb unsign ?b ?wc unsign ?c))")
		if err := arith.CheckWidthConsistency(p); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("DerivedWidth", func(t *testing.T) {
		// A derived width expression must be threaded into the operand
		// slot verbatim; forgetting it is the authoring mistake the
		// check exists for.
		p := arith.MustParsePattern("(<< ?wo ?wa ?sa ?a ?wbc unsign (+ (max+1 ?wb ?wc) ?wb unsign ?b ?wc unsign ?c))")
		if err := arith.CheckWidthConsistency(p); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("VariablesUnconstrained", func(t *testing.T) {
		// Variable and constant operands impose no constraint.
		p := arith.MustParsePattern("(+ ?wo ?wa ?sa ?a ?wb ?sb 2)")
		if err := arith.CheckWidthConsistency(p); err != nil {
			t.Fatal(err)
		}
	})
}

// NewRule must refuse to construct a rule with inconsistent widths.
func TestNewRule_ConsistencyPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	arith.NewRule("broken",
		"(<< ?wo ?wrong ?sa (<< ?wab ?wa ?sa ?a ?wb unsign ?b) ?wc unsign ?c)",
		"(<< ?wo ?wa ?sa ?a ?wb unsign ?b)",
		nil)
}

func TestNewRule_ParsePanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	arith.NewRule("broken", "(+ ?wo", "?a", nil)
}
