package arith

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePattern parses the textual s-expression form of a pattern:
//
//	(+ ?wo ?wa ?sa ?a ?wb ?sb ?b)
//	(<< ?wo (wlsh ?wa ?wb) ?sa (<< (wlsh ?wa ?wb) ?wa ?sa ?a ?wb unsign ?b) ?wc unsign ?c)
//
// Binary arithmetic operators take seven operands (output width, then
// width/sign/expression per operand); width operators max+1 and wlsh
// take two. Variables are prefixed with a question mark; "sign" and
// "unsign" are literal sign tags; bare numerals are constants.
func ParsePattern(s string) (Pattern, error) {
	p := &parser{tokens: tokenize(s)}
	pattern, err := p.parse()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok != "" {
		return nil, fmt.Errorf("unexpected trailing token %q in pattern %q", tok, s)
	}
	return pattern, nil
}

// MustParsePattern parses s and panics on failure. Rule patterns are
// fixed at build time so a parse failure is a programming error.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	tok := p.peek()
	if tok != "" {
		p.pos++
	}
	return tok
}

func (p *parser) parse() (Pattern, error) {
	tok := p.next()
	switch {
	case tok == "":
		return nil, fmt.Errorf("unexpected end of pattern")
	case tok == "(":
		return p.parseNode()
	case tok == ")":
		return nil, fmt.Errorf("unexpected closing parenthesis")
	default:
		return parseAtom(tok)
	}
}

func (p *parser) parseNode() (Pattern, error) {
	op := p.next()
	switch op {
	case "+", "*", "<<":
		operands, err := p.parseOperands(op, 7)
		if err != nil {
			return nil, err
		}
		return &BinaryPattern{
			Op:       binaryOpFromString(op),
			OutWidth: operands[0],
			WidthA:   operands[1],
			SignA:    operands[2],
			A:        operands[3],
			WidthB:   operands[4],
			SignB:    operands[5],
			B:        operands[6],
		}, nil
	case "max+1", "wlsh":
		operands, err := p.parseOperands(op, 2)
		if err != nil {
			return nil, err
		}
		widthOp := MAXP1
		if op == "wlsh" {
			widthOp = WLSH
		}
		return &WidthOpPattern{Op: widthOp, A: operands[0], B: operands[1]}, nil
	case "":
		return nil, fmt.Errorf("unexpected end of pattern")
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
}

func (p *parser) parseOperands(op string, n int) ([]Pattern, error) {
	operands := make([]Pattern, 0, n)
	for i := 0; i < n; i++ {
		operand, err := p.parse()
		if err != nil {
			return nil, fmt.Errorf("operand %d of %q: %s", i, op, err)
		}
		operands = append(operands, operand)
	}
	if tok := p.next(); tok != ")" {
		return nil, fmt.Errorf("expected closing parenthesis after %d operands of %q, got %q", n, op, tok)
	}
	return operands, nil
}

func parseAtom(tok string) (Pattern, error) {
	switch {
	case strings.HasPrefix(tok, "?"):
		if len(tok) == 1 {
			return nil, fmt.Errorf("empty variable name")
		}
		return &VarPattern{Name: tok[1:]}, nil
	case tok == "sign":
		return &SignPattern{Sign: Signed}, nil
	case tok == "unsign":
		return &SignPattern{Sign: Unsigned}, nil
	default:
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid atom %q", tok)
		}
		return &ConstPattern{Value: Width(v)}, nil
	}
}

func binaryOpFromString(s string) BinaryOp {
	switch s {
	case "+":
		return ADD
	case "*":
		return MUL
	case "<<":
		return SHL
	default:
		panic("unreachable")
	}
}

// tokenize splits s into parentheses and atoms.
func tokenize(s string) []string {
	s = strings.Replace(s, "(", " ( ", -1)
	s = strings.Replace(s, ")", " ) ", -1)
	return strings.Fields(s)
}
