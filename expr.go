package groebner

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/grbasis/groebner/parse"
	"github.com/grbasis/groebner/parse/scan"
)

// Parse builds a Polynomial[*Rational] from an infix arithmetic expression
// such as "a^2 b - 1" or "2/3 {long name}^2", using variables to map
// identifier names to variable indices. Multiplication is written by
// juxtaposition (as in ordinary algebraic notation); the tokenizer does
// not recognize an explicit "*" operator, only "+ - / ^" and parentheses,
// matching the grammar of parse/scan (kept unchanged from the teacher,
// which built noncommutative words the same way). A multi-word identifier
// can be written in braces, e.g. "{total cost}".
//
// This is a diagnostic and test convenience, adapted from the teacher's
// own root-level Parse/evaluate* functions (originally built over
// noncommutative Monomial words) to commutative exponent-vector monomials
// and Rational coefficients; it is never required by the algebraic core.
func Parse(variables map[string]int, order Order, input string) (*Polynomial[*Rational], error) {
	scanner := scan.NewScanner(strings.NewReader(input))
	root, err := parse.Parse(scanner)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return evaluate(root, variables, order)
}

func evaluate(n *parse.Node, variables map[string]int, order Order) (*Polynomial[*Rational], error) {
	switch n.Token.Type {
	case scan.Parenthesis:
		return evaluate(n.Left, variables, order)
	case scan.Operator:
		return evaluateOperator(n, variables, order)
	case scan.Identifier:
		return evaluateIdentifier(n, variables, order)
	case scan.Int:
		return evaluateInt(n, order)
	default:
		return nil, errors.Errorf("parse: unexpected token %q", n.Token.Text)
	}
}

func evaluateOperator(n *parse.Node, variables map[string]int, order Order) (*Polynomial[*Rational], error) {
	switch n.Token.Text {
	case "+":
		return evaluatePlus(n, variables, order)
	case "-":
		return evaluateMinus(n, variables, order)
	case "*":
		return evaluateMultiply(n, variables, order)
	case "/":
		return evaluateDivide(n, variables, order)
	case "^":
		return evaluatePower(n, variables, order)
	default:
		return nil, errors.Errorf("parse: unknown operator %q", n.Token.Text)
	}
}

func evaluateLeftRight(n *parse.Node, variables map[string]int, order Order) (left, right *Polynomial[*Rational], err error) {
	left, err = evaluate(n.Left, variables, order)
	if err != nil {
		return nil, nil, err
	}
	right, err = evaluate(n.Right, variables, order)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func evaluatePlus(n *parse.Node, variables map[string]int, order Order) (*Polynomial[*Rational], error) {
	left, right, err := evaluateLeftRight(n, variables, order)
	if err != nil {
		return nil, err
	}
	return left.Add(right), nil
}

func evaluateMinus(n *parse.Node, variables map[string]int, order Order) (*Polynomial[*Rational], error) {
	left, right, err := evaluateLeftRight(n, variables, order)
	if err != nil {
		return nil, err
	}
	return left.Sub(right), nil
}

func evaluateMultiply(n *parse.Node, variables map[string]int, order Order) (*Polynomial[*Rational], error) {
	left, right, err := evaluateLeftRight(n, variables, order)
	if err != nil {
		return nil, err
	}
	return left.Mul(right), nil
}

// evaluateDivide requires the right-hand side to be a nonzero constant
// (the core supports division by a field element, not general polynomial
// division as an expression operator).
func evaluateDivide(n *parse.Node, variables map[string]int, order Order) (result *Polynomial[*Rational], err error) {
	defer recoverFieldPanic(&err, "parse: divide")

	left, right, rerr := evaluateLeftRight(n, variables, order)
	if rerr != nil {
		return nil, rerr
	}
	rt, rerr := right.LeadingTerm()
	if rerr != nil {
		return nil, errors.Wrap(ErrArithmetic, "parse: division by zero")
	}
	if right.Len() != 1 || !rt.Monomial.IsOne() {
		return nil, errors.Errorf("parse: division by non-constant expression %q", right)
	}
	inv := NewIntRational(0).Inv(rt.Coefficient)
	return left.MulTerm(One(), inv), nil
}

func evaluatePower(n *parse.Node, variables map[string]int, order Order) (*Polynomial[*Rational], error) {
	left, err := evaluate(n.Left, variables, order)
	if err != nil {
		return nil, err
	}
	if n.Right == nil || n.Right.Token.Type != scan.Int {
		return nil, errors.Errorf("parse: exponent must be a nonnegative integer literal")
	}
	exp, err := strconv.Atoi(n.Right.Token.Text)
	if err != nil {
		return nil, errors.Wrapf(err, "parse: exponent %q", n.Right.Token.Text)
	}
	result := NewPolynomialFromTerms(order, NewIntRational(0),
		PolynomialTerm[*Rational]{Monomial: One(), Coefficient: NewIntRational(1)})
	for range exp {
		result = result.Mul(left)
	}
	return result, nil
}

func evaluateIdentifier(n *parse.Node, variables map[string]int, order Order) (*Polynomial[*Rational], error) {
	name := strings.Trim(n.Token.Text, "{}")
	idx, ok := variables[name]
	if !ok {
		return nil, errors.Errorf("parse: unknown variable %q", name)
	}
	return NewPolynomialFromTerms(order, NewIntRational(0),
		PolynomialTerm[*Rational]{Monomial: Variable(idx), Coefficient: NewIntRational(1)}), nil
}

func evaluateInt(n *parse.Node, order Order) (*Polynomial[*Rational], error) {
	val, err := strconv.ParseInt(n.Token.Text, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse: integer literal %q", n.Token.Text)
	}
	return NewPolynomialFromTerms(order, NewIntRational(0),
		PolynomialTerm[*Rational]{Monomial: One(), Coefficient: NewIntRational(val)}), nil
}
