package groebner

// An Order is a total order on monomials, admissible for Gröbner basis
// computation: it must be compatible with multiplication (x <= y implies
// x*z <= y*z for all z) and must have 1 as its unique minimal element. It
// returns a negative number if x < y, zero if x == y, and a positive number
// if x > y, matching the convention of cmp.Compare and slices.SortFunc.
//
// Order is a runtime function value rather than a second type parameter on
// Polynomial/PolynomialSet: the teacher's own Order (github.com/fumin/nag)
// is realized this way, and it lets callers compose and select orders at
// runtime (e.g. cyclic.Generate(n, order)) without parameterizing
// every generic declaration on a comparator type.
type Order func(x, y Monomial) int

// LexOrder is the pure lexicographic order: compare exponents starting from
// variable 0, the first difference decides.
func LexOrder(x, y Monomial) int {
	n := max(len(x), len(y))
	for i := range n {
		dx, dy := x.Degree(i), y.Degree(i)
		if dx != dy {
			return dx - dy
		}
	}
	return 0
}

// RevLexOrder compares exponents starting from the highest-indexed
// variable present in either monomial; the first difference, taken with
// reversed sign, decides. It is not by itself admissible (it is normally
// combined with DegreeOrder, as in GrevlexOrder) but is provided as a
// building block matching original_source's monomial_order design, which
// composes primitive comparators via `combine`.
func RevLexOrder(x, y Monomial) int {
	n := max(len(x), len(y))
	for i := n - 1; i >= 0; i-- {
		dx, dy := x.Degree(i), y.Degree(i)
		if dx != dy {
			return dy - dx
		}
	}
	return 0
}

// DegreeOrder compares total degree only; equal-degree monomials compare
// equal under this order alone.
func DegreeOrder(x, y Monomial) int {
	return x.TotalDegree() - y.TotalDegree()
}

// Sum composes two orders into one that breaks ties in a by b: it returns
// a(x, y) when nonzero, otherwise b(x, y). This mirrors original_source's
// MonomialOrder::combine, which chains a primary and secondary comparator
// the same way.
func Sum(a, b Order) Order {
	return func(x, y Monomial) int {
		if c := a(x, y); c != 0 {
			return c
		}
		return b(x, y)
	}
}

// GrlexOrder is the graded lexicographic order: total degree first, then
// lexicographic to break ties.
var GrlexOrder Order = Sum(DegreeOrder, LexOrder)

// GrevlexOrder is the graded reverse lexicographic order: total degree
// first, then reverse lexicographic to break ties. This is the order most
// commonly used in practice for Buchberger's algorithm, since it tends to
// produce the smallest Gröbner bases.
var GrevlexOrder Order = Sum(DegreeOrder, RevLexOrder)
