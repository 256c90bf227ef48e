package groebner

import (
	"slices"

	"github.com/pkg/errors"
)

// A Monomial is a sparse nonnegative integer exponent vector, indexed by
// variable number starting at 0. The normal form has no trailing zero
// entry, so equality is plain exponent-vector equality; a nil or empty
// Monomial is the multiplicative identity 1.
type Monomial []int

// NewMonomial returns the Monomial with the given exponents, one per
// variable starting at index 0, trimmed of trailing zeroes. It fails with
// ErrInvalidExponent if any exponent is negative.
func NewMonomial(exponents ...int) (Monomial, error) {
	for _, e := range exponents {
		if e < 0 {
			return nil, errors.Wrapf(ErrInvalidExponent, "exponent %d is negative", e)
		}
	}
	m := make(Monomial, len(exponents))
	copy(m, exponents)
	return m.trim(), nil
}

// A VarExp is a single (variable index, exponent) pair, used to build a
// Monomial from a sparse exponent list.
type VarExp struct {
	Index    int
	Exponent int
}

// NewMonomialFromTerms builds a Monomial from a sparse list of (variable
// index, exponent) pairs; later entries for the same index overwrite
// earlier ones. It fails with ErrInvalidExponent if any exponent is
// negative, or if any index is negative.
func NewMonomialFromTerms(terms ...VarExp) (Monomial, error) {
	n := 0
	for _, t := range terms {
		if t.Index < 0 {
			return nil, errors.Wrapf(ErrInvalidExponent, "variable index %d is negative", t.Index)
		}
		if t.Exponent < 0 {
			return nil, errors.Wrapf(ErrInvalidExponent, "exponent %d is negative", t.Exponent)
		}
		if t.Index+1 > n {
			n = t.Index + 1
		}
	}
	m := make(Monomial, n)
	for _, t := range terms {
		m[t.Index] = t.Exponent
	}
	return m.trim(), nil
}

// Variable returns the monomial x_i (exponent 1 at index i, 0 elsewhere).
func Variable(i int) Monomial {
	m, err := VariablePower(i, 1)
	if err != nil {
		panic(err)
	}
	return m
}

// VariablePower returns the monomial x_i^d. It fails with
// ErrInvalidExponent if i or d is negative.
func VariablePower(i, d int) (Monomial, error) {
	if i < 0 {
		return nil, errors.Wrapf(ErrInvalidExponent, "variable index %d is negative", i)
	}
	return NewMonomialFromTerms(VarExp{Index: i, Exponent: d})
}

// One returns the multiplicative identity monomial, 1.
func One() Monomial { return nil }

// IsOne reports whether m is the multiplicative identity.
func (m Monomial) IsOne() bool { return len(m.trim()) == 0 }

// Degree returns the exponent of variable i, or 0 if i is past the end of
// the stored vector.
func (m Monomial) Degree(i int) int {
	if i < 0 || i >= len(m) {
		return 0
	}
	return m[i]
}

// TotalDegree returns the sum of all exponents.
func (m Monomial) TotalDegree() int {
	total := 0
	for _, e := range m {
		total += e
	}
	return total
}

// GreatestVariableIndex returns one past the largest index with a nonzero
// exponent, or 0 if m is the identity.
func (m Monomial) GreatestVariableIndex() int {
	return len(m.trim())
}

// trim returns m with trailing zero exponents removed (a subslice sharing
// m's storage, not a copy), so that equality between Monomials is plain
// slice equality.
func (m Monomial) trim() Monomial {
	n := len(m)
	for n > 0 && m[n-1] == 0 {
		n--
	}
	if n == len(m) {
		return m
	}
	return m[:n:n]
}

// Equal reports whether m and other denote the same monomial.
func (m Monomial) Equal(other Monomial) bool {
	return slices.Equal(m.trim(), other.trim())
}

// Mul returns the pointwise sum of exponents of m and other.
func (m Monomial) Mul(other Monomial) Monomial {
	n := max(len(m), len(other))
	result := make(Monomial, n)
	for i := range n {
		result[i] = m.Degree(i) + other.Degree(i)
	}
	return result.trim()
}

// IsDivisibleBy reports whether other divides m, i.e. other[i] <= m[i] for
// every index, including indices past the end of either vector (implicitly
// zero there).
func (m Monomial) IsDivisibleBy(other Monomial) bool {
	n := max(len(m), len(other))
	for i := range n {
		if other.Degree(i) > m.Degree(i) {
			return false
		}
	}
	return true
}

// Div returns m/other. It fails with ErrDivisibility if other does not
// divide m.
func (m Monomial) Div(other Monomial) (Monomial, error) {
	if !m.IsDivisibleBy(other) {
		return nil, errors.Wrapf(ErrDivisibility, "%v does not divide %v", other, m)
	}
	n := max(len(m), len(other))
	result := make(Monomial, n)
	for i := range n {
		result[i] = m.Degree(i) - other.Degree(i)
	}
	return result.trim(), nil
}

// Lcm returns the least common multiple of a and b: the pointwise maximum
// of their exponents.
func Lcm(a, b Monomial) Monomial {
	n := max(len(a), len(b))
	result := make(Monomial, n)
	for i := range n {
		result[i] = max(a.Degree(i), b.Degree(i))
	}
	return result.trim()
}

// String renders m as "a, b, c, ..." style variable names with "^k"
// exponents joined by "*" (e.g. "a^2*c^3"), for diagnostics only; the
// identity monomial renders as the empty string.
func (m Monomial) String() string {
	return formatMonomial(m, defaultSymbolStringer)
}
