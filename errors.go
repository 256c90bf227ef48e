// Package groebner implements the algebraic core of a Gröbner-basis
// library: exact rational arithmetic, multivariate monomials under a
// configurable admissible order, sparse order-sorted polynomials, the
// reduction (multivariate division) machinery, and the Buchberger
// completion procedure used to decide ideal and radical membership.
//
// [Gröbner basis]: https://en.wikipedia.org/wiki/Gr%C3%B6bner_basis
package groebner

import "github.com/pkg/errors"

// ErrArithmetic is returned when a field operation is undefined, such as
// constructing or dividing by a rational with denominator zero.
var ErrArithmetic = errors.New("groebner: arithmetic error")

// ErrDivisibility is returned when a monomial is divided by another
// monomial that does not divide it.
var ErrDivisibility = errors.New("groebner: divisibility error")

// ErrEmptyPolynomial is returned when the leading term of the zero
// polynomial is requested, or a reduction by the zero polynomial is
// attempted.
var ErrEmptyPolynomial = errors.New("groebner: empty polynomial")

// ErrInvalidExponent is returned when a monomial is constructed with a
// negative exponent.
var ErrInvalidExponent = errors.New("groebner: invalid exponent")

// recoverFieldPanic turns a panic raised by a Field[K] implementation's Div
// or Inv (which have no error return) into a returned error, when the panic
// value is an error wrapping ErrArithmetic, wrapped with the given context.
// Any other panic is re-raised. It is a no-op if no panic occurred.
func recoverFieldPanic(errp *error, context string) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok && errors.Is(err, ErrArithmetic) {
			*errp = errors.Wrap(err, context)
			return
		}
		panic(r)
	}
}
