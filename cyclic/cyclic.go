// Package cyclic generates the classical cyclic-n family of polynomial
// ideals, a standard benchmark for Gröbner basis implementations, via
// Newton's identities relating power sums to elementary symmetric
// polynomials.
package cyclic

import (
	"github.com/grbasis/groebner"
	"github.com/pkg/errors"
)

// PowerSums returns, for d = 1..n, the d-th power sum Σ xᵢ^d over n
// variables x_0..x_{n-1}, ordered as power sum 1 first.
func PowerSums(n int, order groebner.Order) []*groebner.Polynomial[*groebner.Rational] {
	zero := groebner.NewIntRational(0)
	one := groebner.NewIntRational(1)
	sums := make([]*groebner.Polynomial[*groebner.Rational], n)
	for d := 1; d <= n; d++ {
		p := groebner.NewPolynomial(order, zero)
		for i := range n {
			mono, err := groebner.VariablePower(i, d)
			if err != nil {
				panic(err)
			}
			p = p.Add(groebner.NewPolynomialFromTerms(order, zero,
				groebner.PolynomialTerm[*groebner.Rational]{Monomial: mono, Coefficient: one}))
		}
		sums[d-1] = p
	}
	return sums
}

// ElementarySymmetric computes the elementary symmetric polynomials
// e_1..e_n from their power sums p_1..p_n, via Newton's identity
//
//	e_k = (1/k) * Σ_{i=1}^{k} (-1)^(i-1) * e_{k-i} * p_i,   e_0 = 1.
//
// This reproduces original_source's GenerateSymmetricFamily, which
// alternates addition and subtraction by the parity of i in the same
// accumulation loop.
func ElementarySymmetric(powerSums []*groebner.Polynomial[*groebner.Rational], order groebner.Order) ([]*groebner.Polynomial[*groebner.Rational], error) {
	n := len(powerSums)
	zero := groebner.NewIntRational(0)
	e := make([]*groebner.Polynomial[*groebner.Rational], n+1)
	e[0] = groebner.NewPolynomialFromTerms(order, zero,
		groebner.PolynomialTerm[*groebner.Rational]{Monomial: groebner.One(), Coefficient: groebner.NewIntRational(1)})

	for k := 1; k <= n; k++ {
		acc := groebner.NewPolynomial(order, zero)
		for i := 1; i <= k; i++ {
			term := e[k-i].Mul(powerSums[i-1])
			if i%2 == 0 {
				acc = acc.Sub(term)
			} else {
				acc = acc.Add(term)
			}
		}
		invK, err := groebner.NewRational(1, int64(k))
		if err != nil {
			return nil, errors.Wrapf(err, "elementary symmetric: e_%d", k)
		}
		e[k] = acc.MulTerm(groebner.One(), invK)
	}
	return e[1:], nil
}

// Generate returns the classical cyclic-n ideal generators {e_1, ...,
// e_{n-1}, e_n + (-1)^n} over n variables, under order: the elementary
// symmetric polynomials of degree 1 through n-1, together with the n-th one
// shifted by 1 (adding 1 when n is even, subtracting 1 when n is odd,
// matching original_source's GenerateCyclicFamily sign convention). It
// fails if n < 2.
func Generate(n int, order groebner.Order) (*groebner.PolynomialSet[*groebner.Rational], error) {
	if n < 2 {
		return nil, errors.Errorf("cyclic: n must be at least 2, got %d", n)
	}
	sums := PowerSums(n, order)
	e, err := ElementarySymmetric(sums, order)
	if err != nil {
		return nil, errors.Wrap(err, "cyclic: generate")
	}

	set := groebner.NewPolynomialSet[*groebner.Rational](order)
	for i := range n - 1 {
		set.Add(e[i])
	}

	zero := groebner.NewIntRational(0)
	one := groebner.NewPolynomialFromTerms(order, zero,
		groebner.PolynomialTerm[*groebner.Rational]{Monomial: groebner.One(), Coefficient: groebner.NewIntRational(1)})
	last := e[n-1]
	if n%2 == 0 {
		last = last.Add(one)
	} else {
		last = last.Sub(one)
	}
	set.Add(last)
	return set, nil
}
