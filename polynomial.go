package groebner

import (
	"strings"

	"github.com/jba/omap"
	"github.com/pkg/errors"
)

// A PolynomialTerm pairs a monomial with its coefficient.
type PolynomialTerm[K Field[K]] struct {
	Monomial    Monomial
	Coefficient K
}

// A Polynomial is a finite sum of terms with distinct monomials, stored in
// an order-sorted map from Monomial to coefficient (github.com/jba/omap's
// MapFunc, ordered by the polynomial's Order), exactly the storage the
// teacher uses for its own (noncommutative) Polynomial type. Terms with a
// zero coefficient are never stored, so the zero polynomial is the empty
// map.
type Polynomial[K Field[K]] struct {
	zero  K
	o     Order
	terms *omap.MapFunc[Monomial, K]
}

// NewPolynomial returns the zero polynomial using ord to compare monomials.
// zero is consulted only for its field identity (NewZero/NewOne); its value
// is ignored.
func NewPolynomial[K Field[K]](ord Order, zero K) *Polynomial[K] {
	return &Polynomial[K]{
		zero:  zero,
		o:     ord,
		terms: omap.NewMapFunc[Monomial, K](ord),
	}
}

// NewPolynomialFromTerms returns the polynomial that is the sum of the
// given terms, using ord to compare monomials. Terms sharing a monomial are
// added together; a resulting zero coefficient is dropped.
func NewPolynomialFromTerms[K Field[K]](ord Order, zero K, terms ...PolynomialTerm[K]) *Polynomial[K] {
	p := NewPolynomial(ord, zero)
	for _, t := range terms {
		p.addTerm(t.Monomial, t.Coefficient)
	}
	return p
}

// Order returns the monomial order p was constructed with.
func (p *Polynomial[K]) Order() Order { return p.o }

// Len returns the number of nonzero terms.
func (p *Polynomial[K]) Len() int { return p.terms.Len() }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[K]) IsZero() bool { return p.terms.Len() == 0 }

// Coefficient returns the coefficient of m in p, or the zero field element
// if m does not appear.
func (p *Polynomial[K]) Coefficient(m Monomial) K {
	if c, ok := p.terms.Get(m); ok {
		return c
	}
	return p.zero.NewZero()
}

// LeadingTerm returns the term whose monomial is greatest under p's order.
// It fails with ErrEmptyPolynomial if p is zero.
func (p *Polynomial[K]) LeadingTerm() (PolynomialTerm[K], error) {
	m, c, ok := p.terms.Max()
	if !ok {
		return PolynomialTerm[K]{}, errors.Wrap(ErrEmptyPolynomial, "leading term")
	}
	return PolynomialTerm[K]{Monomial: m, Coefficient: c}, nil
}

// LeadingMonomial returns the monomial of p's leading term. It fails with
// ErrEmptyPolynomial if p is zero.
func (p *Polynomial[K]) LeadingMonomial() (Monomial, error) {
	t, err := p.LeadingTerm()
	if err != nil {
		return nil, err
	}
	return t.Monomial, nil
}

// Terms returns p's terms in ascending order under p's Order.
func (p *Polynomial[K]) Terms() []PolynomialTerm[K] {
	result := make([]PolynomialTerm[K], 0, p.terms.Len())
	for m, c := range p.terms.All() {
		result = append(result, PolynomialTerm[K]{Monomial: m, Coefficient: c})
	}
	return result
}

// TermsDescending returns p's terms in descending order under p's Order,
// leading term first.
func (p *Polynomial[K]) TermsDescending() []PolynomialTerm[K] {
	result := make([]PolynomialTerm[K], 0, p.terms.Len())
	for m, c := range p.terms.Backward() {
		result = append(result, PolynomialTerm[K]{Monomial: m, Coefficient: c})
	}
	return result
}

// addTerm adds c*m into p in place, dropping the entry if the resulting
// coefficient is zero.
func (p *Polynomial[K]) addTerm(m Monomial, c K) {
	zero := p.zero.NewZero()
	existing, ok := p.terms.Get(m)
	if !ok {
		if !c.Equal(zero) {
			p.terms.Set(m, c)
		}
		return
	}
	sum := p.zero.NewZero().Add(existing, c)
	if sum.Equal(zero) {
		p.terms.Delete(m)
		return
	}
	p.terms.Set(m, sum)
}

// Clone returns a copy of p with its own term map; the monomials and
// coefficients stored in it are shared with p.
func (p *Polynomial[K]) Clone() *Polynomial[K] {
	q := NewPolynomial(p.o, p.zero)
	for m, c := range p.terms.All() {
		q.terms.Set(m, c)
	}
	return q
}

// Add returns x+y. x and y must share the same Order.
func (x *Polynomial[K]) Add(y *Polynomial[K]) *Polynomial[K] {
	z := x.Clone()
	for m, c := range y.terms.All() {
		z.addTerm(m, c)
	}
	return z
}

// Sub returns x-y. x and y must share the same Order.
func (x *Polynomial[K]) Sub(y *Polynomial[K]) *Polynomial[K] {
	z := x.Clone()
	for m, c := range y.terms.All() {
		neg := x.zero.NewZero().Sub(x.zero.NewZero(), c)
		z.addTerm(m, neg)
	}
	return z
}

// MulTerm returns x * c*m, multiplying every term of x by the scalar c and
// the monomial m.
func (x *Polynomial[K]) MulTerm(m Monomial, c K) *Polynomial[K] {
	z := NewPolynomial(x.o, x.zero)
	for xm, xc := range x.terms.All() {
		z.addTerm(xm.Mul(m), x.zero.NewZero().Mul(xc, c))
	}
	return z
}

// Mul returns x*y. x and y must share the same Order.
func (x *Polynomial[K]) Mul(y *Polynomial[K]) *Polynomial[K] {
	z := NewPolynomial(x.o, x.zero)
	for ym, yc := range y.terms.All() {
		for xm, xc := range x.terms.All() {
			z.addTerm(xm.Mul(ym), x.zero.NewZero().Mul(xc, yc))
		}
	}
	return z
}

// Equal reports whether x and y have identical terms. It does not require
// x and y to share the same Order instance, only the same set of
// (monomial, coefficient) pairs.
func (x *Polynomial[K]) Equal(y *Polynomial[K]) bool {
	if x.terms.Len() != y.terms.Len() {
		return false
	}
	for m, c := range x.terms.All() {
		yc, ok := y.terms.Get(m)
		if !ok || !c.Equal(yc) {
			return false
		}
	}
	return true
}

// String renders p as a sum of terms in descending order, e.g.
// "2*a^2*b - a + 3". The zero polynomial renders as "0".
func (p *Polynomial[K]) String() string {
	terms := p.TermsDescending()
	if len(terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range terms {
		coeff := t.Coefficient.String()
		mono := formatMonomial(t.Monomial, defaultSymbolStringer)
		switch {
		case i == 0:
			b.WriteString(formatTerm(coeff, mono))
		case strings.HasPrefix(coeff, "-"):
			b.WriteString(" - ")
			b.WriteString(formatTerm(coeff[1:], mono))
		default:
			b.WriteString(" + ")
			b.WriteString(formatTerm(coeff, mono))
		}
	}
	return b.String()
}

// formatTerm joins a coefficient and a monomial's text with "*", eliding
// the coefficient when it is "1" and a monomial is present, and eliding the
// monomial entirely when its text is empty (the identity monomial).
func formatTerm(coeff, mono string) string {
	if mono == "" {
		return coeff
	}
	if coeff == "1" {
		return mono
	}
	return coeff + "*" + mono
}
