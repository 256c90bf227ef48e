package groebner

import "github.com/pkg/errors"

// LaysInIdeal reports whether p belongs to the ideal generated by ideal.
// It runs Buchberger's algorithm on a copy of ideal (so ideal need not
// already be a Gröbner basis — though passing one is harmless, since
// DoBuhberger is a fixpoint on its own output) and checks whether p's
// normal form over the resulting basis is zero. This mirrors
// original_source's LaysInIdeal exactly.
func LaysInIdeal[K Field[K]](ideal *PolynomialSet[K], p *Polynomial[K]) (bool, error) {
	basis, err := DoBuhberger(ideal.Clone())
	if err != nil {
		return false, errors.Wrap(err, "lays in ideal")
	}
	r, err := ReduceOverSet(p, basis)
	if err != nil {
		return false, errors.Wrap(err, "lays in ideal")
	}
	return r.IsZero(), nil
}

// greatestVariableIndex returns one past the highest variable index used
// anywhere across ideal's generators and p.
func greatestVariableIndex[K Field[K]](ideal *PolynomialSet[K], p *Polynomial[K]) int {
	result := 0
	for _, t := range p.Terms() {
		if v := t.Monomial.GreatestVariableIndex(); v > result {
			result = v
		}
	}
	for _, g := range ideal.Members() {
		for _, t := range g.Terms() {
			if v := t.Monomial.GreatestVariableIndex(); v > result {
				result = v
			}
		}
	}
	return result
}

// LaysInRadical reports whether p belongs to the radical of the ideal
// generated by ideal, via the Rabinowitsch trick: introduce a fresh
// variable y (one past the greatest variable index used anywhere in ideal
// or p), form the extended ideal generated by ideal together with
// 1 - y*p, and test whether 1 lies in that extended ideal. p lies in the
// radical of (ideal) iff 1 lies in (ideal, 1 - y*p). This mirrors
// original_source's LaysInRadical exactly, down to using
// getMaxVariableNumber for the fresh variable's index.
func LaysInRadical[K Field[K]](ideal *PolynomialSet[K], p *Polynomial[K]) (bool, error) {
	order := ideal.order
	one := p.zero.NewOne()
	y := greatestVariableIndex(ideal, p)

	onePoly := NewPolynomialFromTerms(order, p.zero, PolynomialTerm[K]{Monomial: One(), Coefficient: one})
	yPoly := NewPolynomialFromTerms(order, p.zero, PolynomialTerm[K]{Monomial: Variable(y), Coefficient: one})
	extra := onePoly.Sub(yPoly.Mul(p))

	extended := ideal.Clone()
	extended.Add(extra)

	inIdeal, err := LaysInIdeal(extended, onePoly)
	if err != nil {
		return false, errors.Wrap(err, "lays in radical")
	}
	return inIdeal, nil
}
