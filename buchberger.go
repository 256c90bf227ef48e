package groebner

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// SPolynomial returns the S-polynomial of f and g: letting L be the least
// common multiple of their leading monomials μf, μg with leading
// coefficients cf, cg, S(f,g) = (L/μf)*cg*f - (L/μg)*cf*g — the unique
// combination, scaled by the other polynomial's leading coefficient rather
// than by a field inverse, that cancels both leading terms (each product's
// leading term works out to L*cf*cg before the subtraction). It fails with
// ErrEmptyPolynomial if either argument is zero.
func SPolynomial[K Field[K]](f, g *Polynomial[K]) (*Polynomial[K], error) {
	ft, ferr := f.LeadingTerm()
	if ferr != nil {
		return nil, errors.Wrap(ferr, "s-polynomial: f")
	}
	gt, gerr := g.LeadingTerm()
	if gerr != nil {
		return nil, errors.Wrap(gerr, "s-polynomial: g")
	}
	l := Lcm(ft.Monomial, gt.Monomial)
	mf, err := l.Div(ft.Monomial)
	if err != nil {
		return nil, errors.Wrap(err, "s-polynomial")
	}
	mg, err := l.Div(gt.Monomial)
	if err != nil {
		return nil, errors.Wrap(err, "s-polynomial")
	}
	return f.MulTerm(mf, gt.Coefficient).Sub(g.MulTerm(mg, ft.Coefficient)), nil
}

// A PolynomialPair is an unordered pair of candidate polynomials whose
// S-polynomial Buchberger's algorithm must consider.
type PolynomialPair[K Field[K]] struct {
	First, Second *Polynomial[K]
}

// ReducedPairs enumerates every unordered pair of distinct members of s
// exactly once, using gonum.org/v1/gonum/stat/combin.Combinations to
// generate the index pairs over a snapshot of s.Members() rather than a
// hand-rolled double loop.
func ReducedPairs[K Field[K]](s *PolynomialSet[K]) []PolynomialPair[K] {
	members := s.Members()
	if len(members) < 2 {
		return nil
	}
	combos := combin.Combinations(len(members), 2)
	pairs := make([]PolynomialPair[K], len(combos))
	for i, c := range combos {
		pairs[i] = PolynomialPair[K]{First: members[c[0]], Second: members[c[1]]}
	}
	return pairs
}

// hasCoprimeLeadingMonomials reports whether f and g's leading monomials
// share no common variable, i.e. their lcm equals their product. Buchberger's
// first criterion: such a pair's S-polynomial is guaranteed to reduce to
// zero and the pair can be skipped without computing it.
func hasCoprimeLeadingMonomials[K Field[K]](f, g *Polynomial[K]) (bool, error) {
	flm, err := f.LeadingMonomial()
	if err != nil {
		return false, err
	}
	glm, err := g.LeadingMonomial()
	if err != nil {
		return false, err
	}
	return Lcm(flm, glm).Equal(flm.Mul(glm)), nil
}

// DoBuhberger computes a Gröbner basis of the ideal generated by S, with
// respect to S's monomial order, via Buchberger's algorithm, following
// original_source's DoBuhberger (and spec §4.8's pseudocode) step for
// step: interreduce the input and normalize it to monic first; then
// repeatedly take every unordered pair of the current set (ReducedPairs),
// skip pairs whose leading monomials are coprime (Buchberger's first
// criterion), compute each remaining
// pair's S-polynomial, reduce it over the current set, and collect the
// nonzero remainders as "newbies"; normalize the newbies to monic and
// merge them into the set; repeat until a full pass produces no newbies.
// A final interreduction cleans up the result.
func DoBuhberger[K Field[K]](S *PolynomialSet[K]) (*PolynomialSet[K], error) {
	order := S.order

	reduced, err := ReduceSetOverItself(S)
	if err != nil {
		return S, errors.Wrap(err, "buchberger: initial interreduce")
	}
	current := NewPolynomialSet[K](order)
	for _, p := range reduced.Members() {
		m, err := LeadingTermToOne(p)
		if err != nil {
			return S, errors.Wrap(err, "buchberger: initial normalize")
		}
		current.Add(m)
	}

	for {
		newbies := NewPolynomialSet[K](order)
		for _, pr := range ReducedPairs(current) {
			coprime, err := hasCoprimeLeadingMonomials(pr.First, pr.Second)
			if err != nil {
				return S, errors.Wrap(err, "buchberger")
			}
			if coprime {
				continue
			}
			s, err := SPolynomial(pr.First, pr.Second)
			if err != nil {
				return S, errors.Wrap(err, "buchberger")
			}
			r, err := ReduceOverSet(s, current)
			if err != nil {
				return S, errors.Wrap(err, "buchberger")
			}
			if !r.IsZero() {
				newbies.Add(r)
			}
		}
		if newbies.Len() == 0 {
			break
		}
		for _, p := range newbies.Members() {
			m, err := LeadingTermToOne(p)
			if err != nil {
				return S, errors.Wrap(err, "buchberger: normalize")
			}
			current.Add(m)
		}
	}

	return ReduceSetOverItself(current)
}
