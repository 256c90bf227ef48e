package groebner

import "github.com/pkg/errors"

// reduceStep attempts a single multiplicative reduction of g by the
// nonzero polynomial f: it searches g's terms in ascending order (the
// "any divisible term" policy spec.md §4.5/§9 permits, exercised by
// original_source's tryReduce, which scans the whole term map rather than
// only the leading term) for the first one divisible by f's leading
// monomial, and if found subtracts the multiple of f that cancels it. It
// reports whether a reduction was performed.
func reduceStep[K Field[K]](g, f *Polynomial[K]) (result *Polynomial[K], reduced bool, err error) {
	defer recoverFieldPanic(&err, "reduce step")

	ft, ferr := f.LeadingTerm()
	if ferr != nil {
		return g, false, errors.Wrap(ferr, "reduce: divisor is zero")
	}
	for _, gt := range g.Terms() {
		if !gt.Monomial.IsDivisibleBy(ft.Monomial) {
			continue
		}
		quotientMono, qerr := gt.Monomial.Div(ft.Monomial)
		if qerr != nil {
			return g, false, errors.Wrap(qerr, "reduce")
		}
		ratio := g.zero.NewZero().Div(gt.Coefficient, ft.Coefficient)
		return g.Sub(f.MulTerm(quotientMono, ratio)), true, nil
	}
	return g, false, nil
}

// ReduceWhilePossible repeatedly reduces g by f until no term of the
// result is divisible by f's leading monomial, i.e. until g is in normal
// form with respect to f alone. It fails with ErrEmptyPolynomial if f is
// zero, or with ErrArithmetic if a field operation along the way is
// undefined.
func ReduceWhilePossible[K Field[K]](g, f *Polynomial[K]) (*Polynomial[K], error) {
	for {
		next, reduced, err := reduceStep(g, f)
		if err != nil {
			return g, err
		}
		if !reduced {
			return g, nil
		}
		g = next
	}
}

// ReduceOverSet reduces g completely with respect to every (nonzero)
// member of s: each pass reduces g by every member in turn, and passes
// repeat while a pass changed g, until a full fixpoint is reached: the
// result's terms are none of them
// divisible by any member's leading monomial. This mirrors
// original_source's ReduceOverSet, which likewise loops until a pass over
// the whole set produces no change.
func ReduceOverSet[K Field[K]](g *Polynomial[K], s *PolynomialSet[K]) (*Polynomial[K], error) {
	for {
		changed := false
		for _, f := range s.Members() {
			if f.IsZero() {
				continue
			}
			next, err := ReduceWhilePossible(g, f)
			if err != nil {
				return g, err
			}
			if !next.Equal(g) {
				g = next
				changed = true
			}
		}
		if !changed {
			return g, nil
		}
	}
}

// ReduceSetOverItself reduces every member of s against the rest of the
// set (interreduction). Each pass walks the current members in
// descending leading-monomial order; each one is popped from the live
// working set, reduced over whatever currently remains — already
// including any changes made earlier in the same pass — and reinserted
// unless it reduced to zero. Passes repeat until an entire pass performs
// no reduction. This mirrors original_source's ReduceSetOverItself,
// whose do/while loop likewise erases each element, reduces it against
// the live (already partially reduced) remaining set, reinserts it, and
// keeps repeating full passes while any pass still reduces something.
func ReduceSetOverItself[K Field[K]](s *PolynomialSet[K]) (*PolynomialSet[K], error) {
	working := s.Clone()
	for {
		changed := false
		members := working.Members()
		for i := len(members) - 1; i >= 0; i-- {
			p := members[i]
			working.Remove(p)
			reduced, err := ReduceOverSet(p, working)
			if err != nil {
				return s, errors.Wrap(err, "interreduce")
			}
			if !reduced.Equal(p) {
				changed = true
			}
			if !reduced.IsZero() {
				working.Add(reduced)
			}
		}
		if !changed {
			return working, nil
		}
	}
}

// LeadingTermToOne rescales p so that its leading coefficient is 1,
// dividing every term by the current leading coefficient. It fails with
// ErrEmptyPolynomial if p is zero. This mirrors original_source's
// LeadingTermToOne, used to give a Gröbner basis's members a canonical
// monic normalization.
func LeadingTermToOne[K Field[K]](p *Polynomial[K]) (result *Polynomial[K], err error) {
	defer recoverFieldPanic(&err, "leading term to one")

	lt, lerr := p.LeadingTerm()
	if lerr != nil {
		return p, errors.Wrap(lerr, "leading term to one")
	}
	one := p.zero.NewOne()
	if lt.Coefficient.Equal(one) {
		return p.Clone(), nil
	}
	inv := p.zero.NewZero().Inv(lt.Coefficient)
	return p.MulTerm(nil, inv), nil
}
