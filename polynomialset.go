package groebner

import (
	"slices"
	"strings"
)

// A PolynomialSet is a deduplicated collection of polynomials, compared by
// their term content rather than by pointer identity. Deduplication uses a
// canonical string key built from each polynomial's ascending term
// sequence, and Members returns them in a fixed, deterministic order:
// ascending by each member's own leading term under order, ties broken by
// the canonical key. original_source's PolynomialSet is a hash-based
// std::unordered_set, whose iteration order is unspecified and
// implementation-dependent; this realizes spec.md's own suggested fix
// ("a deterministically ordered set keyed by... the leading term of each
// polynomial") instead of carrying that nondeterminism forward.
type PolynomialSet[K Field[K]] struct {
	order   Order
	members map[string]*Polynomial[K]
}

// NewPolynomialSet returns an empty PolynomialSet that orders its members
// by order.
func NewPolynomialSet[K Field[K]](order Order) *PolynomialSet[K] {
	return &PolynomialSet[K]{order: order, members: make(map[string]*Polynomial[K])}
}

// canonicalKey builds a deterministic string identifying p's term content,
// independent of the internal iteration order of its backing omap.
func canonicalKey[K Field[K]](p *Polynomial[K]) string {
	var b strings.Builder
	for _, t := range p.Terms() {
		b.WriteString(formatMonomial(t.Monomial, defaultSymbolStringer))
		b.WriteByte('|')
		b.WriteString(t.Coefficient.String())
		b.WriteByte(';')
	}
	return b.String()
}

// Add inserts p into s, doing nothing if an equal polynomial is already
// present. It reports whether p was newly added.
func (s *PolynomialSet[K]) Add(p *Polynomial[K]) bool {
	key := canonicalKey(p)
	if _, ok := s.members[key]; ok {
		return false
	}
	s.members[key] = p
	return true
}

// Remove deletes p from s if present.
func (s *PolynomialSet[K]) Remove(p *Polynomial[K]) {
	delete(s.members, canonicalKey(p))
}

// Contains reports whether a polynomial equal to p is in s.
func (s *PolynomialSet[K]) Contains(p *Polynomial[K]) bool {
	_, ok := s.members[canonicalKey(p)]
	return ok
}

// Len returns the number of distinct members.
func (s *PolynomialSet[K]) Len() int { return len(s.members) }

// Members returns s's polynomials in a fixed, deterministic order: ascending
// by each member's own leading term under s.order, with the zero
// polynomial (if present) sorted first, ties broken by canonical key.
func (s *PolynomialSet[K]) Members() []*Polynomial[K] {
	result := make([]*Polynomial[K], 0, len(s.members))
	keys := make([]string, 0, len(s.members))
	for k, p := range s.members {
		result = append(result, p)
		keys = append(keys, k)
	}
	idx := make([]int, len(result))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(i, j int) int {
		li, errI := result[i].LeadingMonomial()
		lj, errJ := result[j].LeadingMonomial()
		switch {
		case errI != nil && errJ != nil:
			return strings.Compare(keys[i], keys[j])
		case errI != nil:
			return -1
		case errJ != nil:
			return 1
		}
		if c := s.order(li, lj); c != 0 {
			return c
		}
		return strings.Compare(keys[i], keys[j])
	})
	sorted := make([]*Polynomial[K], len(idx))
	for i, j := range idx {
		sorted[i] = result[j]
	}
	return sorted
}

// Clone returns a shallow copy of s (members are shared, not deep-copied).
func (s *PolynomialSet[K]) Clone() *PolynomialSet[K] {
	clone := NewPolynomialSet[K](s.order)
	for k, v := range s.members {
		clone.members[k] = v
	}
	return clone
}
