package cyclic

import (
	"testing"

	"github.com/grbasis/groebner"
)

func rat(n, d int64) *groebner.Rational {
	r, err := groebner.NewRational(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

func term(m groebner.Monomial, n, d int64) groebner.PolynomialTerm[*groebner.Rational] {
	return groebner.PolynomialTerm[*groebner.Rational]{Monomial: m, Coefficient: rat(n, d)}
}

func poly(terms ...groebner.PolynomialTerm[*groebner.Rational]) *groebner.Polynomial[*groebner.Rational] {
	return groebner.NewPolynomialFromTerms(groebner.GrlexOrder, groebner.NewIntRational(0), terms...)
}

func mono(exps ...int) groebner.Monomial {
	m, err := groebner.NewMonomial(exps...)
	if err != nil {
		panic(err)
	}
	return m
}

func TestPowerSums(t *testing.T) {
	sums := PowerSums(2, groebner.GrlexOrder)
	if len(sums) != 2 {
		t.Fatalf("PowerSums(2) returned %d polynomials, want 2", len(sums))
	}
	wantP1 := poly(term(mono(1), 1, 1), term(mono(0, 1), 1, 1))
	if !sums[0].Equal(wantP1) {
		t.Errorf("p1 = %v, want %v (x0+x1)", sums[0], wantP1)
	}
	wantP2 := poly(term(mono(2), 1, 1), term(mono(0, 2), 1, 1))
	if !sums[1].Equal(wantP2) {
		t.Errorf("p2 = %v, want %v (x0^2+x1^2)", sums[1], wantP2)
	}
}

func TestElementarySymmetricFromTwoVariables(t *testing.T) {
	sums := PowerSums(2, groebner.GrlexOrder)
	e, err := ElementarySymmetric(sums, groebner.GrlexOrder)
	if err != nil {
		t.Fatalf("ElementarySymmetric: %v", err)
	}
	if len(e) != 2 {
		t.Fatalf("ElementarySymmetric returned %d polynomials, want 2", len(e))
	}
	wantE1 := poly(term(mono(1), 1, 1), term(mono(0, 1), 1, 1))
	if !e[0].Equal(wantE1) {
		t.Errorf("e1 = %v, want %v (x0+x1)", e[0], wantE1)
	}
	wantE2 := poly(term(mono(1, 1), 1, 1))
	if !e[1].Equal(wantE2) {
		t.Errorf("e2 = %v, want %v (x0 x1)", e[1], wantE2)
	}
}

func TestGenerateCyclic3(t *testing.T) {
	set, err := Generate(3, groebner.GrlexOrder)
	if err != nil {
		t.Fatalf("Generate(3): %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("Generate(3) returned %d generators, want 3", set.Len())
	}
	want := []*groebner.Polynomial[*groebner.Rational]{
		poly(term(mono(1), 1, 1), term(mono(0, 1), 1, 1), term(mono(0, 0, 1), 1, 1)),
		poly(term(mono(1, 1), 1, 1), term(mono(0, 1, 1), 1, 1), term(mono(1, 0, 1), 1, 1)),
		poly(term(mono(1, 1, 1), 1, 1), term(nil, -1, 1)),
	}
	for _, w := range want {
		if !set.Contains(w) {
			t.Errorf("Generate(3) = %v, missing generator %v", set.Members(), w)
		}
	}
}

func TestGenerateRejectsSmallN(t *testing.T) {
	if _, err := Generate(1, groebner.GrlexOrder); err == nil {
		t.Error("Generate(1): want error, got none")
	}
}

func TestGenerateCyclic4SignConvention(t *testing.T) {
	// n even: the last generator is e_n + 1, not e_n - 1.
	set, err := Generate(4, groebner.GrlexOrder)
	if err != nil {
		t.Fatalf("Generate(4): %v", err)
	}
	foundPlusOne := false
	for _, p := range set.Members() {
		lt, err := p.LeadingTerm()
		if err != nil {
			continue
		}
		if lt.Monomial.Equal(mono(1, 1, 1, 1)) {
			if p.Equal(poly(term(mono(1, 1, 1, 1), 1, 1), term(nil, 1, 1))) {
				foundPlusOne = true
			}
		}
	}
	if !foundPlusOne {
		t.Errorf("Generate(4) should include e_4 + 1, got %v", set.Members())
	}
}
