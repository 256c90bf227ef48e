package groebner

import "testing"

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

func TestLexOrder(t *testing.T) {
	tests := []struct {
		x, y Monomial
		want int
	}{
		{mono(1, 0), mono(0, 5), 1},
		{mono(0, 5), mono(1, 0), -1},
		{mono(1, 1), mono(1, 1), 0},
		{mono(1), mono(1, 0, 0), 0},
	}
	for _, tt := range tests {
		if got := sign(LexOrder(tt.x, tt.y)); got != tt.want {
			t.Errorf("LexOrder(%v, %v) sign = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDegreeOrder(t *testing.T) {
	if sign(DegreeOrder(mono(2, 1), mono(1, 1))) != 1 {
		t.Error("DegreeOrder should prefer higher total degree")
	}
	if DegreeOrder(mono(2, 0), mono(0, 2)) != 0 {
		t.Error("DegreeOrder should treat equal total degree as equal")
	}
}

func TestRevLexOrder(t *testing.T) {
	// Among monomials of equal degree, revlex prefers the one with the
	// smaller exponent on the highest-indexed variable.
	x := mono(0, 2) // b^2
	y := mono(1, 1) // a b
	if sign(RevLexOrder(y, x)) != 1 {
		t.Errorf("RevLexOrder(ab, b^2) should be positive (ab > b^2)")
	}
}

func TestGrlexOrder(t *testing.T) {
	small := mono(1)
	large := mono(0, 1, 1)
	if sign(GrlexOrder(large, small)) != 1 {
		t.Errorf("GrlexOrder should rank higher-degree monomial above a lower-degree one")
	}
	// Same degree: falls back to lex.
	a2 := mono(2)
	bc := mono(0, 1, 1)
	if sign(GrlexOrder(a2, bc)) != 1 {
		t.Errorf("GrlexOrder tie-break should fall back to lex")
	}
}

func TestGrevlexOrder(t *testing.T) {
	// Same degree, revlex tie-break: x^2 should rank above y*z under grevlex
	// because revlex prefers less weight on the trailing variable.
	x2 := mono(2)
	yz := mono(0, 1, 1)
	if sign(GrevlexOrder(x2, yz)) != 1 {
		t.Errorf("GrevlexOrder(x^2, yz) should be positive, got %d", GrevlexOrder(x2, yz))
	}
}

func TestSumShortCircuitsOnPrimaryOrder(t *testing.T) {
	// Sum(a, b) should only consult b when a reports a tie.
	always1 := func(x, y Monomial) int { return 1 }
	never := func(x, y Monomial) int { t.Fatal("secondary order should not be consulted"); return 0 }
	combined := Sum(always1, never)
	if combined(mono(1), mono(2)) != 1 {
		t.Error("Sum should short-circuit on the primary order's nonzero result")
	}
}
