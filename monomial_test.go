package groebner

import (
	"testing"

	"github.com/pkg/errors"
)

func mono(exps ...int) Monomial {
	m, err := NewMonomial(exps...)
	if err != nil {
		panic(err)
	}
	return m
}

func TestMonomialTrim(t *testing.T) {
	tests := []struct {
		in   Monomial
		want Monomial
	}{
		{Monomial{1, 2, 0}, Monomial{1, 2}},
		{Monomial{0, 0, 0}, Monomial{}},
		{Monomial{1, 0, 3}, Monomial{1, 0, 3}},
		{nil, nil},
	}
	for _, tt := range tests {
		if got := tt.in.trim(); !got.Equal(tt.want) {
			t.Errorf("%v.trim() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewMonomialNegativeExponent(t *testing.T) {
	if _, err := NewMonomial(1, -1); !errors.Is(err, ErrInvalidExponent) {
		t.Errorf("NewMonomial(1, -1): want ErrInvalidExponent, got %v", err)
	}
}

func TestMonomialDegreeAndTotalDegree(t *testing.T) {
	m := mono(2, 0, 3)
	if d := m.Degree(0); d != 2 {
		t.Errorf("Degree(0) = %d, want 2", d)
	}
	if d := m.Degree(1); d != 0 {
		t.Errorf("Degree(1) = %d, want 0", d)
	}
	if d := m.Degree(5); d != 0 {
		t.Errorf("Degree(5) (out of range) = %d, want 0", d)
	}
	if d := m.TotalDegree(); d != 5 {
		t.Errorf("TotalDegree() = %d, want 5", d)
	}
}

func TestMonomialGreatestVariableIndex(t *testing.T) {
	tests := []struct {
		m    Monomial
		want int
	}{
		{nil, 0},
		{mono(1, 0, 0), 1},
		{mono(0, 0, 3), 3},
	}
	for _, tt := range tests {
		if got := tt.m.GreatestVariableIndex(); got != tt.want {
			t.Errorf("%v.GreatestVariableIndex() = %d, want %d", tt.m, got, tt.want)
		}
	}
}

func TestMonomialMul(t *testing.T) {
	x := mono(1, 2)
	y := mono(0, 1, 3)
	got := x.Mul(y)
	want := mono(1, 3, 3)
	if !got.Equal(want) {
		t.Errorf("%v * %v = %v, want %v", x, y, got, want)
	}
}

func TestMonomialIsDivisibleBy(t *testing.T) {
	tests := []struct {
		m, d Monomial
		want bool
	}{
		{mono(2, 3), mono(1, 2), true},
		{mono(2, 3), mono(3, 0), false},
		{mono(2, 3), mono(0, 0, 1), false},
		{mono(2, 3), nil, true},
		{nil, nil, true},
	}
	for _, tt := range tests {
		if got := tt.m.IsDivisibleBy(tt.d); got != tt.want {
			t.Errorf("%v.IsDivisibleBy(%v) = %v, want %v", tt.m, tt.d, got, tt.want)
		}
	}
}

func TestMonomialDiv(t *testing.T) {
	got, err := mono(2, 3).Div(mono(1, 2))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if want := mono(1, 1); !got.Equal(want) {
		t.Errorf("mono(2,3)/mono(1,2) = %v, want %v", got, want)
	}

	if _, err := mono(1, 1).Div(mono(2, 0)); !errors.Is(err, ErrDivisibility) {
		t.Errorf("Div of non-divisor: want ErrDivisibility, got %v", err)
	}
}

func TestLcm(t *testing.T) {
	got := Lcm(mono(1, 3, 0), mono(2, 1, 4))
	want := mono(2, 3, 4)
	if !got.Equal(want) {
		t.Errorf("Lcm = %v, want %v", got, want)
	}
}

func TestVariableAndVariablePower(t *testing.T) {
	if got, want := Variable(2), mono(0, 0, 1); !got.Equal(want) {
		t.Errorf("Variable(2) = %v, want %v", got, want)
	}
	vp, err := VariablePower(2, 5)
	if err != nil {
		t.Fatalf("VariablePower: %v", err)
	}
	if want := mono(0, 0, 5); !vp.Equal(want) {
		t.Errorf("VariablePower(2, 5) = %v, want %v", vp, want)
	}
}

func TestNewMonomialFromTerms(t *testing.T) {
	m, err := NewMonomialFromTerms(VarExp{Index: 2, Exponent: 3}, VarExp{Index: 0, Exponent: 1})
	if err != nil {
		t.Fatalf("NewMonomialFromTerms: %v", err)
	}
	if want := mono(1, 0, 3); !m.Equal(want) {
		t.Errorf("NewMonomialFromTerms = %v, want %v", m, want)
	}
}

func TestMonomialString(t *testing.T) {
	tests := []struct {
		m    Monomial
		want string
	}{
		{nil, ""},
		{mono(1), "a"},
		{mono(2), "a^2"},
		{mono(1, 1), "a*b"},
		{mono(2, 0, 3), "a^2*c^3"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
