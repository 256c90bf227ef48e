package groebner

import (
	"math/big"

	"github.com/pkg/errors"
)

// A Field is an element whose addition and multiplication operations
// satisfy the [field] axioms. The arithmetic methods (Add, Sub, Mul, Div,
// Inv) set the receiver to the result and return it, mirroring math/big's
// API, so that callers can chain operations and reuse allocations; NewZero
// and NewOne return new values and leave the receiver unchanged.
//
// Div and Inv panic when the divisor (resp. the operand) is the additive
// identity; every exported entry point in this package that calls into a
// Field[K] recovers such a panic and converts it back into a wrapped error
// of kind ErrArithmetic, so the panic never crosses the package boundary.
//
// [field]: https://en.wikipedia.org/wiki/Field_(mathematics)
type Field[T any] interface {
	NewZero() T
	NewOne() T

	Equal(y T) bool
	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	Div(x, y T) T
	Inv(x T) T

	String() string
}

// A Rational is an exact fraction num/den with den > 0 and
// gcd(|num|, den) = 1. The zero value is not a valid Rational; use
// NewRational or NewIntRational.
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewIntRational returns the Rational equal to the integer n.
func NewIntRational(n int64) *Rational {
	r, err := NewRational(n, 1)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRational returns the Rational num/den in canonical form: sign folded
// into the numerator, and gcd(|num|, den) = 1. It fails with ErrArithmetic
// if den == 0.
func NewRational(num, den int64) (*Rational, error) {
	if den == 0 {
		return nil, errors.Wrap(ErrArithmetic, "denominator is zero")
	}
	r := &Rational{num: big.NewInt(num), den: big.NewInt(den)}
	r.normalize()
	return r, nil
}

// NewBigRational returns the Rational num/den in canonical form. It fails
// with ErrArithmetic if den is zero.
func NewBigRational(num, den *big.Int) (*Rational, error) {
	if den.Sign() == 0 {
		return nil, errors.Wrap(ErrArithmetic, "denominator is zero")
	}
	r := &Rational{num: new(big.Int).Set(num), den: new(big.Int).Set(den)}
	r.normalize()
	return r, nil
}

func (r *Rational) normalize() {
	if r.den.Sign() < 0 {
		r.num.Neg(r.num)
		r.den.Neg(r.den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.num), r.den)
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		r.num.Quo(r.num, g)
		r.den.Quo(r.den, g)
	}
}

// Numerator returns the canonical numerator.
func (r *Rational) Numerator() *big.Int { return new(big.Int).Set(r.num) }

// Denominator returns the canonical denominator, always positive.
func (r *Rational) Denominator() *big.Int { return new(big.Int).Set(r.den) }

// NewZero returns the additive identity 0.
func (r *Rational) NewZero() *Rational { return NewIntRational(0) }

// NewOne returns the multiplicative identity 1.
func (r *Rational) NewOne() *Rational { return NewIntRational(1) }

// Equal reports whether r and y denote the same fraction.
func (r *Rational) Equal(y *Rational) bool {
	return r.num.Cmp(y.num) == 0 && r.den.Cmp(y.den) == 0
}

// Add sets z to the sum x+y and returns z.
func (z *Rational) Add(x, y *Rational) *Rational {
	num := new(big.Int).Add(new(big.Int).Mul(x.num, y.den), new(big.Int).Mul(y.num, x.den))
	den := new(big.Int).Mul(x.den, y.den)
	z.num, z.den = num, den
	z.normalize()
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Rational) Sub(x, y *Rational) *Rational {
	num := new(big.Int).Sub(new(big.Int).Mul(x.num, y.den), new(big.Int).Mul(y.num, x.den))
	den := new(big.Int).Mul(x.den, y.den)
	z.num, z.den = num, den
	z.normalize()
	return z
}

// Mul sets z to the product x*y and returns z.
func (z *Rational) Mul(x, y *Rational) *Rational {
	num := new(big.Int).Mul(x.num, y.num)
	den := new(big.Int).Mul(x.den, y.den)
	z.num, z.den = num, den
	z.normalize()
	return z
}

// Div sets z to the quotient x/y and returns z. It panics with
// ErrArithmetic if y is zero; see Field for how callers should recover.
func (z *Rational) Div(x, y *Rational) *Rational {
	if y.num.Sign() == 0 {
		panic(errors.Wrap(ErrArithmetic, "division by zero"))
	}
	num := new(big.Int).Mul(x.num, y.den)
	den := new(big.Int).Mul(x.den, y.num)
	z.num, z.den = num, den
	z.normalize()
	return z
}

// Inv sets z to 1/x and returns z. It panics with ErrArithmetic if x is
// zero; see Field for how callers should recover.
func (z *Rational) Inv(x *Rational) *Rational {
	if x.num.Sign() == 0 {
		panic(errors.Wrap(ErrArithmetic, "division by zero"))
	}
	num := new(big.Int).Set(x.den)
	den := new(big.Int).Set(x.num)
	z.num, z.den = num, den
	z.normalize()
	return z
}

// Sign returns -1, 0 or +1 depending on whether r is negative, zero, or
// positive.
func (r *Rational) Sign() int { return r.num.Sign() }

// String returns "num/den" if den != 1, otherwise just "num".
func (r *Rational) String() string {
	if r.den.Cmp(big.NewInt(1)) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
