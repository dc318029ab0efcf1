// Package rational implements an immutable exact fraction over
// arbitrary-precision integers. Values are always stored in canonical
// form: the denominator is positive and coprime with the numerator, so
// two equal fractions share one representation.
package rational

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"
)

var (
	// ErrZeroDenominator reports a mathematically undefined operation:
	// a zero denominator at construction, or division by a zero value.
	ErrZeroDenominator = errors.New("zero denominator")

	// ErrFormat reports text that does not match the "n" or "n/d" grammar.
	ErrFormat = errors.New("invalid rational format")
)

var (
	Zero Rational
	One  Rational
)

func init() {
	Zero = NewInt(big.NewInt(0))
	One = NewInt(big.NewInt(1))
}

type Rational struct {
	num big.Int
	den big.Int
}

func New(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return newRational(num, den), nil
}

func NewInt(n *big.Int) (v Rational) {
	v.num.Set(n)
	v.den.SetInt64(1)
	return
}

func NewInt64(num, den int64) (Rational, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// NewFromDecimalString constructs the exact value of a decimal literal,
// e.g. "1.25" yields 5/4. The conversion is coefficient*10^exponent and
// loses nothing.
func NewFromDecimalString(s string) (Rational, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	num := new(big.Int).Set(d.Coefficient())
	den := big.NewInt(1)
	if e := int64(d.Exponent()); e >= 0 {
		num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(e), nil))
	} else {
		den.Exp(big.NewInt(10), big.NewInt(-e), nil)
	}
	return newRational(num, den), nil
}

// newRational reduces num/den to lowest terms with a positive
// denominator. den must not be zero here.
func newRational(num, den *big.Int) (v Rational) {
	if num.Sign() == 0 {
		v.den.SetInt64(1)
		return
	}
	g := new(big.Int).GCD(nil, nil, num, den)
	if den.Sign() < 0 {
		g.Neg(g)
	}
	v.num.Quo(num, g)
	v.den.Quo(den, g)
	return
}

func (x Rational) Neg() (v Rational) {
	v.num.Neg(&x.num)
	v.den.Set(&x.den)
	return
}

func (x Rational) inv() (Rational, error) {
	if x.num.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return newRational(&x.den, &x.num), nil
}

// Add returns x + y. A zero operand short-circuits to the other
// operand unchanged. Otherwise the shared factors of the numerators
// and of the denominators are pulled out before cross-multiplying,
// bounding intermediate growth.
func (x Rational) Add(y Rational) Rational {
	if y.IsZero() {
		return x
	}
	if x.IsZero() {
		return y
	}

	f := new(big.Int).GCD(nil, nil, &x.num, &y.num)
	g := new(big.Int).GCD(nil, nil, &x.den, &y.den)

	num := new(big.Int).Quo(&x.num, f)
	num.Mul(num, new(big.Int).Quo(&y.den, g))
	t := new(big.Int).Quo(&y.num, f)
	t.Mul(t, new(big.Int).Quo(&x.den, g))
	num.Add(num, t)
	num.Mul(num, f)

	// lcm(x.den, y.den)
	den := new(big.Int).Quo(&y.den, g)
	den.Mul(den, &x.den)
	return newRational(num, den)
}

func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Mul reduces the two diagonal pairs before multiplying, so the final
// products never exceed the size of the already-reduced result.
func (x Rational) Mul(y Rational) Rational {
	c := newRational(&x.num, &y.den)
	d := newRational(&y.num, &x.den)
	num := new(big.Int).Mul(&c.num, &d.num)
	den := new(big.Int).Mul(&c.den, &d.den)
	return newRational(num, den)
}

func (x Rational) Div(y Rational) (Rational, error) {
	r, err := y.inv()
	if err != nil {
		return Rational{}, err
	}
	return x.Mul(r), nil
}

// Cmp compares by cross-multiplication; both denominators are positive
// so no sign flip is introduced.
func (x Rational) Cmp(y Rational) int {
	a := new(big.Int).Mul(&x.num, &y.den)
	b := new(big.Int).Mul(&y.num, &x.den)
	return a.Cmp(b)
}

// Equal is structural equality of the canonical pair; it agrees with
// Cmp == 0.
func (x Rational) Equal(y Rational) bool {
	return x.num.Cmp(&y.num) == 0 && x.den.Cmp(&y.den) == 0
}

func (x Rational) Sign() int {
	return x.num.Sign()
}

func (x Rational) IsZero() bool {
	return x.num.Sign() == 0
}

func (x Rational) Hash() [32]byte {
	return sha3.Sum256([]byte(x.String()))
}

func (x Rational) Num() *big.Int {
	return new(big.Int).Set(&x.num)
}

func (x Rational) Den() *big.Int {
	return new(big.Int).Set(&x.den)
}
