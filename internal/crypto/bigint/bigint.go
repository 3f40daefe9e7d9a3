// Package bigint implements immutable arbitrary-precision signed integers
// on top of math/big. Every operation returns a fresh value and never
// modifies its operands, so values can be shared freely between goroutines.
package bigint

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

var bigZero = new(big.Int)

// Int is an arbitrary-precision signed integer. The zero value is 0.
type Int struct {
	v *big.Int // never mutated once set
}

// Common values.
var (
	Zero = New(0)
	One  = New(1)
	Two  = New(2)
)

// New returns x as an Int.
func New(x int64) Int {
	return Int{v: big.NewInt(x)}
}

// FromBig returns a copy of b as an Int. A nil b is treated as 0.
func FromBig(b *big.Int) Int {
	if b == nil {
		return Int{}
	}
	return Int{v: new(big.Int).Set(b)}
}

// FromBytes interprets b as an unsigned big-endian integer.
func FromBytes(b []byte) Int {
	return Int{v: new(big.Int).SetBytes(b)}
}

// FromString parses s in the given base (0 means auto-detect a 0x/0o/0b
// prefix, as in big.Int.SetString).
func FromString(s string, base int) (Int, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Int{}, errors.Wrapf(ErrSyntax, "parse %q in base %d", s, base)
	}
	return Int{v: v}, nil
}

// FromHex parses a hexadecimal string, with or without a 0x prefix and
// with an optional leading minus sign.
func FromHex(s string) (Int, error) {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	r, err := FromString(digits, 16)
	if err != nil {
		return Int{}, err
	}
	if neg {
		return r.Neg(), nil
	}
	return r, nil
}

// MustFromString is like FromString but panics on malformed input. It is
// meant for compile-time constants.
func MustFromString(s string, base int) Int {
	r, err := FromString(s, base)
	if err != nil {
		panic(err)
	}
	return r
}

// MustFromHex is like FromHex but panics on malformed input.
func MustFromHex(s string) Int {
	r, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (a Int) big() *big.Int {
	if a.v == nil {
		return bigZero
	}
	return a.v
}

// Big returns a copy of a as a *big.Int.
func (a Int) Big() *big.Int {
	return new(big.Int).Set(a.big())
}

// Add returns a + b.
func (a Int) Add(b Int) Int {
	return Int{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b.
func (a Int) Sub(b Int) Int {
	return Int{v: new(big.Int).Sub(a.big(), b.big())}
}

// Mul returns a * b.
func (a Int) Mul(b Int) Int {
	return Int{v: new(big.Int).Mul(a.big(), b.big())}
}

// Neg returns -a.
func (a Int) Neg() Int {
	return Int{v: new(big.Int).Neg(a.big())}
}

// Abs returns |a|.
func (a Int) Abs() Int {
	return Int{v: new(big.Int).Abs(a.big())}
}

// FloorDiv returns floor(a / b), rounding toward negative infinity so that
// a == b*FloorDiv(a, b) + Mod(a, b) always holds.
func (a Int) FloorDiv(b Int) (Int, error) {
	if b.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	q, m := new(big.Int).DivMod(a.big(), b.big(), new(big.Int))
	// DivMod is Euclidean; for a negative divisor and a non-zero remainder
	// the floor quotient is one below the Euclidean one.
	if b.Sign() < 0 && m.Sign() != 0 {
		q.Sub(q, big.NewInt(1))
	}
	return Int{v: q}, nil
}

// DivRem returns the quotient and remainder of a / b truncated toward zero.
func (a Int) DivRem(b Int) (Int, Int, error) {
	if b.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(a.big(), b.big(), new(big.Int))
	return Int{v: q}, Int{v: r}, nil
}

// Mod returns a mod p with floor semantics: the result has the sign of p,
// which puts it in [0, p) for a positive p.
func (a Int) Mod(p Int) (Int, error) {
	if p.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	m := new(big.Int).Mod(a.big(), p.big()) // in [0, |p|)
	if p.Sign() < 0 && m.Sign() != 0 {
		m.Add(m, p.big())
	}
	return Int{v: m}, nil
}

// Lsh returns a << n.
func (a Int) Lsh(n uint) Int {
	return Int{v: new(big.Int).Lsh(a.big(), n)}
}

// Rsh returns a >> n (arithmetic shift, rounds toward negative infinity).
func (a Int) Rsh(n uint) Int {
	return Int{v: new(big.Int).Rsh(a.big(), n)}
}

// Cmp compares a and b and returns -1, 0 or 1.
func (a Int) Cmp(b Int) int {
	return a.big().Cmp(b.big())
}

// Equal reports whether a == b.
func (a Int) Equal(b Int) bool {
	return a.Cmp(b) == 0
}

// Sign returns -1, 0 or 1 depending on the sign of a.
func (a Int) Sign() int {
	return a.big().Sign()
}

// IsZero reports whether a == 0.
func (a Int) IsZero() bool {
	return a.Sign() == 0
}

// IsOdd reports whether a is odd.
func (a Int) IsOdd() bool {
	return a.big().Bit(0) == 1
}

// Bit returns the value of the i'th bit of |a|.
func (a Int) Bit(i int) uint {
	return new(big.Int).Abs(a.big()).Bit(i)
}

// BitLen returns the length of |a| in bits.
func (a Int) BitLen() int {
	return a.big().BitLen()
}

// FillBytes writes |a| big-endian into buf, zero-padded on the left, and
// returns buf. It panics if |a| does not fit, like big.Int.FillBytes.
func (a Int) FillBytes(buf []byte) []byte {
	return new(big.Int).Abs(a.big()).FillBytes(buf)
}

// Text returns the representation of a in the given base.
func (a Int) Text(base int) string {
	return a.big().Text(base)
}

// String returns the decimal representation of a.
func (a Int) String() string {
	return a.Text(10)
}
