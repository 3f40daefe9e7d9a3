// Package field implements arithmetic in GF(2^251 - 9), the base field of
// Curve1174, on fixed-width 256-bit integers.
//
// Values are always kept fully reduced in [0, q). Every operation returns a
// new Element; operands are never modified.
package field

import (
	"math/big"

	"github.com/holiman/uint256"
)

var (
	// q = 2^251 - 9
	q = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 251), uint256.NewInt(9))

	qMinus1Half   = new(uint256.Int).Rsh(new(uint256.Int).Sub(q, uint256.NewInt(1)), 1)
	qPlus1Quarter = new(uint256.Int).Rsh(new(uint256.Int).Add(q, uint256.NewInt(1)), 2)
	qMinus2       = new(uint256.Int).Sub(q, uint256.NewInt(2))
)

// Modulus returns q as a *big.Int.
func Modulus() *big.Int {
	return q.ToBig()
}

// Element is a field element. The zero value is 0.
type Element struct {
	v uint256.Int
}

// Zero and One.
var (
	Zero = Element{}
	One  = NewElement(1)
)

// NewElement returns x mod q.
func NewElement(x uint64) Element {
	var e Element
	e.v.SetUint64(x)
	return e
}

// FromBig returns b mod q. Negative values are reduced into [0, q).
func FromBig(b *big.Int) Element {
	r := new(big.Int).Mod(b, Modulus())
	var e Element
	e.v.SetFromBig(r)
	return e
}

// FromBytes interprets b as a 32-byte big-endian integer. It reports false
// if the value is not canonical, i.e. not below q.
func FromBytes(b [32]byte) (Element, bool) {
	var e Element
	e.v.SetBytes(b[:])
	if !e.v.Lt(q) {
		return Element{}, false
	}
	return e, true
}

// Big returns e as a *big.Int in [0, q).
func (e Element) Big() *big.Int {
	return e.v.ToBig()
}

// Bytes returns the 32-byte big-endian encoding of e.
func (e Element) Bytes() [32]byte {
	return e.v.Bytes32()
}

// String returns e in hexadecimal.
func (e Element) String() string {
	return e.v.Hex()
}

// Add returns e + b.
func (e Element) Add(b Element) Element {
	var r Element
	r.v.AddMod(&e.v, &b.v, q)
	return r
}

// Sub returns e - b.
func (e Element) Sub(b Element) Element {
	return e.Add(b.Neg())
}

// Neg returns -e.
func (e Element) Neg() Element {
	if e.v.IsZero() {
		return Element{}
	}
	var r Element
	r.v.Sub(q, &e.v)
	return r
}

// Mul returns e * b.
func (e Element) Mul(b Element) Element {
	var r Element
	r.v.MulMod(&e.v, &b.v, q)
	return r
}

// Square returns e^2.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Double returns 2e.
func (e Element) Double() Element {
	return e.Add(e)
}

// Pow returns e^exp by left-to-right square-and-multiply.
func (e Element) Pow(exp *uint256.Int) Element {
	r := One
	for i := exp.BitLen() - 1; i >= 0; i-- {
		r = r.Square()
		if (exp[i/64]>>(uint(i)%64))&1 == 1 {
			r = r.Mul(e)
		}
	}
	return r
}

// PowQPlus1Quarter returns e^((q+1)/4), a square root of e when e is a
// square (q ≡ 3 mod 4).
func (e Element) PowQPlus1Quarter() Element {
	return e.Pow(qPlus1Quarter)
}

// Inverse returns e^-1 computed as e^(q-2). It reports false for e = 0.
func (e Element) Inverse() (Element, bool) {
	if e.v.IsZero() {
		return Element{}, false
	}
	return e.Pow(qMinus2), true
}

// Div returns e / b. It reports false when b = 0.
func (e Element) Div(b Element) (Element, bool) {
	inv, ok := b.Inverse()
	if !ok {
		return Element{}, false
	}
	return e.Mul(inv), true
}

// Legendre returns the quadratic character of e as -1, 0 or 1.
func (e Element) Legendre() int8 {
	c := e.Pow(qMinus1Half)
	switch {
	case c.IsZero():
		return 0
	case c.Equal(One):
		return 1
	default:
		return -1
	}
}

// MulSign returns s * e for s in {-1, 0, 1}.
func (e Element) MulSign(s int8) Element {
	switch s {
	case 0:
		return Element{}
	case -1:
		return e.Neg()
	default:
		return e
	}
}

// IsZero reports whether e = 0.
func (e Element) IsZero() bool {
	return e.v.IsZero()
}

// Equal reports whether e = b.
func (e Element) Equal(b Element) bool {
	return e.v.Eq(&b.v)
}

// IsUpperHalf reports whether e > (q-1)/2.
func (e Element) IsUpperHalf() bool {
	return e.v.Gt(qMinus1Half)
}
