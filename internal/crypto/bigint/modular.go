package bigint

import (
	"github.com/pkg/errors"
)

// Pow computes base^exp mod m by left-to-right square-and-multiply, so the
// running time is proportional to the bit length of exp. The base may be
// negative; the result is in [0, |m|).
func Pow(base, exp, m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	if exp.Sign() < 0 {
		return Int{}, ErrNegativeExponent
	}
	mod := m.Abs()

	b, _ := base.Mod(mod)
	result, _ := One.Mod(mod) // 0 when |m| == 1
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result, _ = result.Mul(result).Mod(mod)
		if exp.Bit(i) == 1 {
			result, _ = result.Mul(b).Mod(mod)
		}
	}
	return result, nil
}

// Egcd returns g = gcd(a, b) together with Bézout coefficients x, y such
// that a*x + b*y = g. Both inputs must be non-negative. The loop carries
// the running coefficient pairs instead of recursing.
func Egcd(a, b Int) (g, x, y Int) {
	oldR, r := a, b
	oldX, curX := One, Zero
	oldY, curY := Zero, One

	for !r.IsZero() {
		q, _ := oldR.FloorDiv(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldX, curX = curX, oldX.Sub(q.Mul(curX))
		oldY, curY = curY, oldY.Sub(q.Mul(curY))
	}
	return oldR, oldX, oldY
}

// Inverse returns a^-1 mod p in [0, p). It fails with
// ErrModularInverseDoesNotExist when gcd(a, p) != 1, which includes a ≡ 0.
func Inverse(a, p Int) (Int, error) {
	if p.Sign() <= 0 {
		return Int{}, ErrInvalidModulus
	}
	if a.Sign() < 0 {
		r, err := Inverse(a.Neg(), p)
		if err != nil {
			return Int{}, err
		}
		// r is in [1, p) so p - r stays in range.
		if r.IsZero() {
			return r, nil
		}
		return p.Sub(r), nil
	}

	g, x, _ := Egcd(a, p)
	if !g.Equal(One) {
		return Int{}, errors.Wrapf(ErrModularInverseDoesNotExist, "gcd(%s, %s) = %s", a, p, g)
	}
	return x.Mod(p)
}

// Chi computes the quadratic character t^((q-1)/2) mod q for an odd prime
// q: 1 for a non-zero square, q-1 for a non-square and 0 for t ≡ 0.
func Chi(t, q Int) (Int, error) {
	e, err := q.Sub(One).FloorDiv(Two)
	if err != nil {
		return Int{}, err
	}
	return Pow(t, e, q)
}

// AddMod returns (a + b) mod p.
func AddMod(a, b, p Int) (Int, error) {
	return a.Add(b).Mod(p)
}

// SubMod returns (a - b) mod p.
func SubMod(a, b, p Int) (Int, error) {
	return a.Sub(b).Mod(p)
}

// MulMod returns (a * b) mod p.
func MulMod(a, b, p Int) (Int, error) {
	return a.Mul(b).Mod(p)
}

// DivMod returns a / b mod p, i.e. a * b^-1 mod p.
func DivMod(a, b, p Int) (Int, error) {
	inv, err := Inverse(b, p)
	if err != nil {
		return Int{}, err
	}
	return a.Mul(inv).Mod(p)
}
