package curves

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
)

// ErrInvalidParameters is returned when a derived parameter fails its
// consistency check.
var ErrInvalidParameters = errors.New("curves: invalid curve parameters")

// s for Curve1174, as published with Elligator 1.
const curve1174S = "1806494121122717992522804053500797229648438766985538871240722010849934886421"

// Params holds the Curve1174 constants. All values are in [0, Q).
type Params struct {
	Q bigint.Int // 2^251 - 9
	D bigint.Int // -1174 mod q
	S bigint.Int
	C bigint.Int // 2 / s^2
	R bigint.Int // c + 1/c

	// Precomputed for the encoders.
	CMinus1S         bigint.Int // (c - 1) * s
	CSquaredInverse  bigint.Int // 1 / c^2
	RSquaredMinusTwo bigint.Int // r^2 - 2
	QMinus1Half      bigint.Int // (q - 1) / 2
	QPlus1Quarter    bigint.Int // (q + 1) / 4
}

// Curve1174 is the twisted Edwards curve x^2 + y^2 = 1 + d*x^2*y^2 over
// GF(2^251 - 9). It is immutable once built.
type Curve1174 struct {
	params Params
}

// NewCurve1174 derives the Elligator constants c and r from s and checks
// them against the curve coefficient.
func NewCurve1174() (*Curve1174, error) {
	var p Params
	p.Q = bigint.One.Lsh(251).Sub(bigint.New(9))
	p.S = bigint.MustFromString(curve1174S, 10)

	d, err := bigint.New(-1174).Mod(p.Q)
	if err != nil {
		return nil, errors.Wrap(err, "curves: reduce d")
	}
	p.D = d

	// 1. c = 2 / s^2
	s2, err := bigint.MulMod(p.S, p.S, p.Q)
	if err != nil {
		return nil, err
	}
	p.C, err = bigint.DivMod(bigint.Two, s2, p.Q)
	if err != nil {
		return nil, errors.Wrap(err, "curves: derive c")
	}

	// 2. r = c + 1/c
	cInv, err := bigint.Inverse(p.C, p.Q)
	if err != nil {
		return nil, errors.Wrap(err, "curves: derive r")
	}
	p.R, _ = bigint.AddMod(p.C, cInv, p.Q)
	if p.C.IsZero() || p.R.IsZero() {
		return nil, errors.Wrap(ErrInvalidParameters, "c and r must be nonzero")
	}

	// 3. Constants reused by every encoding.
	cMinus1 := p.C.Sub(bigint.One)
	p.CMinus1S, _ = bigint.MulMod(cMinus1, p.S, p.Q)
	p.CSquaredInverse, _ = bigint.MulMod(cInv, cInv, p.Q)
	r2, _ := bigint.MulMod(p.R, p.R, p.Q)
	p.RSquaredMinusTwo, _ = bigint.SubMod(r2, bigint.Two, p.Q)
	p.QMinus1Half = p.Q.Sub(bigint.One).Rsh(1)
	p.QPlus1Quarter = p.Q.Add(bigint.One).Rsh(2)

	// 4. The square root shortcut needs q = 3 (mod 4).
	if m, _ := p.Q.Mod(bigint.New(4)); !m.Equal(bigint.New(3)) {
		return nil, errors.Wrap(ErrInvalidParameters, "q is not 3 mod 4")
	}

	// 5. d = -(c+1)^2 / (c-1)^2
	num, _ := bigint.MulMod(p.C.Add(bigint.One), p.C.Add(bigint.One), p.Q)
	den, _ := bigint.MulMod(cMinus1, cMinus1, p.Q)
	want, err := bigint.DivMod(num.Neg(), den, p.Q)
	if err != nil {
		return nil, errors.Wrap(err, "curves: check d")
	}
	if !want.Equal(p.D) {
		return nil, errors.Wrapf(ErrInvalidParameters, "d = %s does not match c", p.D.Text(16))
	}

	return &Curve1174{params: p}, nil
}

// MustCurve1174 is like NewCurve1174 but panics on failure. A failure means
// a corrupted constant and is not recoverable.
func MustCurve1174() *Curve1174 {
	c, err := NewCurve1174()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Curve1174) Name() string {
	return "Curve1174"
}

// Params returns a copy of the curve constants.
func (c *Curve1174) Params() Params {
	return c.params
}

// IsOnCurve reports whether x^2 + y^2 = 1 + d*x^2*y^2 (mod q). Coordinates
// outside [0, q) are rejected.
func (c *Curve1174) IsOnCurve(p Point) bool {
	q := c.params.Q
	if p.X.Sign() < 0 || p.Y.Sign() < 0 || p.X.Cmp(q) >= 0 || p.Y.Cmp(q) >= 0 {
		return false
	}
	x2, _ := bigint.MulMod(p.X, p.X, q)
	y2, _ := bigint.MulMod(p.Y, p.Y, q)
	lhs, _ := bigint.AddMod(x2, y2, q)
	dx2y2, _ := bigint.MulMod(c.params.D, x2.Mul(y2), q)
	rhs, _ := bigint.AddMod(bigint.One, dx2y2, q)
	return lhs.Equal(rhs)
}

func (c *Curve1174) Identity() Point {
	return Point{X: bigint.Zero, Y: bigint.One}
}

// NewCurve1174Curve returns the Curve1174 context as a Curve.
func NewCurve1174Curve() Curve {
	return MustCurve1174()
}
