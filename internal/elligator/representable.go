package elligator

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
	"github.com/smallyu/go-elligator1174/internal/crypto/curves"
	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

// exceptionalX returns 2s(c-1)chi(c)/r, the only x allowed when eta*r = -2.
func exceptionalX(curve *curves.Curve1174) bigint.Int {
	p := curve.Params()
	v, _ := bigint.MulMod(bigint.Two.Mul(p.S), p.C.Sub(bigint.One), p.Q)
	v, _ = bigint.MulMod(v, Chi(curve, p.C), p.Q)
	v, _ = bigint.DivMod(v, p.R, p.Q)
	return v
}

// CanEncode reports whether pt has an Elligator 1 representative. The
// point must already be on the curve.
func CanEncode(curve *curves.Curve1174, pt curves.Point) bool {
	p := curve.Params()
	q := p.Q

	// 1. y + 1 != 0
	den, _ := bigint.MulMod(bigint.Two, pt.Y.Add(bigint.One), q)
	if den.IsZero() {
		return false
	}

	// 2. (1 + eta*r)^2 - 1 is a square
	etaR, _ := bigint.DivMod(pt.Y.Sub(bigint.One).Mul(p.R), den, q)
	e := bigint.One.Add(etaR)
	b, _ := bigint.SubMod(e.Mul(e), bigint.One, q)
	if Chi(curve, b).Equal(q.Sub(bigint.One)) {
		return false
	}

	// 3. eta*r = -2 only for x = 2s(c-1)chi(c)/r
	if etaR.Equal(q.Sub(bigint.Two)) && !pt.X.Equal(exceptionalX(curve)) {
		return false
	}
	return true
}

// PointToStringChecked is PointToString for untrusted points: it rejects
// points off the curve and points without a representative.
func PointToStringChecked(curve *curves.Curve1174, pt curves.Point) (bigint.Int, error) {
	if !curve.IsOnCurve(pt) {
		return bigint.Int{}, errors.Wrapf(api.ErrNotOnCurve, "point %s", pt)
	}
	if !CanEncode(curve, pt) {
		return bigint.Int{}, errors.Wrapf(api.ErrNotRepresentable, "point %s", pt)
	}
	return PointToString(curve, pt)
}
