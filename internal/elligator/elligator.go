// Package elligator implements the Elligator 1 map between field elements
// of GF(2^251 - 9) and points of Curve1174.
//
// The free functions in this package run on the arbitrary-precision
// integers of internal/crypto/bigint and take the curve context as their
// first argument. They hold no state and are safe for concurrent use.
package elligator

import (
	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
	"github.com/smallyu/go-elligator1174/internal/crypto/curves"
	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

// Chi returns the quadratic character t^((q-1)/2) mod q: 1, q-1 or 0.
func Chi(curve *curves.Curve1174, t bigint.Int) bigint.Int {
	p := curve.Params()
	r, _ := bigint.Pow(t, p.QMinus1Half, p.Q)
	return r
}

// StringToPoint maps t to a curve point. t is reduced mod q first; the
// inputs 1 and -1 map to the identity (0, 1).
func StringToPoint(curve *curves.Curve1174, t bigint.Int) (curves.Point, error) {
	p := curve.Params()
	q := p.Q
	fail := func(step int, err error) (curves.Point, error) {
		return curves.Point{}, api.NewEncodingError(api.OpStringToPoint, step, err)
	}

	t, err := t.Mod(q)
	if err != nil {
		return fail(0, err)
	}
	if t.Equal(bigint.One) || t.Equal(q.Sub(bigint.One)) {
		return curve.Identity(), nil
	}

	// 1. u = (1 - t) / (1 + t)
	u, err := bigint.DivMod(bigint.One.Sub(t), bigint.One.Add(t), q)
	if err != nil {
		return fail(1, err)
	}

	// 2. v = u^5 + (r^2 - 2)u^3 + u
	u2, _ := bigint.MulMod(u, u, q)
	u3, _ := bigint.MulMod(u2, u, q)
	u5, _ := bigint.MulMod(u3, u2, q)
	v, _ := bigint.MulMod(p.RSquaredMinusTwo, u3, q)
	v, _ = bigint.AddMod(v, u5.Add(u), q)

	// 3. X = chi(v)u
	chiV := Chi(curve, v)
	x0, _ := bigint.MulMod(chiV, u, q)

	// 4. Y = (chi(v)v)^((q+1)/4) chi(v) chi(u^2 + 1/c^2)
	w, _ := bigint.AddMod(u2, p.CSquaredInverse, q)
	y0, _ := bigint.MulMod(chiV, v, q)
	y0, _ = bigint.Pow(y0, p.QPlus1Quarter, q)
	y0, _ = bigint.MulMod(y0, chiV.Mul(Chi(curve, w)), q)

	// 5. x = (c - 1)sX(1 + X) / Y
	onePlusX := bigint.One.Add(x0)
	num, _ := bigint.MulMod(p.CMinus1S, x0.Mul(onePlusX), q)
	x, err := bigint.DivMod(num, y0, q)
	if err != nil {
		return fail(5, err)
	}

	// 6. y = (rX - (1 + X)^2) / (rX + (1 + X)^2)
	rX := p.R.Mul(x0)
	sq := onePlusX.Mul(onePlusX)
	y, err := bigint.DivMod(rX.Sub(sq), rX.Add(sq), q)
	if err != nil {
		return fail(6, err)
	}

	return curves.NewPoint(x, y), nil
}

// PointToString returns the canonical representative t <= (q-1)/2 of a
// point in the image of StringToPoint. Points outside the image produce
// an unrelated value; see PointToStringChecked.
func PointToString(curve *curves.Curve1174, pt curves.Point) (bigint.Int, error) {
	p := curve.Params()
	q := p.Q
	fail := func(step int, err error) (bigint.Int, error) {
		return bigint.Int{}, api.NewEncodingError(api.OpPointToString, step, err)
	}

	x, err := pt.X.Mod(q)
	if err != nil {
		return fail(0, err)
	}
	y, _ := pt.Y.Mod(q)
	if x.IsZero() && y.Equal(bigint.One) {
		return bigint.One, nil
	}

	// 1. eta = (y - 1) / (2(y + 1))
	eta, err := bigint.DivMod(y.Sub(bigint.One), bigint.Two.Mul(y.Add(bigint.One)), q)
	if err != nil {
		return fail(1, err)
	}

	// 2. etaR = 1 + eta*r
	etaR, _ := bigint.AddMod(bigint.One, eta.Mul(p.R), q)

	// 3. X = (etaR^2 - 1)^((q+1)/4) - etaR
	b, _ := bigint.SubMod(etaR.Mul(etaR), bigint.One, q)
	x0, _ := bigint.Pow(b, p.QPlus1Quarter, q)
	x0, _ = bigint.SubMod(x0, etaR, q)

	// 4. z = chi((c - 1)sX(1 + X)x(X^2 + 1/c^2))
	z, _ := bigint.MulMod(p.CMinus1S, x0.Mul(bigint.One.Add(x0)), q)
	z, _ = bigint.MulMod(z, x, q)
	z, _ = bigint.MulMod(z, x0.Mul(x0).Add(p.CSquaredInverse), q)
	z = Chi(curve, z)

	// 5. u = zX
	u, _ := bigint.MulMod(z, x0, q)

	// 6. t = (1 - u) / (1 + u)
	t, err := bigint.DivMod(bigint.One.Sub(u), bigint.One.Add(u), q)
	if err != nil {
		return fail(6, err)
	}

	// 7. t and -t map to the same point; keep the lower half.
	if t.Cmp(p.QMinus1Half) > 0 {
		t = q.Sub(t)
	}
	return t, nil
}
