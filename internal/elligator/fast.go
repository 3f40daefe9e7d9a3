package elligator

import (
	"math/big"

	"github.com/smallyu/go-elligator1174/internal/crypto/curves"
	"github.com/smallyu/go-elligator1174/internal/crypto/field"
	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

// FastEncoder runs the map on fixed-width field elements with Fermat
// inversion and precomputed constants. Its output matches ReferenceEncoder.
type FastEncoder struct {
	r        field.Element
	r2m2     field.Element // r^2 - 2
	invC2    field.Element // 1/c^2
	cMinus1S field.Element // (c-1)s
	minusOne field.Element
}

// NewFastEncoder precomputes the curve constants as field elements.
func NewFastEncoder(curve *curves.Curve1174) *FastEncoder {
	p := curve.Params()
	return &FastEncoder{
		r:        field.FromBig(p.R.Big()),
		r2m2:     field.FromBig(p.RSquaredMinusTwo.Big()),
		invC2:    field.FromBig(p.CSquaredInverse.Big()),
		cMinus1S: field.FromBig(p.CMinus1S.Big()),
		minusOne: field.One.Neg(),
	}
}

func (e *FastEncoder) Name() string {
	return api.BackendFast
}

func (e *FastEncoder) StringToPoint(t *big.Int) (*big.Int, *big.Int, error) {
	x, y, err := e.stringToPoint(fieldFromBig(t))
	if err != nil {
		return nil, nil, err
	}
	return x.Big(), y.Big(), nil
}

func (e *FastEncoder) PointToString(x, y *big.Int) (*big.Int, error) {
	t, err := e.pointToString(fieldFromBig(x), fieldFromBig(y))
	if err != nil {
		return nil, err
	}
	return t.Big(), nil
}

func fieldFromBig(b *big.Int) field.Element {
	if b == nil {
		return field.Zero
	}
	return field.FromBig(b)
}

func (e *FastEncoder) stringToPoint(t field.Element) (field.Element, field.Element, error) {
	fail := func(step int) (field.Element, field.Element, error) {
		return field.Zero, field.Zero, api.NewEncodingError(api.OpStringToPoint, step, api.ErrModularInverseDoesNotExist)
	}

	if t.Equal(field.One) || t.Equal(e.minusOne) {
		return field.Zero, field.One, nil
	}

	// 1. u = (1 - t) / (1 + t)
	u, ok := field.One.Sub(t).Div(field.One.Add(t))
	if !ok {
		return fail(1)
	}

	// 2. v = u^5 + (r^2 - 2)u^3 + u = u(u^4 + (r^2 - 2)u^2 + 1)
	u2 := u.Square()
	v := u2.Square().Add(e.r2m2.Mul(u2)).Add(field.One).Mul(u)

	// 3. X = chi(v)u
	chiV := v.Legendre()
	x0 := u.MulSign(chiV)

	// 4. Y = (chi(v)v)^((q+1)/4) chi(v) chi(u^2 + 1/c^2)
	y0 := v.MulSign(chiV).PowQPlus1Quarter().MulSign(chiV).MulSign(u2.Add(e.invC2).Legendre())

	// 5. x = (c - 1)sX(1 + X) / Y
	onePlusX := field.One.Add(x0)
	x, ok := e.cMinus1S.Mul(x0).Mul(onePlusX).Div(y0)
	if !ok {
		return fail(5)
	}

	// 6. y = (rX - (1 + X)^2) / (rX + (1 + X)^2)
	rX := e.r.Mul(x0)
	sq := onePlusX.Square()
	y, ok := rX.Sub(sq).Div(rX.Add(sq))
	if !ok {
		return fail(6)
	}
	return x, y, nil
}

func (e *FastEncoder) pointToString(x, y field.Element) (field.Element, error) {
	fail := func(step int) (field.Element, error) {
		return field.Zero, api.NewEncodingError(api.OpPointToString, step, api.ErrModularInverseDoesNotExist)
	}

	if x.IsZero() && y.Equal(field.One) {
		return field.One, nil
	}

	// 1. eta = (y - 1) / (2(y + 1))
	eta, ok := y.Sub(field.One).Div(y.Add(field.One).Double())
	if !ok {
		return fail(1)
	}

	// 2. etaR = 1 + eta*r
	etaR := field.One.Add(eta.Mul(e.r))

	// 3. X = (etaR^2 - 1)^((q+1)/4) - etaR
	x0 := etaR.Square().Sub(field.One).PowQPlus1Quarter().Sub(etaR)

	// 4. z = chi((c - 1)sX(1 + X)x(X^2 + 1/c^2))
	z := e.cMinus1S.Mul(x0).Mul(field.One.Add(x0)).Mul(x).Mul(x0.Square().Add(e.invC2)).Legendre()

	// 5. u = zX
	u := x0.MulSign(z)

	// 6. t = (1 - u) / (1 + u)
	t, ok := field.One.Sub(u).Div(field.One.Add(u))
	if !ok {
		return fail(6)
	}

	// 7. canonical half
	if t.IsUpperHalf() {
		t = t.Neg()
	}
	return t, nil
}
