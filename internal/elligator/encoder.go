package elligator

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
	"github.com/smallyu/go-elligator1174/internal/crypto/curves"
	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

// ReferenceEncoder adapts the arbitrary-precision functions to the
// api.Encoder interface.
type ReferenceEncoder struct {
	curve *curves.Curve1174
}

// NewReferenceEncoder returns an encoder over curve.
func NewReferenceEncoder(curve *curves.Curve1174) *ReferenceEncoder {
	return &ReferenceEncoder{curve: curve}
}

func (e *ReferenceEncoder) Name() string {
	return api.BackendReference
}

func (e *ReferenceEncoder) StringToPoint(t *big.Int) (*big.Int, *big.Int, error) {
	pt, err := StringToPoint(e.curve, bigint.FromBig(t))
	if err != nil {
		return nil, nil, err
	}
	return pt.X.Big(), pt.Y.Big(), nil
}

func (e *ReferenceEncoder) PointToString(x, y *big.Int) (*big.Int, error) {
	t, err := PointToString(e.curve, curves.NewPoint(bigint.FromBig(x), bigint.FromBig(y)))
	if err != nil {
		return nil, err
	}
	return t.Big(), nil
}

// NewEncoder builds the Curve1174 context and returns the encoder for the
// named backend.
func NewEncoder(backend string) (api.Encoder, error) {
	curve, err := curves.NewCurve1174()
	if err != nil {
		return nil, err
	}
	switch backend {
	case api.BackendReference, "":
		return NewReferenceEncoder(curve), nil
	case api.BackendFast:
		return NewFastEncoder(curve), nil
	default:
		return nil, errors.Wrapf(api.ErrUnknownBackend, "%q", backend)
	}
}
