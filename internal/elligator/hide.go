package elligator

import (
	"io"

	"github.com/pkg/errors"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
	"github.com/smallyu/go-elligator1174/internal/crypto/curves"
	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

// RepresentativeSize is the length of a hidden point in bytes.
const RepresentativeSize = 32

// Canonical representatives are below 2^250, so the top six bits of the
// big-endian encoding are free and get filled with random padding.
const padMask = 0xfc

// Hide returns a uniformly random looking 32-byte string for pt. The
// padding bits are read from random.
func Hide(curve *curves.Curve1174, pt curves.Point, random io.Reader) ([RepresentativeSize]byte, error) {
	var out [RepresentativeSize]byte

	t, err := PointToStringChecked(curve, pt)
	if err != nil {
		return out, err
	}
	t.FillBytes(out[:])

	var pad [1]byte
	if _, err := io.ReadFull(random, pad[:]); err != nil {
		return out, errors.Wrap(err, "elligator: read padding")
	}
	out[0] |= pad[0] & padMask
	return out, nil
}

// Reveal recovers the point hidden in rep by Hide.
func Reveal(curve *curves.Curve1174, rep [RepresentativeSize]byte) (curves.Point, error) {
	t, err := RevealString(curve, rep)
	if err != nil {
		return curves.Point{}, err
	}
	return StringToPoint(curve, t)
}

// RevealString strips the padding from rep and returns the representative.
func RevealString(curve *curves.Curve1174, rep [RepresentativeSize]byte) (bigint.Int, error) {
	b := rep
	b[0] &^= padMask
	t := bigint.FromBytes(b[:])
	if t.Cmp(curve.Params().QMinus1Half) > 0 {
		return bigint.Int{}, errors.Wrapf(api.ErrInvalidRepresentative, "0x%s is not canonical", t.Text(16))
	}
	return t, nil
}
