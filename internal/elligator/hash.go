package elligator

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
	"github.com/smallyu/go-elligator1174/internal/crypto/curves"
)

// MaxDomainSize is the longest domain separation tag HashToPoint accepts.
const MaxDomainSize = blake2b.Size

// HashToString hashes msg with BLAKE2b-512 keyed by domain and reduces the
// digest to a canonical representative in [0, (q-1)/2].
func HashToString(curve *curves.Curve1174, domain, msg []byte) (bigint.Int, error) {
	h, err := blake2b.New512(domain)
	if err != nil {
		return bigint.Int{}, errors.Wrapf(err, "elligator: domain of %d bytes", len(domain))
	}
	h.Write(msg)

	p := curve.Params()
	t, _ := bigint.FromBytes(h.Sum(nil)).Mod(p.Q)
	if t.Cmp(p.QMinus1Half) > 0 {
		t = p.Q.Sub(t)
	}
	return t, nil
}

// HashToPoint maps msg to a curve point under the given domain.
func HashToPoint(curve *curves.Curve1174, domain, msg []byte) (curves.Point, error) {
	t, err := HashToString(curve, domain, msg)
	if err != nil {
		return curves.Point{}, err
	}
	return StringToPoint(curve, t)
}
