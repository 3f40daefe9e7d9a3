package bigint

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// Random returns a uniform value in [0, max) read from random.
func Random(random io.Reader, max Int) (Int, error) {
	if max.Sign() <= 0 {
		return Int{}, ErrInvalidModulus
	}
	v, err := rand.Int(random, max.big())
	if err != nil {
		return Int{}, errors.Wrap(err, "bigint: read random value")
	}
	return Int{v: v}, nil
}
