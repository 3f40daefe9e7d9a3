// Package elligator defines the public surface of the Elligator 1 encoders
// for Curve1174: the Encoder interface and the errors it returns.
package elligator

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
)

// Common errors returned by the encoders.
var (
	ErrNotOnCurve            = errors.New("point is not on the curve")
	ErrNotRepresentable      = errors.New("point has no elligator representative")
	ErrInvalidRepresentative = errors.New("invalid representative")
	ErrUnknownBackend        = errors.New("unknown encoder backend")

	// Arithmetic failures, wrapped by EncodingError.
	ErrDivisionByZero             = bigint.ErrDivisionByZero
	ErrModularInverseDoesNotExist = bigint.ErrModularInverseDoesNotExist
)

// Encoder maps field elements of GF(2^251 - 9) to Curve1174 points and
// back. Implementations are immutable and safe for concurrent use.
type Encoder interface {
	// Name returns the backend name, "reference" or "fast".
	Name() string

	// StringToPoint maps t (reduced mod q) to a point on the curve.
	StringToPoint(t *big.Int) (x, y *big.Int, err error)

	// PointToString returns the canonical representative t <= (q-1)/2 of
	// the point (x, y). The point is assumed to be in the image of
	// StringToPoint; use a checked variant to validate untrusted input.
	PointToString(x, y *big.Int) (*big.Int, error)
}

// Backend names accepted by NewEncoder.
const (
	BackendReference = "reference"
	BackendFast      = "fast"
)
