package curves

import (
	"fmt"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
)

// Curve defines the operations the Elligator encoders need from a twisted
// Edwards curve context.
type Curve interface {
	// Name returns the name of the curve.
	Name() string

	// Params returns the curve parameters.
	Params() Params

	// IsOnCurve reports whether p satisfies the curve equation.
	IsOnCurve(p Point) bool

	// Identity returns the neutral element (0, 1).
	Identity() Point
}

// Point is an affine point (x, y) with both coordinates in [0, q).
type Point struct {
	X bigint.Int
	Y bigint.Int
}

// NewPoint returns the point (x, y).
func NewPoint(x, y bigint.Int) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and o have the same coordinates.
func (p Point) Equal(o Point) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(0x%s, 0x%s)", p.X.Text(16), p.Y.Text(16))
}
