package elligator

import "fmt"

// Operation names carried by EncodingError.
const (
	OpStringToPoint = "string_to_point"
	OpPointToString = "point_to_string"
)

// EncodingError reports which step of an encoding failed.
// Step refers to the numbered formula step; 0 means input validation.
type EncodingError struct {
	Op   string
	Step int
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("elligator: %s step %d: %v", e.Op, e.Step, e.Err)
	}
	return fmt.Sprintf("elligator: %s step %d failed", e.Op, e.Step)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// NewEncodingError creates a new EncodingError.
func NewEncodingError(op string, step int, err error) *EncodingError {
	return &EncodingError{
		Op:   op,
		Step: step,
		Err:  err,
	}
}
