package bigint

import "github.com/pkg/errors"

// Errors returned by the arithmetic operations.
var (
	ErrDivisionByZero             = errors.New("bigint: division by zero")
	ErrModularInverseDoesNotExist = errors.New("bigint: modular inverse does not exist")
	ErrNegativeExponent           = errors.New("bigint: negative exponent")
	ErrInvalidModulus             = errors.New("bigint: modulus must be positive")
	ErrSyntax                     = errors.New("bigint: invalid number syntax")
)
