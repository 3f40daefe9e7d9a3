package elligator

import (
	"errors"
	"math/big"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

// mockEncoder implements Encoder for testing purposes.
type mockEncoder struct{}

func (m *mockEncoder) Name() string {
	return "mock"
}

func (m *mockEncoder) StringToPoint(t *big.Int) (*big.Int, *big.Int, error) {
	return big.NewInt(0), big.NewInt(1), nil
}

func (m *mockEncoder) PointToString(x, y *big.Int) (*big.Int, error) {
	return nil, NewEncodingError(OpPointToString, 1, ErrModularInverseDoesNotExist)
}

func TestInterfaces(t *testing.T) {
	var _ Encoder = &mockEncoder{}

	enc := &mockEncoder{}
	x, y, err := enc.StringToPoint(big.NewInt(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x.Sign() != 0 || y.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("expected (0, 1), got (%s, %s)", x, y)
	}
}

func TestEncodingError(t *testing.T) {
	enc := &mockEncoder{}
	_, err := enc.PointToString(big.NewInt(0), big.NewInt(0))
	if err == nil {
		t.Fatal("expected error")
	}

	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodingError, got %T", err)
	}
	if encErr.Op != OpPointToString || encErr.Step != 1 {
		t.Errorf("unexpected op/step: %s/%d", encErr.Op, encErr.Step)
	}
	if !errors.Is(err, ErrModularInverseDoesNotExist) {
		t.Error("expected error to wrap ErrModularInverseDoesNotExist")
	}

	want := "elligator: point_to_string step 1: bigint: modular inverse does not exist"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	bare := NewEncodingError(OpStringToPoint, 5, nil)
	if bare.Error() != "elligator: string_to_point step 5 failed" {
		t.Errorf("unexpected message %q", bare.Error())
	}

	// Wrapped context is preserved through pkg/errors.
	wrapped := pkgerrors.Wrap(err, "decode")
	if !errors.Is(wrapped, ErrModularInverseDoesNotExist) {
		t.Error("expected wrapped error to match")
	}
}
