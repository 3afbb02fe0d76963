package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrNotScalar     = errors.New("tensor is not a scalar")
)

func shapeMismatch(op string, a, b Shape) error {
	return fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, a, b)
}
