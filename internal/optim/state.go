package optim

import (
	"fmt"

	"github.com/born-ml/descent/internal/tensor"
)

// state is per-parameter auxiliary storage keyed by parameter name.
//
// An entry is created on first lookup and never removed.
type state struct {
	buf map[string]*tensor.Tensor
}

func newState() state {
	return state{buf: make(map[string]*tensor.Tensor)}
}

// get returns the buffer for name, creating a zero buffer shaped like
// like when the name has not been seen before.
func (s state) get(name string, like *tensor.Tensor) (*tensor.Tensor, error) {
	buf, exists := s.buf[name]
	if !exists {
		buf = tensor.ZerosLike(like)
		s.buf[name] = buf
		return buf, nil
	}
	if !buf.Shape().Equal(like.Shape()) {
		return nil, fmt.Errorf("state %v vs grad %v: %w", buf.Shape(), like.Shape(), tensor.ErrShapeMismatch)
	}
	return buf, nil
}

// lookup returns the buffer for name without creating it.
func (s state) lookup(name string) *tensor.Tensor {
	return s.buf[name]
}

// has reports whether name has state.
func (s state) has(name string) bool {
	_, exists := s.buf[name]
	return exists
}

func (s state) len() int {
	return len(s.buf)
}
