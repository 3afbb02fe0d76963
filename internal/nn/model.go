// Package nn provides the model structure the optimizers operate on.
//
// A Model is an ordered list of layers; each Layer holds named
// parameters and the gradients computed for them by an external
// backward pass. Optimizers read the gradients and overwrite the
// parameter values in place.
package nn

import (
	"fmt"
)

// Model is an ordered sequence of layers.
//
// Parameter names are unique across the whole model because optimizer
// state is keyed by parameter name.
type Model struct {
	layers []*Layer
}

// NewModel creates a model from the given layers.
func NewModel(layers ...*Layer) (*Model, error) {
	seen := make(map[string]string)
	for _, l := range layers {
		for _, name := range l.order {
			if owner, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: %q in layers %q and %q", ErrDuplicateParam, name, owner, l.name)
			}
			seen[name] = l.name
		}
	}
	return &Model{layers: layers}, nil
}

// MustNewModel is like NewModel but panics on error.
func MustNewModel(layers ...*Layer) *Model {
	m, err := NewModel(layers...)
	if err != nil {
		panic(err)
	}
	return m
}

// Layers returns the layers in order.
func (m *Model) Layers() []*Layer {
	return m.layers
}

// NumParams returns the total number of scalar parameter values.
func (m *Model) NumParams() int {
	n := 0
	for _, l := range m.layers {
		for _, p := range l.Parameters() {
			n += p.Tensor().Len()
		}
	}
	return n
}

// ZeroGrad clears the gradients of every layer.
func (m *Model) ZeroGrad() {
	for _, l := range m.layers {
		l.ZeroGrad()
	}
}
