package nn

import (
	"fmt"

	"github.com/born-ml/descent/internal/tensor"
)

// NamedTensor pairs a parameter name with a tensor.
type NamedTensor struct {
	Name   string
	Tensor *tensor.Tensor
}

// Layer is an ordered collection of named parameters and their gradients.
//
// Params and Grads share one key set: a gradient can only be set for a
// parameter the layer owns. Iteration order is insertion order.
type Layer struct {
	name   string
	order  []string
	params map[string]*Parameter
}

// NewLayer creates an empty layer.
func NewLayer(name string) *Layer {
	return &Layer{
		name:   name,
		params: make(map[string]*Parameter),
	}
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// AddParam registers a parameter with its initial value.
func (l *Layer) AddParam(name string, value *tensor.Tensor) error {
	if name == "" {
		return fmt.Errorf("layer %q: %w", l.name, ErrEmptyName)
	}
	if _, exists := l.params[name]; exists {
		return fmt.Errorf("layer %q: %w: %q", l.name, ErrDuplicateParam, name)
	}
	if err := value.Shape().Validate(); err != nil {
		return fmt.Errorf("layer %q: parameter %q: %w", l.name, name, err)
	}
	l.params[name] = NewParameter(name, value)
	l.order = append(l.order, name)
	return nil
}

// MustAddParam is like AddParam but panics on error.
func (l *Layer) MustAddParam(name string, value *tensor.Tensor) *Layer {
	if err := l.AddParam(name, value); err != nil {
		panic(err)
	}
	return l
}

// Param returns the current value of a parameter, or nil if unknown.
func (l *Layer) Param(name string) *tensor.Tensor {
	p, ok := l.params[name]
	if !ok {
		return nil
	}
	return p.Tensor()
}

// Grad returns the gradient of a parameter, or nil if none is set.
func (l *Layer) Grad(name string) *tensor.Tensor {
	p, ok := l.params[name]
	if !ok {
		return nil
	}
	return p.Grad()
}

// SetGrad stores the gradient for the current step.
//
// The shape is not checked here; an optimizer rejects a mismatched
// gradient when it applies the update.
func (l *Layer) SetGrad(name string, grad *tensor.Tensor) error {
	p, ok := l.params[name]
	if !ok {
		return fmt.Errorf("layer %q: %w: %q", l.name, ErrUnknownParam, name)
	}
	p.SetGrad(grad)
	return nil
}

// ParamNames returns parameter names in insertion order.
func (l *Layer) ParamNames() []string {
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}

// Parameters returns all parameters in insertion order.
func (l *Layer) Parameters() []*Parameter {
	out := make([]*Parameter, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.params[name])
	}
	return out
}

// Grads returns the current gradients in parameter order.
// Parameters without a gradient are skipped.
func (l *Layer) Grads() []NamedTensor {
	out := make([]NamedTensor, 0, len(l.order))
	for _, name := range l.order {
		if g := l.params[name].Grad(); g != nil {
			out = append(out, NamedTensor{Name: name, Tensor: g})
		}
	}
	return out
}

// ZeroGrad clears all gradients.
func (l *Layer) ZeroGrad() {
	for _, p := range l.params {
		p.ZeroGrad()
	}
}
