package nn

import (
	"github.com/born-ml/descent/internal/tensor"
)

// Parameter represents a trainable parameter of a layer.
//
// The value is owned by the layer and updated in place by an optimizer.
// The gradient is supplied externally before each optimizer step.
//
// Example:
//
//	w := nn.NewParameter("fc1_w", tensor.Zeros(tensor.Shape{4, 3}))
//	w.SetGrad(grad)
type Parameter struct {
	name   string         // Parameter name (e.g., "fc1_w", "fc1_b")
	tensor *tensor.Tensor // Current value
	grad   *tensor.Tensor // Gradient for the current step
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
		grad:   nil, // Gradient supplied before the first step
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been set for the current step.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
