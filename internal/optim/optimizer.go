// Package optim implements gradient-descent update rules for training
// neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain stochastic gradient descent
//   - SGDM: SGD with momentum
//   - RMSProp: per-element learning rates from a decaying average of squared gradients
//   - Adam: adaptive moment estimation with bias correction
//
// Every optimizer is bound to an nn.Model. Step walks the model's layers
// in order and, for each gradient present on a layer, overwrites the
// matching parameter in place. Auxiliary state is keyed by parameter
// name and created lazily the first time a name is seen.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model, optim.AdamConfig{LR: 0.001})
//
//	for range epochs {
//	    computeGradients(model) // fills layer gradients
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"errors"
	"fmt"

	"github.com/born-ml/descent/internal/nn"
	"github.com/born-ml/descent/internal/tensor"
)

// ErrNotImplemented is returned by optimizers that have no update rule.
var ErrNotImplemented = errors.New("not implemented")

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers are not safe for concurrent use. Callers serialize Step
// calls and finish writing gradients before each call.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient.
	//
	// A shape mismatch aborts the call. Parameters updated earlier in
	// the same call keep their new values.
	Step() error

	// ZeroGrad clears all gradients on the bound model.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	//
	// Useful for learning rate scheduling during training.
	SetLR(lr float64)
}

// base holds what every optimizer shares: the bound model and the
// learning rate.
type base struct {
	model *nn.Model
	lr    float64
}

// ZeroGrad clears gradients for all parameters.
func (b *base) ZeroGrad() {
	b.model.ZeroGrad()
}

// GetLR returns the current learning rate.
func (b *base) GetLR() float64 {
	return b.lr
}

// SetLR updates the learning rate.
func (b *base) SetLR(lr float64) {
	b.lr = lr
}

// Model returns the bound model.
func (b *base) Model() *nn.Model {
	return b.model
}

// Unimplemented is an optimizer without an update rule.
//
// Its Step always fails with ErrNotImplemented. New returns it for an
// unknown Kind.
type Unimplemented struct {
	base
	kind Kind
}

// NewUnimplemented binds an Unimplemented optimizer to model.
func NewUnimplemented(model *nn.Model, lr float64) *Unimplemented {
	return &Unimplemented{base: base{model: model, lr: lr}}
}

// Step always returns ErrNotImplemented.
func (u *Unimplemented) Step() error {
	return fmt.Errorf("optim: step for %v: %w", u.kind, ErrNotImplemented)
}

// visit calls fn for every (layer, name, gradient, parameter) in model
// order. It stops at the first error and annotates it with the layer and
// parameter name.
func visit(model *nn.Model, fn func(name string, grad, param *tensor.Tensor) error) error {
	for _, layer := range model.Layers() {
		for _, g := range layer.Grads() {
			param := layer.Param(g.Name)
			if param == nil {
				return fmt.Errorf("optim: layer %q: %w: %q", layer.Name(), nn.ErrUnknownParam, g.Name)
			}
			if !param.Shape().Equal(g.Tensor.Shape()) {
				return fmt.Errorf("optim: layer %q: param %q: %w: param %v, grad %v",
					layer.Name(), g.Name, tensor.ErrShapeMismatch, param.Shape(), g.Tensor.Shape())
			}
			if err := fn(g.Name, g.Tensor, param); err != nil {
				return fmt.Errorf("optim: layer %q: param %q: %w", layer.Name(), g.Name, err)
			}
		}
	}
	return nil
}
