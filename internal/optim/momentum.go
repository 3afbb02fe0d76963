package optim

import (
	"github.com/born-ml/descent/internal/nn"
	"github.com/born-ml/descent/internal/tensor"
)

// DefaultSGDMLR is the learning rate used when SGDMConfig.LR is zero.
const DefaultSGDMLR = 1e-4

// SGDM implements SGD with momentum.
//
// Update rule:
//
//	v        = momentum * velocity - lr * gradient
//	param    = param + v
//	velocity = v
//
// The velocity already carries the negative learning-rate term, so it is
// added to the parameter. With momentum 0 SGDM matches SGD.
type SGDM struct {
	base
	momentum   float64
	velocities state
}

// SGDMConfig holds configuration for SGDM optimizer.
type SGDMConfig struct {
	LR       float64 // Learning rate (default: 1e-4)
	Momentum float64 // Momentum factor (default: 0.0)
}

// NewSGDM creates a new SGD-with-momentum optimizer bound to model.
func NewSGDM(model *nn.Model, config SGDMConfig) *SGDM {
	if config.LR == 0 {
		config.LR = DefaultSGDMLR
	}
	return &SGDM{
		base:       base{model: model, lr: config.LR},
		momentum:   config.Momentum,
		velocities: newState(),
	}
}

// Step performs a single optimization step.
func (s *SGDM) Step() error {
	return visit(s.model, func(name string, grad, param *tensor.Tensor) error {
		velocity, err := s.velocities.get(name, grad)
		if err != nil {
			return err
		}
		gradData := grad.Data()
		velocityData := velocity.Data()
		paramData := param.Data()
		for i, g := range gradData {
			v := s.momentum*velocityData[i] - s.lr*g
			paramData[i] += v
			velocityData[i] = v
		}
		return nil
	})
}

// Momentum returns the momentum factor.
func (s *SGDM) Momentum() float64 {
	return s.momentum
}

// Velocity returns the velocity buffer for a parameter, or nil if the
// parameter has not been updated yet.
func (s *SGDM) Velocity(name string) *tensor.Tensor {
	return s.velocities.lookup(name)
}
