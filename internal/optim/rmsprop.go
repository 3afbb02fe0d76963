package optim

import (
	"math"

	"github.com/born-ml/descent/internal/nn"
	"github.com/born-ml/descent/internal/tensor"
)

// RMSProp defaults.
const (
	DefaultRMSPropLR    = 1e-2
	DefaultRMSPropDecay = 0.99
	DefaultRMSPropEps   = 1e-8
)

// RMSProp scales each gradient element by a decaying average of its
// past squares.
//
// Update rule:
//
//	m     = decay * cache + (1-decay) * gradient²
//	param = param - lr * gradient / sqrt(m + eps)
//	cache = m
//
// Eps sits inside the square root so a zero gradient on the first step
// leaves the parameter unchanged instead of dividing by zero.
type RMSProp struct {
	base
	decay float64
	eps   float64
	cache state
}

// RMSPropConfig holds configuration for RMSProp optimizer.
type RMSPropConfig struct {
	LR    float64 // Learning rate (default: 1e-2)
	Decay float64 // Decay rate of the squared-gradient average (default: 0.99)
	Eps   float64 // Term for numerical stability (default: 1e-8)
}

// NewRMSProp creates a new RMSProp optimizer bound to model.
func NewRMSProp(model *nn.Model, config RMSPropConfig) *RMSProp {
	if config.LR == 0 {
		config.LR = DefaultRMSPropLR
	}
	if config.Decay == 0 {
		config.Decay = DefaultRMSPropDecay
	}
	if config.Eps == 0 {
		config.Eps = DefaultRMSPropEps
	}
	return &RMSProp{
		base:  base{model: model, lr: config.LR},
		decay: config.Decay,
		eps:   config.Eps,
		cache: newState(),
	}
}

// Step performs a single optimization step.
func (r *RMSProp) Step() error {
	return visit(r.model, func(name string, grad, param *tensor.Tensor) error {
		cache, err := r.cache.get(name, grad)
		if err != nil {
			return err
		}
		gradData := grad.Data()
		cacheData := cache.Data()
		paramData := param.Data()
		for i, g := range gradData {
			m := r.decay*cacheData[i] + (1-r.decay)*(g*g)
			paramData[i] -= r.lr * g / math.Sqrt(m+r.eps)
			cacheData[i] = m
		}
		return nil
	})
}

// Cache returns the squared-gradient average for a parameter, or nil if
// the parameter has not been updated yet.
func (r *RMSProp) Cache(name string) *tensor.Tensor {
	return r.cache.lookup(name)
}
