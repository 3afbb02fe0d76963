package optim

import (
	"github.com/born-ml/descent/internal/nn"
	"github.com/born-ml/descent/internal/tensor"
)

// DefaultSGDLR is the learning rate used when SGDConfig.LR is zero.
const DefaultSGDLR = 1e-4

// SGD implements plain Stochastic Gradient Descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// SGD keeps no state, so repeated steps with the same gradient produce
// the same update each time.
type SGD struct {
	base
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 1e-4)
}

// NewSGD creates a new SGD optimizer bound to model.
func NewSGD(model *nn.Model, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultSGDLR
	}
	return &SGD{base: base{model: model, lr: config.LR}}
}

// Step performs a single optimization step.
func (s *SGD) Step() error {
	return visit(s.model, func(_ string, grad, param *tensor.Tensor) error {
		paramData := param.Data()
		for i, g := range grad.Data() {
			paramData[i] -= s.lr * g
		}
		return nil
	})
}
