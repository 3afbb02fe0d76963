package optim

import (
	"math"

	"github.com/born-ml/descent/internal/nn"
	"github.com/born-ml/descent/internal/tensor"
)

// Adam defaults.
const (
	DefaultAdamLR    = 1e-3
	DefaultAdamBeta1 = 0.9
	DefaultAdamBeta2 = 0.999
	DefaultAdamEps   = 1e-8
)

// Counting selects when Adam advances its timestep.
type Counting int

const (
	// CountPerParameter advances the timestep once for every gradient
	// entry processed. With P parameters a Step advances t by P, and the
	// parameters of one Step see different bias corrections.
	CountPerParameter Counting = iota

	// CountPerStep advances the timestep once per Step. All parameters
	// of one Step share the same bias correction.
	CountPerStep
)

// String implements fmt.Stringer.
func (c Counting) String() string {
	switch c {
	case CountPerParameter:
		return "per-parameter"
	case CountPerStep:
		return "per-step"
	default:
		return "unknown"
	}
}

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// The timestep t is a single counter shared by all parameters. By
// default it advances once per parameter entry (see Counting).
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	base
	beta1    float64
	beta2    float64
	eps      float64
	t        int      // Timestep for bias correction
	counting Counting // When t advances
	m        state    // First moment estimates
	v        state    // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR       float64  // Learning rate (default: 1e-3)
	Beta1    float64  // First moment decay (default: 0.9)
	Beta2    float64  // Second moment decay (default: 0.999)
	Eps      float64  // Term for numerical stability (default: 1e-8)
	T        int      // Initial timestep (default: 0)
	Counting Counting // Timestep counting mode (default: CountPerParameter)
}

// NewAdam creates a new Adam optimizer bound to model.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(model *nn.Model, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = DefaultAdamLR
	}
	if config.Beta1 == 0 {
		config.Beta1 = DefaultAdamBeta1
	}
	if config.Beta2 == 0 {
		config.Beta2 = DefaultAdamBeta2
	}
	if config.Eps == 0 {
		config.Eps = DefaultAdamEps
	}

	return &Adam{
		base:     base{model: model, lr: config.LR},
		beta1:    config.Beta1,
		beta2:    config.Beta2,
		eps:      config.Eps,
		t:        config.T,
		counting: config.Counting,
		m:        newState(),
		v:        newState(),
	}
}

// Step performs a single optimization step using Adam algorithm.
func (a *Adam) Step() error {
	if a.counting == CountPerStep {
		a.t++
	}
	return visit(a.model, func(name string, grad, param *tensor.Tensor) error {
		if a.counting == CountPerParameter {
			a.t++
		}
		m, err := a.m.get(name, grad)
		if err != nil {
			return err
		}
		v, err := a.v.get(name, grad)
		if err != nil {
			return err
		}
		a.updateParameter(param, grad, m, v)
		return nil
	})
}

// updateParameter performs Adam update for a single parameter.
func (a *Adam) updateParameter(param, grad, m, v *tensor.Tensor) {
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	gradData := grad.Data()
	mData := m.Data()
	vData := v.Data()
	paramData := param.Data()

	for i, g := range gradData {
		mData[i] = a.beta1*mData[i] + (1-a.beta1)*g
		vData[i] = a.beta2*vData[i] + (1-a.beta2)*(g*g)

		mHat := mData[i] / biasCorrection1
		vHat := vData[i] / biasCorrection2

		paramData[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
}

// Timestep returns the current timestep.
func (a *Adam) Timestep() int {
	return a.t
}

// Counting returns the timestep counting mode.
func (a *Adam) Counting() Counting {
	return a.counting
}

// Moments returns the first and second moment estimates for a parameter.
// Both are nil if the parameter has not been updated yet.
func (a *Adam) Moments(name string) (m, v *tensor.Tensor) {
	return a.m.lookup(name), a.v.lookup(name)
}
