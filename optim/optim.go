// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/descent/internal/nn"
	"github.com/born-ml/descent/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// ErrNotImplemented is returned by an optimizer without an update rule.
var ErrNotImplemented = optim.ErrNotImplemented

// Unimplemented is an optimizer whose Step always fails.
type Unimplemented = optim.Unimplemented

// NewUnimplemented creates an Unimplemented optimizer.
func NewUnimplemented(model *nn.Model, lr float64) *Unimplemented {
	return optim.NewUnimplemented(model, lr)
}

// SGD (Stochastic Gradient Descent)

// SGD represents the plain SGD optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(model, optim.SGDConfig{LR: 0.01})
func NewSGD(model *nn.Model, config SGDConfig) *SGD {
	return optim.NewSGD(model, config)
}

// SGD with momentum

// SGDM represents the SGD optimizer with momentum.
type SGDM = optim.SGDM

// SGDMConfig contains configuration for SGDM optimizer.
type SGDMConfig = optim.SGDMConfig

// NewSGDM creates a new SGD-with-momentum optimizer.
//
// Example:
//
//	optimizer := optim.NewSGDM(model, optim.SGDMConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGDM(model *nn.Model, config SGDMConfig) *SGDM {
	return optim.NewSGDM(model, config)
}

// RMSProp

// RMSProp represents the RMSProp optimizer.
type RMSProp = optim.RMSProp

// RMSPropConfig contains configuration for RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp(model *nn.Model, config RMSPropConfig) *RMSProp {
	return optim.NewRMSProp(model, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// Counting selects when Adam advances its timestep.
type Counting = optim.Counting

// Timestep counting modes.
const (
	CountPerParameter = optim.CountPerParameter
	CountPerStep      = optim.CountPerStep
)

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(model, optim.AdamConfig{
//	    LR:    0.001,
//	    Beta1: 0.9,
//	    Beta2: 0.999,
//	})
func NewAdam(model *nn.Model, config AdamConfig) *Adam {
	return optim.NewAdam(model, config)
}

// Factory

// Kind names an update rule.
type Kind = optim.Kind

// Supported update rules.
const (
	KindSGD     = optim.KindSGD
	KindSGDM    = optim.KindSGDM
	KindRMSProp = optim.KindRMSProp
	KindAdam    = optim.KindAdam
)

// Config is the union of all optimizer hyperparameters.
type Config = optim.Config

// New creates the optimizer for kind.
func New(kind Kind, model *nn.Model, config Config) Optimizer {
	return optim.New(kind, model, config)
}

// ParseKind maps a name such as "adam" to a Kind.
func ParseKind(s string) (Kind, error) {
	return optim.ParseKind(s)
}

// Kinds lists the supported update rules.
func Kinds() []Kind {
	return optim.Kinds()
}
