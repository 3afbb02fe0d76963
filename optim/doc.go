// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent update rules for training
// neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain Stochastic Gradient Descent
//   - SGDM: SGD with momentum
//   - RMSProp: scaling by a decaying average of squared gradients
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface and a Kind-based factory
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/descent/nn"
//	    "github.com/born-ml/descent/optim"
//	    "github.com/born-ml/descent/tensor"
//	)
//
//	func main() {
//	    fc := nn.NewLayer("fc").MustAddParam("w", tensor.Zeros(tensor.Shape{10}))
//	    model := nn.MustNewModel(fc)
//
//	    optimizer := optim.NewAdam(model, optim.AdamConfig{LR: 0.001})
//
//	    for epoch := range 10 {
//	        backward(model) // sets fc gradients
//	        if err := optimizer.Step(); err != nil {
//	            log.Fatal(err)
//	        }
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Optimizers
//
// Every optimizer is bound to one model. Step visits the layers in
// order and each gradient in parameter order, and overwrites the
// parameter in place. State (velocity, squared-gradient cache, moments)
// is keyed by parameter name and zero-initialized on first use.
//
// SGD:
//
//	param -= lr * grad
//
// SGDM:
//
//	v = momentum * v - lr * grad
//	param += v
//
// RMSProp:
//
//	cache = decay * cache + (1 - decay) * grad²
//	param -= lr * grad / sqrt(cache + eps)
//
// Adam:
//
//	m = beta1 * m + (1 - beta1) * grad
//	v = beta2 * v + (1 - beta2) * grad²
//	param -= lr * (m / (1 - beta1^t)) / (sqrt(v / (1 - beta2^t)) + eps)
//
// By default Adam's timestep t advances once per parameter visited
// (CountPerParameter). Set AdamConfig.Counting to CountPerStep to
// advance it once per Step instead.
//
// # Concurrency
//
// Optimizers are not safe for concurrent use. Serialize Step calls and
// finish writing gradients before each call.
package optim
