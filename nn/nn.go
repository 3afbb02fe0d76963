// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the model structure that optimizers update.
//
// # Overview
//
// A Model is an ordered list of layers. Each Layer holds named
// parameters and, after a backward pass computed elsewhere, a gradient
// for each of them:
//
//	fc1 := nn.NewLayer("fc1").
//	    MustAddParam("fc1_w", tensor.Zeros(tensor.Shape{784, 128})).
//	    MustAddParam("fc1_b", tensor.Zeros(tensor.Shape{128}))
//	model, err := nn.NewModel(fc1)
//
//	// after backward:
//	_ = fc1.SetGrad("fc1_w", dW)
//	_ = fc1.SetGrad("fc1_b", db)
//
// Parameter names must be unique across the model.
package nn

import (
	"github.com/born-ml/descent/internal/nn"
	"github.com/born-ml/descent/internal/tensor"
)

// Parameter represents a trainable parameter of a layer.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Layer is an ordered collection of named parameters and gradients.
type Layer = nn.Layer

// NamedTensor pairs a parameter name with a tensor.
type NamedTensor = nn.NamedTensor

// NewLayer creates an empty layer.
func NewLayer(name string) *Layer {
	return nn.NewLayer(name)
}

// Model is an ordered sequence of layers.
type Model = nn.Model

// NewModel creates a model from layers, rejecting parameter names that
// appear in more than one layer.
func NewModel(layers ...*Layer) (*Model, error) {
	return nn.NewModel(layers...)
}

// MustNewModel is like NewModel but panics on error.
func MustNewModel(layers ...*Layer) *Model {
	return nn.MustNewModel(layers...)
}

// Errors returned by layers and models.
var (
	ErrDuplicateParam = nn.ErrDuplicateParam
	ErrUnknownParam   = nn.ErrUnknownParam
	ErrEmptyName      = nn.ErrEmptyName
)

// MSELoss returns mean((predictions - targets)²) and its gradient with
// respect to predictions.
func MSELoss(predictions, targets *tensor.Tensor) (float64, *tensor.Tensor, error) {
	return nn.MSELoss(predictions, targets)
}
