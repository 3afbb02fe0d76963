// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense float64 arrays
// that hold parameters, gradients and optimizer state.
//
// Example:
//
//	p, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
//	g := tensor.Full(tensor.Shape{2}, 0.5)
//	sum, err := p.Add(g)
package tensor

import (
	"github.com/born-ml/descent/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense row-major array of float64 values.
type Tensor = tensor.Tensor

// Errors returned by tensor operations.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrNotScalar     = tensor.ErrNotScalar
)

// FromSlice creates a tensor from a Go slice.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// ZerosLike creates a zero tensor with the same shape as t.
func ZerosLike(t *Tensor) *Tensor {
	return tensor.ZerosLike(t)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Scalar creates a zero-dimensional tensor.
func Scalar(v float64) *Tensor {
	return tensor.Scalar(v)
}

// AllClose reports whether a and b match element-wise within tol.
func AllClose(a, b *Tensor, tol float64) bool {
	return tensor.AllClose(a, b, tol)
}
