package tensor

import "math"

// Add returns t + other element-wise.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.binary("add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns t - other element-wise.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.binary("sub", other, func(a, b float64) float64 { return a - b })
}

// Mul returns t * other element-wise.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.binary("mul", other, func(a, b float64) float64 { return a * b })
}

// Div returns t / other element-wise.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return t.binary("div", other, func(a, b float64) float64 { return a / b })
}

// Scale returns s * t.
func (t *Tensor) Scale(s float64) *Tensor {
	return t.unary(func(v float64) float64 { return s * v })
}

// AddScalar returns t + s.
func (t *Tensor) AddScalar(s float64) *Tensor {
	return t.unary(func(v float64) float64 { return v + s })
}

// Square returns t² element-wise.
func (t *Tensor) Square() *Tensor {
	return t.unary(func(v float64) float64 { return v * v })
}

// Sqrt returns √t element-wise.
func (t *Tensor) Sqrt() *Tensor {
	return t.unary(math.Sqrt)
}

// AddInPlace performs t += other.
func (t *Tensor) AddInPlace(other *Tensor) error {
	if !t.shape.Equal(other.shape) {
		return shapeMismatch("add", t.shape, other.shape)
	}
	for i, v := range other.data {
		t.data[i] += v
	}
	return nil
}

// SubInPlace performs t -= other.
func (t *Tensor) SubInPlace(other *Tensor) error {
	if !t.shape.Equal(other.shape) {
		return shapeMismatch("sub", t.shape, other.shape)
	}
	for i, v := range other.data {
		t.data[i] -= v
	}
	return nil
}

// AllClose reports whether a and b have equal shapes and every pair of
// elements differs by at most tol.
func AllClose(a, b *Tensor, tol float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}
	return true
}

func (t *Tensor) binary(op string, other *Tensor, fn func(a, b float64) float64) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, shapeMismatch(op, t.shape, other.shape)
	}
	out := New(t.shape)
	for i := range t.data {
		out.data[i] = fn(t.data[i], other.data[i])
	}
	return out, nil
}

func (t *Tensor) unary(fn func(float64) float64) *Tensor {
	out := New(t.shape)
	for i, v := range t.data {
		out.data[i] = fn(v)
	}
	return out
}
