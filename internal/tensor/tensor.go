package tensor

import "fmt"

// Tensor is a dense row-major array of float64 values.
//
// The optimizers treat every parameter, gradient and piece of auxiliary
// state as a Tensor. Element-wise operations require operands of
// identical shape and return ErrShapeMismatch otherwise.
//
// Example:
//
//	p, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
//	g, _ := tensor.FromSlice([]float64{0.1, 0.2}, tensor.Shape{2})
//	step := g.Scale(0.1)
//	_ = p.SubInPlace(step) // p = [0.99, 1.98]
type Tensor struct {
	shape Shape
	data  []float64
}

// New creates a zero-filled tensor with the given shape.
//
// Panics if the shape has a non-positive dimension.
func New(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor.New: %v", err))
	}
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t := New(shape)
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Data returns the backing slice. Writes are visible to the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Item returns the value of a scalar (or single-element) tensor.
func (t *Tensor) Item() (float64, error) {
	if len(t.data) != 1 {
		return 0, fmt.Errorf("item of shape %v: %w", t.shape, ErrNotScalar)
	}
	return t.data[0], nil
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	c := &Tensor{
		shape: t.shape.Clone(),
		data:  make([]float64, len(t.data)),
	}
	copy(c.data, t.data)
	return c
}

// CopyFrom overwrites t's values with src's values.
func (t *Tensor) CopyFrom(src *Tensor) error {
	if !t.shape.Equal(src.shape) {
		return shapeMismatch("copy", t.shape, src.shape)
	}
	copy(t.data, src.data)
	return nil
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	if t.shape.IsScalar() {
		return fmt.Sprintf("%g", t.data[0])
	}
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}
