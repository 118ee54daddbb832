package array

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Array is a dense row-major float64 array. Operations never modify
// their receiver; they allocate and return fresh arrays.
type Array struct {
	shape Shape
	data  []float64
}

// Zeros creates a zero-filled array with the given shape.
func Zeros(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}, nil
}

// Full creates an array with the given shape, every element set to value.
func Full(shape Shape, value float64) (*Array, error) {
	a, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// FromSlice creates an array from a flat row-major slice with a declared
// shape. The data is copied.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf(
			"data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements(),
		)
	}
	a := &Array{
		shape: shape.Clone(),
		data:  make([]float64, len(data)),
	}
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape. Callers must not modify it.
func (a *Array) Shape() Shape {
	return a.shape
}

// Data returns the flat row-major data. Callers must not modify it.
func (a *Array) Data() []float64 {
	return a.data
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// Clone returns an owned deep copy.
func (a *Array) Clone() *Array {
	clone := &Array{
		shape: a.shape.Clone(),
		data:  make([]float64, len(a.data)),
	}
	copy(clone.data, a.data)
	return clone
}

// Equal reports whether both arrays have the same shape and bit-identical
// values.
func (a *Array) Equal(other *Array) bool {
	return a.shape.Equal(other.shape) && floats.Equal(a.data, other.data)
}

// Add returns the element-wise sum of two same-shape arrays.
func (a *Array) Add(other *Array) (*Array, error) {
	if !a.shape.Equal(other.shape) {
		return nil, fmt.Errorf("Add: shape mismatch: %v vs %v", a.shape, other.shape)
	}
	result := a.Clone()
	if len(result.data) > 0 {
		floats.Add(result.data, other.data)
	}
	return result, nil
}

// AddScalar returns a copy with value added to every element.
func (a *Array) AddScalar(value float64) *Array {
	result := a.Clone()
	floats.AddConst(value, result.data)
	return result
}

// MaskFirstAxis selects the rows of the leading axis where keep is true.
// The result has the kept row count on axis 0 and unchanged lengths on
// every other axis.
func (a *Array) MaskFirstAxis(keep []bool) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, fmt.Errorf("MaskFirstAxis: cannot mask a scalar array")
	}
	if len(keep) != a.shape[0] {
		return nil, fmt.Errorf(
			"MaskFirstAxis: mask length %d does not match axis length %d",
			len(keep), a.shape[0],
		)
	}

	kept := countTrue(keep)
	newShape := a.shape.Clone()
	newShape[0] = kept

	rowSize := a.shape.ComputeStrides()[0]
	result := &Array{
		shape: newShape,
		data:  make([]float64, kept*rowSize),
	}
	next := 0
	for i, picked := range keep {
		if picked {
			copy(result.data[next*rowSize:], a.data[i*rowSize:(i+1)*rowSize])
			next++
		}
	}
	return result, nil
}

// MaskLastAxis selects the positions of the trailing axis where keep is
// true, across every leading index.
func (a *Array) MaskLastAxis(keep []bool) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, fmt.Errorf("MaskLastAxis: cannot mask a scalar array")
	}
	last := a.shape[len(a.shape)-1]
	if len(keep) != last {
		return nil, fmt.Errorf(
			"MaskLastAxis: mask length %d does not match axis length %d",
			len(keep), last,
		)
	}

	kept := countTrue(keep)
	newShape := a.shape.Clone()
	newShape[len(newShape)-1] = kept

	rows := 0
	if last > 0 {
		rows = len(a.data) / last
	}
	result := &Array{
		shape: newShape,
		data:  make([]float64, rows*kept),
	}
	next := 0
	for row := 0; row < rows; row++ {
		base := row * last
		for j, picked := range keep {
			if picked {
				result.data[next] = a.data[base+j]
				next++
			}
		}
	}
	return result, nil
}

func countTrue(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
