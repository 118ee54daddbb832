// Copyright 2025 TensorMap ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensormap

import (
	"github.com/tensormap-ml/tensormap/internal/array"
	"github.com/tensormap-ml/tensormap/internal/labels"
	"github.com/tensormap-ml/tensormap/internal/tensormap"
)

// Block is one dense array plus its samples, components and properties
// labels, and named gradients.
type Block = tensormap.Block

// TensorMap is a key-indexed collection of blocks.
type TensorMap = tensormap.TensorMap

// Array is the dense row-major float64 array backing a block.
type Array = array.Array

// Shape represents the dimensions of an array.
type Shape = array.Shape

// GradientSampleName is the distinguished first column of a gradient's
// sample labels, referencing the owning block's sample axis.
const GradientSampleName = tensormap.GradientSampleName

// Common errors returned by containers and operations.
var (
	ErrInvalidArgument      = tensormap.ErrInvalidArgument
	ErrKeyMismatch          = tensormap.ErrKeyMismatch
	ErrMetadataMismatch     = tensormap.ErrMetadataMismatch
	ErrUnsupportedStructure = tensormap.ErrUnsupportedStructure
)

// New creates a TensorMap from keys and index-aligned blocks.
func New(keys *labels.Labels, blocks []*Block) (*TensorMap, error) {
	return tensormap.New(keys, blocks)
}

// NewBlock creates a block from values and axis labels, validating that
// the array shape agrees with the label lengths.
func NewBlock(
	values *Array,
	samples *labels.Labels,
	components []*labels.Labels,
	properties *labels.Labels,
) (*Block, error) {
	return tensormap.NewBlock(values, samples, components, properties)
}

// NewArray creates an array from a flat row-major slice with a declared
// shape.
//
// Example:
//
//	values, err := tensormap.NewArray(
//	    []float64{1, 2, 3, 4, 5, 6},
//	    tensormap.Shape{2, 3},
//	)
func NewArray(data []float64, shape Shape) (*Array, error) {
	return array.FromSlice(data, shape)
}

// Zeros creates a zero-filled array with the given shape.
func Zeros(shape Shape) (*Array, error) {
	return array.Zeros(shape)
}
