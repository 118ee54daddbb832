// Copyright 2025 TensorMap ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operations

import (
	"github.com/tensormap-ml/tensormap/internal/labels"
	"github.com/tensormap-ml/tensormap/internal/operations"
	"github.com/tensormap-ml/tensormap/internal/tensormap"
)

// SliceReport lists which blocks a map-level slice reduced to empty.
type SliceReport = operations.SliceReport

// Add returns a new TensorMap with the values being the sum of a and the
// operand. The operand is either a *TensorMap with the same metadata as
// a, or a scalar of any Go numeric type.
//
// Gradients propagate through the sum: adding two maps sums their
// gradients, adding a scalar keeps a's gradients unchanged.
//
// Example:
//
//	sum, err := operations.Add(a, b)      // tensor + tensor
//	shifted, err := operations.Add(a, 2)  // tensor + scalar
func Add(a *tensormap.TensorMap, operand any) (*tensormap.TensorMap, error) {
	return operations.Add(a, operand)
}

// Slice filters a TensorMap along its samples and/or properties axes.
// Either filter may be nil, but not both. The result keeps the input's
// keys and key order; blocks matching no filter entry become empty blocks
// listed in the returned SliceReport.
//
// Example:
//
//	sliced, report, err := operations.Slice(
//	    tensor,
//	    keptSamples, // labels over a subset of the sample names
//	    nil,
//	)
//	if report.HasEmpty() { ... }
func Slice(tensor *tensormap.TensorMap, samples, properties *labels.Labels) (*tensormap.TensorMap, *SliceReport, error) {
	return operations.Slice(tensor, samples, properties)
}

// SliceBlock filters a single block along its samples and/or properties
// axes. Either filter may be nil, but not both.
func SliceBlock(block *tensormap.Block, samples, properties *labels.Labels) (*tensormap.Block, error) {
	return operations.SliceBlock(block, samples, properties)
}

// ZerosLike returns a new TensorMap with the same metadata as tensor and
// all values, including gradient values, set to zero.
func ZerosLike(tensor *tensormap.TensorMap) (*tensormap.TensorMap, error) {
	return operations.ZerosLike(tensor)
}

// OnesLike returns a new TensorMap with the same metadata as tensor and
// all values, including gradient values, set to one.
func OnesLike(tensor *tensormap.TensorMap) (*tensormap.TensorMap, error) {
	return operations.OnesLike(tensor)
}

// EqualMetadata reports whether two maps carry the same keys, axis labels
// and gradient structure. Values are not compared.
func EqualMetadata(a, b *tensormap.TensorMap) bool {
	return operations.EqualMetadata(a, b)
}
