// Copyright 2025 TensorMap ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package labels provides named integer-tuple index sets for tensor axes.
//
// # Overview
//
// A Labels instance names one tensor axis: it holds an ordered list of
// axis names and one unique integer tuple per axis position. Blocks use
// Labels for their samples, components and properties axes, and a
// TensorMap uses Labels as its key set.
//
// # Basic Usage
//
//	import "github.com/tensormap-ml/tensormap/labels"
//
//	builder := labels.NewBuilder("structure", "center")
//	_ = builder.Add(0, 1)
//	_ = builder.Add(0, 6)
//	_ = builder.Add(1, 6)
//	samples, err := builder.Finish()
//
//	samples.Count()              // 3 entries
//	samples.Contains([]int32{0, 6})
//	position, ok := samples.Position([]int32{1, 6})
//
// # Immutability
//
// Labels never change after construction. Containers share them by
// reference, and operations reuse the input labels on their outputs
// whenever an axis is unchanged.
package labels
