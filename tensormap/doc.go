// Copyright 2025 TensorMap ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensormap provides the labeled tensor containers: Block and
// TensorMap.
//
// # Overview
//
// A Block owns one dense array and the Labels describing its axes: axis 0
// is the sample axis, the middle axes are component axes and the last
// axis is the property axis. A Block may carry named gradients, which are
// themselves blocks whose sample labels reference the owner's samples
// through a leading "sample" column.
//
// A TensorMap collects blocks under a Labels key set, one key entry per
// block. All blocks of a map share the same axis naming conventions,
// which is validated at construction.
//
// # Basic Usage
//
//	import (
//	    "github.com/tensormap-ml/tensormap/labels"
//	    "github.com/tensormap-ml/tensormap/tensormap"
//	)
//
//	values, err := tensormap.NewArray(data, tensormap.Shape{3, 5})
//	block, err := tensormap.NewBlock(
//	    values,
//	    samples,          // labels for axis 0
//	    nil,              // no component axes
//	    properties,       // labels for the last axis
//	)
//
//	tensor, err := tensormap.New(keys, []*tensormap.Block{block})
//
// # Immutability
//
// Operations treat blocks and maps as immutable values: they never modify
// an input and always assemble fresh containers. The only mutation point
// is AddGradient during construction of a new block.
package tensormap
