// Copyright 2025 TensorMap ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package operations provides the operations working on whole tensor
// maps: arithmetic, slicing, creation and metadata comparison.
//
// # Error handling
//
// Every operation validates its inputs before building any output, so a
// failed operation never leaves a partial result. Failures wrap one of
// the sentinel errors from the tensormap package and are matched with
// errors.Is:
//
//	result, err := operations.Add(a, b)
//	if errors.Is(err, tensormap.ErrKeyMismatch) { ... }
//
// # Advisory diagnostics
//
// Slicing a map never fails because a filter matched nothing: the block
// keeps its key, with zero length along the sliced axis. The returned
// SliceReport lists such blocks; callers may inspect or ignore it.
package operations
