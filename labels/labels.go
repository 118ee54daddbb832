// Copyright 2025 TensorMap ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package labels

import (
	"github.com/tensormap-ml/tensormap/internal/labels"
)

// Labels is a named, ordered set of unique integer tuples indexing one
// tensor axis.
type Labels = labels.Labels

// Builder constructs Labels incrementally, validating every entry.
type Builder = labels.Builder

// New creates Labels from names and entries. Every entry must have
// len(names) values and entries must be unique.
//
// Example:
//
//	samples, err := labels.New(
//	    []string{"structure", "center"},
//	    [][]int32{{0, 1}, {0, 6}, {1, 6}},
//	)
func New(names []string, entries [][]int32) (*Labels, error) {
	return labels.New(names, entries)
}

// NewBuilder creates a Builder for entries with the given names.
func NewBuilder(names ...string) *Builder {
	return labels.NewBuilder(names...)
}

// Range creates single-name Labels with entries [0], [1], ..., [n-1].
//
// Example:
//
//	properties := labels.Range("n", 5)
func Range(name string, n int) *Labels {
	return labels.Range(name, n)
}
