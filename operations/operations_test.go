// Copyright 2025 TensorMap ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operations_test

import (
	"errors"
	"testing"

	"github.com/tensormap-ml/tensormap/labels"
	"github.com/tensormap-ml/tensormap/operations"
	"github.com/tensormap-ml/tensormap/tensormap"
)

// buildTensor assembles a single-block map through the public API: one
// block of shape (3, 1, 2) with a "positions" gradient.
func buildTensor(t *testing.T) *tensormap.TensorMap {
	t.Helper()

	samples, err := labels.New(
		[]string{"structure", "center"},
		[][]int32{{0, 0}, {0, 1}, {1, 0}},
	)
	if err != nil {
		t.Fatalf("building samples: %v", err)
	}
	components := []*labels.Labels{labels.Range("xyz", 1)}
	properties := labels.Range("n", 2)

	values, err := tensormap.NewArray(
		[]float64{1, 2, 3, 4, 5, 6},
		tensormap.Shape{3, 1, 2},
	)
	if err != nil {
		t.Fatalf("building values: %v", err)
	}
	block, err := tensormap.NewBlock(values, samples, components, properties)
	if err != nil {
		t.Fatalf("building block: %v", err)
	}

	gradSamples, err := labels.New(
		[]string{tensormap.GradientSampleName, "atom"},
		[][]int32{{0, 0}, {2, 1}},
	)
	if err != nil {
		t.Fatalf("building gradient samples: %v", err)
	}
	gradValues, err := tensormap.NewArray(
		[]float64{10, 20, 30, 40},
		tensormap.Shape{2, 1, 2},
	)
	if err != nil {
		t.Fatalf("building gradient values: %v", err)
	}
	gradient, err := tensormap.NewBlock(gradValues, gradSamples, components, properties)
	if err != nil {
		t.Fatalf("building gradient: %v", err)
	}
	if err := block.AddGradient("positions", gradient); err != nil {
		t.Fatalf("attaching gradient: %v", err)
	}

	keys := labels.Range("key", 1)
	tensor, err := tensormap.New(keys, []*tensormap.Block{block})
	if err != nil {
		t.Fatalf("building tensor: %v", err)
	}
	return tensor
}

func TestAddThenSlice(t *testing.T) {
	tensor := buildTensor(t)

	shifted, err := operations.Add(tensor, 1)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !operations.EqualMetadata(tensor, shifted) {
		t.Error("Add changed the metadata")
	}

	keep, err := labels.New([]string{"structure"}, [][]int32{{0}})
	if err != nil {
		t.Fatalf("building filter: %v", err)
	}
	sliced, report, err := operations.Slice(shifted, keep, nil)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if report.HasEmpty() {
		t.Errorf("unexpected empty blocks: %v", report.EmptyKeys)
	}

	block := sliced.Block(0)
	want := []float64{2, 3, 4, 5} // rows 0 and 1 of the shifted values
	got := block.Values().Data()
	if len(got) != len(want) {
		t.Fatalf("sliced values: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sliced values: got %v, want %v", got, want)
		}
	}

	// Only the gradient row referencing sample 0 survives, and the shift
	// left its values untouched.
	gradient, ok := block.Gradient("positions")
	if !ok {
		t.Fatal("sliced block lost its gradient")
	}
	gradData := gradient.Values().Data()
	if len(gradData) != 2 || gradData[0] != 10 || gradData[1] != 20 {
		t.Errorf("gradient values: got %v, want [10 20]", gradData)
	}
}

func TestErrorsAreMatchable(t *testing.T) {
	tensor := buildTensor(t)

	_, _, err := operations.Slice(tensor, nil, nil)
	if !errors.Is(err, tensormap.ErrInvalidArgument) {
		t.Errorf("Slice without filters: got %v, want ErrInvalidArgument", err)
	}

	_, err = operations.Add(tensor, "three")
	if !errors.Is(err, tensormap.ErrInvalidArgument) {
		t.Errorf("Add with a string operand: got %v, want ErrInvalidArgument", err)
	}
}
