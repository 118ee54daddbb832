// Package operations implements the operations working on whole tensor
// maps: arithmetic, slicing, creation and metadata comparison.
package operations

import (
	"fmt"
	"slices"

	"github.com/tensormap-ml/tensormap/internal/tensormap"
)

// Axis identifies one of the three axis kinds of a block.
type Axis string

// The axis kinds a metadata check can be asked to compare.
const (
	Samples    Axis = "samples"
	Components Axis = "components"
	Properties Axis = "properties"
)

var allAxes = []Axis{Samples, Components, Properties}

// checkSameKeys fails unless both maps have identical key sets,
// independent of entry order.
func checkSameKeys(a, b *tensormap.TensorMap, fname string) error {
	keysA, keysB := a.Keys(), b.Keys()
	if !slices.Equal(keysA.Names(), keysB.Names()) {
		return fmt.Errorf(
			"%w in %s: key names differ: %v and %v",
			tensormap.ErrKeyMismatch, fname, keysA.Names(), keysB.Names(),
		)
	}
	if keysA.Count() != keysB.Count() {
		return fmt.Errorf(
			"%w in %s: maps have %d and %d keys",
			tensormap.ErrKeyMismatch, fname, keysA.Count(), keysB.Count(),
		)
	}
	for i := 0; i < keysA.Count(); i++ {
		if key := keysA.Entry(i); !keysB.Contains(key) {
			return fmt.Errorf(
				"%w in %s: key %v is missing from the second map",
				tensormap.ErrKeyMismatch, fname, key,
			)
		}
	}
	return nil
}

// checkBlocks fails unless the two blocks have identical labels (names,
// order and entry values) for every requested axis kind.
func checkBlocks(a, b *tensormap.Block, axes []Axis, fname, context string) error {
	for _, axis := range axes {
		switch axis {
		case Samples:
			if !a.Samples().Equal(b.Samples()) {
				return fmt.Errorf(
					"%w in %s: blocks%s have different samples",
					tensormap.ErrMetadataMismatch, fname, context,
				)
			}
		case Components:
			componentsA, componentsB := a.Components(), b.Components()
			if len(componentsA) != len(componentsB) {
				return fmt.Errorf(
					"%w in %s: blocks%s have %d and %d components",
					tensormap.ErrMetadataMismatch, fname, context,
					len(componentsA), len(componentsB),
				)
			}
			for i := range componentsA {
				if !componentsA[i].Equal(componentsB[i]) {
					return fmt.Errorf(
						"%w in %s: blocks%s differ on component axis %d",
						tensormap.ErrMetadataMismatch, fname, context, i,
					)
				}
			}
		case Properties:
			if !a.Properties().Equal(b.Properties()) {
				return fmt.Errorf(
					"%w in %s: blocks%s have different properties",
					tensormap.ErrMetadataMismatch, fname, context,
				)
			}
		default:
			return fmt.Errorf(
				"%w in %s: unknown axis kind %q",
				tensormap.ErrInvalidArgument, fname, axis,
			)
		}
	}
	return nil
}

// checkSameGradients fails unless both blocks declare the same gradient
// parameters and, for each parameter, the gradient pair passes checkBlocks
// for the requested axes.
func checkSameGradients(a, b *tensormap.Block, axes []Axis, fname, context string) error {
	parametersA := a.GradientParameters()
	parametersB := b.GradientParameters()
	if len(parametersA) != len(parametersB) {
		return fmt.Errorf(
			"%w in %s: blocks%s have %d and %d gradient parameters",
			tensormap.ErrMetadataMismatch, fname, context,
			len(parametersA), len(parametersB),
		)
	}
	for _, parameter := range parametersA {
		gradientA, _ := a.Gradient(parameter)
		gradientB, ok := b.Gradient(parameter)
		if !ok {
			return fmt.Errorf(
				"%w in %s: blocks%s disagree on gradient parameter %q",
				tensormap.ErrMetadataMismatch, fname, context, parameter,
			)
		}
		gradContext := fmt.Sprintf("%s (gradients with respect to %q)", context, parameter)
		if err := checkBlocks(gradientA, gradientB, axes, fname, gradContext); err != nil {
			return err
		}
	}
	return nil
}

// checkNoNestedGradients fails if any gradient of the block itself
// carries gradients.
func checkNoNestedGradients(block *tensormap.Block, fname, context string) error {
	for _, parameter := range block.GradientParameters() {
		gradient, _ := block.Gradient(parameter)
		if gradient.HasGradients() {
			return fmt.Errorf(
				"%w in %s: gradients of gradients are not supported, found one with respect to %q%s",
				tensormap.ErrUnsupportedStructure, fname, parameter, context,
			)
		}
	}
	return nil
}
