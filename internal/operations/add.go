package operations

import (
	"fmt"

	"github.com/tensormap-ml/tensormap/internal/parallel"
	"github.com/tensormap-ml/tensormap/internal/tensormap"
)

// Add returns a new TensorMap with the values being the sum of a and the
// operand.
//
// The operand is either a *TensorMap with the same metadata as a, or a
// scalar (any Go numeric type). Gradients propagate as:
//
//	∇(a + tensor) = ∇a + ∇tensor
//	∇(a + scalar) = ∇a
//
// All metadata checks run before any output is built; on failure no
// partial result is observable. Neither input is modified.
func Add(a *tensormap.TensorMap, operand any) (*tensormap.TensorMap, error) {
	if other, ok := operand.(*tensormap.TensorMap); ok {
		return addTensor(a, other)
	}
	scalar, ok := scalarValue(operand)
	if !ok {
		return nil, fmt.Errorf(
			"%w in add: operand must be a tensor map or a scalar, got %T",
			tensormap.ErrInvalidArgument, operand,
		)
	}
	return addScalar(a, scalar)
}

func addTensor(a, b *tensormap.TensorMap) (*tensormap.TensorMap, error) {
	if err := checkSameKeys(a, b, "add"); err != nil {
		return nil, err
	}

	// Validate every pair of blocks before building anything.
	pairs := make([]*tensormap.Block, a.Len())
	for i := 0; i < a.Len(); i++ {
		key := a.Keys().Entry(i)
		context := fmt.Sprintf(" for key %v", key)

		blockA := a.Block(i)
		blockB, _ := b.BlockByKey(key)
		pairs[i] = blockB

		if err := checkBlocks(blockA, blockB, allAxes, "add", context); err != nil {
			return nil, err
		}
		if err := checkSameGradients(blockA, blockB, allAxes, "add", context); err != nil {
			return nil, err
		}
		if err := checkNoNestedGradients(blockA, "add", context); err != nil {
			return nil, err
		}
		if err := checkNoNestedGradients(blockB, "add", context); err != nil {
			return nil, err
		}
	}

	blocks := make([]*tensormap.Block, a.Len())
	errs := make([]error, a.Len())
	parallel.For(a.Len(), func(i int) {
		blocks[i], errs[i] = addBlockBlock(a.Block(i), pairs[i])
	}, parallel.DefaultConfig())
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return tensormap.New(a.Keys(), blocks)
}

// addBlockBlock sums two metadata-identical blocks, keeping the first
// block's labels on the result.
func addBlockBlock(a, b *tensormap.Block) (*tensormap.Block, error) {
	values, err := a.Values().Add(b.Values())
	if err != nil {
		return nil, err
	}
	result, err := tensormap.NewBlock(values, a.Samples(), a.Components(), a.Properties())
	if err != nil {
		return nil, err
	}

	for _, parameter := range a.GradientParameters() {
		gradientA, _ := a.Gradient(parameter)
		gradientB, _ := b.Gradient(parameter)

		gradValues, err := gradientA.Values().Add(gradientB.Values())
		if err != nil {
			return nil, err
		}
		gradient, err := tensormap.NewBlock(
			gradValues,
			gradientA.Samples(),
			gradientA.Components(),
			gradientA.Properties(),
		)
		if err != nil {
			return nil, err
		}
		if err := result.AddGradient(parameter, gradient); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func addScalar(a *tensormap.TensorMap, scalar float64) (*tensormap.TensorMap, error) {
	for i := 0; i < a.Len(); i++ {
		context := fmt.Sprintf(" for key %v", a.Keys().Entry(i))
		if err := checkNoNestedGradients(a.Block(i), "add", context); err != nil {
			return nil, err
		}
	}

	blocks := make([]*tensormap.Block, a.Len())
	errs := make([]error, a.Len())
	parallel.For(a.Len(), func(i int) {
		blocks[i], errs[i] = addBlockScalar(a.Block(i), scalar)
	}, parallel.DefaultConfig())
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return tensormap.New(a.Keys(), blocks)
}

// addBlockScalar shifts the block values by a constant. The derivative of
// a constant shift is the original gradient, so gradient values pass
// through unchanged, as owned copies.
func addBlockScalar(block *tensormap.Block, scalar float64) (*tensormap.Block, error) {
	values := block.Values().AddScalar(scalar)
	result, err := tensormap.NewBlock(values, block.Samples(), block.Components(), block.Properties())
	if err != nil {
		return nil, err
	}

	for _, parameter := range block.GradientParameters() {
		gradient, _ := block.Gradient(parameter)
		copied, err := tensormap.NewBlock(
			gradient.Values().Clone(),
			gradient.Samples(),
			gradient.Components(),
			gradient.Properties(),
		)
		if err != nil {
			return nil, err
		}
		if err := result.AddGradient(parameter, copied); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// scalarValue converts any Go numeric value to a float64.
func scalarValue(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int8:
		return float64(value), true
	case int16:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	case uint:
		return float64(value), true
	case uint8:
		return float64(value), true
	case uint16:
		return float64(value), true
	case uint32:
		return float64(value), true
	case uint64:
		return float64(value), true
	default:
		return 0, false
	}
}
