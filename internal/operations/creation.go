package operations

import (
	"fmt"

	"github.com/tensormap-ml/tensormap/internal/array"
	"github.com/tensormap-ml/tensormap/internal/tensormap"
)

// ZerosLike returns a new TensorMap with the same metadata as tensor and
// all values, including gradient values, set to zero.
func ZerosLike(tensor *tensormap.TensorMap) (*tensormap.TensorMap, error) {
	return fillLike(tensor, 0, "zeros_like")
}

// OnesLike returns a new TensorMap with the same metadata as tensor and
// all values, including gradient values, set to one.
func OnesLike(tensor *tensormap.TensorMap) (*tensormap.TensorMap, error) {
	return fillLike(tensor, 1, "ones_like")
}

func fillLike(tensor *tensormap.TensorMap, value float64, fname string) (*tensormap.TensorMap, error) {
	for i := 0; i < tensor.Len(); i++ {
		context := fmt.Sprintf(" for key %v", tensor.Keys().Entry(i))
		if err := checkNoNestedGradients(tensor.Block(i), fname, context); err != nil {
			return nil, err
		}
	}

	blocks := make([]*tensormap.Block, tensor.Len())
	for i := range blocks {
		block, err := fillBlockLike(tensor.Block(i), value)
		if err != nil {
			return nil, err
		}
		blocks[i] = block
	}
	return tensormap.New(tensor.Keys(), blocks)
}

func fillBlockLike(block *tensormap.Block, value float64) (*tensormap.Block, error) {
	values, err := array.Full(block.Values().Shape(), value)
	if err != nil {
		return nil, err
	}
	result, err := tensormap.NewBlock(values, block.Samples(), block.Components(), block.Properties())
	if err != nil {
		return nil, err
	}

	for _, parameter := range block.GradientParameters() {
		gradient, _ := block.Gradient(parameter)
		gradValues, err := array.Full(gradient.Values().Shape(), value)
		if err != nil {
			return nil, err
		}
		filled, err := tensormap.NewBlock(
			gradValues,
			gradient.Samples(),
			gradient.Components(),
			gradient.Properties(),
		)
		if err != nil {
			return nil, err
		}
		if err := result.AddGradient(parameter, filled); err != nil {
			return nil, err
		}
	}
	return result, nil
}
