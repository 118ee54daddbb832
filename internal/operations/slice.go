package operations

import (
	"fmt"
	"slices"

	"github.com/tensormap-ml/tensormap/internal/labels"
	"github.com/tensormap-ml/tensormap/internal/parallel"
	"github.com/tensormap-ml/tensormap/internal/tensormap"
)

// SliceReport lists the advisory observations from a map-level slice:
// which blocks were sliced down to zero length along some axis. Producing
// empty blocks is not an error; the report lets callers inspect or ignore
// the fact.
type SliceReport struct {
	// EmptyKeys holds the key entries whose blocks are now empty, in key
	// order.
	EmptyKeys [][]int32
	// Blocks is the total number of blocks examined.
	Blocks int
}

// HasEmpty reports whether any block was sliced to empty.
func (r *SliceReport) HasEmpty() bool {
	return len(r.EmptyKeys) > 0
}

// AllEmpty reports whether every block was sliced to empty.
func (r *SliceReport) AllEmpty() bool {
	return r.Blocks > 0 && len(r.EmptyKeys) == r.Blocks
}

// Slice filters a TensorMap along its samples and/or properties axes,
// keeping the entries matching the given filters. At least one filter
// must be given. The filters are Labels whose names must be a subset of
// the corresponding axis names of the tensor.
//
// The result has the same keys, in the same order, as the input: a block
// matching none of the filter entries becomes an empty block with zero
// length along the sliced axis and unchanged lengths elsewhere. Such
// blocks are listed in the returned SliceReport.
func Slice(tensor *tensormap.TensorMap, samples, properties *labels.Labels) (*tensormap.TensorMap, *SliceReport, error) {
	err := validateSliceFilters(samples, properties, tensor.SampleNames(), tensor.PropertyNames())
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < tensor.Len(); i++ {
		context := fmt.Sprintf(" for key %v", tensor.Keys().Entry(i))
		if err := checkNoNestedGradients(tensor.Block(i), "slice", context); err != nil {
			return nil, nil, err
		}
	}

	blocks := make([]*tensormap.Block, tensor.Len())
	errs := make([]error, tensor.Len())
	parallel.For(tensor.Len(), func(i int) {
		blocks[i], errs[i] = sliceBlock(tensor.Block(i), samples, properties)
	}, parallel.DefaultConfig())
	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}

	sliced, err := tensormap.New(tensor.Keys(), blocks)
	if err != nil {
		return nil, nil, err
	}

	report := &SliceReport{Blocks: len(blocks)}
	for i, block := range blocks {
		if block.Values().Shape().IsEmpty() {
			report.EmptyKeys = append(report.EmptyKeys, tensor.Keys().Entry(i))
		}
	}
	return sliced, report, nil
}

// SliceBlock filters a single block along its samples and/or properties
// axes, keeping the entries matching the given filters. At least one
// filter must be given.
func SliceBlock(block *tensormap.Block, samples, properties *labels.Labels) (*tensormap.Block, error) {
	err := validateSliceFilters(samples, properties, block.Samples().Names(), block.Properties().Names())
	if err != nil {
		return nil, err
	}
	if err := checkNoNestedGradients(block, "slice_block", ""); err != nil {
		return nil, err
	}
	return sliceBlock(block, samples, properties)
}

// validateSliceFilters checks that at least one filter is given and that
// every filter name exists on the corresponding target axis.
func validateSliceFilters(samples, properties *labels.Labels, sampleNames, propertyNames []string) error {
	if samples == nil && properties == nil {
		return fmt.Errorf(
			"%w in slice: must specify either samples or properties (or both) to slice by",
			tensormap.ErrInvalidArgument,
		)
	}
	if samples != nil {
		for _, name := range samples.Names() {
			if !slices.Contains(sampleNames, name) {
				return fmt.Errorf(
					"%w in slice: invalid sample name %q which is not part of the input",
					tensormap.ErrInvalidArgument, name,
				)
			}
		}
	}
	if properties != nil {
		for _, name := range properties.Names() {
			if !slices.Contains(propertyNames, name) {
				return fmt.Errorf(
					"%w in slice: invalid property name %q which is not part of the input",
					tensormap.ErrInvalidArgument, name,
				)
			}
		}
	}
	return nil
}

// keepMask computes, for every entry of target, whether its restriction
// to the filter's names is one of the filter's entries.
func keepMask(target, filter *labels.Labels) ([]bool, error) {
	projected, err := target.Project(filter.Names())
	if err != nil {
		return nil, err
	}
	mask := make([]bool, len(projected))
	for i, entry := range projected {
		mask[i] = filter.Contains(entry)
	}
	return mask, nil
}

func sliceBlock(block *tensormap.Block, samples, properties *labels.Labels) (*tensormap.Block, error) {
	newValues := block.Values()
	newSamples := block.Samples()
	newProperties := block.Properties()

	var samplesMask []bool
	var sampleMap []int
	if samples != nil {
		var err error
		samplesMask, err = keepMask(newSamples, samples)
		if err != nil {
			return nil, err
		}
		newValues, err = newValues.MaskFirstAxis(samplesMask)
		if err != nil {
			return nil, err
		}
		newSamples = newSamples.Filter(samplesMask)

		// sampleMap holds at position old the index of the corresponding
		// new sample, or -1 for removed samples. Gradient back-references
		// must be renumbered through it, not merely masked.
		sampleMap = make([]int, len(samplesMask))
		next := 0
		for i, picked := range samplesMask {
			if picked {
				sampleMap[i] = next
				next++
			} else {
				sampleMap[i] = -1
			}
		}
	}

	var propertiesMask []bool
	if properties != nil {
		var err error
		propertiesMask, err = keepMask(newProperties, properties)
		if err != nil {
			return nil, err
		}
		newValues, err = newValues.MaskLastAxis(propertiesMask)
		if err != nil {
			return nil, err
		}
		newProperties = newProperties.Filter(propertiesMask)
	}

	result, err := tensormap.NewBlock(newValues, newSamples, block.Components(), newProperties)
	if err != nil {
		return nil, err
	}

	for _, parameter := range block.GradientParameters() {
		gradient, _ := block.Gradient(parameter)
		gradValues := gradient.Values()
		gradSamples := gradient.Samples()

		if samples != nil {
			backrefs, err := gradSamples.Column(tensormap.GradientSampleName)
			if err != nil {
				return nil, err
			}
			// A gradient row survives iff the parent sample it references
			// survives.
			gradMask := make([]bool, len(backrefs))
			for i, sample := range backrefs {
				gradMask[i] = samplesMask[sample]
			}

			entries := make([][]int32, 0, len(backrefs))
			for i, picked := range gradMask {
				if !picked {
					continue
				}
				entry := gradSamples.Entry(i)
				entry[0] = int32(sampleMap[entry[0]])
				entries = append(entries, entry)
			}
			gradSamples, err = labels.New(gradSamples.Names(), entries)
			if err != nil {
				return nil, err
			}

			gradValues, err = gradValues.MaskFirstAxis(gradMask)
			if err != nil {
				return nil, err
			}
		}
		if properties != nil {
			var err error
			gradValues, err = gradValues.MaskLastAxis(propertiesMask)
			if err != nil {
				return nil, err
			}
		}

		sliced, err := tensormap.NewBlock(gradValues, gradSamples, gradient.Components(), newProperties)
		if err != nil {
			return nil, err
		}
		if err := result.AddGradient(parameter, sliced); err != nil {
			return nil, err
		}
	}

	return result, nil
}
