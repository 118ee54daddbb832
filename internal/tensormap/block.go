// Package tensormap provides the labeled block containers: TensorBlock,
// its attached gradients, and the key-indexed TensorMap.
package tensormap

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/tensormap-ml/tensormap/internal/array"
	"github.com/tensormap-ml/tensormap/internal/labels"
)

// GradientSampleName is the distinguished first column of a gradient's
// sample labels. Its values index into the owning block's sample axis.
const GradientSampleName = "sample"

// Block is one dense array together with the labels describing its axes:
// axis 0 is indexed by the sample labels, the middle axes by the component
// labels and the last axis by the property labels.
//
// A block may carry named gradients, which are themselves blocks whose
// sample labels back-reference the owner's samples through the "sample"
// column. Blocks are treated as immutable by every operation: operations
// build new blocks instead of modifying inputs.
type Block struct {
	values     *array.Array
	samples    *labels.Labels
	components []*labels.Labels
	properties *labels.Labels
	gradients  *orderedmap.OrderedMap[string, *Block]
}

// NewBlock creates a block from values and axis labels, validating that
// the array shape agrees with the label lengths: the array must have rank
// 2 + len(components), with axis 0 matching the sample count, the middle
// axes matching each component count in order, and the last axis matching
// the property count.
func NewBlock(
	values *array.Array,
	samples *labels.Labels,
	components []*labels.Labels,
	properties *labels.Labels,
) (*Block, error) {
	shape := values.Shape()
	if len(shape) != 2+len(components) {
		return nil, fmt.Errorf(
			"%w: block values have rank %d, expected %d (samples + %d components + properties)",
			ErrInvalidArgument, len(shape), 2+len(components), len(components),
		)
	}
	if shape[0] != samples.Count() {
		return nil, fmt.Errorf(
			"%w: block values have %d samples, but the sample labels have %d entries",
			ErrInvalidArgument, shape[0], samples.Count(),
		)
	}
	for i, component := range components {
		if shape[1+i] != component.Count() {
			return nil, fmt.Errorf(
				"%w: block values have length %d along component axis %d, but the component labels have %d entries",
				ErrInvalidArgument, shape[1+i], i, component.Count(),
			)
		}
	}
	if last := shape[len(shape)-1]; last != properties.Count() {
		return nil, fmt.Errorf(
			"%w: block values have %d properties, but the property labels have %d entries",
			ErrInvalidArgument, last, properties.Count(),
		)
	}

	return &Block{
		values:     values,
		samples:    samples,
		components: append([]*labels.Labels(nil), components...),
		properties: properties,
		gradients:  orderedmap.New[string, *Block](),
	}, nil
}

// Values returns the block's dense array.
func (b *Block) Values() *array.Array {
	return b.values
}

// Samples returns the sample labels (axis 0).
func (b *Block) Samples() *labels.Labels {
	return b.samples
}

// Components returns the component labels (middle axes), one per axis.
func (b *Block) Components() []*labels.Labels {
	return append([]*labels.Labels(nil), b.components...)
}

// Properties returns the property labels (last axis).
func (b *Block) Properties() *labels.Labels {
	return b.properties
}

// AddGradient attaches a gradient with respect to parameter. The
// gradient's first sample column must be named "sample" and its values
// must be valid indices into this block's samples; its components and
// properties must equal this block's.
func (b *Block) AddGradient(parameter string, gradient *Block) error {
	if _, ok := b.gradients.Get(parameter); ok {
		return fmt.Errorf(
			"%w: block already has a gradient with respect to %q",
			ErrInvalidArgument, parameter,
		)
	}

	gradSamples := gradient.Samples()
	names := gradSamples.Names()
	if len(names) == 0 || names[0] != GradientSampleName {
		return fmt.Errorf(
			"%w: gradient samples must start with a %q column, got %v",
			ErrInvalidArgument, GradientSampleName, names,
		)
	}
	backrefs, err := gradSamples.Column(GradientSampleName)
	if err != nil {
		return err
	}
	for row, sample := range backrefs {
		if sample < 0 || int(sample) >= b.samples.Count() {
			return fmt.Errorf(
				"%w: gradient sample %d references block sample %d, but the block has %d samples",
				ErrInvalidArgument, row, sample, b.samples.Count(),
			)
		}
	}

	if !gradient.properties.Equal(b.properties) {
		return fmt.Errorf(
			"%w: gradient with respect to %q has different properties than the block",
			ErrMetadataMismatch, parameter,
		)
	}
	if len(gradient.components) != len(b.components) {
		return fmt.Errorf(
			"%w: gradient with respect to %q has %d components, the block has %d",
			ErrMetadataMismatch, parameter, len(gradient.components), len(b.components),
		)
	}
	for i := range b.components {
		if !gradient.components[i].Equal(b.components[i]) {
			return fmt.Errorf(
				"%w: gradient with respect to %q differs from the block on component axis %d",
				ErrMetadataMismatch, parameter, i,
			)
		}
	}

	b.gradients.Set(parameter, gradient)
	return nil
}

// Gradient returns the gradient with respect to parameter, if present.
func (b *Block) Gradient(parameter string) (*Block, bool) {
	return b.gradients.Get(parameter)
}

// GradientParameters returns the gradient parameter names in the order
// they were added.
func (b *Block) GradientParameters() []string {
	params := make([]string, 0, b.gradients.Len())
	for pair := b.gradients.Oldest(); pair != nil; pair = pair.Next() {
		params = append(params, pair.Key)
	}
	return params
}

// HasGradients reports whether the block carries any gradient.
func (b *Block) HasGradients() bool {
	return b.gradients.Len() > 0
}
