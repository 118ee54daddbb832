package operations

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tensormap-ml/tensormap/internal/array"
	"github.com/tensormap-ml/tensormap/internal/labels"
	"github.com/tensormap-ml/tensormap/internal/tensormap"
)

func mustLabels(t *testing.T, names []string, entries [][]int32) *labels.Labels {
	t.Helper()
	l, err := labels.New(names, entries)
	require.NoError(t, err)
	return l
}

func mustArray(t *testing.T, data []float64, shape array.Shape) *array.Array {
	t.Helper()
	a, err := array.FromSlice(data, shape)
	require.NoError(t, err)
	return a
}

// sequence returns [start, start+1, ...) with n values.
func sequence(start float64, n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = start + float64(i)
	}
	return data
}

// fixtureBlock builds a block of shape (len(samples), 1, 2) with values
// counting up from start. Sample names are "structure", "center"; the
// single component axis is "xyz" with one entry; properties are "n" with
// two entries.
func fixtureBlock(t *testing.T, samples [][]int32, start float64) *tensormap.Block {
	t.Helper()

	sampleLabels := mustLabels(t, []string{"structure", "center"}, samples)
	components := []*labels.Labels{labels.Range("xyz", 1)}
	properties := labels.Range("n", 2)

	shape := array.Shape{len(samples), 1, 2}
	values := mustArray(t, sequence(start, shape.NumElements()), shape)

	block, err := tensormap.NewBlock(values, sampleLabels, components, properties)
	require.NoError(t, err)
	return block
}

// withGradient attaches a "positions" gradient to the block. Each row of
// gradSamples is (sample, atom), referencing the block's sample axis
// through the first column.
func withGradient(t *testing.T, block *tensormap.Block, gradSamples [][]int32, start float64) *tensormap.Block {
	t.Helper()

	sampleLabels := mustLabels(t, []string{"sample", "atom"}, gradSamples)
	shape := array.Shape{len(gradSamples), 1, block.Properties().Count()}
	values := mustArray(t, sequence(start, shape.NumElements()), shape)

	gradient, err := tensormap.NewBlock(values, sampleLabels, block.Components(), block.Properties())
	require.NoError(t, err)
	require.NoError(t, block.AddGradient("positions", gradient))
	return block
}

// fixtureMap builds a two-block map with one "positions" gradient per
// block. Values count up from start so two calls with different starts
// produce metadata-identical maps with different values.
func fixtureMap(t *testing.T, start float64) *tensormap.TensorMap {
	t.Helper()

	keys := mustLabels(t, []string{"key"}, [][]int32{{0}, {1}})

	block0 := fixtureBlock(t, [][]int32{{0, 0}, {0, 1}, {1, 0}}, start)
	withGradient(t, block0, [][]int32{{0, 0}, {1, 0}, {2, 1}}, start+100)

	block1 := fixtureBlock(t, [][]int32{{2, 0}, {2, 1}}, start+10)
	withGradient(t, block1, [][]int32{{0, 0}, {1, 1}}, start+200)

	tensor, err := tensormap.New(keys, []*tensormap.Block{block0, block1})
	require.NoError(t, err)
	return tensor
}

// nestGradient attaches a gradient to the block's "positions" gradient,
// producing the unsupported gradient-of-gradient structure.
func nestGradient(t *testing.T, block *tensormap.Block) {
	t.Helper()

	gradient, ok := block.Gradient("positions")
	require.True(t, ok)

	nestedSamples := mustLabels(t, []string{"sample"}, [][]int32{{0}})
	shape := array.Shape{1, 1, gradient.Properties().Count()}
	values := mustArray(t, sequence(0, shape.NumElements()), shape)

	nested, err := tensormap.NewBlock(values, nestedSamples, gradient.Components(), gradient.Properties())
	require.NoError(t, err)
	require.NoError(t, gradient.AddGradient("positions", nested))
}
