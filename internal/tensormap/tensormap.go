package tensormap

import (
	"fmt"
	"slices"

	"github.com/tensormap-ml/tensormap/internal/labels"
)

// TensorMap is a key-indexed collection of blocks. Each entry of the key
// labels identifies the block at the same position.
type TensorMap struct {
	keys   *labels.Labels
	blocks []*Block
}

// New creates a TensorMap from keys and index-aligned blocks. All blocks
// must share the same sample, component and property label names, and the
// same set of gradient parameters with matching gradient sample and
// component names.
func New(keys *labels.Labels, blocks []*Block) (*TensorMap, error) {
	if len(blocks) != keys.Count() {
		return nil, fmt.Errorf(
			"%w: expected the same number of blocks (%d) as the number of key entries, got %d",
			ErrInvalidArgument, keys.Count(), len(blocks),
		)
	}

	if len(blocks) != 0 {
		first := blocks[0]
		for _, block := range blocks[1:] {
			if err := checkNamesMatch(first, block, ""); err != nil {
				return nil, err
			}
			if err := checkGradientNamesMatch(first, block); err != nil {
				return nil, err
			}
		}
	}

	return &TensorMap{keys: keys, blocks: blocks}, nil
}

// checkNamesMatch validates that two blocks use the same label names on
// every axis. Values may differ: only the naming convention is shared
// across a map.
func checkNamesMatch(reference, block *Block, context string) error {
	if !slices.Equal(block.samples.Names(), reference.samples.Names()) {
		return fmt.Errorf(
			"%w: all blocks must have the same sample label names, got %v and %v%s",
			ErrInvalidArgument, block.samples.Names(), reference.samples.Names(), context,
		)
	}
	if len(block.components) != len(reference.components) {
		return fmt.Errorf(
			"%w: all blocks must have the same number of components, got %d and %d%s",
			ErrInvalidArgument, len(block.components), len(reference.components), context,
		)
	}
	for i := range reference.components {
		if !slices.Equal(block.components[i].Names(), reference.components[i].Names()) {
			return fmt.Errorf(
				"%w: all blocks must have the same component label names, got %v and %v%s",
				ErrInvalidArgument, block.components[i].Names(), reference.components[i].Names(), context,
			)
		}
	}
	if !slices.Equal(block.properties.Names(), reference.properties.Names()) {
		return fmt.Errorf(
			"%w: all blocks must have the same property label names, got %v and %v%s",
			ErrInvalidArgument, block.properties.Names(), reference.properties.Names(), context,
		)
	}
	return nil
}

// checkGradientNamesMatch validates that two blocks declare the same
// gradient parameters, with the same gradient label names.
func checkGradientNamesMatch(reference, block *Block) error {
	if block.gradients.Len() != reference.gradients.Len() {
		return fmt.Errorf(
			"%w: all blocks must have the same set of gradients, got %d and %d parameters",
			ErrInvalidArgument, block.gradients.Len(), reference.gradients.Len(),
		)
	}
	for pair := block.gradients.Oldest(); pair != nil; pair = pair.Next() {
		refGradient, ok := reference.gradients.Get(pair.Key)
		if !ok {
			return fmt.Errorf(
				"%w: missing gradient with respect to %q in one of the blocks",
				ErrInvalidArgument, pair.Key,
			)
		}
		context := fmt.Sprintf(" for gradients with respect to %q", pair.Key)
		if err := checkNamesMatch(refGradient, pair.Value, context); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the map's key labels.
func (t *TensorMap) Keys() *labels.Labels {
	return t.keys
}

// Len returns the number of blocks.
func (t *TensorMap) Len() int {
	return len(t.blocks)
}

// Block returns the block at position i, aligned with the i-th key entry.
func (t *TensorMap) Block(i int) *Block {
	return t.blocks[i]
}

// Blocks returns all blocks, in key order.
func (t *TensorMap) Blocks() []*Block {
	return append([]*Block(nil), t.blocks...)
}

// BlockByKey returns the block associated with the given full key entry.
func (t *TensorMap) BlockByKey(key []int32) (*Block, bool) {
	i, ok := t.keys.Position(key)
	if !ok {
		return nil, false
	}
	return t.blocks[i], true
}

// SampleNames returns the sample label names shared by every block.
func (t *TensorMap) SampleNames() []string {
	if len(t.blocks) == 0 {
		return nil
	}
	return t.blocks[0].samples.Names()
}

// PropertyNames returns the property label names shared by every block.
func (t *TensorMap) PropertyNames() []string {
	if len(t.blocks) == 0 {
		return nil
	}
	return t.blocks[0].properties.Names()
}

// BlocksMatching returns the blocks whose key matches the selection. The
// selection must contain a single entry over a subset of the key names;
// an empty selection matches every block.
func (t *TensorMap) BlocksMatching(selection *labels.Labels) ([]*Block, error) {
	matching, err := t.findMatchingBlocks(selection)
	if err != nil {
		return nil, err
	}
	blocks := make([]*Block, len(matching))
	for i, index := range matching {
		blocks[i] = t.blocks[index]
	}
	return blocks, nil
}

// BlockMatching behaves like BlocksMatching but requires the selection to
// match exactly one block.
func (t *TensorMap) BlockMatching(selection *labels.Labels) (*Block, error) {
	matching, err := t.findMatchingBlocks(selection)
	if err != nil {
		return nil, err
	}
	if len(matching) != 1 {
		return nil, fmt.Errorf(
			"%w: %d blocks matched the selection %v, expected only one",
			ErrInvalidArgument, len(matching), selection,
		)
	}
	return t.blocks[matching[0]], nil
}

func (t *TensorMap) findMatchingBlocks(selection *labels.Labels) ([]int, error) {
	if selection.Size() == 0 {
		matching := make([]int, len(t.blocks))
		for i := range matching {
			matching[i] = i
		}
		return matching, nil
	}

	if selection.Count() != 1 {
		return nil, fmt.Errorf(
			"%w: block selection labels must contain a single entry, got %d",
			ErrInvalidArgument, selection.Count(),
		)
	}

	columns := make([]int, selection.Size())
	for i, name := range selection.Names() {
		column, ok := t.keys.ColumnIndex(name)
		if !ok {
			return nil, fmt.Errorf(
				"%w: %q is not part of the keys for this tensor",
				ErrInvalidArgument, name,
			)
		}
		columns[i] = column
	}

	requested := selection.Entry(0)
	var matching []int
	for i := 0; i < t.keys.Count(); i++ {
		key := t.keys.Entry(i)
		selected := true
		for j, column := range columns {
			if key[column] != requested[j] {
				selected = false
				break
			}
		}
		if selected {
			matching = append(matching, i)
		}
	}
	return matching, nil
}
