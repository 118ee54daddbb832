package operations

import (
	"github.com/tensormap-ml/tensormap/internal/tensormap"
)

// EqualMetadata reports whether two maps carry the same metadata: the
// same key set, and per matched key the same samples, components and
// properties labels and the same gradients. Values are not compared.
func EqualMetadata(a, b *tensormap.TensorMap) bool {
	if err := checkSameKeys(a, b, "equal_metadata"); err != nil {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		blockA := a.Block(i)
		blockB, ok := b.BlockByKey(a.Keys().Entry(i))
		if !ok {
			return false
		}
		if err := checkBlocks(blockA, blockB, allAxes, "equal_metadata", ""); err != nil {
			return false
		}
		if err := checkSameGradients(blockA, blockB, allAxes, "equal_metadata", ""); err != nil {
			return false
		}
	}
	return true
}
