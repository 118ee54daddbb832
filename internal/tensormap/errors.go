package tensormap

import "errors"

// Common errors. Call sites wrap these with fmt.Errorf and %w, adding the
// offending key, axis or parameter name; callers match with errors.Is.
var (
	// ErrInvalidArgument reports an input of the wrong kind: an operand
	// that is neither a tensor map nor a scalar, a slice call with no
	// filter, or a filter naming an axis the target does not have.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKeyMismatch reports two tensor maps that do not share an
	// identical key set.
	ErrKeyMismatch = errors.New("key mismatch")

	// ErrMetadataMismatch reports two blocks that disagree on their
	// samples, components or properties labels, or on their gradients.
	ErrMetadataMismatch = errors.New("metadata mismatch")

	// ErrUnsupportedStructure reports an operand carrying gradients of
	// gradients, which no operation supports.
	ErrUnsupportedStructure = errors.New("unsupported structure")
)
