package labels

// Builder constructs Labels incrementally, validating each entry as it
// is added.
//
// Example:
//
//	builder := labels.NewBuilder("structure", "center")
//	if err := builder.Add(0, 1); err != nil { ... }
//	if err := builder.Add(0, 6); err != nil { ... }
//	samples := builder.Finish()
type Builder struct {
	labels *Labels
	err    error
}

// NewBuilder creates a Builder for entries with the given names.
func NewBuilder(names ...string) *Builder {
	l, err := New(names, nil)
	return &Builder{labels: l, err: err}
}

// Add appends one entry. It returns an error if the entry has the wrong
// width or duplicates a previous entry.
func (b *Builder) Add(entry ...int32) error {
	if b.err != nil {
		return b.err
	}
	return b.labels.append(entry)
}

// Finish returns the built Labels. The first error encountered while
// building, if any, is returned instead.
func (b *Builder) Finish() (*Labels, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.labels, nil
}
