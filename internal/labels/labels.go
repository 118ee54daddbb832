// Package labels provides named integer-tuple index sets for tensor axes.
package labels

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Labels is a named, ordered set of unique integer tuples acting as a
// non-numeric index for one tensor axis. Each entry is a tuple of int32
// values, one per name.
//
// Labels are immutable once constructed and safe to share by reference
// across blocks and maps.
type Labels struct {
	names     []string
	values    []int32        // row-major, len == count*size
	positions map[string]int // encoded entry -> row index
}

// New creates Labels from names and entries. Every entry must have
// len(names) values and entries must be unique.
func New(names []string, entries [][]int32) (*Labels, error) {
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("labels: name at position %d is empty", i)
		}
		if slices.Contains(names[:i], name) {
			return nil, fmt.Errorf("labels: duplicate name %q", name)
		}
	}

	l := &Labels{
		names:     slices.Clone(names),
		values:    make([]int32, 0, len(entries)*len(names)),
		positions: make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if err := l.append(entry); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Range creates single-name Labels with entries [0], [1], ..., [n-1].
func Range(name string, n int) *Labels {
	entries := make([][]int32, n)
	for i := range entries {
		entries[i] = []int32{int32(i)}
	}
	l, err := New([]string{name}, entries)
	if err != nil {
		panic(err) // unreachable: generated entries are unique
	}
	return l
}

// append adds one entry, rejecting width mismatches and duplicates.
func (l *Labels) append(entry []int32) error {
	if len(entry) != len(l.names) {
		return fmt.Errorf(
			"labels: entry %v has %d values, expected %d to match names %v",
			entry, len(entry), len(l.names), l.names,
		)
	}
	key := encodeEntry(entry)
	if _, ok := l.positions[key]; ok {
		return fmt.Errorf("labels: duplicate entry %v", entry)
	}
	l.positions[key] = l.Count()
	l.values = append(l.values, entry...)
	return nil
}

// Size returns the number of names (the width of each entry).
func (l *Labels) Size() int {
	return len(l.names)
}

// Count returns the number of entries.
func (l *Labels) Count() int {
	if len(l.names) == 0 {
		return 0
	}
	return len(l.values) / len(l.names)
}

// Names returns a copy of the axis names.
func (l *Labels) Names() []string {
	return slices.Clone(l.names)
}

// Entry returns a copy of the i-th entry.
func (l *Labels) Entry(i int) []int32 {
	size := len(l.names)
	return slices.Clone(l.values[i*size : (i+1)*size])
}

// entry returns the i-th entry without copying. Callers must not modify it.
func (l *Labels) entry(i int) []int32 {
	size := len(l.names)
	return l.values[i*size : (i+1)*size]
}

// Position returns the row index of the given entry, if present.
func (l *Labels) Position(entry []int32) (int, bool) {
	if len(entry) != len(l.names) {
		return 0, false
	}
	i, ok := l.positions[encodeEntry(entry)]
	return i, ok
}

// Contains reports whether the entry is part of this set.
func (l *Labels) Contains(entry []int32) bool {
	_, ok := l.Position(entry)
	return ok
}

// ColumnIndex returns the position of name among the axis names.
func (l *Labels) ColumnIndex(name string) (int, bool) {
	i := slices.Index(l.names, name)
	return i, i >= 0
}

// Column returns a copy of the values of the named column, one per entry.
func (l *Labels) Column(name string) ([]int32, error) {
	col, ok := l.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("labels: no column named %q in %v", name, l.names)
	}
	size := len(l.names)
	out := make([]int32, l.Count())
	for i := range out {
		out[i] = l.values[i*size+col]
	}
	return out, nil
}

// NamesEqual reports whether both label sets use the same names in the
// same order.
func (l *Labels) NamesEqual(other *Labels) bool {
	return slices.Equal(l.names, other.names)
}

// Equal reports whether both label sets have the same names and the same
// entries in the same order.
func (l *Labels) Equal(other *Labels) bool {
	return l.NamesEqual(other) && slices.Equal(l.values, other.values)
}

// Project restricts every entry to the given subset of names, in the
// order the names are given. The projected tuples are not deduplicated.
func (l *Labels) Project(names []string) ([][]int32, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		col, ok := l.ColumnIndex(name)
		if !ok {
			return nil, fmt.Errorf("labels: no column named %q in %v", name, l.names)
		}
		cols[i] = col
	}

	projected := make([][]int32, l.Count())
	for i := range projected {
		row := l.entry(i)
		sub := make([]int32, len(cols))
		for j, col := range cols {
			sub[j] = row[col]
		}
		projected[i] = sub
	}
	return projected, nil
}

// Filter returns new Labels keeping only the entries where keep is true.
// len(keep) must equal Count.
func (l *Labels) Filter(keep []bool) *Labels {
	entries := make([][]int32, 0, l.Count())
	for i := range keep {
		if keep[i] {
			entries = append(entries, l.entry(i))
		}
	}
	filtered, err := New(l.names, entries)
	if err != nil {
		panic(err) // unreachable: a subset of unique entries stays unique
	}
	return filtered
}

// String formats the labels as "name1, name2: [v v] [v v] ...".
func (l *Labels) String() string {
	s := ""
	for i, name := range l.names {
		if i > 0 {
			s += ", "
		}
		s += name
	}
	s += ":"
	for i := 0; i < l.Count(); i++ {
		s += fmt.Sprintf(" %v", l.entry(i))
	}
	return s
}

// encodeEntry turns a fixed-width int32 tuple into a map key.
func encodeEntry(entry []int32) string {
	buf := make([]byte, 4*len(entry))
	for i, v := range entry {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	return string(buf)
}
