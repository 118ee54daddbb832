package labels

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustLabels(t *testing.T, names []string, entries [][]int32) *Labels {
	t.Helper()
	l, err := New(names, entries)
	if err != nil {
		t.Fatalf("New(%v, %v) failed: %v", names, entries, err)
	}
	return l
}

func TestNew(t *testing.T) {
	l := mustLabels(t, []string{"structure", "center"}, [][]int32{
		{0, 1},
		{0, 6},
		{1, 6},
	})

	if l.Size() != 2 {
		t.Errorf("Size() = %d, want 2", l.Size())
	}
	if l.Count() != 3 {
		t.Errorf("Count() = %d, want 3", l.Count())
	}
	if diff := cmp.Diff([]string{"structure", "center"}, l.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{0, 6}, l.Entry(1)); diff != "" {
		t.Errorf("Entry(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		entries [][]int32
	}{
		{"duplicate entry", []string{"a"}, [][]int32{{1}, {1}}},
		{"wrong width", []string{"a", "b"}, [][]int32{{1}}},
		{"duplicate name", []string{"a", "a"}, [][]int32{{1, 2}}},
		{"empty name", []string{""}, [][]int32{{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.names, tt.entries); err == nil {
				t.Errorf("New(%v, %v) succeeded, want error", tt.names, tt.entries)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	l := mustLabels(t, []string{"a", "b"}, [][]int32{
		{0, 0},
		{1, 2},
		{-1, 5},
	})

	tests := []struct {
		entry []int32
		pos   int
		found bool
	}{
		{[]int32{0, 0}, 0, true},
		{[]int32{1, 2}, 1, true},
		{[]int32{-1, 5}, 2, true},
		{[]int32{5, 5}, 0, false},
		{[]int32{0}, 0, false}, // wrong width
	}

	for _, tt := range tests {
		pos, found := l.Position(tt.entry)
		if found != tt.found || (found && pos != tt.pos) {
			t.Errorf("Position(%v) = (%d, %v), want (%d, %v)",
				tt.entry, pos, found, tt.pos, tt.found)
		}
		if got := l.Contains(tt.entry); got != tt.found {
			t.Errorf("Contains(%v) = %v, want %v", tt.entry, got, tt.found)
		}
	}
}

func TestRange(t *testing.T) {
	l := Range("sample", 4)

	if l.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", l.Count())
	}
	for i := 0; i < 4; i++ {
		if !l.Contains([]int32{int32(i)}) {
			t.Errorf("Range labels missing entry [%d]", i)
		}
	}
}

func TestColumn(t *testing.T) {
	l := mustLabels(t, []string{"a", "b"}, [][]int32{
		{0, 10},
		{1, 20},
		{2, 30},
	})

	col, err := l.Column("b")
	if err != nil {
		t.Fatalf("Column(b) failed: %v", err)
	}
	if diff := cmp.Diff([]int32{10, 20, 30}, col); diff != "" {
		t.Errorf("Column(b) mismatch (-want +got):\n%s", diff)
	}

	if _, err := l.Column("missing"); err == nil {
		t.Error("Column(missing) succeeded, want error")
	}
}

func TestProject(t *testing.T) {
	l := mustLabels(t, []string{"a", "b", "c"}, [][]int32{
		{0, 10, 100},
		{1, 20, 200},
	})

	// Projection order follows the requested names, not the label order.
	projected, err := l.Project([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	want := [][]int32{{100, 0}, {200, 1}}
	if diff := cmp.Diff(want, projected); diff != "" {
		t.Errorf("Project mismatch (-want +got):\n%s", diff)
	}

	if _, err := l.Project([]string{"missing"}); err == nil {
		t.Error("Project(missing) succeeded, want error")
	}
}

func TestFilter(t *testing.T) {
	l := mustLabels(t, []string{"a"}, [][]int32{{0}, {1}, {2}, {3}})

	filtered := l.Filter([]bool{true, false, false, true})
	if filtered.Count() != 2 {
		t.Fatalf("filtered Count() = %d, want 2", filtered.Count())
	}
	if diff := cmp.Diff([]int32{0}, filtered.Entry(0)); diff != "" {
		t.Errorf("Entry(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{3}, filtered.Entry(1)); diff != "" {
		t.Errorf("Entry(1) mismatch (-want +got):\n%s", diff)
	}

	empty := l.Filter([]bool{false, false, false, false})
	if empty.Count() != 0 {
		t.Errorf("empty filter Count() = %d, want 0", empty.Count())
	}
	if diff := cmp.Diff([]string{"a"}, empty.Names()); diff != "" {
		t.Errorf("empty filter keeps names (-want +got):\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	a := mustLabels(t, []string{"x"}, [][]int32{{1}, {2}})
	same := mustLabels(t, []string{"x"}, [][]int32{{1}, {2}})
	reordered := mustLabels(t, []string{"x"}, [][]int32{{2}, {1}})
	renamed := mustLabels(t, []string{"y"}, [][]int32{{1}, {2}})

	if !a.Equal(same) {
		t.Error("Equal() = false for identical labels")
	}
	if a.Equal(reordered) {
		t.Error("Equal() = true for reordered entries")
	}
	if a.Equal(renamed) {
		t.Error("Equal() = true for different names")
	}
	if !a.NamesEqual(reordered) {
		t.Error("NamesEqual() = false for same names")
	}
	if a.NamesEqual(renamed) {
		t.Error("NamesEqual() = true for different names")
	}
}

func TestBuilder(t *testing.T) {
	builder := NewBuilder("structure", "center")
	if err := builder.Add(0, 1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := builder.Add(0, 6); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := builder.Add(0, 1); err == nil {
		t.Fatal("Add of duplicate entry succeeded, want error")
	}
	if err := builder.Add(1); err == nil {
		t.Fatal("Add with wrong width succeeded, want error")
	}

	l, err := builder.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if l.Count() != 2 {
		t.Errorf("Count() = %d, want 2", l.Count())
	}
}
