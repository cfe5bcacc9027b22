package frame

import (
	"errors"
	"testing"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(
		NewStringColumn("facts", []string{"a", "b", "b", "a"}),
		NewIntColumn("numbers", []int64{1, 2, 3, 4}),
		NewBoolColumn("flags", []bool{true, false, false, true}),
	)
	if err != nil {
		t.Fatalf("sample table construction failed: %v", err)
	}
	return tbl
}

func TestNewRejectsUnequalLengths(t *testing.T) {
	v1 := NewIntColumn("v1", []int64{1, 2, 3, 4})
	v2 := NewStringColumn("v2", []string{"a", "b", "c", "d"})
	v3 := NewBoolColumn("v3", []bool{true, false, false, true})
	v4 := NewFloatColumn("v4", []float64{1.1, 1.2, 3.3})

	_, err := New(v1, v2, v3, v4)
	var sm *ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
	if sm.What != "v4" {
		t.Errorf("error should name the offending column, got %q", sm.What)
	}
	if sm.Length != 3 || sm.Expected != 4 {
		t.Errorf("wrong lengths in error: %+v", sm)
	}

	// Appending the missing marker to v4 fixes the shape
	tbl, err := New(v1, v2, v3, v4.AppendMissing())
	if err != nil {
		t.Fatalf("construction with padded v4 failed: %v", err)
	}
	if tbl.Len() != 4 {
		t.Errorf("expected 4 rows, got %d", tbl.Len())
	}
	col, err := tbl.Column("v4")
	if err != nil {
		t.Fatalf("column lookup failed: %v", err)
	}
	if !col.IsMissing(3) {
		t.Errorf("expected v4[3] to be missing")
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New(
		NewIntColumn("x", []int64{1}),
		NewIntColumn("x", []int64{2}),
	)
	var dup *DuplicateColumnError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateColumnError, got %v", err)
	}
}

func TestNewEmptyTable(t *testing.T) {
	tbl, err := New()
	if err != nil {
		t.Fatalf("empty construction failed: %v", err)
	}
	if tbl.Len() != 0 || tbl.Width() != 0 {
		t.Errorf("expected 0x0 table, got %dx%d", tbl.Len(), tbl.Width())
	}
}

func TestNamesPreserveOrder(t *testing.T) {
	tbl := sampleTable(t)
	names := tbl.Names()
	want := []string{"facts", "numbers", "flags"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("names[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestRow(t *testing.T) {
	tbl := sampleTable(t)

	row, err := tbl.Row(3)
	if err != nil {
		t.Fatalf("Row(3) failed: %v", err)
	}
	if row["facts"] != "a" || row["numbers"] != int64(4) || row["flags"] != true {
		t.Errorf("unexpected row content: %v", row)
	}

	_, err = tbl.Row(4)
	var oor *IndexOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected IndexOutOfRangeError, got %v", err)
	}
}

func TestRowMissingIsNil(t *testing.T) {
	tbl, err := New(NewFloatColumn("v4", []float64{1.1}).AppendMissing())
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	row, err := tbl.Row(1)
	if err != nil {
		t.Fatalf("Row(1) failed: %v", err)
	}
	if row["v4"] != nil {
		t.Errorf("missing cell should be nil, got %v", row["v4"])
	}
}

func TestNewCopiesInputColumns(t *testing.T) {
	vals := []int64{1, 2, 3}
	col := NewIntColumn("n", vals)
	tbl, err := New(col)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	// Mutating the input column afterwards must not reach the table
	col.Values[0] = int64(99)

	got, err := tbl.Column("n")
	if err != nil {
		t.Fatalf("column lookup failed: %v", err)
	}
	if got.Values[0] != int64(1) {
		t.Errorf("table shares storage with the input column")
	}
}

func TestTableEqualIgnoresLineage(t *testing.T) {
	a := sampleTable(t)
	b := sampleTable(t)

	if a.Lineage().ID == b.Lineage().ID {
		t.Errorf("distinct tables should have distinct lineage IDs")
	}
	if !a.Equal(b) {
		t.Errorf("value-identical tables reported unequal")
	}
}

func TestWithSource(t *testing.T) {
	a := sampleTable(t)
	b := a.WithSource("data/input.csv")

	if len(a.Lineage().Sources) != 0 {
		t.Errorf("WithSource mutated the receiver")
	}
	srcs := b.Lineage().Sources
	if len(srcs) != 1 || srcs[0] != "data/input.csv" {
		t.Errorf("unexpected sources: %v", srcs)
	}
}
