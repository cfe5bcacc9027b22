package frame

import (
	"errors"
	"testing"
)

func TestColumnLookup(t *testing.T) {
	tbl := sampleTable(t)

	col, err := tbl.ColumnAt(1)
	if err != nil {
		t.Fatalf("ColumnAt(1) failed: %v", err)
	}
	if col.Name != "numbers" {
		t.Errorf("expected numbers at position 1, got %q", col.Name)
	}

	_, err = tbl.ColumnAt(3)
	var oor *IndexOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected IndexOutOfRangeError, got %v", err)
	}

	_, err = tbl.Column("nope")
	var unk *UnknownColumnError
	if !errors.As(err, &unk) {
		t.Fatalf("expected UnknownColumnError, got %v", err)
	}
	if unk.Column != "nope" {
		t.Errorf("error should name the column, got %q", unk.Column)
	}
}

func TestSelectColumnsCardinality(t *testing.T) {
	tbl := sampleTable(t)

	tests := []struct {
		names []string
		want  int
	}{
		{[]string{"facts"}, 1},
		{[]string{"facts", "numbers"}, 2},
		{[]string{"flags", "facts", "numbers"}, 3},
	}

	for _, tt := range tests {
		sub, err := tbl.SelectColumns(tt.names...)
		if err != nil {
			t.Fatalf("SelectColumns(%v) failed: %v", tt.names, err)
		}
		if sub.Width() != tt.want {
			t.Errorf("SelectColumns(%v): expected %d columns, got %d", tt.names, tt.want, sub.Width())
		}
		if sub.Len() != tbl.Len() {
			t.Errorf("SelectColumns(%v): row count changed from %d to %d", tt.names, tbl.Len(), sub.Len())
		}
	}
}

// A single-column selection still yields a table, never a bare column.
func TestSelectSingleColumnIsATable(t *testing.T) {
	tbl := sampleTable(t)

	sub, err := tbl.SelectColumns("numbers")
	if err != nil {
		t.Fatalf("SelectColumns failed: %v", err)
	}
	if sub.Width() != 1 {
		t.Fatalf("expected 1 column, got %d", sub.Width())
	}
	if sub.Len() != 4 {
		t.Errorf("expected 4 rows, got %d", sub.Len())
	}
}

func TestSelectColumnsUnknownNameIsAnError(t *testing.T) {
	tbl := sampleTable(t)

	_, err := tbl.SelectColumns("facts", "ghost")
	var unk *UnknownColumnError
	if !errors.As(err, &unk) {
		t.Fatalf("expected UnknownColumnError, got %v", err)
	}
}

func TestSelectColumnsAt(t *testing.T) {
	tbl := sampleTable(t)

	sub, err := tbl.SelectColumnsAt(2, 0)
	if err != nil {
		t.Fatalf("SelectColumnsAt failed: %v", err)
	}
	names := sub.Names()
	if names[0] != "flags" || names[1] != "facts" {
		t.Errorf("selection order not preserved: %v", names)
	}

	if _, err := tbl.SelectColumnsAt(-1); err == nil {
		t.Errorf("expected error for negative position")
	}
}

func TestSelectRowsMask(t *testing.T) {
	tbl := sampleTable(t)

	sub, err := tbl.SelectRows([]bool{true, false, false, true})
	if err != nil {
		t.Fatalf("SelectRows failed: %v", err)
	}
	if sub.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", sub.Len())
	}
	row, _ := sub.Row(1)
	if row["numbers"] != int64(4) {
		t.Errorf("expected second surviving row to have numbers=4, got %v", row["numbers"])
	}
}

func TestSelectRowsMaskLengthMismatch(t *testing.T) {
	tbl := sampleTable(t)

	_, err := tbl.SelectRows([]bool{true, false})
	var sm *ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
	if sm.Length != 2 || sm.Expected != 4 {
		t.Errorf("wrong lengths in error: %+v", sm)
	}
}

// Selecting zero rows keeps the column set and is never an error.
func TestSelectZeroRowsKeepsColumns(t *testing.T) {
	tbl := sampleTable(t)

	sub, err := tbl.SelectRows([]bool{false, false, false, false})
	if err != nil {
		t.Fatalf("SelectRows failed: %v", err)
	}
	if sub.Len() != 0 {
		t.Errorf("expected 0 rows, got %d", sub.Len())
	}
	if sub.Width() != tbl.Width() {
		t.Errorf("column set not preserved: %d != %d", sub.Width(), tbl.Width())
	}
}

func TestFilterFuncIdempotent(t *testing.T) {
	tbl := sampleTable(t)
	pred := func(r Row) bool { return r["facts"] == "a" }

	once, err := tbl.FilterFunc(pred)
	if err != nil {
		t.Fatalf("first filter failed: %v", err)
	}
	twice, err := once.FilterFunc(pred)
	if err != nil {
		t.Fatalf("second filter failed: %v", err)
	}

	if !once.Equal(twice) {
		t.Errorf("filtering twice differs from filtering once")
	}
}

func TestSelectComposesRowsThenColumns(t *testing.T) {
	tbl := sampleTable(t)
	mask := []bool{false, true, true, false}

	composed, err := tbl.Select(mask, []string{"numbers"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	filtered, err := tbl.SelectRows(mask)
	if err != nil {
		t.Fatalf("SelectRows failed: %v", err)
	}
	sequential, err := filtered.SelectColumns("numbers")
	if err != nil {
		t.Fatalf("SelectColumns failed: %v", err)
	}

	if !composed.Equal(sequential) {
		t.Errorf("composed selection differs from sequential application")
	}
}

func TestSelectNilDimensionsReturnsCopy(t *testing.T) {
	tbl := sampleTable(t)

	out, err := tbl.Select(nil, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if out == tbl {
		t.Fatalf("Select must return a new value")
	}
	if !out.Equal(tbl) {
		t.Errorf("copy differs from original")
	}
}
