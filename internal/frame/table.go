package frame

import (
	"github.com/google/uuid"
)

// Row is a single observation keyed by column name. Missing values are nil.
type Row map[string]interface{}

// Lineage identifies a table and the source files it was derived from.
// The ID ties log events to a frame; Sources back the writer's advisory
// check that output never overwrites an input.
type Lineage struct {
	ID      string
	Sources []string
}

// Table is an ordered mapping of named, equal-length columns. A Table is
// immutable once constructed: every operation derives a new value.
type Table struct {
	cols    []Column
	byName  map[string]int
	lineage Lineage
}

// New constructs a table from columns. All columns must share one length;
// the first column sets the expectation and the first offender is named in
// the error. Column names must be unique.
func New(cols ...Column) (*Table, error) {
	t := &Table{
		byName:  make(map[string]int, len(cols)),
		lineage: Lineage{ID: uuid.New().String()},
	}
	expected := 0
	for i, c := range cols {
		if _, dup := t.byName[c.Name]; dup {
			return nil, &DuplicateColumnError{Column: c.Name}
		}
		if i == 0 {
			expected = c.Len()
		} else if c.Len() != expected {
			return nil, &ShapeMismatchError{What: c.Name, Length: c.Len(), Expected: expected}
		}
		t.byName[c.Name] = i
		t.cols = append(t.cols, c.Copy())
	}
	return t, nil
}

// derive builds a new table around already-copied columns, inheriting the
// receiver's sources under a fresh frame ID.
func (t *Table) derive(cols []Column) *Table {
	out := &Table{
		cols:   cols,
		byName: make(map[string]int, len(cols)),
		lineage: Lineage{
			ID:      uuid.New().String(),
			Sources: append([]string(nil), t.lineage.Sources...),
		},
	}
	for i, c := range cols {
		out.byName[c.Name] = i
	}
	return out
}

// WithSource returns a copy of the table with path recorded in its lineage.
// Readers call it with the file they parsed.
func (t *Table) WithSource(path string) *Table {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.Copy()
	}
	out := t.derive(cols)
	out.lineage.Sources = append(out.lineage.Sources, path)
	return out
}

// Lineage returns the table's identity and source paths.
func (t *Table) Lineage() Lineage {
	return Lineage{ID: t.lineage.ID, Sources: append([]string(nil), t.lineage.Sources...)}
}

// Len returns the row count.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Width returns the column count.
func (t *Table) Width() int {
	return len(t.cols)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns copies of all columns in order.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.Copy()
	}
	return cols
}

// Row returns observation i keyed by column name, nil for missing values.
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= t.Len() {
		return nil, &IndexOutOfRangeError{Kind: "row", Index: i, Size: t.Len()}
	}
	row := make(Row, len(t.cols))
	for _, c := range t.cols {
		if c.Missing[i] {
			row[c.Name] = nil
		} else {
			row[c.Name] = c.Values[i]
		}
	}
	return row, nil
}

// Equal reports value equality of two tables: same columns in the same
// order with equal content. Lineage is identity, not value, and is ignored.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.cols) != len(other.cols) {
		return false
	}
	for i := range t.cols {
		if !t.cols[i].Equal(other.cols[i]) {
			return false
		}
	}
	return true
}
