package frame

// ColumnAt returns a copy of the column at position i. Positions are
// 0-based throughout this package.
func (t *Table) ColumnAt(i int) (Column, error) {
	if i < 0 || i >= len(t.cols) {
		return Column{}, &IndexOutOfRangeError{Kind: "column", Index: i, Size: len(t.cols)}
	}
	return t.cols[i].Copy(), nil
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, &UnknownColumnError{Column: name}
	}
	return t.cols[i].Copy(), nil
}

// SelectColumns projects the named columns into a new table, preserving row
// order and count. A single name still yields a table, never a bare column.
// An unknown name is always an error, never silently ignored.
func (t *Table) SelectColumns(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		i, ok := t.byName[name]
		if !ok {
			return nil, &UnknownColumnError{Column: name}
		}
		cols = append(cols, t.cols[i].Copy())
	}
	return t.derive(cols), nil
}

// SelectColumnsAt projects columns by position into a new table.
func (t *Table) SelectColumnsAt(positions ...int) (*Table, error) {
	cols := make([]Column, 0, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(t.cols) {
			return nil, &IndexOutOfRangeError{Kind: "column", Index: p, Size: len(t.cols)}
		}
		cols = append(cols, t.cols[p].Copy())
	}
	return t.derive(cols), nil
}

// SelectRows keeps the rows whose mask entry is true. The mask length must
// equal the row count. Zero surviving rows is a valid result: the column
// set is kept.
func (t *Table) SelectRows(mask []bool) (*Table, error) {
	if len(mask) != t.Len() {
		return nil, &ShapeMismatchError{What: "boolean mask", Length: len(mask), Expected: t.Len()}
	}
	var keep []int
	for i, m := range mask {
		if m {
			keep = append(keep, i)
		}
	}
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.take(keep)
	}
	return t.derive(cols), nil
}

// PredicateFunc decides per row whether it survives a filter.
type PredicateFunc func(Row) bool

// FilterFunc keeps the rows for which pred returns true.
func (t *Table) FilterFunc(pred PredicateFunc) (*Table, error) {
	mask := make([]bool, t.Len())
	for i := range mask {
		row, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		mask[i] = pred(row)
	}
	return t.SelectRows(mask)
}

// Select composes row and column selection in one call: the row filter
// applies first, then the projection, same as calling the two in sequence.
// A nil mask keeps all rows; nil names keep all columns.
func (t *Table) Select(mask []bool, names []string) (*Table, error) {
	out := t
	if mask != nil {
		filtered, err := t.SelectRows(mask)
		if err != nil {
			return nil, err
		}
		out = filtered
	}
	if names != nil {
		projected, err := out.SelectColumns(names...)
		if err != nil {
			return nil, err
		}
		out = projected
	}
	if out == t {
		// Still a new value: callers must never see the receiver back.
		return t.derive(t.Columns()), nil
	}
	return out, nil
}
