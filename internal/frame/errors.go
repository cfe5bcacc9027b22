package frame

import (
	"fmt"
	"strings"
)

// ShapeMismatchError reports a length disagreement between a column (or a
// boolean mask) and the rest of the table.
type ShapeMismatchError struct {
	What     string // column name, or "boolean mask"
	Length   int
	Expected int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %s has length %d, expected %d", e.What, e.Length, e.Expected)
}

// DuplicateColumnError reports a column name used more than once.
type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name %q", e.Column)
}

// UnknownColumnError reports a column name absent from the table.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// IndexOutOfRangeError reports a positional selector outside the table.
type IndexOutOfRangeError struct {
	Kind  string // "column" or "row"
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Kind, e.Index, e.Size)
}

// UnknownSheetError reports a spreadsheet sheet that does not exist.
type UnknownSheetError struct {
	Sheet     string
	Available []string
}

func (e *UnknownSheetError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown sheet %q", e.Sheet)
	}
	return fmt.Sprintf("unknown sheet %q (available: %s)", e.Sheet, strings.Join(e.Available, ", "))
}

// TypeCoercionError reports a raw value that cannot be coerced to the
// requested column type. It aborts the whole read: a partially typed column
// would break column homogeneity.
type TypeCoercionError struct {
	Row    int    // data row number (0-based, after header and skipped lines)
	Column string
	Value  string // offending raw value
	Target DType
}

func (e *TypeCoercionError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("cannot coerce %q to %s", e.Value, e.Target))
	parts = append(parts, fmt.Sprintf("column %q", e.Column))
	parts = append(parts, fmt.Sprintf("row %d", e.Row))
	return strings.Join(parts, " - ")
}
