package writer

import (
	"github.com/leengari/mini-frame/internal/frame"
	"github.com/leengari/mini-frame/internal/predicate"
)

// FilterSelectWrite filters rows by the predicate expression, projects the
// named columns and writes the result to dest. The order is fixed: filter
// first, then projection, matching top-to-bottom declaration order. A nil
// column list keeps every column; an empty predicate keeps every row.
func FilterSelectWrite(t *frame.Table, pred string, columns []string, dest string) error {
	out := t
	if pred != "" {
		filtered, err := predicate.Filter(t, pred)
		if err != nil {
			return err
		}
		out = filtered
	}
	if columns != nil {
		projected, err := out.SelectColumns(columns...)
		if err != nil {
			return err
		}
		out = projected
	}
	return WriteDelimited(out, dest)
}
