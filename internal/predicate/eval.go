package predicate

import (
	"fmt"
	"time"

	"github.com/leengari/mini-frame/internal/frame"
	"github.com/leengari/mini-frame/internal/predicate/ast"
)

// Eval evaluates a parsed predicate against every row of the table and
// returns the resulting boolean mask. Identifiers resolve to column values;
// a comparison against a missing value is false for that row.
func Eval(expr ast.Expression, t *frame.Table) ([]bool, error) {
	if err := checkIdentifiers(expr, t); err != nil {
		return nil, err
	}

	mask := make([]bool, t.Len())
	for i := range mask {
		row, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		v, err := evalRow(expr, row, t)
		if err != nil {
			return nil, err
		}
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("predicate does not evaluate to a boolean: %s", expr.String())
		}
		mask[i] = b
	}
	return mask, nil
}

// Filter parses the predicate and keeps the rows it selects.
func Filter(t *frame.Table, input string) (*frame.Table, error) {
	expr, err := Parse(input)
	if err != nil {
		return nil, err
	}
	mask, err := Eval(expr, t)
	if err != nil {
		return nil, err
	}
	out, err := t.SelectRows(mask)
	if err != nil {
		return nil, err
	}
	frame.Notify(frame.Event{
		Type:    frame.EventFilter,
		FrameID: out.Lineage().ID,
		Data:    map[string]interface{}{"predicate": input, "rows_in": t.Len(), "rows_out": out.Len()},
	})
	return out, nil
}

// FilterSelect applies the row predicate first, then projects the named
// columns, matching top-to-bottom declaration order. A nil column list
// keeps every column.
func FilterSelect(t *frame.Table, input string, columns []string) (*frame.Table, error) {
	out, err := Filter(t, input)
	if err != nil {
		return nil, err
	}
	if columns == nil {
		return out, nil
	}
	return out.SelectColumns(columns...)
}

// checkIdentifiers resolves every identifier up front so an unknown column
// fails even on a zero-row table.
func checkIdentifiers(expr ast.Expression, t *frame.Table) error {
	switch e := expr.(type) {
	case *ast.Identifier:
		if _, err := t.Column(e.Value); err != nil {
			return err
		}
	case *ast.BinaryExpression:
		if err := checkIdentifiers(e.Left, t); err != nil {
			return err
		}
		return checkIdentifiers(e.Right, t)
	case *ast.UnaryExpression:
		return checkIdentifiers(e.Operand, t)
	}
	return nil
}

func evalRow(expr ast.Expression, row frame.Row, t *frame.Table) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Identifier:
		return row[e.Value], nil

	case *ast.UnaryExpression:
		v, err := evalRow(e.Operand, row, t)
		if err != nil {
			return nil, err
		}
		b, ok := v.(bool)
		if !ok {
			// NOT over a missing value stays false
			if v == nil {
				return false, nil
			}
			return nil, fmt.Errorf("NOT requires a boolean operand, got %T", v)
		}
		return !b, nil

	case *ast.BinaryExpression:
		switch e.Operator {
		case "AND", "OR":
			lv, err := evalRow(e.Left, row, t)
			if err != nil {
				return nil, err
			}
			rv, err := evalRow(e.Right, row, t)
			if err != nil {
				return nil, err
			}
			lb, lok := asBool(lv)
			rb, rok := asBool(rv)
			if !lok || !rok {
				return nil, fmt.Errorf("%s requires boolean operands: %s", e.Operator, e.String())
			}
			if e.Operator == "AND" {
				return lb && rb, nil
			}
			return lb || rb, nil

		default:
			lv, err := evalRow(e.Left, row, t)
			if err != nil {
				return nil, err
			}
			rv, err := evalRow(e.Right, row, t)
			if err != nil {
				return nil, err
			}
			return compare(e, lv, rv, t)
		}
	}
	return nil, fmt.Errorf("unsupported expression: %s", expr.String())
}

// asBool treats missing (nil) as false so a missing boolean cell never
// selects a row.
func asBool(v interface{}) (bool, bool) {
	if v == nil {
		return false, true
	}
	b, ok := v.(bool)
	return b, ok
}

func compare(e *ast.BinaryExpression, lv, rv interface{}, t *frame.Table) (interface{}, error) {
	// A missing value fails every comparison
	if lv == nil || rv == nil {
		return false, nil
	}

	// Categorical columns order by level index, not lexically
	if col := categoricalSide(e, t); col != nil {
		return compareCategorical(e.Operator, *col, lv, rv)
	}

	// Date columns compare against date-formatted string literals
	if lt, lok := lv.(time.Time); lok {
		rt, err := asDate(rv)
		if err != nil {
			return nil, err
		}
		return compareOrdered(e.Operator, compareTime(lt, rt))
	}
	if rt, rok := rv.(time.Time); rok {
		lt, err := asDate(lv)
		if err != nil {
			return nil, err
		}
		return compareOrdered(e.Operator, compareTime(lt, rt))
	}

	// Numeric comparison promotes int to float
	lf, lnum := asFloat(lv)
	rf, rnum := asFloat(rv)
	if lnum && rnum {
		switch {
		case lf < rf:
			return compareOrdered(e.Operator, -1)
		case lf > rf:
			return compareOrdered(e.Operator, 1)
		default:
			return compareOrdered(e.Operator, 0)
		}
	}

	switch l := lv.(type) {
	case string:
		r, ok := rv.(string)
		if !ok {
			return nil, typeError(e, lv, rv)
		}
		switch {
		case l < r:
			return compareOrdered(e.Operator, -1)
		case l > r:
			return compareOrdered(e.Operator, 1)
		default:
			return compareOrdered(e.Operator, 0)
		}
	case bool:
		r, ok := rv.(bool)
		if !ok {
			return nil, typeError(e, lv, rv)
		}
		switch e.Operator {
		case "==":
			return l == r, nil
		case "!=":
			return l != r, nil
		default:
			return nil, fmt.Errorf("operator %s not defined for booleans", e.Operator)
		}
	}
	return nil, typeError(e, lv, rv)
}

// categoricalSide returns the categorical column referenced by either side
// of the comparison, if any.
func categoricalSide(e *ast.BinaryExpression, t *frame.Table) *frame.Column {
	if id, ok := e.Left.(*ast.Identifier); ok {
		if col, err := t.Column(id.Value); err == nil && col.Type == frame.TypeCategorical {
			return &col
		}
	}
	if id, ok := e.Right.(*ast.Identifier); ok {
		if col, err := t.Column(id.Value); err == nil && col.Type == frame.TypeCategorical {
			return &col
		}
	}
	return nil
}

func compareCategorical(op string, col frame.Column, lv, rv interface{}) (interface{}, error) {
	ls, lok := lv.(string)
	rs, rok := rv.(string)
	if !lok || !rok {
		return nil, fmt.Errorf("categorical column %q compares against string labels only", col.Name)
	}
	li := levelIndex(col.Levels, ls)
	ri := levelIndex(col.Levels, rs)
	switch op {
	case "==":
		return ls == rs, nil
	case "!=":
		return ls != rs, nil
	}
	// Ordering is by level identity; a label outside the set has no order
	if li < 0 || ri < 0 {
		return false, nil
	}
	switch {
	case li < ri:
		return compareOrdered(op, -1)
	case li > ri:
		return compareOrdered(op, 1)
	default:
		return compareOrdered(op, 0)
	}
}

func levelIndex(levels []string, label string) int {
	for i, l := range levels {
		if l == label {
			return i
		}
	}
	return -1
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func asDate(v interface{}) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		t, err := time.Parse(frame.DefaultDateFormat, d)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date literal %q: %w", d, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot compare date against %T", v)
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func compareOrdered(op string, cmp int) (interface{}, error) {
	switch op {
	case "==":
		return cmp == 0, nil
	case "!=":
		return cmp != 0, nil
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	}
	return nil, fmt.Errorf("unknown comparison operator %s", op)
}

func typeError(e *ast.BinaryExpression, lv, rv interface{}) error {
	return fmt.Errorf("cannot compare %T with %T in %s", lv, rv, e.String())
}
