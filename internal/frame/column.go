package frame

import (
	"fmt"
	"time"
)

// DType tags the element type of a column.
type DType string

const (
	TypeInt         DType = "INT"
	TypeFloat       DType = "FLOAT"
	TypeString      DType = "STRING"
	TypeBool        DType = "BOOL"
	TypeDate        DType = "DATE"
	TypeCategorical DType = "CATEGORICAL"
)

// Column is a homogeneously typed ordered sequence of values. Missing
// entries carry a nil value and a set bit in the missing mask. Non-missing
// values are stored as int64, float64, string, bool or time.Time according
// to Type; categorical values are strings drawn from Levels.
type Column struct {
	Name    string
	Type    DType
	Values  []interface{}
	Missing []bool
	Levels  []string // categorical label set, nil for other types
}

func NewIntColumn(name string, values []int64) Column {
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Type: TypeInt, Values: vals, Missing: make([]bool, len(values))}
}

func NewFloatColumn(name string, values []float64) Column {
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Type: TypeFloat, Values: vals, Missing: make([]bool, len(values))}
}

func NewStringColumn(name string, values []string) Column {
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Type: TypeString, Values: vals, Missing: make([]bool, len(values))}
}

func NewBoolColumn(name string, values []bool) Column {
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Type: TypeBool, Values: vals, Missing: make([]bool, len(values))}
}

func NewDateColumn(name string, values []time.Time) Column {
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Type: TypeDate, Values: vals, Missing: make([]bool, len(values))}
}

// NewCategoricalColumn builds a column whose values are restricted to a
// fixed label set. If levels is nil, the distinct values in first-appearance
// order become the levels. A value outside the level set is an error.
func NewCategoricalColumn(name string, values []string, levels []string) (Column, error) {
	if levels == nil {
		seen := make(map[string]bool)
		for _, v := range values {
			if !seen[v] {
				seen[v] = true
				levels = append(levels, v)
			}
		}
	}
	inLevels := make(map[string]bool, len(levels))
	for _, l := range levels {
		inLevels[l] = true
	}
	vals := make([]interface{}, len(values))
	for i, v := range values {
		if !inLevels[v] {
			return Column{}, fmt.Errorf("value %q at position %d is not a level of %q (levels: %v)", v, i, name, levels)
		}
		vals[i] = v
	}
	return Column{Name: name, Type: TypeCategorical, Values: vals, Missing: make([]bool, len(values)), Levels: levels}, nil
}

// NewColumn builds a column from already-typed values, validating
// homogeneity. Readers use it after coercing raw tokens. missing may be nil
// when no value is missing.
func NewColumn(name string, dtype DType, values []interface{}, missing []bool) (Column, error) {
	if missing == nil {
		missing = make([]bool, len(values))
	}
	if len(missing) != len(values) {
		return Column{}, &ShapeMismatchError{What: "missing mask for " + name, Length: len(missing), Expected: len(values)}
	}
	col := Column{Name: name, Type: dtype, Values: make([]interface{}, len(values)), Missing: make([]bool, len(values))}
	copy(col.Missing, missing)
	for i, v := range values {
		if missing[i] {
			col.Values[i] = nil
			continue
		}
		if !valueMatchesType(v, dtype) {
			return Column{}, &TypeCoercionError{Row: i, Column: name, Value: fmt.Sprintf("%v", v), Target: dtype}
		}
		col.Values[i] = v
	}
	if dtype == TypeCategorical && col.Levels == nil {
		seen := make(map[string]bool)
		for i, v := range col.Values {
			if col.Missing[i] {
				continue
			}
			s := v.(string)
			if !seen[s] {
				seen[s] = true
				col.Levels = append(col.Levels, s)
			}
		}
	}
	return col, nil
}

func valueMatchesType(v interface{}, dtype DType) bool {
	switch dtype {
	case TypeInt:
		_, ok := v.(int64)
		return ok
	case TypeFloat:
		_, ok := v.(float64)
		return ok
	case TypeString, TypeCategorical:
		_, ok := v.(string)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeDate:
		_, ok := v.(time.Time)
		return ok
	}
	return false
}

// Len returns the number of entries, missing included.
func (c Column) Len() int {
	return len(c.Values)
}

// IsMissing reports whether entry i is the missing marker.
func (c Column) IsMissing(i int) bool {
	return i >= 0 && i < len(c.Missing) && c.Missing[i]
}

// At returns the value at position i, nil when missing.
func (c Column) At(i int) (interface{}, error) {
	if i < 0 || i >= len(c.Values) {
		return nil, &IndexOutOfRangeError{Kind: "row", Index: i, Size: len(c.Values)}
	}
	return c.Values[i], nil
}

// AppendMissing returns a copy of the column one entry longer, ending with
// the missing marker. The receiver is left untouched.
func (c Column) AppendMissing() Column {
	out := c.Copy()
	out.Values = append(out.Values, nil)
	out.Missing = append(out.Missing, true)
	return out
}

// Copy returns a deep copy of the column.
func (c Column) Copy() Column {
	out := Column{Name: c.Name, Type: c.Type}
	out.Values = make([]interface{}, len(c.Values))
	copy(out.Values, c.Values)
	out.Missing = make([]bool, len(c.Missing))
	copy(out.Missing, c.Missing)
	if c.Levels != nil {
		out.Levels = make([]string, len(c.Levels))
		copy(out.Levels, c.Levels)
	}
	return out
}

// take returns a copy of the column holding only the entries at the given
// positions, in order. Positions are assumed in range.
func (c Column) take(positions []int) Column {
	out := Column{Name: c.Name, Type: c.Type}
	out.Values = make([]interface{}, len(positions))
	out.Missing = make([]bool, len(positions))
	for i, p := range positions {
		out.Values[i] = c.Values[p]
		out.Missing[i] = c.Missing[p]
	}
	if c.Levels != nil {
		out.Levels = make([]string, len(c.Levels))
		copy(out.Levels, c.Levels)
	}
	return out
}

// Equal reports value equality, including name, type, missing mask and, for
// categorical columns, the level set.
func (c Column) Equal(other Column) bool {
	if c.Name != other.Name || c.Type != other.Type || len(c.Values) != len(other.Values) {
		return false
	}
	if len(c.Levels) != len(other.Levels) {
		return false
	}
	for i := range c.Levels {
		if c.Levels[i] != other.Levels[i] {
			return false
		}
	}
	for i := range c.Values {
		if c.Missing[i] != other.Missing[i] {
			return false
		}
		if c.Missing[i] {
			continue
		}
		if c.Type == TypeDate {
			if !c.Values[i].(time.Time).Equal(other.Values[i].(time.Time)) {
				return false
			}
			continue
		}
		if c.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}

// AsCategorical converts a string column to categorical, levels drawn from
// the distinct non-missing values in first-appearance order.
func AsCategorical(c Column) (Column, error) {
	if c.Type == TypeCategorical {
		return c.Copy(), nil
	}
	if c.Type != TypeString {
		return Column{}, fmt.Errorf("cannot convert %s column %q to categorical", c.Type, c.Name)
	}
	out := c.Copy()
	out.Type = TypeCategorical
	seen := make(map[string]bool)
	for i, v := range out.Values {
		if out.Missing[i] {
			continue
		}
		s := v.(string)
		if !seen[s] {
			seen[s] = true
			out.Levels = append(out.Levels, s)
		}
	}
	return out, nil
}
