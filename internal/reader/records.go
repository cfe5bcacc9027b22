package reader

import (
	"fmt"

	"github.com/leengari/mini-frame/internal/frame"
)

// tableFromRecords assembles a Table out of raw string records, applying
// the shared header rules and per-column typing. Both readers funnel
// through here. Records must be rectangular; spreadsheet rows are padded
// by the caller.
func tableFromRecords(records [][]string, source string, cfg ReadConfig) (*frame.Table, error) {
	names, data, err := splitHeader(records, cfg)
	if err != nil {
		return nil, err
	}

	for name := range cfg.TypeOverrides {
		if !contains(names, name) {
			return nil, &frame.UnknownColumnError{Column: name}
		}
	}

	cols := make([]frame.Column, len(names))
	for j, name := range names {
		raw := make([]string, len(data))
		for i, rec := range data {
			raw[i] = rec[j]
		}
		col, err := buildColumn(name, raw, cfg)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}

	t, err := frame.New(cols...)
	if err != nil {
		return nil, err
	}
	return t.WithSource(source), nil
}

// splitHeader resolves column names and returns the data records. Explicit
// ColumnNames win over a header row; a header row is consumed either way
// when HasHeader is set. Headerless, unnamed input gets positional names
// X1, X2, ...
func splitHeader(records [][]string, cfg ReadConfig) ([]string, [][]string, error) {
	if len(records) == 0 && len(cfg.ColumnNames) == 0 {
		return nil, nil, fmt.Errorf("empty input: no header or data rows")
	}

	var names []string
	data := records

	if cfg.HasHeader {
		if len(records) == 0 {
			return nil, nil, fmt.Errorf("empty input: header row expected")
		}
		names = records[0]
		data = records[1:]
	}

	if len(cfg.ColumnNames) > 0 {
		if cfg.HasHeader && len(cfg.ColumnNames) != len(names) {
			return nil, nil, &frame.ShapeMismatchError{What: "column names", Length: len(cfg.ColumnNames), Expected: len(names)}
		}
		names = cfg.ColumnNames
	}

	if names == nil {
		width := len(records[0])
		names = make([]string, width)
		for i := range names {
			names[i] = fmt.Sprintf("X%d", i+1)
		}
	}

	for _, rec := range data {
		if len(rec) != len(names) {
			return nil, nil, &frame.ShapeMismatchError{What: "record", Length: len(rec), Expected: len(names)}
		}
	}

	return names, data, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
