package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/leengari/mini-frame/internal/frame"
)

// ReadSpreadsheet parses one sheet of an xlsx workbook into a table. Cell
// decoding is excelize's job; this applies the same header and typing
// rules as the delimited reader. The delimiter field of cfg is ignored.
func ReadSpreadsheet(path string, sheet Sheet, cfg ReadConfig) (*frame.Table, error) {
	frame.Notify(frame.Event{
		Type: frame.EventReadStart,
		Data: map[string]interface{}{"source": path, "format": "spreadsheet"},
	})

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", name, path, err)
	}
	if cfg.SkipLines > 0 {
		if cfg.SkipLines > len(rows) {
			return nil, fmt.Errorf("%s: fewer rows than skip_lines=%d", path, cfg.SkipLines)
		}
		rows = rows[cfg.SkipLines:]
	}

	t, err := tableFromRecords(padRecords(rows), path, cfg)
	if err != nil {
		return nil, err
	}

	frame.Notify(frame.Event{
		Type:    frame.EventReadEnd,
		FrameID: t.Lineage().ID,
		Data:    map[string]interface{}{"source": path, "sheet": name, "rows": t.Len(), "columns": t.Width()},
	})
	return t, nil
}

func resolveSheet(f *excelize.File, sheet Sheet) (string, error) {
	list := f.GetSheetList()

	if sheet.Name != "" {
		idx, err := f.GetSheetIndex(sheet.Name)
		if err != nil || idx < 0 {
			return "", &frame.UnknownSheetError{Sheet: sheet.Name, Available: list}
		}
		return sheet.Name, nil
	}

	if sheet.Index < 0 || sheet.Index >= len(list) {
		return "", &frame.UnknownSheetError{Sheet: fmt.Sprintf("#%d", sheet.Index), Available: list}
	}
	return list[sheet.Index], nil
}

// padRecords right-pads ragged spreadsheet rows with empty cells (excelize
// drops trailing blanks) so every record matches the widest row.
func padRecords(rows [][]string) [][]string {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		if len(r) == width {
			out[i] = r
			continue
		}
		padded := make([]string, width)
		copy(padded, r)
		out[i] = padded
	}
	return out
}
