package writer

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leengari/mini-frame/internal/frame"
)

// WriteDelimited serializes a table as comma-delimited text: header row
// always, one newline-terminated line per row, missing values as the empty
// string. The file is written to a temp path and renamed into place so a
// failure never leaves a half-written destination. Source files are never
// touched; a destination that collides with the table's lineage is logged
// as a warning (advisory, not enforced) and the write proceeds.
func WriteDelimited(t *frame.Table, dest string) error {
	lineage := t.Lineage()
	for _, src := range lineage.Sources {
		if src == dest {
			slog.Warn("destination matches a source file in the table's lineage",
				"destination", dest,
				"frame_id", lineage.ID,
			)
		}
	}

	frame.Notify(frame.Event{
		Type:    frame.EventWriteStart,
		FrameID: lineage.ID,
		Data:    map[string]interface{}{"destination": dest, "rows": t.Len()},
	})

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", dest, err)
	}
	tmpName := tmp.Name()

	if err := writeCSV(tmp, t); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file for %s: %w", dest, err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", dest, err)
	}

	frame.Notify(frame.Event{
		Type:    frame.EventWriteEnd,
		FrameID: lineage.ID,
		Data:    map[string]interface{}{"destination": dest, "rows": t.Len()},
	})
	return nil
}

func writeCSV(f *os.File, t *frame.Table) error {
	w := csv.NewWriter(f)

	if err := w.Write(t.Names()); err != nil {
		return err
	}

	cols := t.Columns()
	for i := 0; i < t.Len(); i++ {
		record := make([]string, len(cols))
		for j, c := range cols {
			if c.Missing[i] {
				record[j] = ""
			} else {
				record[j] = frame.FormatValue(c.Values[i], frame.DefaultDateFormat, "")
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
