package reader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/leengari/mini-frame/internal/frame"
)

// ReadDelimited parses a character-delimited text file into a table. The
// file handle is released on every path, parse failures included.
func ReadDelimited(path string, cfg ReadConfig) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadDelimitedFrom(f, path, cfg)
}

// ReadDelimitedFrom parses delimited text from r. source labels the input
// in lineage and errors.
func ReadDelimitedFrom(r io.Reader, source string, cfg ReadConfig) (*frame.Table, error) {
	frame.Notify(frame.Event{
		Type: frame.EventReadStart,
		Data: map[string]interface{}{"source": source, "format": "delimited"},
	})

	br := bufio.NewReader(r)
	for i := 0; i < cfg.SkipLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%s: fewer lines than skip_lines=%d", source, cfg.SkipLines)
			}
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
	}

	cr := csv.NewReader(br)
	cr.Comma = cfg.Delimiter
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	t, err := tableFromRecords(records, source, cfg)
	if err != nil {
		return nil, err
	}

	frame.Notify(frame.Event{
		Type:    frame.EventReadEnd,
		FrameID: t.Lineage().ID,
		Data:    map[string]interface{}{"source": source, "rows": t.Len(), "columns": t.Width()},
	})
	return t, nil
}
