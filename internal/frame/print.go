package frame

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// String renders the table for the console, one header cell per column
// annotated with its type.
func (t *Table) String() string {
	var buf bytes.Buffer
	tw := tablewriter.NewWriter(&buf)

	headers := make([]string, len(t.cols))
	for i, c := range t.cols {
		headers[i] = fmt.Sprintf("%s (%s)", c.Name, c.Type)
	}
	tw.SetHeader(headers)
	tw.SetAutoFormatHeaders(false)

	for i := 0; i < t.Len(); i++ {
		row := make([]string, len(t.cols))
		for j, c := range t.cols {
			if c.Missing[i] {
				row[j] = "NA"
			} else {
				row[j] = FormatValue(c.Values[i], DefaultDateFormat, "NA")
			}
		}
		tw.Append(row)
	}

	tw.Render()
	return buf.String()
}
