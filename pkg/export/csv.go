package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV serializes the table: one header line with the fixed column
// labels, then one line per row with cells in column order. Missing cells
// render as empty strings; quoting follows RFC 4180 (fields containing a
// comma, quote, or newline are wrapped in doubled quotes).
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	cells := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			cells[i] = row[col]
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVBytes renders the table to an in-memory CSV document.
func (t Table) CSVBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
