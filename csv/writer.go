package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
)

// ToCsv writes headers and rows as CSV into a buffer.
func ToCsv(rows []parsers.CsvRow, headers []string) (bytes.Buffer, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write(headers); err != nil {
		return b, fmt.Errorf("error writing header to csv: %w", err)
	}

	for _, row := range rows {
		if err := w.Write(row.GetRowForCsv()); err != nil {
			return b, fmt.Errorf("error writing record to csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return b, err
	}

	return b, nil
}
