package parsers

import (
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

type CsvRow interface {
	GetRowForCsv() []string
}

// DatedRow is a CSV row that can be ordered and filtered by date.
type DatedRow interface {
	CsvRow
	GetDate() time.Time
}

// Parser turns merged ledger rows into the CSV layout of one tax tool.
type Parser interface {
	ProcessRows(rows []*ledger.Row) error
	GetRows(startDate, endDate *time.Time) []CsvRow
	GetHeaders() []string
	TimeLayout() string
}
