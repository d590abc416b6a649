package koinly

import (
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

func (p *Parser) TimeLayout() string {
	return TimeLayout
}

func (p *Parser) ProcessRows(rows []*ledger.Row) error {
	for _, r := range parsers.OutputRows(rows) {
		row := Row{}
		if err := row.ParseRecord(r.Txhash(), r.Record); err != nil {
			return err
		}
		p.Rows = append(p.Rows, row)
	}
	return nil
}

func (p *Parser) GetRows(startDate, endDate *time.Time) []parsers.CsvRow {
	return parsers.SortAndFilterByDate(p.Rows, startDate, endDate)
}

func (p Parser) GetHeaders() []string {
	return []string{"Date", "Sent Amount", "Sent Currency", "Received Amount", "Received Currency", "Fee Amount", "Fee Currency",
		"Net Worth Amount", "Net Worth Currency", "Label", "Description", "TxHash"}
}
