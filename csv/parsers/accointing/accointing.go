package accointing

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
	return []string{"transactionType", "date", "inBuyAmount", "inBuyAsset", "outSellAmount", "outSellAsset",
		"feeAmount (optional)", "feeAsset (optional)", "classification (optional)", "operationId (optional)",
		"comments (optional)"}
}
