// Package records writes merged rows in the ledger's own record layout.
package records

import (
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

const (
	ParserKey  = "records"
	TimeLayout = "2006-01-02T15:04:05 MST"
)

type Parser struct {
	Rows []Row
}

type Row struct {
	Record ledger.TransactionRecord
}

func (p *Parser) TimeLayout() string {
	return TimeLayout
}

func (p *Parser) ProcessRows(rows []*ledger.Row) error {
	for _, row := range parsers.OutputRows(rows) {
		p.Rows = append(p.Rows, Row{Record: *row.Record})
	}
	return nil
}

func (p *Parser) GetRows(startDate, endDate *time.Time) []parsers.CsvRow {
	return parsers.SortAndFilterByDate(p.Rows, startDate, endDate)
}

func (p Parser) GetHeaders() []string {
	return []string{"Type", "Buy Quantity", "Buy Asset", "Sell Quantity", "Sell Asset",
		"Fee Quantity", "Fee Asset", "Wallet", "Timestamp", "Note"}
}

func (row Row) GetDate() time.Time {
	return row.Record.Timestamp
}

func (row Row) GetRowForCsv() []string {
	tr := row.Record
	return []string{
		tr.Type.String(),
		ledger.FormatQuantity(tr.BuyQuantity),
		tr.BuyAsset,
		ledger.FormatQuantity(tr.SellQuantity),
		tr.SellAsset,
		ledger.FormatQuantity(tr.FeeQuantity),
		tr.FeeAsset,
		tr.Wallet,
		tr.Timestamp.UTC().Format(TimeLayout),
		tr.Note,
	}
}
