package cryptotaxcalculator

import (
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

const (
	ParserKey  = "cryptotaxcalculator"
	TimeLayout = "2006-01-02 15:04:05"
)

type Parser struct {
	Rows []Row
}

type Row struct {
	Date                   time.Time
	Type                   string
	BaseCurrency           string
	BaseAmount             string
	QuoteCurrency          string
	QuoteAmount            string
	FeeCurrency            string
	FeeAmount              string
	From                   string
	To                     string
	Blockchain             string
	ID                     string
	Description            string
	ReferencePricePerUnit  string
	ReferencePriceCurrency string
}

const (
	Buy     = "buy"
	Receive = "receive"
	Send    = "send"
	Expense = "expense"
	Fee     = "fee"
	Staking = "staking"
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
	return []string{
		"Timestamp (UTC)",
		"Type",
		"Base Currency",
		"Base Amount",
		"Quote Currency (Optional)",
		"Quote Amount (Optional)",
		"Fee Currency (Optional)",
		"Fee Amount (Optional)",
		"From (Optional)",
		"To (Optional)",
		"Blockchain (Optional)",
		"ID (Optional)",
		"Description (Optional)",
		"Reference Price Per Unit (Optional)",
		"Reference Price Currency (Optional)",
	}
}
