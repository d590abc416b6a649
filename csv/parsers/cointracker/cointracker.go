package cointracker

import (
	"fmt"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

const (
	ParserKey  = "cointracker"
	TimeLayout = "01/02/2006 15:04:05"
)

type Parser struct {
	Rows []Row
}

type Row struct {
	Date             time.Time
	ReceivedAmount   string
	ReceivedCurrency string
	SentAmount       string
	SentCurrency     string
	FeeAmount        string
	FeeCurrency      string
	Tag              Tag
}

type Tag int

const (
	None Tag = iota
	Staked
	Payment
)

func (t Tag) String() string {
	return [...]string{"", "staked", "payment"}[t]
}

func (p *Parser) TimeLayout() string {
	return TimeLayout
}

func (p *Parser) ProcessRows(rows []*ledger.Row) error {
	for _, r := range parsers.OutputRows(rows) {
		row := Row{}
		if err := row.ParseRecord(r.Record); err != nil {
			return fmt.Errorf("tx %s: %w", r.Txhash(), err)
		}
		p.Rows = append(p.Rows, row)
	}
	return nil
}

func (p *Parser) GetRows(startDate, endDate *time.Time) []parsers.CsvRow {
	return parsers.SortAndFilterByDate(p.Rows, startDate, endDate)
}

func (p Parser) GetHeaders() []string {
	return []string{"Date", "Received Quantity", "Received Currency", "Sent Quantity", "Sent Currency", "Fee Amount", "Fee Currency", "Tag"}
}

func (row Row) GetRowForCsv() []string {
	return []string{
		row.Date.UTC().Format(TimeLayout),
		row.ReceivedAmount,
		row.ReceivedCurrency,
		row.SentAmount,
		row.SentCurrency,
		row.FeeAmount,
		row.FeeCurrency,
		row.Tag.String(),
	}
}

func (row Row) GetDate() time.Time {
	return row.Date
}

func (row *Row) ParseRecord(tr *ledger.TransactionRecord) error {
	row.Date = tr.Timestamp

	if parsers.FeeOnly(tr) {
		row.SentAmount, row.SentCurrency = parsers.Fee(tr)
		return nil
	}
	row.FeeAmount, row.FeeCurrency = parsers.Fee(tr)

	switch tr.Type {
	case ledger.Deposit, ledger.Withdrawal, ledger.Trade:
	case ledger.Staking:
		row.Tag = Staked
	case ledger.Spend:
		row.Tag = Payment
	default:
		return fmt.Errorf("no cointracker tag for %s", tr.Type)
	}

	if tr.BuyQuantity.Valid {
		row.ReceivedAmount = ledger.FormatQuantity(tr.BuyQuantity)
		row.ReceivedCurrency = tr.BuyAsset
	}
	if tr.SellQuantity.Valid {
		row.SentAmount = ledger.FormatQuantity(tr.SellQuantity)
		row.SentCurrency = tr.SellAsset
	}
	return nil
}
