package taxbit

import (
	"fmt"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

const (
	ParserKey  = "taxbit"
	TimeLayout = "2006-01-02T15:04:05Z07:00"
)

type Parser struct {
	Rows []Row
}

type Row struct {
	Date                 time.Time
	TransactionType      Transaction
	SentAmount           string
	SentCurrency         string
	SendingSource        string
	ReceivedAmount       string
	ReceivedCurrency     string
	ReceivingDestination string
	FeeAmount            string
	FeeCurrency          string
	ExchangeID           string
	TxHash               string
}

type Transaction int

const (
	TransferIn Transaction = iota
	TransferOut
	Trade
	Expense
	Income
)

func (t Transaction) String() string {
	return [...]string{"Transfer In", "Transfer Out", "Trade", "Expense", "Income"}[t]
}

var transactionTypes = map[ledger.TxType]Transaction{
	ledger.Deposit:    TransferIn,
	ledger.Withdrawal: TransferOut,
	ledger.Trade:      Trade,
	ledger.Spend:      Expense,
	ledger.Staking:    Income,
}

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
		"Date and Time", "Transaction Type", "Sent Quantity", "Sent Currency", "Sending Source",
		"Received Quantity", "Received Currency", "Receiving Destination", "Fee", "Fee Currency", "Exchange Transaction ID",
		"Blockchain Transaction Hash",
	}
}

func (row Row) GetRowForCsv() []string {
	return []string{
		row.Date.UTC().Format(TimeLayout),
		row.TransactionType.String(),
		row.SentAmount,
		row.SentCurrency,
		row.SendingSource,
		row.ReceivedAmount,
		row.ReceivedCurrency,
		row.ReceivingDestination,
		row.FeeAmount,
		row.FeeCurrency,
		row.ExchangeID,
		row.TxHash,
	}
}

func (row Row) GetDate() time.Time {
	return row.Date
}

func (row *Row) ParseRecord(txhash string, tr *ledger.TransactionRecord) error {
	txType, ok := transactionTypes[tr.Type]
	if !ok {
		return fmt.Errorf("no taxbit transaction type for %s (tx %s)", tr.Type, txhash)
	}
	row.Date = tr.Timestamp
	row.TransactionType = txType
	row.TxHash = txhash

	if parsers.FeeOnly(tr) {
		row.SentAmount, row.SentCurrency = parsers.Fee(tr)
		row.SendingSource = tr.Wallet
		return nil
	}
	row.FeeAmount, row.FeeCurrency = parsers.Fee(tr)

	if tr.BuyQuantity.Valid {
		row.ReceivedAmount = ledger.FormatQuantity(tr.BuyQuantity)
		row.ReceivedCurrency = tr.BuyAsset
		row.ReceivingDestination = tr.Wallet
	}
	if tr.SellQuantity.Valid {
		row.SentAmount = ledger.FormatQuantity(tr.SellQuantity)
		row.SentCurrency = tr.SellAsset
		row.SendingSource = tr.Wallet
	}
	return nil
}
