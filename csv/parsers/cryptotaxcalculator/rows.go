package cryptotaxcalculator

import (
	"fmt"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

func (row Row) GetRowForCsv() []string {
	return []string{
		row.Date.UTC().Format(TimeLayout),
		row.Type,
		row.BaseCurrency,
		row.BaseAmount,
		row.QuoteCurrency,
		row.QuoteAmount,
		row.FeeCurrency,
		row.FeeAmount,
		row.From,
		row.To,
		row.Blockchain,
		row.ID,
		row.Description,
		row.ReferencePricePerUnit,
		row.ReferencePriceCurrency,
	}
}

func (row Row) GetDate() time.Time {
	return row.Date
}

// ParseRecord fills the row from one merged record. Trades are written as
// buys of the received asset quoted in the sent one.
func (row *Row) ParseRecord(txhash string, tr *ledger.TransactionRecord) error {
	row.Date = tr.Timestamp
	row.ID = txhash
	row.Description = tr.Note

	if parsers.FeeOnly(tr) {
		row.Type = Fee
		row.BaseAmount, row.BaseCurrency = parsers.Fee(tr)
		row.From = tr.Wallet
		return nil
	}
	row.FeeAmount, row.FeeCurrency = parsers.Fee(tr)

	switch tr.Type {
	case ledger.Deposit, ledger.Staking:
		row.Type = Receive
		if tr.Type == ledger.Staking {
			row.Type = Staking
		}
		row.BaseAmount = ledger.FormatQuantity(tr.BuyQuantity)
		row.BaseCurrency = tr.BuyAsset
		row.To = tr.Wallet
	case ledger.Withdrawal, ledger.Spend:
		row.Type = Send
		if tr.Type == ledger.Spend {
			row.Type = Expense
		}
		row.BaseAmount = ledger.FormatQuantity(tr.SellQuantity)
		row.BaseCurrency = tr.SellAsset
		row.From = tr.Wallet
	case ledger.Trade:
		row.Type = Buy
		row.BaseAmount = ledger.FormatQuantity(tr.BuyQuantity)
		row.BaseCurrency = tr.BuyAsset
		row.QuoteAmount = ledger.FormatQuantity(tr.SellQuantity)
		row.QuoteCurrency = tr.SellAsset
	default:
		return fmt.Errorf("no cryptotaxcalculator type for %s (tx %s)", tr.Type, txhash)
	}
	return nil
}
