package koinly

import (
	"fmt"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

func (row Row) GetRowForCsv() []string {
	return []string{
		row.Date.UTC().Format(TimeLayout),
		row.SentAmount,
		row.SentCurrency,
		row.ReceivedAmount,
		row.ReceivedCurrency,
		row.FeeAmount,
		row.FeeCurrency,
		row.NetWorthAmount,
		row.NetWorthCurrency,
		row.Label.String(),
		row.Description,
		row.TxHash,
	}
}

func (row Row) GetDate() time.Time {
	return row.Date
}

// ParseRecord fills the row from one merged record. Koinly infers deposits,
// withdrawals and trades from which side is filled in.
func (row *Row) ParseRecord(txhash string, tr *ledger.TransactionRecord) error {
	row.Date = tr.Timestamp
	row.TxHash = txhash
	row.Description = tr.Note

	if parsers.FeeOnly(tr) {
		row.SentAmount, row.SentCurrency = parsers.Fee(tr)
		row.Label = Cost
		return nil
	}
	row.FeeAmount, row.FeeCurrency = parsers.Fee(tr)

	switch tr.Type {
	case ledger.Deposit, ledger.Withdrawal, ledger.Trade, ledger.Spend:
	case ledger.Staking:
		row.Label = Reward
	default:
		return fmt.Errorf("no koinly label for %s (tx %s)", tr.Type, txhash)
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
