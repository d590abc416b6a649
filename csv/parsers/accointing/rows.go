package accointing

import (
	"fmt"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

func (row Row) GetRowForCsv() []string {
	return []string{
		row.TransactionType.String(),
		FormatDatetime(row.Date),
		row.InBuyAmount,
		row.InBuyAsset,
		row.OutSellAmount,
		row.OutSellAsset,
		row.FeeAmount,
		row.FeeAsset,
		row.Classification.String(),
		row.OperationID,
		row.Comments,
	}
}

func (row Row) GetDate() time.Time {
	return row.Date
}

// ParseRecord fills the row from one merged record.
func (row *Row) ParseRecord(txhash string, tr *ledger.TransactionRecord) error {
	row.Date = tr.Timestamp
	row.OperationID = txhash
	row.Comments = tr.Note

	if parsers.FeeOnly(tr) {
		row.TransactionType = Withdraw
		row.Classification = Fee
		row.OutSellAmount, row.OutSellAsset = parsers.Fee(tr)
		return nil
	}
	row.FeeAmount, row.FeeAsset = parsers.Fee(tr)

	switch tr.Type {
	case ledger.Deposit, ledger.Staking:
		row.TransactionType = Deposit
		if tr.Type == ledger.Staking {
			row.Classification = Staked
		}
	case ledger.Withdrawal, ledger.Spend:
		row.TransactionType = Withdraw
		if tr.Type == ledger.Spend {
			row.Classification = Payment
		}
	case ledger.Trade:
		row.TransactionType = Order
	default:
		return fmt.Errorf("no accointing transaction type for %s (tx %s)", tr.Type, txhash)
	}

	if tr.BuyQuantity.Valid {
		row.InBuyAmount = ledger.FormatQuantity(tr.BuyQuantity)
		row.InBuyAsset = tr.BuyAsset
	}
	if tr.SellQuantity.Valid {
		row.OutSellAmount = ledger.FormatQuantity(tr.SellQuantity)
		row.OutSellAsset = tr.SellAsset
	}
	return nil
}
