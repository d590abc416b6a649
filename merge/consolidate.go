package merge

import (
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/shopspring/decimal"
)

// NettableSources are the categories whose same-asset rows are netted together.
var NettableSources = map[string]bool{
	ledger.SourceTxns:     true,
	ledger.SourceInternal: true,
}

type netted struct {
	row      *ledger.Row
	quantity decimal.Decimal
}

// Consolidate nets same-asset rows into the first row for each asset and
// returns the surviving rows. Groups containing any row from outside
// nettable are returned unchanged.
//
// Rows folded into an earlier row lose their record. The surviving row is
// rewritten as a Deposit or Withdrawal of the net quantity, a zero Spend if
// the net is zero but it carries the fee, or dropped when the net is zero
// and there is no fee.
func Consolidate(rows []*ledger.Row, nettable map[string]bool) []*ledger.Row {
	for _, row := range rows {
		if !nettable[row.SourceID] {
			return rows
		}
	}

	var assets []string
	byAsset := make(map[string]*netted)

	for _, row := range rows {
		if row.Record == nil {
			continue
		}

		asset := row.Record.Asset()
		n, ok := byAsset[asset]
		if !ok {
			byAsset[asset] = &netted{row: row, quantity: row.Record.SignedQuantity()}
			assets = append(assets, asset)
			continue
		}

		n.quantity = n.quantity.Add(row.Record.SignedQuantity())
		if row.Record.HasFee() && !n.row.Record.HasFee() {
			// keep the group's fee on the surviving row
			n.row.Record.FeeQuantity = row.Record.FeeQuantity
			n.row.Record.FeeAsset = row.Record.FeeAsset
		}
		row.Record = nil
	}

	var survivors []*ledger.Row
	for _, asset := range assets {
		n := byAsset[asset]
		record := n.row.Record

		switch n.quantity.Sign() {
		case 1:
			record.SetDeposit(asset, n.quantity)
		case -1:
			record.SetWithdrawal(asset, n.quantity.Abs())
		default:
			if !record.HasFee() {
				n.row.Record = nil
				continue
			}
			record.SetSpend(asset, decimal.Zero)
		}
		survivors = append(survivors, n.row)
	}

	return survivors
}
