package merge

import (
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/shopspring/decimal"
)

// Fee is the group's fee captured before trades rewrite the fee row.
type Fee struct {
	Row      *ledger.Row
	Quantity decimal.Decimal
	Asset    string
	Note     string
}

// AllocateFee spreads the fee across candidates that still carry a record.
// When the fee row is not one of them its fee is removed. A Spend fee row
// has nothing else to report and is discarded.
func AllocateFee(candidates []*ledger.Row, fee Fee) []decimal.Decimal {
	var targets []*ledger.Row
	feeRowTargeted := false
	for _, row := range candidates {
		if row.Record == nil {
			continue
		}
		targets = append(targets, row)
		if row == fee.Row {
			feeRowTargeted = true
		}
	}
	if len(targets) == 0 {
		// nothing to absorb the fee, it stays where it is
		return nil
	}

	shares := Split(fee.Quantity, len(targets))
	for i, row := range targets {
		row.Record.FeeQuantity = ledger.Quantity(shares[i])
		row.Record.FeeAsset = fee.Asset
		row.Record.Note = fee.Note
	}

	if fee.Row.Record != nil && !feeRowTargeted {
		if fee.Row.Record.Type == ledger.Spend {
			fee.Row.Record = nil
		} else {
			fee.Row.Record.ClearFee()
		}
	}

	return shares
}
