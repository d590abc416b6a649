package merge

import (
	"fmt"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

// Classification splits a group into its buy side, sell side and fee row.
type Classification struct {
	Ins  []*ledger.Row
	Outs []*ledger.Row
	Fee  *ledger.Row
}

// Classify partitions rows into Deposits (ins), Withdrawals (outs) and the
// single row carrying a fee. More than one fee row is ErrMultipleFees.
func Classify(rows []*ledger.Row) (Classification, error) {
	var c Classification
	var fees []*ledger.Row

	for _, row := range rows {
		if row.Record == nil {
			continue
		}
		switch row.Record.Type {
		case ledger.Deposit:
			c.Ins = append(c.Ins, row)
		case ledger.Withdrawal:
			c.Outs = append(c.Outs, row)
		}
		if row.Record.HasFee() {
			fees = append(fees, row)
		}
	}

	switch len(fees) {
	case 0:
	case 1:
		c.Fee = fees[0]
	default:
		return c, fmt.Errorf("%w: %d rows carry a fee", ErrMultipleFees, len(fees))
	}

	return c, nil
}

// contains reports whether row is on either side of the classification.
func (c Classification) contains(row *ledger.Row) bool {
	for _, r := range c.Ins {
		if r == row {
			return true
		}
	}
	for _, r := range c.Outs {
		if r == row {
			return true
		}
	}
	return false
}
