package merge

import (
	"errors"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

var (
	// ErrMultipleFees means more than one row in a group carries a fee.
	ErrMultipleFees = errors.New("more than one fee in transaction")
	// ErrAmbiguousStaking means several inbound rows look like staking payouts.
	ErrAmbiguousStaking = errors.New("ambiguous staking transaction")
	// ErrUnsupportedMerge means a group has several ins and several outs.
	ErrUnsupportedMerge = errors.New("multi-sell to multi-buy trade not supported")
)

// Failure is a group the merge could not reduce.
type Failure struct {
	Txhash string
	Rows   []*ledger.Row
}

// reportFailure annotates every row of the group without touching records.
func reportFailure(g *Group, rows []*ledger.Row) Failure {
	for _, row := range rows {
		colNum := -1
		if df, ok := g.files[row]; ok {
			colNum = df.ColumnIndex("Txhash")
		}
		row.Failure = &ledger.UnexpectedContentError{
			ColNum:  colNum,
			ColName: "Txhash",
			Value:   row.Txhash(),
		}
	}
	return Failure{Txhash: g.Txhash, Rows: rows}
}
