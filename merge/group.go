package merge

import (
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

// Group is every row, across all data files, sharing one Txhash.
type Group struct {
	Txhash string
	Rows   []*ledger.Row
	// files lets failures report the column position of the Txhash.
	files map[*ledger.Row]*ledger.DataFile
}

// GroupRows partitions the rows of all data files by Txhash, preserving
// file-then-row order within each group and first-seen order across groups.
// Rows without a record are skipped.
func GroupRows(files map[string]*ledger.DataFile) []*Group {
	var groups []*Group
	byHash := make(map[string]*Group)

	for _, df := range ledger.OrderedFiles(files) {
		for _, row := range df.Rows {
			if row.Record == nil || row.Failure != nil {
				continue
			}

			txhash := row.Txhash()
			g, ok := byHash[txhash]
			if !ok {
				g = &Group{Txhash: txhash, files: make(map[*ledger.Row]*ledger.DataFile)}
				byHash[txhash] = g
				groups = append(groups, g)
			}
			g.Rows = append(g.Rows, row)
			g.files[row] = df
		}
	}

	return groups
}
