package ledger

import (
	"fmt"
	"sort"
	"strings"
)

// Source categories of explorer exports.
const (
	SourceTxns     = "txn"
	SourceTokens   = "token"
	SourceNFTs     = "nft"
	SourceInternal = "int"
)

// SourceOrder is the order in which data files are walked when building merge groups.
var SourceOrder = []string{SourceTxns, SourceTokens, SourceNFTs, SourceInternal}

// Row is one parsed line of an explorer export. A nil Record means the line
// contributes no financial event.
type Row struct {
	SourceID string
	Fields   map[string]string
	LineNum  int
	Record   *TransactionRecord
	Failure  error
}

// Txhash returns the transaction identifier the row belongs to.
func (r *Row) Txhash() string {
	return r.Fields["Txhash"]
}

// Field returns the named column, empty when it is absent.
func (r *Row) Field(name string) string {
	return r.Fields[name]
}

// Output reports whether the row still produces a record.
func (r *Row) Output() bool {
	return r.Record != nil && r.Failure == nil
}

func (r *Row) String() string {
	if r.Record == nil {
		return fmt.Sprintf("%s:%d %s <no record>", r.SourceID, r.LineNum, r.Txhash())
	}
	return fmt.Sprintf("%s:%d %s %s", r.SourceID, r.LineNum, r.Txhash(), r.Record)
}

// DataFile is a loaded export: its detected layout, header and rows in file order.
type DataFile struct {
	SourceID     string
	Name         string
	Layout       string
	Header       []string
	HeaderRowNum int
	Rows         []*Row
}

// ColumnIndex returns the position of a header column, or -1.
func (df *DataFile) ColumnIndex(name string) int {
	for i, h := range df.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// OrderedFiles returns the data files in SourceOrder, then any other
// categories alphabetically, so grouping is deterministic.
func OrderedFiles(files map[string]*DataFile) []*DataFile {
	var ordered []*DataFile
	seen := make(map[string]bool)
	for _, id := range SourceOrder {
		if df, ok := files[id]; ok && df != nil {
			ordered = append(ordered, df)
			seen[id] = true
		}
	}

	var rest []string
	for id, df := range files {
		if !seen[id] && df != nil {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		ordered = append(ordered, files[id])
	}
	return ordered
}

// OutputRows returns every row across the files that still produces a record.
func OutputRows(files map[string]*DataFile) []*Row {
	var rows []*Row
	for _, df := range OrderedFiles(files) {
		for _, r := range df.Rows {
			if r.Output() {
				rows = append(rows, r)
			}
		}
	}
	return rows
}

// FailedRows returns every row that carries a failure.
func FailedRows(files map[string]*DataFile) []*Row {
	var rows []*Row
	for _, df := range OrderedFiles(files) {
		for _, r := range df.Rows {
			if r.Failure != nil {
				rows = append(rows, r)
			}
		}
	}
	return rows
}

// ShortWallet derives a wallet label from an address.
func ShortWallet(address string) string {
	address = strings.ToLower(address)
	if len(address) > WalletAddrLen {
		return address[:WalletAddrLen]
	}
	return address
}
