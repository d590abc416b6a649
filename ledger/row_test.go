package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mkFile(source string, rows ...*Row) *DataFile {
	return &DataFile{SourceID: source, Name: source + ".csv", Header: []string{"Txhash", "Blockno"}, Rows: rows}
}

func TestOrderedFiles(t *testing.T) {
	files := map[string]*DataFile{
		"zzz":          mkFile("zzz"),
		SourceInternal: mkFile(SourceInternal),
		"abc":          mkFile("abc"),
		SourceTxns:     mkFile(SourceTxns),
		SourceNFTs:     mkFile(SourceNFTs),
		SourceTokens:   nil,
	}

	var ids []string
	for _, df := range OrderedFiles(files) {
		ids = append(ids, df.SourceID)
	}
	assert.Equal(t, []string{SourceTxns, SourceNFTs, SourceInternal, "abc", "zzz"}, ids)
}

func TestOutputAndFailedRows(t *testing.T) {
	rec := &TransactionRecord{Type: Deposit, BuyQuantity: Quantity(decimal.NewFromInt(1)), BuyAsset: "ETH"}
	kept := &Row{SourceID: SourceTxns, Fields: map[string]string{"Txhash": "0x1"}, Record: rec}
	dropped := &Row{SourceID: SourceTxns, Fields: map[string]string{"Txhash": "0x2"}}
	failed := &Row{SourceID: SourceInternal, Record: rec, Failure: errors.New("bad")}

	files := map[string]*DataFile{
		SourceTxns:     mkFile(SourceTxns, kept, dropped),
		SourceInternal: mkFile(SourceInternal, failed),
	}

	assert.Equal(t, []*Row{kept}, OutputRows(files))
	assert.Equal(t, []*Row{failed}, FailedRows(files))
	assert.Equal(t, "0x1", kept.Txhash())
	assert.Equal(t, "", kept.Field("Method"))
}

func TestColumnIndexAndErrors(t *testing.T) {
	df := mkFile(SourceTxns)
	assert.Equal(t, 1, df.ColumnIndex("Blockno"))
	assert.Equal(t, -1, df.ColumnIndex("Method"))

	err := &UnexpectedContentError{ColNum: 0, ColName: "Txhash", Value: "0xabc"}
	assert.Equal(t, "Unexpected Txhash content: '0xabc' (column 1)", err.Error())

	nameErr := &DataFilenameError{Filename: "export-0x1234.csv", Want: "0xabcd"}
	assert.Equal(t, "0xabcd is not in the filename: export-0x1234.csv", nameErr.Error())
}

func TestShortWallet(t *testing.T) {
	assert.Equal(t, "0x73feaa1e", ShortWallet("0x73FEAA1EE314F8C655E354234017BE2193C9E24E"))
	assert.Equal(t, "0xabc", ShortWallet("0xABC"))
}
