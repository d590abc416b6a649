package merge

import (
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/shopspring/decimal"
)

var testTime = time.Date(2022, 3, 14, 9, 26, 53, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mkDeposit(asset, quantity string) *ledger.TransactionRecord {
	return &ledger.TransactionRecord{
		Type:        ledger.Deposit,
		Timestamp:   testTime,
		BuyQuantity: ledger.Quantity(dec(quantity)),
		BuyAsset:    asset,
		Wallet:      "0x1111111",
	}
}

func mkWithdrawal(asset, quantity string) *ledger.TransactionRecord {
	return &ledger.TransactionRecord{
		Type:         ledger.Withdrawal,
		Timestamp:    testTime,
		SellQuantity: ledger.Quantity(dec(quantity)),
		SellAsset:    asset,
		Wallet:       "0x1111111",
	}
}

func mkSpend(asset, quantity string) *ledger.TransactionRecord {
	tr := mkWithdrawal(asset, quantity)
	tr.Type = ledger.Spend
	return tr
}

func withFee(tr *ledger.TransactionRecord, asset, quantity string) *ledger.TransactionRecord {
	tr.FeeQuantity = ledger.Quantity(dec(quantity))
	tr.FeeAsset = asset
	return tr
}

func withNote(tr *ledger.TransactionRecord, note string) *ledger.TransactionRecord {
	tr.Note = note
	return tr
}

func mkRow(source string, line int, txhash string, tr *ledger.TransactionRecord, kv ...string) *ledger.Row {
	fields := map[string]string{"Txhash": txhash}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}
	return &ledger.Row{SourceID: source, Fields: fields, LineNum: line, Record: tr}
}

// mkFiles puts rows into one data file per source category, in the order given.
func mkFiles(rows ...*ledger.Row) map[string]*ledger.DataFile {
	files := make(map[string]*ledger.DataFile)
	for _, row := range rows {
		df, ok := files[row.SourceID]
		if !ok {
			df = &ledger.DataFile{
				SourceID:     row.SourceID,
				Name:         row.SourceID + ".csv",
				Header:       []string{"Txhash", "UnixTimestamp"},
				HeaderRowNum: 1,
			}
			files[row.SourceID] = df
		}
		df.Rows = append(df.Rows, row)
	}
	return files
}

// netByAsset sums signed quantities across the records of rows.
func netByAsset(rows []*ledger.Row) map[string]decimal.Decimal {
	net := make(map[string]decimal.Decimal)
	for _, row := range rows {
		if row.Record == nil {
			continue
		}
		asset := row.Record.Asset()
		net[asset] = net[asset].Add(row.Record.SignedQuantity())
	}
	return net
}
