package db

import (
	"errors"
	"testing"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/DefiantLabs/explorer-tax-cli/merge"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMergeRun(t *testing.T) {
	ts := time.Date(2022, 4, 15, 5, 20, 0, 0, time.FixedZone("CEST", 2*3600))
	trade := &ledger.TransactionRecord{
		Type:         ledger.Trade,
		Timestamp:    ts,
		BuyQuantity:  ledger.Quantity(decimal.RequireFromString("0.5")),
		BuyAsset:     "ETH",
		SellQuantity: ledger.Quantity(decimal.RequireFromString("100")),
		SellAsset:    "TKA",
		Wallet:       "0x11111111",
		Note:         "Swap",
	}
	files := map[string]*ledger.DataFile{
		ledger.SourceTokens: {SourceID: ledger.SourceTokens, Rows: []*ledger.Row{
			{SourceID: ledger.SourceTokens, LineNum: 2, Fields: map[string]string{"Txhash": "0xswap"}, Record: trade},
			{SourceID: ledger.SourceTokens, LineNum: 3, Fields: map[string]string{"Txhash": "0xbad"}, Failure: errors.New("bad row")},
		}},
		ledger.SourceTxns: {SourceID: ledger.SourceTxns, Rows: []*ledger.Row{
			{SourceID: ledger.SourceTxns, LineNum: 2, Fields: map[string]string{"Txhash": "0xswap"}},
		}},
	}

	result := merge.Result{Groups: 2, MergedGroups: 1, Failures: []merge.Failure{{Txhash: "0xother"}}}
	run := NewMergeRun("BSC", "koinly", result, files)

	assert.Equal(t, "BSC", run.Chain)
	assert.Equal(t, "koinly", run.Format)
	assert.Equal(t, 2, run.Groups)
	assert.Equal(t, 1, run.MergedGroups)
	assert.Equal(t, 1, run.FailedGroups)

	require.Len(t, run.Records, 1, "rows without a record or with a failure are not stored")
	rec := run.Records[0]
	assert.Equal(t, ledger.SourceTokens, rec.Source)
	assert.Equal(t, 2, rec.LineNum)
	assert.Equal(t, "0xswap", rec.Txhash)
	assert.Equal(t, "Trade", rec.Type)
	assert.Equal(t, time.UTC, rec.Timestamp.Location())
	assert.True(t, ts.Equal(rec.Timestamp))
	assert.Equal(t, "0.5", rec.BuyQuantity.Decimal.String())
	assert.False(t, rec.FeeQuantity.Valid)
	assert.Equal(t, "Swap", rec.Note)
}

func TestNewLedgerRecordsEmpty(t *testing.T) {
	assert.Empty(t, NewLedgerRecords(nil))
}
