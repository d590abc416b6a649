package etherscan

import (
	"errors"
	"testing"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ethChain = Chain{Name: "ETH", Asset: "ETH", Explorer: "Etherscan", PriceLabel: "Eth"}

const walletFile = "export-tokenholdings-0x1111111111111111111111111111111111111111.csv"

func mkTxn(kv ...string) map[string]string {
	fields := map[string]string{
		"Txhash":         "0xabc",
		"UnixTimestamp":  "1650000000",
		"From":           "0x1111111111111111111111111111111111111111",
		"To":             "0x2222222222222222222222222222222222222222",
		"Value_IN(ETH)":  "0",
		"Value_OUT(ETH)": "0",
		"TxnFee(ETH)":    "0.0021",
		"Status":         "",
		"Method":         "",
	}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}
	return fields
}

func TestParseTxns(t *testing.T) {
	opts := Options{Asset: "ETH"}

	tr, err := ParseTxns(mkTxn("Value_IN(ETH)", "1.5"), opts)
	require.NoError(t, err)
	assert.Equal(t, ledger.Deposit, tr.Type)
	assert.Equal(t, "1.5", tr.BuyQuantity.Decimal.String())
	assert.Equal(t, "0x22222222", tr.Wallet)
	assert.False(t, tr.FeeQuantity.Valid, "incoming transactions pay no fee")
	assert.Equal(t, time.Unix(1650000000, 0).UTC(), tr.Timestamp)

	tr, err = ParseTxns(mkTxn("Value_OUT(ETH)", "0.25", "Method", "Transfer"), opts)
	require.NoError(t, err)
	assert.Equal(t, ledger.Withdrawal, tr.Type)
	assert.Equal(t, "0.25", tr.SellQuantity.Decimal.String())
	assert.Equal(t, "0.0021", tr.FeeQuantity.Decimal.String())
	assert.Equal(t, "ETH", tr.FeeAsset)
	assert.Equal(t, "0x11111111", tr.Wallet)
	assert.Equal(t, "Transfer", tr.Note)

	tr, err = ParseTxns(mkTxn("Method", "Approve"), opts)
	require.NoError(t, err)
	assert.Equal(t, ledger.Spend, tr.Type)
	assert.True(t, tr.SellQuantity.Valid)
	assert.True(t, tr.SellQuantity.Decimal.IsZero())
	assert.True(t, tr.HasFee())
}

func TestParseTxnsFailed(t *testing.T) {
	opts := Options{Asset: "ETH"}

	tr, err := ParseTxns(mkTxn("Value_OUT(ETH)", "3", "Status", "Error(0)", "Method", "Swap"), opts)
	require.NoError(t, err)
	assert.Equal(t, ledger.Spend, tr.Type, "a failed transaction only pays its fee")
	assert.True(t, tr.SellQuantity.Decimal.IsZero())
	assert.Equal(t, "Failure (Swap)", tr.Note)

	tr, err = ParseTxns(mkTxn("Value_IN(ETH)", "3", "Status", "Error(0)"), opts)
	require.NoError(t, err)
	assert.Nil(t, tr)

	_, err = ParseTxns(mkTxn("UnixTimestamp", "yesterday"), opts)
	assert.Error(t, err)
}

func TestNote(t *testing.T) {
	assert.Equal(t, "Failure", Note(map[string]string{"Status": "Error(1)"}))
	assert.Equal(t, "Failure (Mint)", Note(map[string]string{"Status": "Error(1)", "Method": "Mint"}))
	assert.Equal(t, "Mint", Note(map[string]string{"Method": "Mint", "PrivateNote": "nft"}))
	assert.Equal(t, "nft", Note(map[string]string{"PrivateNote": "nft"}))
	assert.Equal(t, "", Note(map[string]string{}))
}

func TestParseInternal(t *testing.T) {
	opts := Options{Asset: "ETH"}
	fields := map[string]string{
		"UnixTimestamp":  "1650000000",
		"From":           "0x3333333333333333333333333333333333333333",
		"TxTo":           "0x1111111111111111111111111111111111111111",
		"Value_IN(ETH)":  "0.75",
		"Value_OUT(ETH)": "0",
		"Status":         "0",
	}

	tr, err := ParseInternal(fields, opts)
	require.NoError(t, err)
	assert.Equal(t, ledger.Deposit, tr.Type)
	assert.Equal(t, "0x11111111", tr.Wallet)

	fields["Status"] = "1"
	tr, err = ParseInternal(fields, opts)
	require.NoError(t, err)
	assert.Nil(t, tr, "failed internal transactions are skipped")

	fields["Status"] = ""
	fields["Value_IN(ETH)"] = "0"
	fields["Value_OUT(ETH)"] = "0.1"
	tr, err = ParseInternal(fields, opts)
	require.NoError(t, err)
	assert.Equal(t, ledger.Withdrawal, tr.Type)
	assert.Equal(t, "0x33333333", tr.Wallet)
}

func mkToken(from, to, value, symbol string) map[string]string {
	return map[string]string{
		"UnixTimestamp":   "1650000000",
		"From":            from,
		"To":              to,
		"TokenValue":      value,
		"ContractAddress": "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd",
		"TokenName":       symbol + " Token",
		"TokenSymbol":     symbol,
	}
}

func TestParseTokens(t *testing.T) {
	opts := Options{Filename: walletFile, Banned: map[string]bool{"SCAM": true}}
	me := "0x1111111111111111111111111111111111111111"
	other := "0x4444444444444444444444444444444444444444"

	tr, err := ParseTokens(mkToken(other, me, "1,000.5", "USDC"), opts)
	require.NoError(t, err)
	assert.Equal(t, ledger.Deposit, tr.Type)
	assert.Equal(t, "1000.5", tr.BuyQuantity.Decimal.String())
	assert.Equal(t, "USDC", tr.BuyAsset)

	tr, err = ParseTokens(mkToken(me, other, "2", "Cake-LP"), opts)
	require.NoError(t, err)
	assert.Equal(t, ledger.Withdrawal, tr.Type)
	assert.Equal(t, "Cake-LP-0xabcdefab", tr.SellAsset)

	tr, err = ParseTokens(mkToken(other, me, "100", "SCAM"), opts)
	require.NoError(t, err)
	assert.Nil(t, tr)

	_, err = ParseTokens(mkToken(other, other, "1", "USDC"), opts)
	var nameErr *ledger.DataFilenameError
	require.True(t, errors.As(err, &nameErr))
	assert.Equal(t, walletFile, nameErr.Filename)
}

func TestParseNFTs(t *testing.T) {
	me := "0x1111111111111111111111111111111111111111"
	fields := map[string]string{
		"UnixTimestamp": "1650000000",
		"From":          "0x0000000000000000000000000000000000000000",
		"To":            me,
		"TokenId":       "42",
		"TokenName":     "Punks",
	}

	tr, err := ParseNFTs(fields, Options{Filename: walletFile})
	require.NoError(t, err)
	assert.Equal(t, ledger.Deposit, tr.Type)
	assert.Equal(t, "Punks #42", tr.BuyAsset)
	assert.Equal(t, "1", tr.BuyQuantity.Decimal.String())

	tr, err = ParseNFTs(fields, Options{Filename: walletFile, Banned: map[string]bool{"Punks #42": true}})
	require.NoError(t, err)
	assert.Nil(t, tr)
}

func TestLayoutsDetect(t *testing.T) {
	layouts := Layouts(ethChain)

	header := []string{"Txhash", "Blockno", "UnixTimestamp", "DateTime", "From", "To", "ContractAddress",
		"Value_IN(ETH)", "Value_OUT(ETH)", "CurrentValue @ $3000/Eth", "TxnFee(ETH)", "TxnFee(USD)",
		"Historical $Price/Eth", "Status", "ErrCode", "Method", ""}
	l, ok := Detect(layouts, ledger.SourceTxns, header)
	require.True(t, ok)
	assert.Equal(t, "ETH", l.Asset)
	assert.Equal(t, "Etherscan (ETH Transactions)", l.Name)

	_, ok = Detect(layouts, ledger.SourceInternal, header)
	assert.False(t, ok, "layouts only match their own source")

	l, ok = Detect(layouts, ledger.SourceTokens, tokenColumnsBlockno)
	require.True(t, ok)
	assert.Equal(t, ledger.SourceTokens, l.Source)

	_, ok = Detect(layouts, ledger.SourceNFTs, nftColumns)
	assert.True(t, ok)

	internal := InternalColumns(Chain{Asset: "xDAI", PriceLabel: "xDAI"})
	assert.Equal(t, "ParentTxxDAI_Value", internal[6])
}

func TestReducedChain(t *testing.T) {
	harmony := Chain{Name: "Harmony", Asset: "ONE", Explorer: "Harmony", Reduced: true}
	layouts := Layouts(harmony)

	for _, l := range layouts {
		assert.NotEqual(t, ledger.SourceInternal, l.Source)
	}
	assert.Len(t, TxnsColumns(harmony), 12)
}
