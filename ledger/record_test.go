package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxTypeSides(t *testing.T) {
	for _, tt := range []struct {
		txType TxType
		buy    bool
		sell   bool
	}{
		{Deposit, true, false},
		{Staking, true, false},
		{Withdrawal, false, true},
		{Spend, false, true},
		{Trade, false, false},
	} {
		assert.Equal(t, tt.buy, tt.txType.IsBuy(), tt.txType.String())
		assert.Equal(t, tt.sell, tt.txType.IsSell(), tt.txType.String())
	}
}

func TestQuantityFromString(t *testing.T) {
	q, err := QuantityFromString("1,234.5")
	require.NoError(t, err)
	assert.True(t, q.Valid)
	assert.Equal(t, "1234.5", q.Decimal.String())

	q, err = QuantityFromString("  ")
	require.NoError(t, err)
	assert.False(t, q.Valid)

	_, err = QuantityFromString("1.2.3")
	assert.Error(t, err)
}

func TestHasFee(t *testing.T) {
	tr := &TransactionRecord{Type: Withdrawal}
	assert.False(t, tr.HasFee())

	tr.FeeQuantity = Quantity(decimal.Zero)
	assert.False(t, tr.HasFee(), "a zero fee is no fee")

	tr.FeeQuantity = Quantity(decimal.RequireFromString("0.0001"))
	assert.True(t, tr.HasFee())

	tr.ClearFee()
	assert.False(t, tr.FeeQuantity.Valid)
	assert.Equal(t, "", tr.FeeAsset)
}

func TestSignedQuantity(t *testing.T) {
	deposit := &TransactionRecord{Type: Deposit, BuyQuantity: Quantity(decimal.NewFromInt(3)), BuyAsset: "ETH"}
	staking := &TransactionRecord{Type: Staking, BuyQuantity: Quantity(decimal.NewFromInt(1)), BuyAsset: "CAKE"}
	spend := &TransactionRecord{Type: Spend, SellQuantity: Quantity(decimal.NewFromInt(2)), SellAsset: "ETH"}
	trade := &TransactionRecord{Type: Trade, BuyQuantity: Quantity(decimal.NewFromInt(2)), SellQuantity: Quantity(decimal.NewFromInt(2))}

	assert.Equal(t, "3", deposit.SignedQuantity().String())
	assert.Equal(t, "1", staking.SignedQuantity().String())
	assert.Equal(t, "-2", spend.SignedQuantity().String())
	assert.True(t, trade.SignedQuantity().IsZero())

	assert.Equal(t, "ETH", deposit.Asset())
	assert.Equal(t, "ETH", spend.Asset())
}

func TestSetKeepsFee(t *testing.T) {
	tr := &TransactionRecord{
		Type:        Deposit,
		BuyQuantity: Quantity(decimal.NewFromInt(1)),
		BuyAsset:    "ETH",
		FeeQuantity: Quantity(decimal.RequireFromString("0.01")),
		FeeAsset:    "ETH",
	}

	tr.SetWithdrawal("ETH", decimal.RequireFromString("0.5"))
	assert.Equal(t, Withdrawal, tr.Type)
	assert.False(t, tr.BuyQuantity.Valid)
	assert.Equal(t, "", tr.BuyAsset)
	assert.Equal(t, "0.5", tr.SellQuantity.Decimal.String())

	tr.SetSpend("ETH", decimal.Zero)
	assert.Equal(t, Spend, tr.Type)
	assert.True(t, tr.SellQuantity.Valid)
	assert.True(t, tr.HasFee())

	tr.SetDeposit("ETH", decimal.NewFromInt(2))
	assert.Equal(t, Deposit, tr.Type)
	assert.False(t, tr.SellQuantity.Valid)
	assert.Equal(t, "2", FormatQuantity(tr.BuyQuantity))
}

func TestRecordString(t *testing.T) {
	tr := &TransactionRecord{
		Type:         Trade,
		Timestamp:    time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC),
		BuyQuantity:  Quantity(decimal.RequireFromString("0.5")),
		BuyAsset:     "ETH",
		SellQuantity: Quantity(decimal.NewFromInt(100)),
		SellAsset:    "TKA",
		FeeQuantity:  Quantity(decimal.RequireFromString("0.005")),
		FeeAsset:     "ETH",
		Wallet:       "0x11111111",
		Note:         "Swap",
	}
	assert.Equal(t, "Trade 0.5 ETH <- 100 TKA + fee=0.005 ETH '0x11111111' 2021-05-01T12:00:00 UTC 'Swap'", tr.String())
	assert.Equal(t, "", FormatQuantity(decimal.NullDecimal{}))
}
