package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuantityScale is the number of fractional digits kept when a quantity is split.
const QuantityScale = 18

// WalletAddrLen is how much of an address is kept for a wallet label.
const WalletAddrLen = 10

// TxType is the kind of a TransactionRecord, which decides whether it books
// a buy side, a sell side or both.
type TxType int

const (
	Deposit TxType = iota
	Withdrawal
	Trade
	Spend
	Staking
)

func (t TxType) String() string {
	return [...]string{"Deposit", "Withdrawal", "Trade", "Spend", "Staking"}[t]
}

// IsBuy reports whether the type books its value on the buy side.
func (t TxType) IsBuy() bool {
	return t == Deposit || t == Staking
}

// IsSell reports whether the type books its value on the sell side.
func (t TxType) IsSell() bool {
	return t == Withdrawal || t == Spend
}

// TransactionRecord is one normalized financial event. Quantities are unset
// (Valid == false) when the record type does not use them.
type TransactionRecord struct {
	Type         TxType
	Timestamp    time.Time
	BuyQuantity  decimal.NullDecimal
	BuyAsset     string
	SellQuantity decimal.NullDecimal
	SellAsset    string
	FeeQuantity  decimal.NullDecimal
	FeeAsset     string
	Wallet       string
	Note         string
}

// Quantity wraps a decimal for one of the record's optional quantity fields.
func Quantity(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// QuantityFromString parses an explorer quantity, tolerating thousands separators.
func QuantityFromString(s string) (decimal.NullDecimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return Quantity(d), nil
}

// HasFee reports whether the record carries a non-zero fee.
func (tr *TransactionRecord) HasFee() bool {
	return tr.FeeQuantity.Valid && !tr.FeeQuantity.Decimal.IsZero()
}

// Asset returns the asset the record moves on its primary side.
func (tr *TransactionRecord) Asset() string {
	if tr.Type.IsBuy() {
		return tr.BuyAsset
	}
	return tr.SellAsset
}

// SignedQuantity returns the primary quantity, positive for buys and negative for sells.
func (tr *TransactionRecord) SignedQuantity() decimal.Decimal {
	switch {
	case tr.Type.IsBuy():
		return tr.BuyQuantity.Decimal
	case tr.Type.IsSell():
		return tr.SellQuantity.Decimal.Neg()
	}
	return decimal.Zero
}

// SetDeposit rewrites the record as a Deposit of quantity.
func (tr *TransactionRecord) SetDeposit(asset string, quantity decimal.Decimal) {
	tr.Type = Deposit
	tr.BuyAsset = asset
	tr.BuyQuantity = Quantity(quantity)
	tr.SellAsset = ""
	tr.SellQuantity = decimal.NullDecimal{}
}

// SetWithdrawal rewrites the record as a Withdrawal of quantity.
func (tr *TransactionRecord) SetWithdrawal(asset string, quantity decimal.Decimal) {
	tr.Type = Withdrawal
	tr.BuyAsset = ""
	tr.BuyQuantity = decimal.NullDecimal{}
	tr.SellAsset = asset
	tr.SellQuantity = Quantity(quantity)
}

// SetSpend rewrites the record as a Spend of quantity.
func (tr *TransactionRecord) SetSpend(asset string, quantity decimal.Decimal) {
	tr.SetWithdrawal(asset, quantity)
	tr.Type = Spend
}

// ClearFee removes the fee fields.
func (tr *TransactionRecord) ClearFee() {
	tr.FeeQuantity = decimal.NullDecimal{}
	tr.FeeAsset = ""
}

// FormatQuantity renders an optional quantity, empty when unset.
func FormatQuantity(q decimal.NullDecimal) string {
	if !q.Valid {
		return ""
	}
	return q.Decimal.String()
}

func (tr *TransactionRecord) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", tr.Type)
	if tr.BuyQuantity.Valid {
		fmt.Fprintf(&b, " %s %s", FormatQuantity(tr.BuyQuantity), tr.BuyAsset)
	}
	if tr.SellQuantity.Valid {
		if tr.BuyQuantity.Valid {
			b.WriteString(" <-")
		}
		fmt.Fprintf(&b, " %s %s", FormatQuantity(tr.SellQuantity), tr.SellAsset)
	}
	if tr.FeeQuantity.Valid {
		fmt.Fprintf(&b, " + fee=%s %s", FormatQuantity(tr.FeeQuantity), tr.FeeAsset)
	}
	fmt.Fprintf(&b, " '%s' %s", tr.Wallet, tr.Timestamp.UTC().Format("2006-01-02T15:04:05 MST"))
	if tr.Note != "" {
		fmt.Fprintf(&b, " '%s'", tr.Note)
	}
	return b.String()
}
